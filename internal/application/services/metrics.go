package services

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/zatekoja/vibecheck/backend/engine"

var (
	engineCountersOnce sync.Once

	unknownMoodCounter       metric.Int64Counter
	unexpectedErrorCounter   metric.Int64Counter
	fallbackActivatedCounter metric.Int64Counter
)

func initEngineCounters() {
	meter := otel.Meter(meterName)

	if c, err := meter.Int64Counter(
		"vibecheck.mood.unknown",
		metric.WithDescription("Count of mood inputs substituted with the default mood"),
	); err == nil {
		unknownMoodCounter = c
	}
	if c, err := meter.Int64Counter(
		"vibecheck.provider.unexpected_errors",
		metric.WithDescription("Count of provider errors that matched no known error class"),
	); err == nil {
		unexpectedErrorCounter = c
	}
	if c, err := meter.Int64Counter(
		"vibecheck.fallback.activations",
		metric.WithDescription("Count of requests served from synthesized data"),
	); err == nil {
		fallbackActivatedCounter = c
	}
}

func addCount(ctx context.Context, counter *metric.Int64Counter, attrs ...attribute.KeyValue) {
	engineCountersOnce.Do(initEngineCounters)
	if *counter == nil {
		return
	}
	(*counter).Add(ctx, 1, metric.WithAttributes(attrs...))
}
