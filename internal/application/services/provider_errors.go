package services

import (
	"context"
	"errors"

	"github.com/zatekoja/vibecheck/backend/internal/domain/providers"
	"github.com/zatekoja/vibecheck/backend/internal/infrastructure/observability"
	"github.com/zatekoja/vibecheck/backend/pkg/retry"
	"go.opentelemetry.io/otel/attribute"
)

// providerErrorClass is the explicit fallback trigger for a failed collaborator call.
type providerErrorClass string

const (
	errorClassUnavailable providerErrorClass = "unavailable"
	errorClassTransport   providerErrorClass = "transport"
	errorClassCanceled    providerErrorClass = "canceled"
	errorClassUnexpected  providerErrorClass = "unexpected"
)

func classifyProviderError(err error) providerErrorClass {
	switch {
	case errors.Is(err, providers.ErrProviderUnavailable):
		return errorClassUnavailable
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return errorClassCanceled
	case errors.Is(err, providers.ErrProviderTransport):
		return errorClassTransport
	default:
		return errorClassUnexpected
	}
}

// logProviderError logs err at the level of its class and counts unexpected ones.
func logProviderError(ctx context.Context, operation string, err error, fields map[string]string) providerErrorClass {
	class := classifyProviderError(err)
	logger := observability.LoggerFromContext(ctx)

	event := logger.Error()
	switch class {
	case errorClassUnavailable:
		event = logger.Debug()
	case errorClassCanceled:
		event = logger.Info()
	case errorClassTransport:
		event = logger.Warn()
	}

	event = event.Err(err).Str("operation", operation).Str("error_class", string(class))
	for k, v := range fields {
		event = event.Str(k, v)
	}
	event.Msg("Provider call failed")

	if class == errorClassUnexpected {
		addCount(ctx, &unexpectedErrorCounter, attribute.String("provider.operation", operation))
	}
	return class
}

// retryable lets pkg/retry repeat transport failures only.
func retryable(err error) error {
	if err == nil || errors.Is(err, providers.ErrProviderTransport) {
		return err
	}
	return retry.Permanent(err)
}
