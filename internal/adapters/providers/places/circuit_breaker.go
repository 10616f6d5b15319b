package places

import (
	"context"
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
	"github.com/zatekoja/vibecheck/backend/internal/domain/entities"
	"github.com/zatekoja/vibecheck/backend/internal/domain/providers"
	"github.com/zatekoja/vibecheck/backend/internal/infrastructure/observability"
)

// Client is the full set of place lookups a breaker can guard.
type Client interface {
	providers.PlaceSearchProvider
	providers.PlaceDetailsProvider
	providers.NearbyPlacesProvider
}

var _ Client = (*GoogleProvider)(nil)
var _ Client = (*CircuitBreakerClient)(nil)

// BreakerConfig tunes the circuit breaker.
type BreakerConfig struct {
	Name         string
	MaxRequests  uint32
	Interval     time.Duration
	Timeout      time.Duration
	MinRequests  uint32
	FailureRatio float64
}

// DefaultBreakerConfig opens after 60% transport failures over at least 10 requests
// and probes again after 30 seconds.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		Name:         "google-places",
		MaxRequests:  3,
		Interval:     time.Minute,
		Timeout:      30 * time.Second,
		MinRequests:  10,
		FailureRatio: 0.6,
	}
}

// CircuitBreakerClient wraps a Client with a circuit breaker.
// Only transport failures count against the circuit; a rejected call returns ErrProviderUnavailable.
type CircuitBreakerClient struct {
	client Client
	cb     *gobreaker.CircuitBreaker[any]
	name   string
}

// NewCircuitBreakerClient wraps client with a breaker configured by cfg.
func NewCircuitBreakerClient(client Client, cfg BreakerConfig) *CircuitBreakerClient {
	cb := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			if ratio >= cfg.FailureRatio {
				observability.GetLogger().Warn().
					Str("breaker", cfg.Name).
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", ratio*100).
					Msg("Opening circuit")
				return true
			}
			return false
		},
		IsSuccessful: func(err error) bool {
			return err == nil || !errors.Is(err, providers.ErrProviderTransport)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			observability.GetLogger().Info().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Circuit breaker state transition")
		},
	})

	return &CircuitBreakerClient{client: client, cb: cb, name: cfg.Name}
}

// State reports the breaker state.
func (c *CircuitBreakerClient) State() gobreaker.State {
	return c.cb.State()
}

func (c *CircuitBreakerClient) execute(ctx context.Context, fn func() (any, error)) (any, error) {
	result, err := c.cb.Execute(fn)
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		observability.LoggerFromContext(ctx).Debug().Str("breaker", c.name).Err(err).Msg("Places request rejected")
		return nil, providers.Unavailable(providerName, err.Error())
	}
	return result, err
}

// SearchPlaces runs the wrapped search under the breaker.
func (c *CircuitBreakerClient) SearchPlaces(ctx context.Context, keyword, location string) ([]entities.PlaceCandidate, error) {
	result, err := c.execute(ctx, func() (any, error) {
		return c.client.SearchPlaces(ctx, keyword, location)
	})
	if err != nil {
		return nil, err
	}
	candidates, ok := result.([]entities.PlaceCandidate)
	if !ok {
		return nil, fmt.Errorf("circuit breaker: unexpected result type %T for SearchPlaces", result)
	}
	return candidates, nil
}

// EnrichPlace runs the wrapped details lookup under the breaker.
func (c *CircuitBreakerClient) EnrichPlace(ctx context.Context, candidate entities.PlaceCandidate) (*entities.Place, error) {
	result, err := c.execute(ctx, func() (any, error) {
		return c.client.EnrichPlace(ctx, candidate)
	})
	if err != nil {
		return nil, err
	}
	place, ok := result.(*entities.Place)
	if !ok {
		return nil, fmt.Errorf("circuit breaker: unexpected result type %T for EnrichPlace", result)
	}
	return place, nil
}

// NearbyPlaces runs the wrapped nearby lookup under the breaker.
func (c *CircuitBreakerClient) NearbyPlaces(ctx context.Context, center entities.Coordinates, radiusMeters int) ([]entities.PlaceCandidate, error) {
	result, err := c.execute(ctx, func() (any, error) {
		return c.client.NearbyPlaces(ctx, center, radiusMeters)
	})
	if err != nil {
		return nil, err
	}
	candidates, ok := result.([]entities.PlaceCandidate)
	if !ok {
		return nil, fmt.Errorf("circuit breaker: unexpected result type %T for NearbyPlaces", result)
	}
	return candidates, nil
}
