package services

import (
	"context"
	"strings"
	"sync/atomic"
	"time"

	"github.com/zatekoja/vibecheck/backend/internal/domain/providers"
	"github.com/zatekoja/vibecheck/backend/internal/infrastructure/observability"
	"golang.org/x/sync/errgroup"
)

const warmConcurrency = 4

// CacheWarmingService primes the geocode cache for well-known locations and fetches the baseline taste profile.
type CacheWarmingService struct {
	geo       providers.GeolocationProvider
	resolver  *TasteProfileResolver
	locations []string
}

// NewCacheWarmingService creates a new cache warming service. Blank and duplicate locations are dropped.
func NewCacheWarmingService(geo providers.GeolocationProvider, resolver *TasteProfileResolver, locations ...string) *CacheWarmingService {
	seen := make(map[string]struct{}, len(locations))
	kept := make([]string, 0, len(locations))
	for _, loc := range locations {
		loc = strings.TrimSpace(loc)
		key := strings.ToLower(loc)
		if _, dup := seen[key]; loc == "" || dup {
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, loc)
	}
	return &CacheWarmingService{geo: geo, resolver: resolver, locations: kept}
}

// WarmCache geocodes each location and resolves the baseline profile.
// Failures are logged and skipped; it returns how many locations resolved.
func (s *CacheWarmingService) WarmCache(ctx context.Context) int {
	logger := observability.LoggerFromContext(ctx)
	start := time.Now()

	if s.resolver != nil {
		s.resolver.Baseline(ctx)
	}

	var warmed atomic.Int32
	if s.geo != nil {
		var g errgroup.Group
		g.SetLimit(warmConcurrency)
		for _, loc := range s.locations {
			g.Go(func() error {
				if _, err := s.geo.Geocode(ctx, loc); err != nil {
					logger.Debug().Err(err).Str("location", loc).Msg("Skipping location during cache warm-up")
					return nil
				}
				warmed.Add(1)
				return nil
			})
		}
		_ = g.Wait()
	}

	logger.Info().
		Int32("locations_warmed", warmed.Load()).
		Int("locations_total", len(s.locations)).
		Dur("duration", time.Since(start)).
		Msg("Cache warming completed")
	return int(warmed.Load())
}
