package services

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/zatekoja/vibecheck/backend/internal/domain/entities"
	"github.com/zatekoja/vibecheck/backend/internal/domain/providers"
	"github.com/zatekoja/vibecheck/backend/internal/infrastructure/observability"
	apperrors "github.com/zatekoja/vibecheck/backend/pkg/errors"
	"github.com/zatekoja/vibecheck/backend/pkg/retry"
	"go.opentelemetry.io/otel/attribute"
)

const (
	// MaxHeatmapEntries caps a heatmap response.
	MaxHeatmapEntries = 50

	minSynthesizedHeatmap = 20
	maxSynthesizedHeatmap = 40
	defaultHeatmapRadius  = 10000
)

// defaultCenter is used when a location cannot be geocoded (San Francisco).
var defaultCenter = entities.Coordinates{Latitude: 37.7749, Longitude: -122.4194}

// HeatmapDeps are the collaborators of HeatmapService. Nil providers are treated as unavailable.
type HeatmapDeps struct {
	Geo      providers.GeolocationProvider
	Nearby   providers.NearbyPlacesProvider
	Emotions *EmotionSynthesizer
	Fallback *FallbackProvider
	Random   RandomSource

	Timeout         time.Duration
	DefaultLocation string
	DefaultRadius   int
	Retry           retry.Config
}

// HeatmapService builds emotion heatmaps over nearby places.
type HeatmapService struct {
	geo      providers.GeolocationProvider
	nearby   providers.NearbyPlacesProvider
	emotions *EmotionSynthesizer
	fallback *FallbackProvider
	rng      RandomSource

	timeout         time.Duration
	defaultLocation string
	defaultRadius   int
	retryConfig     retry.Config
}

// NewHeatmapService creates a new heatmap service
func NewHeatmapService(deps HeatmapDeps) *HeatmapService {
	if deps.Random == nil {
		deps.Random = NewRandomSource(0)
	}
	if deps.Emotions == nil {
		deps.Emotions = NewEmotionSynthesizer(deps.Random)
	}
	if deps.Fallback == nil {
		deps.Fallback = NewFallbackProvider(deps.Random)
	}
	if deps.Timeout <= 0 {
		deps.Timeout = defaultTimeout
	}
	if deps.DefaultRadius <= 0 {
		deps.DefaultRadius = defaultHeatmapRadius
	}
	if deps.Retry.MaxAttempts <= 0 {
		deps.Retry = retry.ReadConfig()
	}
	return &HeatmapService{
		geo:             deps.Geo,
		nearby:          deps.Nearby,
		emotions:        deps.Emotions,
		fallback:        deps.Fallback,
		rng:             deps.Random,
		timeout:         deps.Timeout,
		defaultLocation: deps.DefaultLocation,
		defaultRadius:   deps.DefaultRadius,
		retryConfig:     deps.Retry,
	}
}

// GetHeatmap returns at most MaxHeatmapEntries places around location, each with an emotion vector.
// A zero radius uses the configured default; a negative one is a validation error.
func (s *HeatmapService) GetHeatmap(ctx context.Context, location string, radiusMeters int) ([]entities.HeatmapEntry, error) {
	ctx, span := observability.StartSpan(ctx, "HeatmapService.GetHeatmap")
	defer span.End()

	if radiusMeters < 0 {
		return nil, apperrors.NewValidationError("radius must be positive")
	}
	if radiusMeters == 0 {
		radiusMeters = s.defaultRadius
	}
	if strings.TrimSpace(location) == "" {
		location = s.defaultLocation
	}
	span.SetAttributes(attribute.String("location", location), attribute.Int("radius_m", radiusMeters))

	liveCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	center := s.center(liveCtx, location)
	candidates := s.liveNearby(liveCtx, center, radiusMeters)
	if len(candidates) == 0 {
		count := intBetween(s.rng, minSynthesizedHeatmap, maxSynthesizedHeatmap)
		candidates = s.fallback.SynthesizeNearby(center, radiusMeters, count)
		addCount(ctx, &fallbackActivatedCounter, attribute.String("fallback.path", "heatmap"))
	}

	entries := make([]entities.HeatmapEntry, 0, min(len(candidates), MaxHeatmapEntries))
	for _, c := range candidates {
		if len(entries) == MaxHeatmapEntries {
			break
		}
		coords := center
		if c.Coordinates != nil {
			coords = *c.Coordinates
		}
		emotions := s.emotions.Synthesize(entities.PlaceRatingAndCategory{Rating: c.Rating, Category: c.PrimaryCategory()})
		entries = append(entries, entities.HeatmapEntry{
			ID:              c.ExternalID,
			Name:            c.Name,
			Coordinates:     coords,
			Emotions:        emotions,
			DominantEmotion: emotions.Dominant(),
			Rating:          c.Rating,
			CategoryTags:    truncate(c.Categories, entities.MaxPlaceTags),
		})
	}
	span.SetAttributes(attribute.Int("heatmap.entries", len(entries)))
	return entries, nil
}

// center geocodes location, retrying transport failures once. Any failure yields defaultCenter.
func (s *HeatmapService) center(ctx context.Context, location string) entities.Coordinates {
	if s.geo == nil {
		return defaultCenter
	}

	var addr *providers.GeocodedAddress
	err := retry.Do(ctx, s.retryConfig, func() error {
		found, err := s.geo.Geocode(ctx, location)
		if err != nil {
			return retryable(err)
		}
		addr = found
		return nil
	})
	switch {
	case err == nil && addr != nil:
		return addr.Coordinates
	case errors.Is(err, providers.ErrLocationNotFound):
		observability.LoggerFromContext(ctx).Info().Str("location", location).Msg("Location not found, using default center")
	case err != nil:
		logProviderError(ctx, "geocode", err, map[string]string{"location": location})
	}
	return defaultCenter
}

func (s *HeatmapService) liveNearby(ctx context.Context, center entities.Coordinates, radiusMeters int) []entities.PlaceCandidate {
	if s.nearby == nil {
		return nil
	}

	var out []entities.PlaceCandidate
	err := retry.Do(ctx, s.retryConfig, func() error {
		found, err := s.nearby.NearbyPlaces(ctx, center, radiusMeters)
		if err != nil {
			return retryable(err)
		}
		out = found
		return nil
	})
	if err != nil {
		logProviderError(ctx, "nearby_places", err, nil)
		return nil
	}
	return out
}

// GetPlaceEmotions returns an emotion breakdown that is stable for a given place id.
func (s *HeatmapService) GetPlaceEmotions(ctx context.Context, placeID string) entities.PlaceEmotions {
	rng := NewKeyedRandomSource(placeID)
	rating := math.Round(uniform(rng, minFallbackRating, maxFallbackRating)*10) / 10
	emotions := synthesizeEmotions(rng, entities.PlaceRatingAndCategory{Rating: rating})

	observability.LoggerFromContext(ctx).Debug().Str("place_id", placeID).Msg("Synthesized place emotions")
	return entities.PlaceEmotions{
		PlaceID:         placeID,
		Emotions:        emotions,
		DominantEmotion: emotions.Dominant(),
	}
}
