package providers

import (
	"context"

	"github.com/zatekoja/vibecheck/backend/internal/domain/entities"
)

// PlaceSearchProvider finds candidate places for a keyword near a location.
type PlaceSearchProvider interface {
	// SearchPlaces returns an empty slice, not an error, when nothing matches.
	SearchPlaces(ctx context.Context, keyword, location string) ([]entities.PlaceCandidate, error)
}

// PlaceDetailsProvider turns a raw candidate into a fully described place.
type PlaceDetailsProvider interface {
	EnrichPlace(ctx context.Context, candidate entities.PlaceCandidate) (*entities.Place, error)
}

// NearbyPlacesProvider lists places around a point.
type NearbyPlacesProvider interface {
	NearbyPlaces(ctx context.Context, center entities.Coordinates, radiusMeters int) ([]entities.PlaceCandidate, error)
}
