package providers

import (
	"context"

	"github.com/zatekoja/vibecheck/backend/internal/domain/entities"
)

// GeolocationProvider defines the interface for geolocation services
type GeolocationProvider interface {
	// Geocode converts an address to a geocoded address.
	// Returns ErrLocationNotFound when the address does not resolve.
	Geocode(ctx context.Context, address string) (*GeocodedAddress, error)

	// ReverseGeocode converts coordinates to an address
	ReverseGeocode(ctx context.Context, lat, lon float64) (*GeocodedAddress, error)
}

// GeocodedAddress represents a geocoded address
type GeocodedAddress struct {
	FormattedAddress string               `json:"formatted_address"`
	Street           string               `json:"street,omitempty"`
	City             string               `json:"city,omitempty"`
	State            string               `json:"state,omitempty"`
	ZipCode          string               `json:"zip_code,omitempty"`
	Country          string               `json:"country,omitempty"`
	Coordinates      entities.Coordinates `json:"coordinates"`
}
