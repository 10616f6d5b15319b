package geolocation

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/zatekoja/vibecheck/backend/internal/domain/entities"
	"github.com/zatekoja/vibecheck/backend/internal/domain/providers"
)

type knownCity struct {
	name    string
	state   string
	country string
	coords  entities.Coordinates
}

var knownCities = []knownCity{
	{"San Francisco", "CA", "USA", entities.Coordinates{Latitude: 37.7749, Longitude: -122.4194}},
	{"New York", "NY", "USA", entities.Coordinates{Latitude: 40.7128, Longitude: -74.0060}},
	{"Los Angeles", "CA", "USA", entities.Coordinates{Latitude: 34.0522, Longitude: -118.2437}},
	{"Chicago", "IL", "USA", entities.Coordinates{Latitude: 41.8781, Longitude: -87.6298}},
	{"Portland", "OR", "USA", entities.Coordinates{Latitude: 45.5152, Longitude: -122.6784}},
	{"Seattle", "WA", "USA", entities.Coordinates{Latitude: 47.6062, Longitude: -122.3321}},
	{"Austin", "TX", "USA", entities.Coordinates{Latitude: 30.2672, Longitude: -97.7431}},
	{"London", "", "UK", entities.Coordinates{Latitude: 51.5074, Longitude: -0.1278}},
	{"Tokyo", "", "Japan", entities.Coordinates{Latitude: 35.6762, Longitude: 139.6503}},
	{"Lagos", "", "Nigeria", entities.Coordinates{Latitude: 6.5244, Longitude: 3.3792}},
}

// MockGeolocationProvider resolves a fixed set of cities without network access.
type MockGeolocationProvider struct{}

// NewMockGeolocationProvider creates a new mock geolocation provider
func NewMockGeolocationProvider() *MockGeolocationProvider {
	return &MockGeolocationProvider{}
}

// Geocode matches the address against the known cities, case-insensitively.
func (m *MockGeolocationProvider) Geocode(ctx context.Context, address string) (*providers.GeocodedAddress, error) {
	needle := strings.ToLower(strings.TrimSpace(address))
	if needle == "" {
		return nil, fmt.Errorf("address is required: %w", providers.ErrLocationNotFound)
	}
	for _, city := range knownCities {
		if strings.Contains(needle, strings.ToLower(city.name)) {
			return city.address(), nil
		}
	}
	return nil, fmt.Errorf("unknown address %q: %w", address, providers.ErrLocationNotFound)
}

// ReverseGeocode returns the nearest known city within 50 km.
func (m *MockGeolocationProvider) ReverseGeocode(ctx context.Context, lat, lon float64) (*providers.GeocodedAddress, error) {
	const maxDistanceKm = 50.0

	point := entities.Coordinates{Latitude: lat, Longitude: lon}
	best, bestDist := -1, math.MaxFloat64
	for i, city := range knownCities {
		if d := haversineKm(point, city.coords); d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 || bestDist > maxDistanceKm {
		return nil, fmt.Errorf("no city near %f,%f: %w", lat, lon, providers.ErrLocationNotFound)
	}

	addr := knownCities[best].address()
	addr.Coordinates = point
	return addr, nil
}

func (c knownCity) address() *providers.GeocodedAddress {
	formatted := c.name
	if c.state != "" {
		formatted += ", " + c.state
	}
	formatted += ", " + c.country
	return &providers.GeocodedAddress{
		FormattedAddress: formatted,
		City:             c.name,
		State:            c.state,
		Country:          c.country,
		Coordinates:      c.coords,
	}
}

// haversineKm calculates the distance between two points using Haversine formula
func haversineKm(from, to entities.Coordinates) float64 {
	const earthRadiusKm = 6371.0

	lat1Rad := toRadians(from.Latitude)
	lat2Rad := toRadians(to.Latitude)
	deltaLat := toRadians(to.Latitude - from.Latitude)
	deltaLon := toRadians(to.Longitude - from.Longitude)

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)

	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
