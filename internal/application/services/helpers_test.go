package services

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/zatekoja/vibecheck/backend/internal/domain/entities"
	"github.com/zatekoja/vibecheck/backend/internal/domain/providers"
)

// fixedRandom returns the same draw every time; IntN picks the clamped index.
type fixedRandom struct {
	f   float64
	idx int
}

func (r fixedRandom) Float64() float64 { return r.f }

func (r fixedRandom) IntN(n int) int {
	if r.idx >= n {
		return n - 1
	}
	return r.idx
}

type searchFunc func(ctx context.Context, keyword, location string) ([]entities.PlaceCandidate, error)

func (f searchFunc) SearchPlaces(ctx context.Context, keyword, location string) ([]entities.PlaceCandidate, error) {
	return f(ctx, keyword, location)
}

type detailsFunc func(ctx context.Context, c entities.PlaceCandidate) (*entities.Place, error)

func (f detailsFunc) EnrichPlace(ctx context.Context, c entities.PlaceCandidate) (*entities.Place, error) {
	return f(ctx, c)
}

type nearbyFunc func(ctx context.Context, center entities.Coordinates, radius int) ([]entities.PlaceCandidate, error)

func (f nearbyFunc) NearbyPlaces(ctx context.Context, center entities.Coordinates, radius int) ([]entities.PlaceCandidate, error) {
	return f(ctx, center, radius)
}

type MockTextGenerator struct {
	mock.Mock
}

func (m *MockTextGenerator) DescribePlace(ctx context.Context, place entities.Place, mood entities.Mood, profile *entities.TasteProfile) (string, error) {
	args := m.Called(ctx, place, mood, profile)
	return args.String(0), args.Error(1)
}

func (m *MockTextGenerator) EmotionalInsight(ctx context.Context, mood entities.Mood, place entities.Place, profile *entities.TasteProfile) (string, error) {
	args := m.Called(ctx, mood, place, profile)
	return args.String(0), args.Error(1)
}

func (m *MockTextGenerator) VibeQuestion(ctx context.Context, mood entities.Mood, placeType string) (string, error) {
	args := m.Called(ctx, mood, placeType)
	return args.String(0), args.Error(1)
}

func (m *MockTextGenerator) AnalyzeMood(ctx context.Context, text string) (*entities.MoodAnalysis, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.MoodAnalysis), args.Error(1)
}

type MockTasteProfileProvider struct {
	mock.Mock
}

func (m *MockTasteProfileProvider) BaselineProfile(ctx context.Context) (*entities.TasteProfile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.TasteProfile), args.Error(1)
}

type MockGeolocationProvider struct {
	mock.Mock
}

func (m *MockGeolocationProvider) Geocode(ctx context.Context, address string) (*providers.GeocodedAddress, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*providers.GeocodedAddress), args.Error(1)
}

func (m *MockGeolocationProvider) ReverseGeocode(ctx context.Context, lat, lon float64) (*providers.GeocodedAddress, error) {
	args := m.Called(ctx, lat, lon)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*providers.GeocodedAddress), args.Error(1)
}

func candidate(id, name, category string, rating float64) entities.PlaceCandidate {
	return entities.PlaceCandidate{
		ExternalID: id,
		Name:       name,
		Categories: []string{category},
		Rating:     rating,
		Address:    "1 Test St",
	}
}
