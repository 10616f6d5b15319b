package handlers_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/zatekoja/vibecheck/backend/internal/api/handlers"
	"github.com/zatekoja/vibecheck/backend/internal/domain/entities"
	"github.com/zatekoja/vibecheck/backend/internal/domain/providers"
)

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

func TestGeolocationHandler_Geocode(t *testing.T) {
	geo := new(MockGeolocationProvider)
	geo.On("Geocode", mock.Anything, "Lagos").Return(&providers.GeocodedAddress{
		FormattedAddress: "Lagos, Nigeria",
		City:             "Lagos",
		Coordinates:      entities.Coordinates{Latitude: 6.5244, Longitude: 3.3792},
	}, nil)
	handler := handlers.NewGeolocationHandler(geo)

	rr := httptest.NewRecorder()
	handler.Geocode(rr, httptest.NewRequest(http.MethodGet, "/api/geocode?address=Lagos", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	got := decodeBody(t, rr)
	assert.Equal(t, "Lagos, Nigeria", got["formatted_address"])
	assert.Equal(t, 6.5244, got["coordinates"].(map[string]interface{})["lat"])
}

func TestGeolocationHandler_GeocodeErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", fmt.Errorf("unknown: %w", providers.ErrLocationNotFound), http.StatusNotFound},
		{"unavailable", providers.Unavailable("google_geocoding", "api key not configured"), http.StatusServiceUnavailable},
		{"transport", providers.NewTransportError("google_geocoding", "geocode", 502, nil), http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			geo := new(MockGeolocationProvider)
			geo.On("Geocode", mock.Anything, "Atlantis").Return(nil, tt.err)
			handler := handlers.NewGeolocationHandler(geo)

			rr := httptest.NewRecorder()
			handler.Geocode(rr, httptest.NewRequest(http.MethodGet, "/api/geocode?address=Atlantis", nil))

			assert.Equal(t, tt.status, rr.Code)
		})
	}
}

func TestGeolocationHandler_ReverseGeocodeValidation(t *testing.T) {
	handler := handlers.NewGeolocationHandler(new(MockGeolocationProvider))

	for _, url := range []string{
		"/api/reverse-geocode?lat=1",
		"/api/reverse-geocode?lat=abc&lon=1",
		"/api/reverse-geocode?lat=91&lon=1",
		"/api/reverse-geocode?lat=1&lon=-181",
	} {
		rr := httptest.NewRecorder()
		handler.ReverseGeocode(rr, httptest.NewRequest(http.MethodGet, url, nil))
		assert.Equal(t, http.StatusBadRequest, rr.Code, url)
	}
}

func TestGeolocationHandler_ReverseGeocode(t *testing.T) {
	geo := new(MockGeolocationProvider)
	geo.On("ReverseGeocode", mock.Anything, 37.78, -122.41).Return(&providers.GeocodedAddress{City: "San Francisco"}, nil)
	handler := handlers.NewGeolocationHandler(geo)

	rr := httptest.NewRecorder()
	handler.ReverseGeocode(rr, httptest.NewRequest(http.MethodGet, "/api/reverse-geocode?lat=37.78&lon=-122.41", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "San Francisco", decodeBody(t, rr)["city"])
}
