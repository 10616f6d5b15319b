package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/zatekoja/vibecheck/backend/internal/domain/entities"
	"github.com/zatekoja/vibecheck/backend/internal/domain/providers"
)

func TestNewCacheWarmingService_DropsBlankAndDuplicateLocations(t *testing.T) {
	svc := NewCacheWarmingService(nil, nil, " Chicago ", "", "chicago", "Lagos", "   ")
	assert.Equal(t, []string{"Chicago", "Lagos"}, svc.locations)
}

func TestCacheWarmingService_WarmCache(t *testing.T) {
	geo := new(MockGeolocationProvider)
	geo.On("Geocode", mock.Anything, "Chicago").Return(&providers.GeocodedAddress{FormattedAddress: "Chicago, IL"}, nil).Once()
	geo.On("Geocode", mock.Anything, "Atlantis").Return(nil, providers.ErrLocationNotFound).Once()
	geo.On("Geocode", mock.Anything, "Tokyo").Return(&providers.GeocodedAddress{FormattedAddress: "Tokyo, Japan"}, nil).Once()

	baseline := new(MockTasteProfileProvider)
	baseline.On("BaselineProfile", mock.Anything).Return(&entities.TasteProfile{Music: []string{"jazz"}}, nil).Once()

	svc := NewCacheWarmingService(geo, NewTasteProfileResolver(baseline), "Chicago", "Atlantis", "Tokyo", "CHICAGO")
	warmed := svc.WarmCache(context.Background())

	assert.Equal(t, 2, warmed)
	geo.AssertNumberOfCalls(t, "Geocode", 3)
	geo.AssertExpectations(t)
	baseline.AssertExpectations(t)
}

func TestCacheWarmingService_NoProviders(t *testing.T) {
	svc := NewCacheWarmingService(nil, nil, "Chicago")
	assert.Zero(t, svc.WarmCache(context.Background()))
}
