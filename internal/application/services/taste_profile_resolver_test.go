package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/zatekoja/vibecheck/backend/internal/domain/entities"
	"github.com/zatekoja/vibecheck/backend/internal/domain/providers"
)

func TestMergeTasteProfile_AppendsAndDedupes(t *testing.T) {
	baseline := &entities.TasteProfile{
		Food:  []string{"ramen", "coffee_shops"},
		Music: []string{"jazz"},
	}
	prefs := &entities.UserPreferences{
		FavoriteCuisines: []string{"tacos", "ramen", "tacos", "pho"},
		MusicPreferences: []string{"jazz", "soul"},
		Personality:      []string{"night_owl"},
	}

	merged := MergeTasteProfile(baseline, prefs)

	assert.Equal(t, []string{"ramen", "coffee_shops", "tacos", "pho"}, merged.Food)
	assert.Equal(t, []string{"jazz", "soul"}, merged.Music)
	assert.Equal(t, []string{"night_owl"}, merged.Personality)
	assert.Equal(t, []string{"ramen", "coffee_shops"}, baseline.Food, "baseline is not modified")
}

func TestMergeTasteProfile_NilPrefsReturnsBaselineCopy(t *testing.T) {
	baseline := entities.DefaultTasteProfile()

	merged := MergeTasteProfile(baseline, nil)

	assert.Equal(t, baseline, merged)
	merged.Food[0] = "changed"
	assert.Equal(t, "ramen", baseline.Food[0])
}

func TestTasteProfileResolver_UsesProviderBaseline(t *testing.T) {
	provider := new(MockTasteProfileProvider)
	provider.On("BaselineProfile", mock.Anything).Return(&entities.TasteProfile{Cultural: []string{"opera"}}, nil)

	resolver := NewTasteProfileResolver(provider)
	profile := resolver.Resolve(context.Background(), &entities.UserPreferences{CulturalInterests: []string{"street art"}})

	assert.Equal(t, []string{"opera", "street art"}, profile.Cultural)
	provider.AssertExpectations(t)
}

func TestTasteProfileResolver_ProviderFailureUsesDefault(t *testing.T) {
	for _, err := range []error{
		providers.ErrProviderUnavailable,
		providers.NewTransportError("qloo", "insights", 500, nil),
	} {
		provider := new(MockTasteProfileProvider)
		provider.On("BaselineProfile", mock.Anything).Return(nil, err)

		profile := NewTasteProfileResolver(provider).Resolve(context.Background(), nil)

		assert.Equal(t, entities.DefaultTasteProfile(), profile)
	}
}

func TestTasteProfileResolver_NilProvider(t *testing.T) {
	profile := NewTasteProfileResolver(nil).Resolve(context.Background(), nil)
	assert.Equal(t, entities.DefaultTasteProfile(), profile)
}
