package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zatekoja/vibecheck/backend/internal/domain/entities"
)

func TestCatalog_ResolvesEveryTableTag(t *testing.T) {
	catalog := NewCatalog()
	for _, version := range []TableVersion{TableCurated, TableLegacy} {
		table, ok := tableFor(version)
		assert.True(t, ok)
		for mood, set := range table {
			for _, genre := range set.MusicGenres {
				assert.True(t, catalog.HasGenre(genre), "%s: genre %q", mood, genre)
			}
			for _, tag := range set.Activities {
				assert.True(t, catalog.HasActivity(tag), "%s: activity %q", mood, tag)
			}
		}
	}
}

func TestCatalog_ResolvesEveryCrossDomainRule(t *testing.T) {
	catalog := NewCatalog()
	for _, rule := range crossDomainRules {
		for _, genre := range rule.music {
			assert.True(t, catalog.HasGenre(genre), "%s: genre %q", rule.keyword, genre)
		}
		for _, tag := range rule.activities {
			assert.True(t, catalog.HasActivity(tag), "%s: activity %q", rule.keyword, tag)
		}
	}
}

func TestCatalog_TracksKeepGenreOrderAndSkipUnknown(t *testing.T) {
	tracks := NewCatalog().Tracks([]string{"jazz", "not-a-genre", "Blues", "jazz"})

	assert.Len(t, tracks, 4)
	assert.Equal(t, "jazz", tracks[0].Genre)
	assert.Equal(t, "jazz", tracks[1].Genre)
	assert.Equal(t, "blues", tracks[2].Genre)
}

func TestCatalog_ActivitiesDeduplicates(t *testing.T) {
	activities := NewCatalog().Activities([]string{"yoga", "Yoga", "unknown", "picnic"})

	assert.Equal(t, []entities.Activity{activityCatalog["yoga"], activityCatalog["picnic"]}, activities)
}
