package services

import (
	"strings"

	"github.com/zatekoja/vibecheck/backend/internal/domain/entities"
)

// Catalog resolves genre and activity tags to concrete suggestions.
type Catalog struct {
	music      map[string][]entities.MusicTrack
	activities map[string]entities.Activity
}

// NewCatalog returns the built-in static catalog.
func NewCatalog() *Catalog {
	return &Catalog{music: musicCatalog, activities: activityCatalog}
}

// Tracks returns the tracks of each genre in order. Unknown genres are skipped.
func (c *Catalog) Tracks(genres []string) []entities.MusicTrack {
	out := make([]entities.MusicTrack, 0, len(genres)*2)
	seen := make(map[string]struct{})
	for _, genre := range genres {
		for _, track := range c.music[strings.ToLower(genre)] {
			key := track.Artist + "\x00" + track.Title
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, track)
		}
	}
	return out
}

// Activities returns one activity per known tag, in tag order.
func (c *Catalog) Activities(tags []string) []entities.Activity {
	out := make([]entities.Activity, 0, len(tags))
	seen := make(map[string]struct{})
	for _, tag := range tags {
		key := strings.ToLower(tag)
		activity, ok := c.activities[key]
		if !ok {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, activity)
	}
	return out
}

// HasGenre reports whether genre has at least one track.
func (c *Catalog) HasGenre(genre string) bool {
	return len(c.music[strings.ToLower(genre)]) > 0
}

// HasActivity reports whether tag resolves to an activity.
func (c *Catalog) HasActivity(tag string) bool {
	_, ok := c.activities[strings.ToLower(tag)]
	return ok
}
