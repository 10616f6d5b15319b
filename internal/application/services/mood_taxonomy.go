package services

import (
	"context"

	"github.com/zatekoja/vibecheck/backend/internal/domain/entities"
	"github.com/zatekoja/vibecheck/backend/internal/infrastructure/observability"
	"go.opentelemetry.io/otel/attribute"
)

// MoodTaxonomy validates raw mood identifiers against the closed set.
type MoodTaxonomy struct{}

// NewMoodTaxonomy creates a new mood taxonomy
func NewMoodTaxonomy() *MoodTaxonomy {
	return &MoodTaxonomy{}
}

// Normalize returns the matching mood, or DefaultMood for anything unknown.
// Substitutions are logged and counted so they never look like validation errors.
func (t *MoodTaxonomy) Normalize(ctx context.Context, raw string) entities.Mood {
	if mood, ok := entities.ParseMood(raw); ok {
		return mood
	}

	observability.LoggerFromContext(ctx).Warn().
		Str("raw_mood", raw).
		Str("default_mood", entities.DefaultMood.String()).
		Bool("mood_substituted", true).
		Msg("Unknown mood substituted with default")
	addCount(ctx, &unknownMoodCounter, attribute.String("mood.raw", truncateLabel(raw)))

	return entities.DefaultMood
}

// Moods lists every supported mood.
func (t *MoodTaxonomy) Moods() []entities.Mood {
	return entities.AllMoods()
}

func truncateLabel(s string) string {
	const limit = 32
	if len(s) > limit {
		return s[:limit]
	}
	return s
}
