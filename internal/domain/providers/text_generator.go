package providers

import (
	"context"

	"github.com/zatekoja/vibecheck/backend/internal/domain/entities"
)

// TextGenerator produces the free-text parts of a recommendation.
// Every method may fail; callers substitute fixed fallback text.
type TextGenerator interface {
	DescribePlace(ctx context.Context, place entities.Place, mood entities.Mood, profile *entities.TasteProfile) (string, error)
	EmotionalInsight(ctx context.Context, mood entities.Mood, place entities.Place, profile *entities.TasteProfile) (string, error)
	VibeQuestion(ctx context.Context, mood entities.Mood, placeType string) (string, error)
	AnalyzeMood(ctx context.Context, text string) (*entities.MoodAnalysis, error)
}
