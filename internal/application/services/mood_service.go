package services

import (
	"context"
	"strings"

	"github.com/zatekoja/vibecheck/backend/internal/domain/entities"
	"github.com/zatekoja/vibecheck/backend/internal/domain/providers"
)

// MoodService lists moods and reads a mood out of free text.
type MoodService struct {
	taxonomy *MoodTaxonomy
	text     providers.TextGenerator
}

// NewMoodService creates a new mood service. text may be nil.
func NewMoodService(taxonomy *MoodTaxonomy, text providers.TextGenerator) *MoodService {
	if taxonomy == nil {
		taxonomy = NewMoodTaxonomy()
	}
	return &MoodService{taxonomy: taxonomy, text: text}
}

// ListMoods returns every supported mood identifier
func (s *MoodService) ListMoods() []entities.Mood {
	return s.taxonomy.Moods()
}

// AnalyzeMood extracts a mood reading from text, degrading to a fixed analysis.
// The returned mood is always a taxonomy member and intensity is clamped to [1,10].
func (s *MoodService) AnalyzeMood(ctx context.Context, text string) entities.MoodAnalysis {
	if s.text == nil || strings.TrimSpace(text) == "" {
		return entities.FallbackMoodAnalysis()
	}

	analysis, err := s.text.AnalyzeMood(ctx, text)
	if err != nil || analysis == nil {
		if err != nil {
			logProviderError(ctx, "analyze_mood", err, nil)
		}
		return entities.FallbackMoodAnalysis()
	}

	out := *analysis
	out.Mood = s.taxonomy.Normalize(ctx, strings.ToLower(strings.TrimSpace(string(out.Mood))))
	out.Intensity = min(10, max(1, out.Intensity))
	if out.FoodHints == nil {
		out.FoodHints = []string{}
	}
	return out
}
