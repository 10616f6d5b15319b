package services

import (
	"context"
	"errors"

	"github.com/zatekoja/vibecheck/backend/internal/domain/entities"
	"github.com/zatekoja/vibecheck/backend/internal/domain/providers"
	"github.com/zatekoja/vibecheck/backend/internal/infrastructure/observability"
)

// TasteProfileResolver merges user preference fragments onto a baseline profile.
type TasteProfileResolver struct {
	baseline providers.TasteProfileProvider
}

// NewTasteProfileResolver creates a resolver. A nil provider means the static default baseline.
func NewTasteProfileResolver(baseline providers.TasteProfileProvider) *TasteProfileResolver {
	return &TasteProfileResolver{baseline: baseline}
}

// Resolve returns dedupe(baseline ++ prefs) for every dimension, keeping first occurrences.
func (r *TasteProfileResolver) Resolve(ctx context.Context, prefs *entities.UserPreferences) *entities.TasteProfile {
	return MergeTasteProfile(r.Baseline(ctx), prefs)
}

// Baseline asks the provider for the baseline and degrades to the static default.
func (r *TasteProfileResolver) Baseline(ctx context.Context) *entities.TasteProfile {
	if r.baseline == nil {
		return entities.DefaultTasteProfile()
	}

	profile, err := r.baseline.BaselineProfile(ctx)
	if err == nil && profile != nil {
		return profile.Clone()
	}

	logger := observability.LoggerFromContext(ctx)
	switch {
	case err == nil:
		logger.Debug().Msg("Taste provider returned no profile, using default baseline")
	case errors.Is(err, providers.ErrProviderUnavailable):
		logger.Debug().Err(err).Msg("Taste provider unavailable, using default baseline")
	default:
		logger.Warn().Err(err).Msg("Taste provider failed, using default baseline")
	}
	return entities.DefaultTasteProfile()
}

// MergeTasteProfile is the pure merge used by Resolve. baseline is not modified.
func MergeTasteProfile(baseline *entities.TasteProfile, prefs *entities.UserPreferences) *entities.TasteProfile {
	merged := baseline.Clone()
	if merged == nil {
		merged = &entities.TasteProfile{}
	}
	if prefs == nil {
		return merged
	}
	for _, dim := range entities.TasteDimensions {
		merged.SetDimension(dim, dedupe(merged.Dimension(dim), prefs.Dimension(dim)))
	}
	return merged
}

func dedupe(lists ...[]string) []string {
	total := 0
	for _, l := range lists {
		total += len(l)
	}
	out := make([]string, 0, total)
	seen := make(map[string]struct{}, total)
	for _, l := range lists {
		for _, item := range l {
			if _, ok := seen[item]; ok {
				continue
			}
			seen[item] = struct{}{}
			out = append(out, item)
		}
	}
	return out
}
