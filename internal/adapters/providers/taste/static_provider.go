package taste

import (
	"context"

	"github.com/zatekoja/vibecheck/backend/internal/domain/entities"
)

// StaticProvider serves a fixed baseline profile.
type StaticProvider struct {
	profile *entities.TasteProfile
}

// NewStaticProvider serves profile, or the default profile when nil.
func NewStaticProvider(profile *entities.TasteProfile) *StaticProvider {
	if profile == nil {
		profile = entities.DefaultTasteProfile()
	}
	return &StaticProvider{profile: profile.Clone()}
}

// BaselineProfile returns a copy of the configured profile.
func (p *StaticProvider) BaselineProfile(ctx context.Context) (*entities.TasteProfile, error) {
	return p.profile.Clone(), nil
}
