package entities

// TasteDimension names one of the preference lists in a TasteProfile.
type TasteDimension string

const (
	DimensionFood        TasteDimension = "food"
	DimensionMusic       TasteDimension = "music"
	DimensionActivity    TasteDimension = "activity"
	DimensionAmbiance    TasteDimension = "ambiance"
	DimensionCultural    TasteDimension = "cultural"
	DimensionPersonality TasteDimension = "personality"
)

// TasteDimensions lists the dimensions in a fixed order.
var TasteDimensions = []TasteDimension{
	DimensionFood, DimensionMusic, DimensionActivity, DimensionAmbiance, DimensionCultural, DimensionPersonality,
}

// TasteProfile holds ordered preference tags per dimension.
// Order matters: prompts and tests are generated from it.
type TasteProfile struct {
	Food        []string `json:"food_preferences"`
	Music       []string `json:"music_preferences"`
	Activity    []string `json:"activity_preferences"`
	Ambiance    []string `json:"ambiance_preferences"`
	Cultural    []string `json:"cultural_interests"`
	Personality []string `json:"taste_clusters"`
}

// UserPreferences are partial, user-supplied fragments merged over the baseline.
type UserPreferences struct {
	FavoriteCuisines    []string `json:"favorite_cuisines,omitempty"`
	MusicPreferences    []string `json:"music_preferences,omitempty"`
	ActivityPreferences []string `json:"activity_preferences,omitempty"`
	AmbiancePreferences []string `json:"ambiance_preferences,omitempty"`
	CulturalInterests   []string `json:"cultural_interests,omitempty"`
	Personality         []string `json:"personality,omitempty"`
}

// Dimension returns the tag list for d.
func (p *TasteProfile) Dimension(d TasteDimension) []string {
	if p == nil {
		return nil
	}
	switch d {
	case DimensionFood:
		return p.Food
	case DimensionMusic:
		return p.Music
	case DimensionActivity:
		return p.Activity
	case DimensionAmbiance:
		return p.Ambiance
	case DimensionCultural:
		return p.Cultural
	case DimensionPersonality:
		return p.Personality
	}
	return nil
}

// SetDimension replaces the tag list for d.
func (p *TasteProfile) SetDimension(d TasteDimension, tags []string) {
	switch d {
	case DimensionFood:
		p.Food = tags
	case DimensionMusic:
		p.Music = tags
	case DimensionActivity:
		p.Activity = tags
	case DimensionAmbiance:
		p.Ambiance = tags
	case DimensionCultural:
		p.Cultural = tags
	case DimensionPersonality:
		p.Personality = tags
	}
}

// Dimension returns the user-supplied tags for d.
func (u *UserPreferences) Dimension(d TasteDimension) []string {
	if u == nil {
		return nil
	}
	switch d {
	case DimensionFood:
		return u.FavoriteCuisines
	case DimensionMusic:
		return u.MusicPreferences
	case DimensionActivity:
		return u.ActivityPreferences
	case DimensionAmbiance:
		return u.AmbiancePreferences
	case DimensionCultural:
		return u.CulturalInterests
	case DimensionPersonality:
		return u.Personality
	}
	return nil
}

// Clone returns a deep copy.
func (p *TasteProfile) Clone() *TasteProfile {
	if p == nil {
		return nil
	}
	out := &TasteProfile{}
	for _, d := range TasteDimensions {
		src := p.Dimension(d)
		if src == nil {
			continue
		}
		dst := make([]string, len(src))
		copy(dst, src)
		out.SetDimension(d, dst)
	}
	return out
}

// DefaultTasteProfile is the static baseline used when no taste provider answers.
func DefaultTasteProfile() *TasteProfile {
	return &TasteProfile{
		Food:        []string{"ramen", "coffee_shops", "ethnic_comfort", "bakeries"},
		Music:       []string{"indie folk", "lo-fi", "jazz"},
		Activity:    []string{"walking", "reading", "live music"},
		Ambiance:    []string{"quiet", "dim_lighting", "background_music", "cozy"},
		Cultural:    []string{"live music", "art galleries", "independent films"},
		Personality: []string{"indie_contemplative", "comfort_seeking", "urban_explorer"},
	}
}
