package entities

// Domain names a cross-domain pairing category.
type Domain string

const (
	DomainMusic      Domain = "music"
	DomainActivities Domain = "activities"
)

// MusicTrack is a catalog track paired with a mood or place.
type MusicTrack struct {
	Title   string `json:"title"`
	Artist  string `json:"artist"`
	Genre   string `json:"genre"`
	Mood    string `json:"mood,omitempty"`
	Preview string `json:"preview_url,omitempty"`
}

// Activity is a catalog activity suggestion.
type Activity struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	Category    string `json:"category"`
}

// CrossDomainBundle pairs a place with music and activities.
// Only the requested domains are populated.
type CrossDomainBundle struct {
	Music      []MusicTrack `json:"music,omitempty"`
	Activities []Activity   `json:"activities,omitempty"`
}

// RecommendationBundle is the aggregate produced for one mood request.
type RecommendationBundle struct {
	Places      []Place           `json:"places"`
	Music       []MusicTrack      `json:"music"`
	Activities  []Activity        `json:"activities"`
	CrossDomain CrossDomainBundle `json:"cross_domain"`
}

// RecommendationSource reports whether places came from live providers.
type RecommendationSource string

const (
	SourceLive     RecommendationSource = "live"
	SourceFallback RecommendationSource = "fallback"
)

// RecommendationResult is the public response of GetRecommendations.
type RecommendationResult struct {
	Mood             Mood                 `json:"mood"`
	Recommendations  RecommendationBundle `json:"recommendations"`
	EmotionalInsight string               `json:"emotional_insight"`
	Correlations     CorrelationSet       `json:"correlations"`
	TasteProfile     *TasteProfile        `json:"taste_profile"`
	Location         string               `json:"location"`
	Source           RecommendationSource `json:"source"`
}

// PlaceMusic is the music recommendation for a single place.
type PlaceMusic struct {
	PlaceSpecificMusic []MusicTrack `json:"place_specific_music"`
	MoodMusic          []MusicTrack `json:"mood_music"`
	Place              Place        `json:"place"`
}
