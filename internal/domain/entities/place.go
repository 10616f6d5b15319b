package entities

// Coordinates represents geographical coordinates
type Coordinates struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// PlaceCandidate is a raw, transient place-search result.
type PlaceCandidate struct {
	ExternalID    string            `json:"external_id"`
	Name          string            `json:"name"`
	Categories    []string          `json:"categories"`
	Rating        float64           `json:"rating"`
	Address       string            `json:"address"`
	Coordinates   *Coordinates      `json:"coordinates,omitempty"`
	RawAttributes map[string]string `json:"raw_attributes,omitempty"`
}

// PrimaryCategory returns the first category or "" when none is set.
func (c PlaceCandidate) PrimaryCategory() string {
	if len(c.Categories) == 0 {
		return ""
	}
	return c.Categories[0]
}

// Place is an enriched, de-duplicated candidate returned to the caller.
// Places are built per request and never cached.
type Place struct {
	ID                   string        `json:"id"`
	Name                 string        `json:"name"`
	Type                 string        `json:"type"`
	Address              string        `json:"address"`
	Rating               float64       `json:"rating"`
	Tags                 []string      `json:"tags"`
	ActiveUsersNearby    int           `json:"active_users_nearby"`
	Thumbnail            string        `json:"thumbnail"`
	Coordinates          *Coordinates  `json:"coordinates,omitempty"`
	EmotionalDescription string        `json:"emotional_description,omitempty"`
	Emotions             EmotionVector `json:"emotions,omitempty"`
	DominantEmotion      Emotion       `json:"dominant_emotion,omitempty"`
}

// MaxPlaceTags bounds Place.Tags.
const MaxPlaceTags = 3

// PlaceRatingAndCategory is the input of emotion synthesis.
type PlaceRatingAndCategory struct {
	Rating   float64
	Category string
}

// RatingAndCategory projects the place onto the emotion-synthesis input.
func (p Place) RatingAndCategory() PlaceRatingAndCategory {
	return PlaceRatingAndCategory{Rating: p.Rating, Category: p.Type}
}

// HeatmapEntry is one place on the emotion heatmap.
type HeatmapEntry struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Coordinates     Coordinates   `json:"coordinates"`
	Emotions        EmotionVector `json:"emotions"`
	DominantEmotion Emotion       `json:"dominant_emotion"`
	Rating          float64       `json:"rating"`
	CategoryTags    []string      `json:"category_tags"`
}

// PlaceEmotions is the emotion breakdown for a single place.
type PlaceEmotions struct {
	PlaceID         string        `json:"place_id"`
	Emotions        EmotionVector `json:"emotions"`
	DominantEmotion Emotion       `json:"dominant_emotion"`
}
