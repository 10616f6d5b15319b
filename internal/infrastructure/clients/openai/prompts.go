package openai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/zatekoja/vibecheck/backend/internal/domain/entities"
)

const placeDescriptionSystemPrompt = `You write short, emotionally resonant descriptions of places for a mood-based recommendation app.
Make the place feel like the right match for the reader's current emotional state. Be warm and inviting, reference
specific details that would appeal to someone in this mood, and keep it under 50 words. Reply with the description only.`

const emotionalInsightSystemPrompt = `You write one-sentence insights about why a place suits someone's mood.
Be poetic but genuine, like a friend who really gets it. Maximum 20 words. Reply with the sentence only.`

const vibeQuestionSystemPrompt = `You craft engaging, open-ended questions for a "vibe check" feature. The question is asked to people
already at a place, tailored to a user who feels a certain mood. It must be friendly, short and inviting, must not be a
yes/no question, and must be at most 25 words.

Example for mood 'anxious' at a 'cafe':
For someone feeling a bit on edge, does the atmosphere here feel more calming or energizing?

Example for mood 'celebratory' at a 'rooftop bar':
What's the one thing about the vibe here that makes it perfect for a celebration?

Example for mood 'lonely' at a 'diner':
Does the vibe here feel more like a quiet solo spot or a place with friendly background chatter?

Reply with the question only.`

func moodAnalysisSystemPrompt() string {
	moods := entities.AllMoods()
	names := make([]string, len(moods))
	for i, m := range moods {
		names[i] = m.String()
	}
	return fmt.Sprintf(`You extract an emotional state and preferences from text. Return ONLY valid JSON with this schema:
{
  "mood": string (one of: %s),
  "intensity": integer 1-10,
  "atmosphere": string (quiet, lively, cozy, anonymous or social),
  "food_hints": string[],
  "time_preference": string (now, soon or flexible)
}
Be accurate but err on the side of gentle moods if uncertain.`, strings.Join(names, ", "))
}

// profileContext is the part of the taste profile that shapes a description.
type profileContext struct {
	Food     []string `json:"food_preferences,omitempty"`
	Music    []string `json:"music_preferences,omitempty"`
	Ambiance []string `json:"ambiance_preferences,omitempty"`
	Cultural []string `json:"cultural_interests,omitempty"`
}

func buildPlaceDescriptionUserPrompt(place entities.Place, mood entities.Mood, profile *entities.TasteProfile) string {
	placeType := place.Type
	if placeType == "" {
		placeType = "restaurant"
	}
	contextual := profileContext{
		Food:     profile.Dimension(entities.DimensionFood),
		Music:    profile.Dimension(entities.DimensionMusic),
		Ambiance: profile.Dimension(entities.DimensionAmbiance),
		Cultural: profile.Dimension(entities.DimensionCultural),
	}
	prefs, _ := json.Marshal(contextual)
	return fmt.Sprintf("Place: %s\nType: %s\nUser mood: %s\nCultural preferences: %s\n", place.Name, placeType, mood, prefs)
}

func buildEmotionalInsightUserPrompt(mood entities.Mood, place entities.Place, profile *entities.TasteProfile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Mood: %s\nPlace: %s (%s)\n", mood, place.Name, place.Type)
	if len(place.Tags) > 0 {
		fmt.Fprintf(&b, "Tags: %s\n", strings.Join(place.Tags, ", "))
	}
	if clusters := profile.Dimension(entities.DimensionPersonality); len(clusters) > 0 {
		fmt.Fprintf(&b, "Taste clusters: %s\n", strings.Join(clusters, ", "))
	}
	return b.String()
}

func buildVibeQuestionUserPrompt(mood entities.Mood, placeType string) string {
	return fmt.Sprintf("User's mood: %s\nType of place: %s\n", mood, placeType)
}

type moodAnalysisPayload struct {
	Mood           string   `json:"mood"`
	Intensity      int      `json:"intensity"`
	Atmosphere     string   `json:"atmosphere"`
	FoodHints      []string `json:"food_hints"`
	TimePreference string   `json:"time_preference"`
}

func parseMoodAnalysisPayload(data []byte) (*entities.MoodAnalysis, error) {
	var payload moodAnalysisPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse mood analysis payload: %w", err)
	}
	if strings.TrimSpace(payload.Mood) == "" {
		return nil, fmt.Errorf("mood analysis payload has no mood")
	}
	return &entities.MoodAnalysis{
		Mood:           entities.Mood(payload.Mood),
		Intensity:      payload.Intensity,
		Atmosphere:     payload.Atmosphere,
		FoodHints:      payload.FoodHints,
		TimePreference: payload.TimePreference,
	}, nil
}
