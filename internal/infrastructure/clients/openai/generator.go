package openai

import (
	"context"
	"strings"

	"github.com/zatekoja/vibecheck/backend/internal/domain/entities"
)

// DescribePlace writes a short mood-matched description of place.
func (c *Client) DescribePlace(ctx context.Context, place entities.Place, mood entities.Mood, profile *entities.TasteProfile) (string, error) {
	text, err := c.complete(ctx, request{
		op:          "describe_place",
		system:      placeDescriptionSystemPrompt,
		user:        buildPlaceDescriptionUserPrompt(place, mood, profile),
		temperature: 0.8,
		maxTokens:   160,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// EmotionalInsight writes one sentence on why place suits mood.
func (c *Client) EmotionalInsight(ctx context.Context, mood entities.Mood, place entities.Place, profile *entities.TasteProfile) (string, error) {
	text, err := c.complete(ctx, request{
		op:          "emotional_insight",
		system:      emotionalInsightSystemPrompt,
		user:        buildEmotionalInsightUserPrompt(mood, place, profile),
		temperature: 0.8,
		maxTokens:   80,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// VibeQuestion writes an open question to ask people at a place of placeType.
func (c *Client) VibeQuestion(ctx context.Context, mood entities.Mood, placeType string) (string, error) {
	text, err := c.complete(ctx, request{
		op:          "vibe_question",
		system:      vibeQuestionSystemPrompt,
		user:        buildVibeQuestionUserPrompt(mood, placeType),
		temperature: 0.8,
		maxTokens:   80,
	})
	if err != nil {
		return "", err
	}
	return strings.Trim(strings.TrimSpace(text), `"`), nil
}

// AnalyzeMood reads a mood analysis out of free text. The mood is returned as written
// by the model; callers normalize it.
func (c *Client) AnalyzeMood(ctx context.Context, text string) (*entities.MoodAnalysis, error) {
	reply, err := c.complete(ctx, request{
		op:          "analyze_mood",
		system:      moodAnalysisSystemPrompt(),
		user:        "User text: " + strings.TrimSpace(text),
		temperature: 0.3,
		maxTokens:   300,
	})
	if err != nil {
		return nil, err
	}
	return parseMoodAnalysisPayload([]byte(stripCodeFence(reply)))
}
