package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/vibecheck/backend/internal/domain/entities"
	"github.com/zatekoja/vibecheck/backend/internal/domain/providers"
	"github.com/zatekoja/vibecheck/backend/pkg/config"
)

func reply(text string) string {
	body, _ := json.Marshal(responseEnvelope{Output: []responseOutput{{Content: []responseContent{{Type: "output_text", Text: text}}}}})
	return string(body)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClientWithOptions(&config.OpenAIConfig{APIKey: "sk-test", RateLimitRPM: -1}, server.URL, server.Client())
	require.NoError(t, err)
	return client
}

func TestNewClient_RequiresKey(t *testing.T) {
	_, err := NewClient(&config.OpenAIConfig{})
	assert.ErrorIs(t, err, providers.ErrProviderUnavailable)

	_, err = NewClient(nil)
	assert.ErrorIs(t, err, providers.ErrProviderUnavailable)
}

func TestClient_DescribePlace(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/responses", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var body struct {
			Model string              `json:"model"`
			Input []map[string]string `json:"input"`
		}
		if !assert.NoError(t, json.NewDecoder(r.Body).Decode(&body)) || !assert.Len(t, body.Input, 2) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		assert.Equal(t, defaultModel, body.Model)
		assert.Contains(t, body.Input[1]["content"], "Place: Steep & Co")
		assert.Contains(t, body.Input[1]["content"], "User mood: anxious")
		assert.Contains(t, body.Input[1]["content"], "ramen")

		_, _ = w.Write([]byte(reply("  Soft light, slow tea.  ")))
	})

	text, err := client.DescribePlace(context.Background(),
		entities.Place{Name: "Steep & Co", Type: "cafe"}, entities.MoodAnxious, entities.DefaultTasteProfile())
	require.NoError(t, err)
	assert.Equal(t, "Soft light, slow tea.", text)
}

func TestClient_VibeQuestionStripsQuotes(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(reply(`"What makes the vibe here perfect tonight?"`)))
	})

	q, err := client.VibeQuestion(context.Background(), entities.MoodCelebratory, "rooftop bar")
	require.NoError(t, err)
	assert.Equal(t, "What makes the vibe here perfect tonight?", q)
}

func TestClient_AnalyzeMood(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(reply("```json\n{\"mood\": \"stressed\", \"intensity\": 7, \"atmosphere\": \"quiet\", \"food_hints\": [\"soup\"], \"time_preference\": \"now\"}\n```")))
	})

	analysis, err := client.AnalyzeMood(context.Background(), "deadline day, need soup")
	require.NoError(t, err)
	assert.Equal(t, &entities.MoodAnalysis{
		Mood: entities.MoodStressed, Intensity: 7, Atmosphere: "quiet", FoodHints: []string{"soup"}, TimePreference: "now",
	}, analysis)
}

func TestClient_ErrorClasses(t *testing.T) {
	tests := []struct {
		status int
		target error
	}{
		{http.StatusUnauthorized, providers.ErrProviderUnavailable},
		{http.StatusTooManyRequests, providers.ErrProviderTransport},
		{http.StatusBadGateway, providers.ErrProviderTransport},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})
			_, err := client.EmotionalInsight(context.Background(), entities.MoodLonely, entities.Place{Name: "Diner"}, nil)
			assert.ErrorIs(t, err, tt.target)
		})
	}
}

func TestClient_EmptyOutputIsError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"output": []}`))
	})

	_, err := client.EmotionalInsight(context.Background(), entities.MoodLonely, entities.Place{Name: "Diner"}, nil)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "missing output text"))
}

func TestClient_RateLimiterHonorsContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(reply("ok")))
	}))
	defer server.Close()

	client, err := NewClientWithOptions(&config.OpenAIConfig{APIKey: "sk-test", RateLimitRPM: 1, RateLimitBurst: 1}, server.URL, server.Client())
	require.NoError(t, err)

	_, err = client.VibeQuestion(context.Background(), entities.MoodBored, "cafe")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = client.VibeQuestion(ctx, entities.MoodBored, "cafe")
	assert.Error(t, err, "second call cannot get a token within the deadline")
}

func TestParseMoodAnalysisPayload(t *testing.T) {
	analysis, err := parseMoodAnalysisPayload([]byte(`{"mood": "Lonely", "intensity": 3}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if analysis.Mood != "Lonely" {
		t.Errorf("mood should be passed through unnormalized, got %q", analysis.Mood)
	}
	if analysis.FoodHints != nil {
		t.Errorf("expected nil food hints, got %v", analysis.FoodHints)
	}

	if _, err := parseMoodAnalysisPayload([]byte(`{"intensity": 3}`)); err == nil {
		t.Error("expected error for payload without mood")
	}
	if _, err := parseMoodAnalysisPayload([]byte(`not json`)); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestStripCodeFence(t *testing.T) {
	cases := map[string]string{
		"```json\n{}\n```": "{}",
		"```\n{}\n```":     "{}",
		"  {}  ":           "{}",
	}
	for in, want := range cases {
		if got := stripCodeFence(in); got != want {
			t.Errorf("stripCodeFence(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMoodAnalysisPromptListsEveryMood(t *testing.T) {
	prompt := moodAnalysisSystemPrompt()
	for _, m := range entities.AllMoods() {
		assert.Contains(t, prompt, m.String())
	}
}
