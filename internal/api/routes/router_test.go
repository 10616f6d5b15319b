package routes_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/vibecheck/backend/internal/adapters/providers/geolocation"
	"github.com/zatekoja/vibecheck/backend/internal/api/handlers"
	"github.com/zatekoja/vibecheck/backend/internal/api/routes"
	"github.com/zatekoja/vibecheck/backend/internal/application/services"
	"github.com/zatekoja/vibecheck/backend/pkg/retry"
)

// newOfflineServer wires the real services with no live place search or text generation,
// so every response comes from the fallback paths.
func newOfflineServer(t *testing.T) *httptest.Server {
	t.Helper()

	rng := services.NewRandomSource(11)
	geo := geolocation.NewMockGeolocationProvider()
	fastRetry := retry.Config{MaxAttempts: 2, InitialDelay: time.Millisecond, MaxDelay: time.Millisecond, BackoffFactor: 1}

	recommendations := services.NewRecommendationService(services.RecommendationDeps{
		Random:          rng,
		DefaultLocation: "San Francisco, CA",
		Retry:           fastRetry,
	})
	heatmap := services.NewHeatmapService(services.HeatmapDeps{
		Geo:             geo,
		Random:          rng,
		DefaultLocation: "San Francisco, CA",
		Retry:           fastRetry,
	})

	router := routes.NewRouter(
		handlers.NewMoodHandler(services.NewMoodService(nil, nil)),
		handlers.NewRecommendationHandler(recommendations),
		handlers.NewHeatmapHandler(heatmap),
		handlers.NewGeolocationHandler(geo),
		nil,
		[]string{"http://localhost:3000"},
		nil,
	)
	server := httptest.NewServer(router.SetupRoutes())
	t.Cleanup(server.Close)
	return server
}

func getJSON(t *testing.T, url string, out any) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func TestRouter_BannerAndHealth(t *testing.T) {
	server := newOfflineServer(t)

	var banner map[string]string
	resp := getJSON(t, server.URL+"/", &banner)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, banner["message"], "Vibe Check API")
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	resp = getJSON(t, server.URL+"/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = getJSON(t, server.URL+"/nope", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRouter_MoodList(t *testing.T) {
	server := newOfflineServer(t)

	var moods []string
	resp := getJSON(t, server.URL+"/api/mood/list", &moods)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, moods, 24)
	assert.Contains(t, moods, "satisfaction")
}

func TestRouter_RecommendationsFallBackOffline(t *testing.T) {
	server := newOfflineServer(t)

	body := `{"mood_input": {"primary_mood": "nostalgic", "intensity": 6}}`
	resp, err := http.Post(server.URL+"/api/recommendations/get-recommendations?location=Chicago", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		Mood            string `json:"mood"`
		Source          string `json:"source"`
		Location        string `json:"location"`
		Recommendations struct {
			Places []struct {
				ID   string   `json:"id"`
				Tags []string `json:"tags"`
			} `json:"places"`
		} `json:"recommendations"`
		EmotionalInsight string `json:"emotional_insight"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))

	assert.Equal(t, "nostalgic", result.Mood)
	assert.Equal(t, "fallback", result.Source)
	assert.Equal(t, "Chicago", result.Location)
	assert.NotEmpty(t, result.Recommendations.Places)
	assert.LessOrEqual(t, len(result.Recommendations.Places), services.MaxPlaces)
	assert.Equal(t, services.FallbackInsight, result.EmotionalInsight)
}

func TestRouter_RecommendationsRejectsBadIntensity(t *testing.T) {
	server := newOfflineServer(t)

	resp, err := http.Post(server.URL+"/api/recommendations/get-recommendations", "application/json",
		strings.NewReader(`{"mood_input": {"primary_mood": "bored", "intensity": 0}}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRouter_Heatmap(t *testing.T) {
	server := newOfflineServer(t)

	var body struct {
		Places []struct {
			ID              string `json:"id"`
			DominantEmotion string `json:"dominant_emotion"`
		} `json:"places"`
		TotalPlaces int `json:"total_places"`
	}
	resp := getJSON(t, server.URL+"/api/heatmap?location=Seattle&radius=3000", &body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.GreaterOrEqual(t, body.TotalPlaces, 20)
	assert.LessOrEqual(t, body.TotalPlaces, services.MaxHeatmapEntries)
	assert.Len(t, body.Places, body.TotalPlaces)

	resp = getJSON(t, server.URL+"/api/heatmap?radius=-1", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRouter_PlaceEmotionsAreStable(t *testing.T) {
	server := newOfflineServer(t)

	var first, second map[string]any
	getJSON(t, server.URL+"/api/heatmap/place/abc/emotions", &first)
	getJSON(t, server.URL+"/api/heatmap/place/abc/emotions", &second)
	assert.Equal(t, first, second)
	assert.Equal(t, "abc", first["place_id"])
}

func TestRouter_VibeQuestionAndCorrelations(t *testing.T) {
	server := newOfflineServer(t)

	var question map[string]string
	getJSON(t, server.URL+"/api/vibe/question?mood=curious&place_type=bookstore", &question)
	assert.Equal(t, "For someone feeling curious, what's the general vibe like at this bookstore right now?", question["question"])

	var correlations map[string]any
	resp := getJSON(t, server.URL+"/api/recommendations/correlations/anxious", &correlations)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "anxious", correlations["mood"])

	getJSON(t, server.URL+"/api/recommendations/correlations/hangry", &correlations)
	assert.Equal(t, "contemplative", correlations["mood"], "unknown moods map to the default")
}

func TestRouter_GeocodeNotFound(t *testing.T) {
	server := newOfflineServer(t)

	resp := getJSON(t, server.URL+"/api/geocode?address=Atlantis", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var addr map[string]any
	resp = getJSON(t, server.URL+"/api/geocode?address=Tokyo", &addr)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Tokyo, Japan", addr["formatted_address"])
}

func TestRouter_CORSPreflight(t *testing.T) {
	server := newOfflineServer(t)

	req, err := http.NewRequest(http.MethodOptions, server.URL+"/api/recommendations/get-recommendations", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:3000")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "http://localhost:3000", resp.Header.Get("Access-Control-Allow-Origin"))
}
