package routes

import (
	"net/http"

	"github.com/zatekoja/vibecheck/backend/internal/api/handlers"
	"github.com/zatekoja/vibecheck/backend/internal/api/middleware"
	"github.com/zatekoja/vibecheck/backend/internal/infrastructure/observability"
)

const bannerMessage = "Vibe Check API - Where emotions meet food and places"

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	moodHandler           *handlers.MoodHandler
	recommendationHandler *handlers.RecommendationHandler
	heatmapHandler        *handlers.HeatmapHandler
	geolocationHandler    *handlers.GeolocationHandler

	cacheMiddleware *middleware.CacheMiddleware
	allowedOrigins  []string
	metrics         *observability.Metrics
}

// NewRouter creates a new router. cacheMiddleware and metrics may be nil.
func NewRouter(
	moodHandler *handlers.MoodHandler,
	recommendationHandler *handlers.RecommendationHandler,
	heatmapHandler *handlers.HeatmapHandler,
	geolocationHandler *handlers.GeolocationHandler,
	cacheMiddleware *middleware.CacheMiddleware,
	allowedOrigins []string,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux:                   http.NewServeMux(),
		moodHandler:           moodHandler,
		recommendationHandler: recommendationHandler,
		heatmapHandler:        heatmapHandler,
		geolocationHandler:    geolocationHandler,
		cacheMiddleware:       cacheMiddleware,
		allowedOrigins:        allowedOrigins,
		metrics:               metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	r.mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"` + bannerMessage + `"}`))
	})

	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Mood endpoints
	r.mux.HandleFunc("GET /api/mood/list", r.moodHandler.ListMoods)
	r.mux.HandleFunc("POST /api/mood/analyze", r.moodHandler.AnalyzeMood)

	// Recommendation endpoints
	r.mux.HandleFunc("POST /api/recommendations/get-recommendations", r.recommendationHandler.GetRecommendations)
	r.mux.HandleFunc("POST /api/recommendations/get-music-for-place", r.recommendationHandler.GetMusicForPlace)
	r.mux.HandleFunc("POST /api/recommendations/get-activities-for-mood", r.recommendationHandler.GetActivitiesForMood)
	r.mux.HandleFunc("GET /api/recommendations/correlations/{mood}", r.recommendationHandler.GetCorrelations)

	// Vibe check
	r.mux.HandleFunc("GET /api/vibe/question", r.recommendationHandler.GetVibeQuestion)

	// Heatmap endpoints
	r.mux.HandleFunc("GET /api/heatmap", r.heatmapHandler.GetHeatmap)
	r.mux.HandleFunc("GET /api/heatmap/place/{id}/emotions", r.heatmapHandler.GetPlaceEmotions)

	// Geolocation endpoints
	r.mux.HandleFunc("GET /api/geocode", r.geolocationHandler.Geocode)
	r.mux.HandleFunc("GET /api/reverse-geocode", r.geolocationHandler.ReverseGeocode)

	// Apply middleware in reverse order (last middleware wraps first).
	// Observability must hand its request straight through the cache to the mux to see the route pattern.
	// Compression sits outside the response cache so cached bodies stay uncompressed.
	var handler http.Handler = r.mux
	if r.cacheMiddleware != nil {
		handler = r.cacheMiddleware.Middleware(handler)
	}
	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)
	handler = middleware.LoggingMiddleware(handler)
	handler = middleware.ResponseOptimization(handler)
	// CORS wraps everything so headers are set even on cache HITs
	handler = middleware.CORS(r.allowedOrigins)(handler)
	return handler
}
