package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/zatekoja/vibecheck/backend/internal/domain/entities"
	apperrors "github.com/zatekoja/vibecheck/backend/pkg/errors"
)

// RecommendationEngine is the recommendation surface the handlers need.
type RecommendationEngine interface {
	GetRecommendations(ctx context.Context, input entities.MoodInput, prefs *entities.UserPreferences, location string) (*entities.RecommendationResult, error)
	GetMusicForPlace(ctx context.Context, place entities.Place, mood string, prefs *entities.UserPreferences) entities.PlaceMusic
	GetActivitiesForMood(ctx context.Context, mood, location string, prefs *entities.UserPreferences) []entities.Activity
	GetVibeQuestion(ctx context.Context, mood, placeType string) string
	Correlations(ctx context.Context, mood string) (entities.Mood, entities.CorrelationSet, *entities.TasteProfile)
}

// RecommendationHandler handles recommendation and vibe endpoints
type RecommendationHandler struct {
	engine RecommendationEngine
}

// NewRecommendationHandler creates a new recommendation handler
func NewRecommendationHandler(engine RecommendationEngine) *RecommendationHandler {
	return &RecommendationHandler{engine: engine}
}

type recommendationRequest struct {
	MoodInput       entities.MoodInput        `json:"mood_input" validate:"required"`
	UserPreferences *entities.UserPreferences `json:"user_preferences"`
}

type musicForPlaceRequest struct {
	Place           entities.Place            `json:"place"`
	UserPreferences *entities.UserPreferences `json:"user_preferences"`
}

type activitiesRequest struct {
	UserPreferences *entities.UserPreferences `json:"user_preferences"`
}

// GetRecommendations handles POST /api/recommendations/get-recommendations
func (h *RecommendationHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	var req recommendationRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithAppError(w, r, err)
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithAppError(w, r, err)
		return
	}

	result, err := h.engine.GetRecommendations(r.Context(), req.MoodInput, req.UserPreferences, r.URL.Query().Get("location"))
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}

// GetMusicForPlace handles POST /api/recommendations/get-music-for-place?mood=...
func (h *RecommendationHandler) GetMusicForPlace(w http.ResponseWriter, r *http.Request) {
	mood := strings.TrimSpace(r.URL.Query().Get("mood"))
	if mood == "" {
		respondWithAppError(w, r, apperrors.NewValidationError("mood parameter is required"))
		return
	}

	var req musicForPlaceRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithAppError(w, r, err)
		return
	}
	if strings.TrimSpace(req.Place.Name) == "" {
		respondWithAppError(w, r, apperrors.NewValidationError("place.name is required"))
		return
	}

	respondWithJSON(w, http.StatusOK, h.engine.GetMusicForPlace(r.Context(), req.Place, mood, req.UserPreferences))
}

// GetActivitiesForMood handles POST /api/recommendations/get-activities-for-mood?mood=...&location=...
func (h *RecommendationHandler) GetActivitiesForMood(w http.ResponseWriter, r *http.Request) {
	mood := strings.TrimSpace(r.URL.Query().Get("mood"))
	if mood == "" {
		respondWithAppError(w, r, apperrors.NewValidationError("mood parameter is required"))
		return
	}

	var req activitiesRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithAppError(w, r, err)
		return
	}

	location := r.URL.Query().Get("location")
	activities := h.engine.GetActivitiesForMood(r.Context(), mood, location, req.UserPreferences)
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"mood":             mood,
		"location":         location,
		"activities":       activities,
		"total_activities": len(activities),
	})
}

// GetCorrelations handles GET /api/recommendations/correlations/{mood}
func (h *RecommendationHandler) GetCorrelations(w http.ResponseWriter, r *http.Request) {
	mood, set, profile := h.engine.Correlations(r.Context(), r.PathValue("mood"))
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"mood":          mood,
		"correlations":  set,
		"taste_profile": profile,
	})
}

// GetVibeQuestion handles GET /api/vibe/question?mood=...&place_type=...
func (h *RecommendationHandler) GetVibeQuestion(w http.ResponseWriter, r *http.Request) {
	mood := strings.TrimSpace(r.URL.Query().Get("mood"))
	if mood == "" {
		respondWithAppError(w, r, apperrors.NewValidationError("mood parameter is required"))
		return
	}

	question := h.engine.GetVibeQuestion(r.Context(), mood, r.URL.Query().Get("place_type"))
	respondWithJSON(w, http.StatusOK, map[string]string{"question": question})
}
