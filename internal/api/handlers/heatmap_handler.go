package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/zatekoja/vibecheck/backend/internal/domain/entities"
	apperrors "github.com/zatekoja/vibecheck/backend/pkg/errors"
)

// HeatmapSource produces heatmap entries and per-place emotions.
type HeatmapSource interface {
	GetHeatmap(ctx context.Context, location string, radiusMeters int) ([]entities.HeatmapEntry, error)
	GetPlaceEmotions(ctx context.Context, placeID string) entities.PlaceEmotions
}

// HeatmapHandler handles heatmap endpoints
type HeatmapHandler struct {
	heatmap HeatmapSource
}

// NewHeatmapHandler creates a new heatmap handler
func NewHeatmapHandler(heatmap HeatmapSource) *HeatmapHandler {
	return &HeatmapHandler{heatmap: heatmap}
}

// GetHeatmap handles GET /api/heatmap?location=...&radius=...
// A missing radius is passed as zero so the service applies its default.
func (h *HeatmapHandler) GetHeatmap(w http.ResponseWriter, r *http.Request) {
	radius, err := queryInt(r, "radius", 0)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	location := strings.TrimSpace(r.URL.Query().Get("location"))

	entries, err := h.heatmap.GetHeatmap(r.Context(), location, radius)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	if len(entries) == 0 {
		respondWithAppError(w, r, apperrors.NewNotFoundError("No places found for heatmap in the specified location"))
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"location":     location,
		"radius":       radius,
		"places":       entries,
		"total_places": len(entries),
	})
}

// GetPlaceEmotions handles GET /api/heatmap/place/{id}/emotions
func (h *HeatmapHandler) GetPlaceEmotions(w http.ResponseWriter, r *http.Request) {
	placeID := strings.TrimSpace(r.PathValue("id"))
	if placeID == "" {
		respondWithAppError(w, r, apperrors.NewValidationError("place ID is required"))
		return
	}

	respondWithJSON(w, http.StatusOK, h.heatmap.GetPlaceEmotions(r.Context(), placeID))
}
