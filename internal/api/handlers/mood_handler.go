package handlers

import (
	"context"
	"net/http"

	"github.com/zatekoja/vibecheck/backend/internal/domain/entities"
)

// MoodReader lists moods and analyzes free text.
type MoodReader interface {
	ListMoods() []entities.Mood
	AnalyzeMood(ctx context.Context, text string) entities.MoodAnalysis
}

// MoodHandler handles mood endpoints
type MoodHandler struct {
	moods MoodReader
}

// NewMoodHandler creates a new mood handler
func NewMoodHandler(moods MoodReader) *MoodHandler {
	return &MoodHandler{moods: moods}
}

type analyzeMoodRequest struct {
	Text string `json:"text" validate:"required,max=2000"`
}

// ListMoods handles GET /api/mood/list
func (h *MoodHandler) ListMoods(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.moods.ListMoods())
}

// AnalyzeMood handles POST /api/mood/analyze
func (h *MoodHandler) AnalyzeMood(w http.ResponseWriter, r *http.Request) {
	var req analyzeMoodRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithAppError(w, r, err)
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, h.moods.AnalyzeMood(r.Context(), req.Text))
}
