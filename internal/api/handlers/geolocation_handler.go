package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/zatekoja/vibecheck/backend/internal/domain/providers"
	apperrors "github.com/zatekoja/vibecheck/backend/pkg/errors"
)

// GeolocationHandler handles geolocation endpoints.
type GeolocationHandler struct {
	provider providers.GeolocationProvider
}

// NewGeolocationHandler creates a new geolocation handler.
func NewGeolocationHandler(provider providers.GeolocationProvider) *GeolocationHandler {
	return &GeolocationHandler{provider: provider}
}

// Geocode handles GET /api/geocode?address=...
func (h *GeolocationHandler) Geocode(w http.ResponseWriter, r *http.Request) {
	address := strings.TrimSpace(r.URL.Query().Get("address"))
	if address == "" {
		respondWithError(w, http.StatusBadRequest, "address parameter is required")
		return
	}

	geocoded, err := h.provider.Geocode(r.Context(), address)
	if err != nil {
		respondWithAppError(w, r, providerAppError("failed to geocode address", err))
		return
	}

	respondWithJSON(w, http.StatusOK, geocoded)
}

// ReverseGeocode handles GET /api/reverse-geocode?lat=...&lon=...
func (h *GeolocationHandler) ReverseGeocode(w http.ResponseWriter, r *http.Request) {
	latStr := strings.TrimSpace(r.URL.Query().Get("lat"))
	lonStr := strings.TrimSpace(r.URL.Query().Get("lon"))
	if latStr == "" || lonStr == "" {
		respondWithError(w, http.StatusBadRequest, "lat and lon parameters are required")
		return
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil || lat < -90 || lat > 90 {
		respondWithError(w, http.StatusBadRequest, "invalid lat parameter")
		return
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil || lon < -180 || lon > 180 {
		respondWithError(w, http.StatusBadRequest, "invalid lon parameter")
		return
	}

	address, err := h.provider.ReverseGeocode(r.Context(), lat, lon)
	if err != nil {
		respondWithAppError(w, r, providerAppError("failed to reverse geocode", err))
		return
	}

	respondWithJSON(w, http.StatusOK, address)
}

// providerAppError classifies a provider failure for the response.
func providerAppError(message string, err error) error {
	switch {
	case errors.Is(err, providers.ErrLocationNotFound):
		return apperrors.NewNotFoundErrorWithCause("location not found", err)
	case errors.Is(err, providers.ErrProviderUnavailable):
		return apperrors.NewUnavailableError("geocoding is not available", err)
	default:
		return apperrors.NewExternalError(message, err)
	}
}
