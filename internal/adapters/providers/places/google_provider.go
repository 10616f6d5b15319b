package places

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/zatekoja/vibecheck/backend/internal/domain/entities"
	"github.com/zatekoja/vibecheck/backend/internal/domain/providers"
	"github.com/zatekoja/vibecheck/backend/internal/infrastructure/observability"
)

const (
	providerName = "google_places"

	googlePlacesBaseURL = "https://maps.googleapis.com/maps/api/place"
	defaultHTTPTimeout  = 6 * time.Second

	searchCacheTTL  = 60 * 10
	detailsCacheTTL = 60 * 60 * 24
)

// genericTypes are Google place types that say nothing about the vibe of a place.
var genericTypes = map[string]bool{
	"point_of_interest": true,
	"establishment":     true,
	"food":              true,
	"store":             true,
}

// GoogleProvider implements place search, details and nearby lookups over the Google Places web service.
type GoogleProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	cache      providers.CacheProvider
	metrics    *observability.Metrics
}

// NewGoogleProvider creates a Google Places provider. cache and metrics may be nil.
func NewGoogleProvider(apiKey string, cache providers.CacheProvider, metrics *observability.Metrics) *GoogleProvider {
	return NewGoogleProviderWithOptions(apiKey, cache, metrics, googlePlacesBaseURL, nil)
}

// NewGoogleProviderWithOptions allows overriding base URL and HTTP client (used for tests).
func NewGoogleProviderWithOptions(apiKey string, cache providers.CacheProvider, metrics *observability.Metrics, baseURL string, httpClient *http.Client) *GoogleProvider {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = googlePlacesBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &GoogleProvider{
		apiKey:     strings.TrimSpace(apiKey),
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
		cache:      cache,
		metrics:    metrics,
	}
}

// SearchPlaces runs a text search for keyword near location.
func (g *GoogleProvider) SearchPlaces(ctx context.Context, keyword, location string) ([]entities.PlaceCandidate, error) {
	query := strings.TrimSpace(keyword)
	if loc := strings.TrimSpace(location); loc != "" {
		query += " in " + loc
	}

	cacheKey := "places:v1:search:" + hashKey(strings.ToLower(query))
	var cached []entities.PlaceCandidate
	if g.fromCache(ctx, cacheKey, &cached) {
		return cached, nil
	}

	var resp placesListResponse
	if err := g.get(ctx, "text_search", "/textsearch/json", url.Values{"query": {query}}, &resp); err != nil {
		return nil, err
	}

	candidates := make([]entities.PlaceCandidate, 0, len(resp.Results))
	for _, r := range resp.Results {
		candidates = append(candidates, r.candidate())
	}
	g.toCache(ctx, cacheKey, candidates, searchCacheTTL)
	return candidates, nil
}

// EnrichPlace fetches place details for the candidate.
func (g *GoogleProvider) EnrichPlace(ctx context.Context, candidate entities.PlaceCandidate) (*entities.Place, error) {
	if candidate.ExternalID == "" {
		return nil, fmt.Errorf("candidate %q has no place id", candidate.Name)
	}

	cacheKey := "places:v1:details:" + candidate.ExternalID
	var cached entities.Place
	if g.fromCache(ctx, cacheKey, &cached) {
		return &cached, nil
	}

	params := url.Values{
		"place_id": {candidate.ExternalID},
		"fields":   {"place_id,name,formatted_address,rating,types,geometry,editorial_summary"},
	}
	var resp placeDetailsResponse
	if err := g.get(ctx, "details", "/details/json", params, &resp); err != nil {
		return nil, err
	}
	if resp.Result == nil {
		return nil, fmt.Errorf("google places details: no result for %s", candidate.ExternalID)
	}

	place := resp.Result.place()
	if place.Rating == 0 {
		place.Rating = candidate.Rating
	}
	if place.Address == "" {
		place.Address = candidate.Address
	}
	g.toCache(ctx, cacheKey, place, detailsCacheTTL)
	return &place, nil
}

// NearbyPlaces lists places within radiusMeters of center.
func (g *GoogleProvider) NearbyPlaces(ctx context.Context, center entities.Coordinates, radiusMeters int) ([]entities.PlaceCandidate, error) {
	params := url.Values{
		"location": {fmt.Sprintf("%f,%f", center.Latitude, center.Longitude)},
		"radius":   {fmt.Sprintf("%d", radiusMeters)},
	}
	var resp placesListResponse
	if err := g.get(ctx, "nearby", "/nearbysearch/json", params, &resp); err != nil {
		return nil, err
	}

	candidates := make([]entities.PlaceCandidate, 0, len(resp.Results))
	for _, r := range resp.Results {
		candidates = append(candidates, r.candidate())
	}
	return candidates, nil
}

type statusResponse interface {
	status() (string, string)
}

func (g *GoogleProvider) get(ctx context.Context, op, path string, params url.Values, out statusResponse) (err error) {
	if g.apiKey == "" {
		return providers.Unavailable(providerName, "api key not configured")
	}

	ctx, span := observability.StartSpan(ctx, "GooglePlaces."+op)
	defer span.End()

	start := time.Now()
	defer func() {
		observability.RecordProviderMetric(ctx, g.metrics, providerName, op, time.Since(start), err)
		observability.RecordError(span, err)
	}()

	params.Set("key", g.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to build places %s request: %w", op, err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return providers.NewTransportError(providerName, op, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return providers.NewTransportError(providerName, op, resp.StatusCode, nil)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return providers.NewTransportError(providerName, op, resp.StatusCode, fmt.Errorf("decode response: %w", err))
	}

	status, message := out.status()
	return statusError(op, status, message)
}

// statusError maps a Places API status onto the provider error classes.
func statusError(op, status, message string) error {
	switch status {
	case "OK", "ZERO_RESULTS":
		return nil
	case "REQUEST_DENIED":
		return providers.Unavailable(providerName, "request denied: "+message)
	case "OVER_QUERY_LIMIT", "UNKNOWN_ERROR":
		return providers.NewTransportError(providerName, op, 0, fmt.Errorf("status %s", status))
	}
	if message != "" {
		return fmt.Errorf("google places %s failed: %s - %s", op, status, message)
	}
	return fmt.Errorf("google places %s failed: %s", op, status)
}

func (g *GoogleProvider) fromCache(ctx context.Context, key string, out any) bool {
	if g.cache == nil {
		return false
	}
	cached, err := g.cache.Get(ctx, key)
	if err != nil || len(cached) == 0 {
		observability.RecordCacheMiss(ctx, g.metrics, "places")
		return false
	}
	if err := json.Unmarshal(cached, out); err != nil {
		return false
	}
	observability.RecordCacheHit(ctx, g.metrics, "places")
	return true
}

func (g *GoogleProvider) toCache(ctx context.Context, key string, value any, ttlSeconds int) {
	if g.cache == nil {
		return
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := g.cache.Set(ctx, key, payload, ttlSeconds); err != nil {
		observability.LoggerFromContext(ctx).Debug().Err(err).Str("key", key).Msg("Failed to cache places response")
	}
}

func hashKey(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])
}

// vibeTypes drops generic types and keeps the order Google returns.
func vibeTypes(types []string) []string {
	out := make([]string, 0, len(types))
	for _, t := range types {
		if !genericTypes[t] {
			out = append(out, t)
		}
	}
	return out
}

type placesListResponse struct {
	Status       string        `json:"status"`
	ErrorMessage string        `json:"error_message,omitempty"`
	Results      []placeResult `json:"results"`
}

func (r *placesListResponse) status() (string, string) { return r.Status, r.ErrorMessage }

type placeDetailsResponse struct {
	Status       string       `json:"status"`
	ErrorMessage string       `json:"error_message,omitempty"`
	Result       *placeResult `json:"result"`
}

func (r *placeDetailsResponse) status() (string, string) { return r.Status, r.ErrorMessage }

type placeResult struct {
	PlaceID          string         `json:"place_id"`
	Name             string         `json:"name"`
	FormattedAddress string         `json:"formatted_address"`
	Vicinity         string         `json:"vicinity"`
	Rating           float64        `json:"rating"`
	Types            []string       `json:"types"`
	Geometry         googleGeometry `json:"geometry"`
	EditorialSummary *struct {
		Overview string `json:"overview"`
	} `json:"editorial_summary,omitempty"`
}

type googleGeometry struct {
	Location struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	} `json:"location"`
}

func (r placeResult) address() string {
	if r.FormattedAddress != "" {
		return r.FormattedAddress
	}
	return r.Vicinity
}

func (r placeResult) coordinates() *entities.Coordinates {
	if r.Geometry.Location.Lat == 0 && r.Geometry.Location.Lng == 0 {
		return nil
	}
	return &entities.Coordinates{Latitude: r.Geometry.Location.Lat, Longitude: r.Geometry.Location.Lng}
}

func (r placeResult) candidate() entities.PlaceCandidate {
	c := entities.PlaceCandidate{
		ExternalID:  r.PlaceID,
		Name:        r.Name,
		Categories:  vibeTypes(r.Types),
		Rating:      r.Rating,
		Address:     r.address(),
		Coordinates: r.coordinates(),
	}
	if r.EditorialSummary != nil && r.EditorialSummary.Overview != "" {
		c.RawAttributes = map[string]string{"overview": r.EditorialSummary.Overview}
	}
	return c
}

func (r placeResult) place() entities.Place {
	c := r.candidate()
	return entities.Place{
		ID:          c.ExternalID,
		Name:        c.Name,
		Type:        c.PrimaryCategory(),
		Address:     c.Address,
		Rating:      c.Rating,
		Tags:        humanize(c.Categories, entities.MaxPlaceTags),
		Coordinates: c.Coordinates,
	}
}

func humanize(types []string, limit int) []string {
	out := make([]string, 0, min(len(types), limit))
	for _, t := range types {
		if len(out) == limit {
			break
		}
		out = append(out, strings.ReplaceAll(t, "_", " "))
	}
	return out
}
