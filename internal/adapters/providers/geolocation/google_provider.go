package geolocation

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/zatekoja/vibecheck/backend/internal/domain/entities"
	"github.com/zatekoja/vibecheck/backend/internal/domain/providers"
	"github.com/zatekoja/vibecheck/backend/internal/infrastructure/observability"
)

const (
	providerName = "google_geocoding"

	googleGeocodeURL       = "https://maps.googleapis.com/maps/api/geocode/json"
	defaultGeocodeCacheTTL = 60 * 60 * 24 * 30
	defaultReverseCacheTTL = 60 * 60 * 24 * 30
	defaultHTTPTimeout     = 8 * time.Second
)

// GoogleGeolocationProvider implements the GeolocationProvider using the Google Geocoding API.
type GoogleGeolocationProvider struct {
	apiKey     string
	httpClient *http.Client
	cache      providers.CacheProvider
	metrics    *observability.Metrics
	baseURL    string
}

// NewGoogleGeolocationProvider creates a new Google geolocation provider.
func NewGoogleGeolocationProvider(apiKey string, cache providers.CacheProvider, metrics *observability.Metrics) *GoogleGeolocationProvider {
	return NewGoogleGeolocationProviderWithOptions(apiKey, cache, metrics, googleGeocodeURL, nil)
}

// NewGoogleGeolocationProviderWithOptions allows overriding base URL and HTTP client (used for tests).
func NewGoogleGeolocationProviderWithOptions(apiKey string, cache providers.CacheProvider, metrics *observability.Metrics, baseURL string, httpClient *http.Client) *GoogleGeolocationProvider {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = googleGeocodeURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &GoogleGeolocationProvider{
		apiKey:     strings.TrimSpace(apiKey),
		httpClient: httpClient,
		cache:      cache,
		metrics:    metrics,
		baseURL:    baseURL,
	}
}

// Geocode converts an address to a full geocoded address.
func (g *GoogleGeolocationProvider) Geocode(ctx context.Context, address string) (*providers.GeocodedAddress, error) {
	trimmed := strings.TrimSpace(address)
	if trimmed == "" {
		return nil, fmt.Errorf("address is required: %w", providers.ErrLocationNotFound)
	}

	cacheKey := "geo:v3:geocode:" + hashKey(strings.ToLower(trimmed))
	if addr := g.cached(ctx, cacheKey); addr != nil {
		return addr, nil
	}

	resp, err := g.doGeocodeRequest(ctx, "geocode", url.Values{"address": []string{trimmed}})
	if err != nil {
		return nil, err
	}
	if len(resp.Results) == 0 {
		return nil, fmt.Errorf("no results for %q: %w", trimmed, providers.ErrLocationNotFound)
	}

	addr := resp.Results[0].address()
	g.store(ctx, cacheKey, addr, defaultGeocodeCacheTTL)
	return &addr, nil
}

// ReverseGeocode converts coordinates to an address.
func (g *GoogleGeolocationProvider) ReverseGeocode(ctx context.Context, lat, lon float64) (*providers.GeocodedAddress, error) {
	cacheKey := "geo:v3:reverse:" + hashKey(fmt.Sprintf("%.5f,%.5f", lat, lon))
	if addr := g.cached(ctx, cacheKey); addr != nil {
		return addr, nil
	}

	resp, err := g.doGeocodeRequest(ctx, "reverse_geocode", url.Values{"latlng": []string{fmt.Sprintf("%f,%f", lat, lon)}})
	if err != nil {
		return nil, err
	}
	if len(resp.Results) == 0 {
		return nil, fmt.Errorf("no results for %f,%f: %w", lat, lon, providers.ErrLocationNotFound)
	}

	addr := resp.Results[0].address()
	g.store(ctx, cacheKey, addr, defaultReverseCacheTTL)
	return &addr, nil
}

func (g *GoogleGeolocationProvider) cached(ctx context.Context, key string) *providers.GeocodedAddress {
	if g.cache == nil {
		return nil
	}
	cached, err := g.cache.Get(ctx, key)
	if err != nil || len(cached) == 0 {
		return nil
	}
	var addr providers.GeocodedAddress
	if err := json.Unmarshal(cached, &addr); err != nil {
		return nil
	}
	if addr.Coordinates.Latitude == 0 && addr.Coordinates.Longitude == 0 {
		return nil
	}
	return &addr
}

func (g *GoogleGeolocationProvider) store(ctx context.Context, key string, addr providers.GeocodedAddress, ttl int) {
	if g.cache == nil {
		return
	}
	if payload, err := json.Marshal(addr); err == nil {
		_ = g.cache.Set(ctx, key, payload, ttl)
	}
}

func (g *GoogleGeolocationProvider) doGeocodeRequest(ctx context.Context, op string, params url.Values) (_ *googleGeocodeResponse, err error) {
	if g.apiKey == "" {
		return nil, providers.Unavailable(providerName, "api key not configured")
	}

	start := time.Now()
	defer func() {
		observability.RecordProviderMetric(ctx, g.metrics, providerName, op, time.Since(start), err)
	}()

	params.Set("key", g.apiKey)
	reqURL := fmt.Sprintf("%s?%s", g.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build geocode request: %w", err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, providers.NewTransportError(providerName, op, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, providers.NewTransportError(providerName, op, resp.StatusCode, nil)
	}

	var payload googleGeocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, providers.NewTransportError(providerName, op, resp.StatusCode, fmt.Errorf("decode response: %w", err))
	}

	switch payload.Status {
	case "OK":
		return &payload, nil
	case "ZERO_RESULTS":
		payload.Results = nil
		return &payload, nil
	case "REQUEST_DENIED":
		return nil, providers.Unavailable(providerName, "request denied: "+payload.ErrorMessage)
	case "OVER_QUERY_LIMIT", "UNKNOWN_ERROR":
		return nil, providers.NewTransportError(providerName, op, resp.StatusCode, fmt.Errorf("status %s", payload.Status))
	}
	if payload.ErrorMessage != "" {
		return nil, fmt.Errorf("geocode request failed: %s - %s", payload.Status, payload.ErrorMessage)
	}
	return nil, fmt.Errorf("geocode request failed: %s", payload.Status)
}

func hashKey(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])
}

func component(components []googleAddressComponent, primary string, fallback ...string) string {
	for _, want := range append([]string{primary}, fallback...) {
		for _, comp := range components {
			if slices.Contains(comp.Types, want) {
				return comp.LongName
			}
		}
	}
	return ""
}

func buildStreet(components []googleAddressComponent) string {
	streetNumber := component(components, "street_number")
	route := component(components, "route")
	if streetNumber != "" && route != "" {
		return streetNumber + " " + route
	}
	if route != "" {
		return route
	}
	return streetNumber
}

type googleGeocodeResponse struct {
	Status       string                `json:"status"`
	ErrorMessage string                `json:"error_message,omitempty"`
	Results      []googleGeocodeResult `json:"results"`
}

type googleGeocodeResult struct {
	FormattedAddress  string                   `json:"formatted_address"`
	AddressComponents []googleAddressComponent `json:"address_components"`
	Geometry          struct {
		Location struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"location"`
	} `json:"geometry"`
}

func (r googleGeocodeResult) address() providers.GeocodedAddress {
	return providers.GeocodedAddress{
		FormattedAddress: r.FormattedAddress,
		Street:           buildStreet(r.AddressComponents),
		City:             component(r.AddressComponents, "locality", "administrative_area_level_2"),
		State:            component(r.AddressComponents, "administrative_area_level_1"),
		ZipCode:          component(r.AddressComponents, "postal_code"),
		Country:          component(r.AddressComponents, "country"),
		Coordinates: entities.Coordinates{
			Latitude:  r.Geometry.Location.Lat,
			Longitude: r.Geometry.Location.Lng,
		},
	}
}

type googleAddressComponent struct {
	LongName string   `json:"long_name"`
	Types    []string `json:"types"`
}
