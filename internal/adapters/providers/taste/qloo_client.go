package taste

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/zatekoja/vibecheck/backend/internal/domain/entities"
	"github.com/zatekoja/vibecheck/backend/internal/domain/providers"
	"github.com/zatekoja/vibecheck/backend/internal/infrastructure/observability"
)

const (
	providerName = "qloo"

	defaultBaseURL     = "https://hackathon.api.qloo.com/v2"
	defaultHTTPTimeout = 5 * time.Second
	profileCacheKey    = "taste:v1:baseline"
	profileCacheTTL    = 60 * 60
)

// QlooClient fetches the baseline taste profile from the Qloo API.
type QlooClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	cache      providers.CacheProvider
	metrics    *observability.Metrics
}

// NewQlooClient creates a Qloo client. An empty apiKey makes every call return ErrProviderUnavailable.
func NewQlooClient(apiKey, baseURL string, cache providers.CacheProvider, metrics *observability.Metrics) *QlooClient {
	return NewQlooClientWithHTTPClient(apiKey, baseURL, cache, metrics, nil)
}

// NewQlooClientWithHTTPClient allows overriding the HTTP client (used for tests).
func NewQlooClientWithHTTPClient(apiKey, baseURL string, cache providers.CacheProvider, metrics *observability.Metrics, httpClient *http.Client) *QlooClient {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &QlooClient{
		apiKey:     strings.TrimSpace(apiKey),
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
		cache:      cache,
		metrics:    metrics,
	}
}

// BaselineProfile returns the Qloo taste profile. Dimensions Qloo leaves empty
// are taken from the default profile.
func (c *QlooClient) BaselineProfile(ctx context.Context) (_ *entities.TasteProfile, err error) {
	if c.apiKey == "" {
		return nil, providers.Unavailable(providerName, "api key not configured")
	}

	if c.cache != nil {
		if cached, cerr := c.cache.Get(ctx, profileCacheKey); cerr == nil && len(cached) > 0 {
			var profile entities.TasteProfile
			if json.Unmarshal(cached, &profile) == nil {
				return &profile, nil
			}
		}
	}

	ctx, span := observability.StartSpan(ctx, "Qloo.BaselineProfile")
	defer span.End()

	start := time.Now()
	defer func() {
		observability.RecordProviderMetric(ctx, c.metrics, providerName, "taste_profile", time.Since(start), err)
		observability.RecordError(span, err)
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/taste/profile", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build qloo request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, providers.NewTransportError(providerName, "taste_profile", 0, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, providers.Unavailable(providerName, fmt.Sprintf("status %d", resp.StatusCode))
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, providers.NewTransportError(providerName, "taste_profile", resp.StatusCode, nil)
	}

	var profile entities.TasteProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, providers.NewTransportError(providerName, "taste_profile", resp.StatusCode, fmt.Errorf("decode response: %w", err))
	}

	filled := fillMissing(&profile, entities.DefaultTasteProfile())
	if c.cache != nil {
		if payload, err := json.Marshal(filled); err == nil {
			_ = c.cache.Set(ctx, profileCacheKey, payload, profileCacheTTL)
		}
	}
	return filled, nil
}

func fillMissing(profile, defaults *entities.TasteProfile) *entities.TasteProfile {
	for _, dim := range entities.TasteDimensions {
		if len(profile.Dimension(dim)) == 0 {
			profile.SetDimension(dim, defaults.Dimension(dim))
		}
	}
	return profile
}
