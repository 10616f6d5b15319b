package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/zatekoja/vibecheck/backend/internal/adapters/cache"
	"github.com/zatekoja/vibecheck/backend/internal/adapters/providers/geolocation"
	"github.com/zatekoja/vibecheck/backend/internal/adapters/providers/places"
	"github.com/zatekoja/vibecheck/backend/internal/adapters/providers/taste"
	"github.com/zatekoja/vibecheck/backend/internal/api/handlers"
	"github.com/zatekoja/vibecheck/backend/internal/api/middleware"
	"github.com/zatekoja/vibecheck/backend/internal/api/routes"
	"github.com/zatekoja/vibecheck/backend/internal/application/services"
	"github.com/zatekoja/vibecheck/backend/internal/domain/providers"
	"github.com/zatekoja/vibecheck/backend/internal/infrastructure/clients/openai"
	"github.com/zatekoja/vibecheck/backend/internal/infrastructure/clients/redis"
	"github.com/zatekoja/vibecheck/backend/internal/infrastructure/observability"
	"github.com/zatekoja/vibecheck/backend/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		observability.InitLogger("vibecheck-api", "development", "info")
		observability.GetLogger().Fatal().Err(err).Msg("Failed to load configuration")
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Log.Environment, cfg.Log.Level)
	logger := observability.GetLogger()

	// Set up context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(ctx, cfg.OTEL.ServiceName, cfg.OTEL.ServiceVersion, cfg.OTEL.Endpoint)
		if err != nil {
			logger.Warn().Err(err).Msg("Failed to set up OpenTelemetry")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					logger.Error().Err(err).Msg("Error shutting down OpenTelemetry")
				}
			}()
			logger.Info().Str("endpoint", cfg.OTEL.Endpoint).Msg("OpenTelemetry initialized")
		}
	}

	metrics, err := observability.InitMetrics()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize metrics")
	}

	// Redis is optional; without it lookups and responses are not cached.
	var cacheProvider providers.CacheProvider
	if cfg.Redis.Enabled {
		redisClient, err := redis.NewClient(ctx, &cfg.Redis)
		if err != nil {
			logger.Warn().Err(err).Str("addr", cfg.Redis.RedisAddr()).Msg("Redis unavailable, continuing without cache")
		} else {
			defer redisClient.Close()
			cacheProvider = cache.NewRedisAdapter(redisClient, "vibecheck:")
			logger.Info().Str("addr", cfg.Redis.RedisAddr()).Msg("Redis cache enabled")
		}
	}

	var (
		search  providers.PlaceSearchProvider
		details providers.PlaceDetailsProvider
		nearby  providers.NearbyPlacesProvider
	)
	if strings.EqualFold(cfg.Places.Provider, "google") && cfg.Places.APIKey != "" {
		client := places.NewCircuitBreakerClient(
			places.NewGoogleProvider(cfg.Places.APIKey, cacheProvider, metrics),
			places.DefaultBreakerConfig(),
		)
		search, details, nearby = client, client, client
		logger.Info().Msg("Google Places search enabled")
	} else {
		logger.Info().Str("provider", cfg.Places.Provider).Msg("Live place search disabled, serving synthesized places")
	}

	var geo providers.GeolocationProvider
	switch strings.ToLower(cfg.Geolocation.Provider) {
	case "google":
		apiKey := cfg.Geolocation.APIKey
		if apiKey == "" {
			apiKey = cfg.Places.APIKey
		}
		geo = geolocation.NewGoogleGeolocationProvider(apiKey, cacheProvider, metrics)
	default:
		geo = geolocation.NewMockGeolocationProvider()
	}
	logger.Info().Str("provider", cfg.Geolocation.Provider).Msg("Geolocation provider selected")

	var baseline providers.TasteProfileProvider
	if cfg.Qloo.APIKey != "" {
		baseline = taste.NewQlooClient(cfg.Qloo.APIKey, cfg.Qloo.BaseURL, cacheProvider, metrics)
	} else {
		baseline = taste.NewStaticProvider(nil)
	}

	var text providers.TextGenerator
	if generator, err := openai.NewClient(&cfg.OpenAI); err != nil {
		logger.Info().Err(err).Msg("Text generation disabled, using fixed copy")
	} else {
		text = generator
		logger.Info().Str("model", cfg.OpenAI.Model).Msg("OpenAI text generation enabled")
	}

	mapper, err := services.NewCorrelationMapper(services.TableVersion(cfg.Engine.CorrelationTable))
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load correlation table")
	}

	rng := services.NewRandomSource(cfg.Engine.RandomSeed)
	taxonomy := services.NewMoodTaxonomy()
	resolver := services.NewTasteProfileResolver(baseline)

	recommendationService := services.NewRecommendationService(services.RecommendationDeps{
		Taxonomy:        taxonomy,
		Mapper:          mapper,
		Resolver:        resolver,
		Random:          rng,
		Search:          search,
		Details:         details,
		Text:            text,
		Timeout:         cfg.Engine.RequestTimeout,
		DefaultLocation: cfg.Engine.DefaultLocation,
	})
	heatmapService := services.NewHeatmapService(services.HeatmapDeps{
		Geo:             geo,
		Nearby:          nearby,
		Random:          rng,
		Timeout:         cfg.Engine.RequestTimeout,
		DefaultLocation: cfg.Engine.DefaultLocation,
		DefaultRadius:   cfg.Engine.HeatmapDefaultRadius,
	})
	moodService := services.NewMoodService(taxonomy, text)

	// Warm geocode and baseline caches without holding up startup.
	if cacheProvider != nil {
		go func() {
			warmCtx, warmCancel := context.WithTimeout(ctx, cfg.Engine.RequestTimeout)
			defer warmCancel()
			locations := append([]string{cfg.Engine.DefaultLocation}, cfg.Engine.WarmLocations...)
			services.NewCacheWarmingService(geo, resolver, locations...).WarmCache(warmCtx)
		}()
	}

	router := routes.NewRouter(
		handlers.NewMoodHandler(moodService),
		handlers.NewRecommendationHandler(recommendationService),
		handlers.NewHeatmapHandler(heatmapService),
		handlers.NewGeolocationHandler(geo),
		middleware.NewCacheMiddleware(cacheProvider, metrics, nil),
		cfg.Server.AllowedOrigins,
		metrics,
	)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.SetupRoutes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 2*cfg.Engine.RequestTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", server.Addr).Str("correlation_table", string(mapper.Version())).Msg("Server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Server shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Error during server shutdown")
	}

	logger.Info().Msg("Server stopped")
}
