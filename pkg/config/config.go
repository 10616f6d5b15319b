package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// ConfigPathEnvVar points at an optional YAML file layered between defaults and env.
const ConfigPathEnvVar = "VIBECHECK_CONFIG"

// Config holds all application configuration
type Config struct {
	Server      ServerConfig      `koanf:"server"`
	Log         LogConfig         `koanf:"log"`
	Redis       RedisConfig       `koanf:"redis"`
	Places      PlacesConfig      `koanf:"places"`
	Geolocation GeolocationConfig `koanf:"geolocation"`
	Qloo        QlooConfig        `koanf:"qloo"`
	OpenAI      OpenAIConfig      `koanf:"openai"`
	OTEL        OTELConfig        `koanf:"otel"`
	Engine      EngineConfig      `koanf:"engine"`
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host           string   `koanf:"host"`
	Port           int      `koanf:"port"`
	AllowedOrigins []string `koanf:"allowed_origins"`
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level       string `koanf:"level"`
	Environment string `koanf:"environment"`
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Enabled  bool   `koanf:"enabled"`
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	Password string `koanf:"password"`
	DB       int    `koanf:"db"`
}

// PlacesConfig holds place search provider configuration
type PlacesConfig struct {
	Provider string `koanf:"provider"`
	APIKey   string `koanf:"api_key"`
}

// GeolocationConfig holds geolocation provider configuration
type GeolocationConfig struct {
	Provider string `koanf:"provider"`
	APIKey   string `koanf:"api_key"`
}

// QlooConfig holds taste-profile provider configuration
type QlooConfig struct {
	APIKey  string `koanf:"api_key"`
	BaseURL string `koanf:"base_url"`
}

// OpenAIConfig holds OpenAI configuration
type OpenAIConfig struct {
	APIKey         string `koanf:"api_key"`
	Model          string `koanf:"model"`
	RateLimitRPM   int    `koanf:"rate_limit_rpm"`
	RateLimitBurst int    `koanf:"rate_limit_burst"`
}

// OTELConfig holds OpenTelemetry configuration
type OTELConfig struct {
	ServiceName    string `koanf:"service_name"`
	ServiceVersion string `koanf:"service_version"`
	Endpoint       string `koanf:"endpoint"`
	Enabled        bool   `koanf:"enabled"`
}

// EngineConfig tunes the recommendation engine
type EngineConfig struct {
	RequestTimeout       time.Duration `koanf:"request_timeout"`
	CorrelationTable     string        `koanf:"correlation_table"`
	RandomSeed           uint64        `koanf:"random_seed"`
	HeatmapDefaultRadius int           `koanf:"heatmap_default_radius"`
	DefaultLocation      string        `koanf:"default_location"`
	WarmLocations        []string      `koanf:"warm_locations"`
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:           "0.0.0.0",
			Port:           8000,
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		Log: LogConfig{
			Level:       "info",
			Environment: "development",
		},
		Redis: RedisConfig{
			Enabled: false,
			Host:    "localhost",
			Port:    6379,
		},
		Places: PlacesConfig{
			Provider: "google",
		},
		Geolocation: GeolocationConfig{
			Provider: "mock",
		},
		Qloo: QlooConfig{
			BaseURL: "https://hackathon.api.qloo.com/v2",
		},
		OpenAI: OpenAIConfig{
			Model:          "gpt-4o-mini",
			RateLimitRPM:   60,
			RateLimitBurst: 5,
		},
		OTEL: OTELConfig{
			ServiceName:    "vibecheck-api",
			ServiceVersion: "1.0.0",
		},
		Engine: EngineConfig{
			RequestTimeout:       8 * time.Second,
			CorrelationTable:     "curated",
			HeatmapDefaultRadius: 10000,
			DefaultLocation:      "San Francisco, CA",
		},
	}
}

// Load loads configuration from defaults, an optional YAML file and environment variables
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := strings.TrimSpace(os.Getenv(ConfigPathEnvVar)); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	for _, key := range []string{"server.allowed_origins", "engine.warm_locations"} {
		if raw, ok := k.Get(key).(string); ok {
			if err := k.Set(key, splitList(raw)); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// Validate rejects configurations the engine cannot run with
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server port %d out of range", c.Server.Port)
	}
	if c.Engine.RequestTimeout <= 0 {
		return errors.New("engine request timeout must be positive")
	}
	if c.Engine.HeatmapDefaultRadius <= 0 {
		return errors.New("heatmap default radius must be positive")
	}
	switch c.Engine.CorrelationTable {
	case "curated", "legacy":
	default:
		return fmt.Errorf("unknown correlation table %q", c.Engine.CorrelationTable)
	}
	return nil
}

// RedisAddr returns the Redis address
func (c *RedisConfig) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Addr returns the HTTP listen address
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

var envMappings = map[string]string{
	"server_host":             "server.host",
	"server_port":             "server.port",
	"allowed_origins":         "server.allowed_origins",
	"log_level":               "log.level",
	"environment":             "log.environment",
	"redis_enabled":           "redis.enabled",
	"redis_host":              "redis.host",
	"redis_port":              "redis.port",
	"redis_password":          "redis.password",
	"redis_db":                "redis.db",
	"places_provider":         "places.provider",
	"google_places_api_key":   "places.api_key",
	"geolocation_provider":    "geolocation.provider",
	"geolocation_api_key":     "geolocation.api_key",
	"qloo_api_key":            "qloo.api_key",
	"qloo_base_url":           "qloo.base_url",
	"openai_api_key":          "openai.api_key",
	"openai_model":            "openai.model",
	"openai_rate_limit_rpm":   "openai.rate_limit_rpm",
	"openai_rate_limit_burst": "openai.rate_limit_burst",
	"otel_service_name":       "otel.service_name",
	"otel_service_version":    "otel.service_version",
	"otel_endpoint":           "otel.endpoint",
	"otel_enabled":            "otel.enabled",
	"engine_request_timeout":  "engine.request_timeout",
	"correlation_table":       "engine.correlation_table",
	"engine_random_seed":      "engine.random_seed",
	"heatmap_default_radius":  "engine.heatmap_default_radius",
	"default_location":        "engine.default_location",
	"warm_locations":          "engine.warm_locations",
}

// envTransformFunc maps known environment variables onto config paths; unknown ones are skipped.
func envTransformFunc(key string) string {
	if mapped, ok := envMappings[strings.ToLower(key)]; ok {
		return mapped
	}
	return ""
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
