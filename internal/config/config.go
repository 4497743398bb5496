package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	CatalogSourceStatic   = "static"
	CatalogSourcePostgres = "postgres"

	envLocal = "local"
)

type Config struct {
	Env       string
	LogLevel  string
	Server    ServerConfig
	Planner   PlannerConfig
	Catalog   CatalogConfig
	Share     ShareConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port            int
	ShutdownTimeout time.Duration
}

type PlannerConfig struct {
	SimulatedLatency time.Duration
	SessionTTL       time.Duration
}

type CatalogConfig struct {
	Source      string
	PostgresURL string
}

type ShareConfig struct {
	Secret  string
	BaseURL string
	TTL     time.Duration
}

type RateLimitConfig struct {
	PerMinute int
	Burst     int
}

// IsLocal reports whether the service runs in a developer environment.
func (c Config) IsLocal() bool { return c.Env == envLocal }

// Load reads the configuration from the environment and an optional .env file.
func Load() (Config, error) {
	cfg := Config{}

	if err := loadEnv(); err != nil {
		return cfg, err
	}

	cfg.Env = getEnv("APP_ENV", envLocal)
	cfg.LogLevel = strings.ToLower(getEnv("LOG_LEVEL", "info"))

	port, err := parseNonNegativeIntEnv("PORT", 8080)
	if err != nil {
		return cfg, err
	}

	shutdownTimeout, err := parseDurationEnv("SHUTDOWN_TIMEOUT", 10*time.Second)
	if err != nil {
		return cfg, err
	}

	cfg.Server = ServerConfig{
		Port:            port,
		ShutdownTimeout: shutdownTimeout,
	}

	latency, err := parseNonNegativeDurationEnv("SIMULATED_LATENCY", 2*time.Second)
	if err != nil {
		return cfg, err
	}

	sessionTTL, err := parseDurationEnv("SESSION_TTL", 30*time.Minute)
	if err != nil {
		return cfg, err
	}

	cfg.Planner = PlannerConfig{
		SimulatedLatency: latency,
		SessionTTL:       sessionTTL,
	}

	cfg.Catalog = CatalogConfig{
		Source:      strings.ToLower(getEnv("CATALOG_SOURCE", CatalogSourceStatic)),
		PostgresURL: getEnv("POSTGRES_URL", ""),
	}

	shareTTL, err := parseDurationEnv("SHARE_TTL", 7*24*time.Hour)
	if err != nil {
		return cfg, err
	}

	cfg.Share = ShareConfig{
		Secret:  getEnv("SHARE_SECRET", ""),
		BaseURL: strings.TrimRight(getEnv("SHARE_BASE_URL", fmt.Sprintf("http://localhost:%d", port)), "/"),
		TTL:     shareTTL,
	}
	if cfg.Share.Secret == "" && cfg.IsLocal() {
		cfg.Share.Secret = "local-share-secret"
	}

	perMinute, err := parseNonNegativeIntEnv("RATE_LIMIT_PER_MINUTE", 60)
	if err != nil {
		return cfg, err
	}

	burst, err := parseIntEnv("RATE_LIMIT_BURST", 10)
	if err != nil {
		return cfg, err
	}

	cfg.RateLimit = RateLimitConfig{
		PerMinute: perMinute,
		Burst:     burst,
	}

	if err := cfg.validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error")
	}

	switch c.Catalog.Source {
	case CatalogSourceStatic:
	case CatalogSourcePostgres:
		if c.Catalog.PostgresURL == "" {
			return fmt.Errorf("POSTGRES_URL is required when CATALOG_SOURCE=postgres")
		}
	default:
		return fmt.Errorf("CATALOG_SOURCE must be %q or %q", CatalogSourceStatic, CatalogSourcePostgres)
	}

	if c.Share.Secret == "" {
		return fmt.Errorf("SHARE_SECRET is required")
	}

	if c.Share.BaseURL == "" {
		return fmt.Errorf("SHARE_BASE_URL is required")
	}

	if c.RateLimit.PerMinute < 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must not be negative")
	}
	if c.RateLimit.PerMinute > 0 && c.RateLimit.Burst < 1 {
		return fmt.Errorf("RATE_LIMIT_BURST must be at least 1")
	}

	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}

func parseIntEnv(key string, fallback int) (int, error) {
	parsed, err := parseNonNegativeIntEnv(key, fallback)
	if err != nil {
		return 0, err
	}

	if parsed == 0 {
		return 0, fmt.Errorf("%s must be greater than 0", key)
	}

	return parsed, nil
}

func parseNonNegativeIntEnv(key string, fallback int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}

	if parsed < 0 {
		return 0, fmt.Errorf("%s must not be negative", key)
	}

	return parsed, nil
}

func parseDurationEnv(key string, fallback time.Duration) (time.Duration, error) {
	parsed, err := parseNonNegativeDurationEnv(key, fallback)
	if err != nil {
		return 0, err
	}

	if parsed == 0 {
		return 0, fmt.Errorf("%s must be greater than 0", key)
	}

	return parsed, nil
}

func parseNonNegativeDurationEnv(key string, fallback time.Duration) (time.Duration, error) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}

	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration: %w", key, err)
	}

	if parsed < 0 {
		return 0, fmt.Errorf("%s must not be negative", key)
	}

	return parsed, nil
}

func loadEnv() error {
	if envFile := os.Getenv("ENV_FILE"); envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("load env file %s: %w", envFile, err)
		}
		return nil
	}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("load .env: %w", err)
	}

	return nil
}
