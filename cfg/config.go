package cfg

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	CacheDriverMemory = "memory"
	CacheDriverRedis  = "redis"
)

type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

func (r RedisConfig) Addr() string { return r.Host + ":" + r.Port }

type CacheConfig struct {
	Driver     string
	TTLMinutes int
}

func (c CacheConfig) TTL() time.Duration { return time.Duration(c.TTLMinutes) * time.Minute }

type PostgresConfig struct {
	Host           string
	Port           string
	User           string
	Password       string
	DBName         string
	SSLMode        string
	MigrationsPath string
}

// Enabled reports whether score snapshots are stored.
func (p PostgresConfig) Enabled() bool { return p.Host != "" }

type SuggestionConfig struct {
	TickSeconds   int
	SnoozeSeconds int
	MaxVisible    int
	IdleMinutes   int
}

func (s SuggestionConfig) TickInterval() time.Duration {
	return time.Duration(s.TickSeconds) * time.Second
}

func (s SuggestionConfig) DefaultSnooze() time.Duration {
	return time.Duration(s.SnoozeSeconds) * time.Second
}

// IdleTimeout is how long an untouched workspace stays open.
func (s SuggestionConfig) IdleTimeout() time.Duration {
	return time.Duration(s.IdleMinutes) * time.Minute
}

type ObservabilityConfig struct {
	ServiceName  string
	OTLPEndpoint string
	Environment  string
}

// Enabled reports whether traces and metrics are exported.
func (o ObservabilityConfig) Enabled() bool { return o.OTLPEndpoint != "" }

type RateLimitConfig struct {
	RPS   float64
	Burst int
}

type Config struct {
	AppEnv          string
	AppPort         string
	SnowflakeNodeID int64
	Cache           CacheConfig
	Redis           RedisConfig
	Postgres        PostgresConfig
	Suggestions     SuggestionConfig
	Observability   ObservabilityConfig
	RateLimit       RateLimitConfig
}

// Load reads .env when present, then the environment. Every missing or
// malformed variable is reported at once.
func Load() (*Config, error) {
	var errs []error

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.New("failed load cfg: " + err.Error())
	}

	appEnv := mustEnv("APP_ENV", &errs)
	appPort := mustEnv("APP_PORT", &errs)

	cacheDriver := envOr("CACHE_DRIVER", CacheDriverMemory)
	var redis RedisConfig
	switch cacheDriver {
	case CacheDriverRedis:
		redis = RedisConfig{
			Host:     mustEnv("REDIS_HOST", &errs),
			Port:     mustEnv("REDIS_PORT", &errs),
			Password: os.Getenv("REDIS_PASSWORD"),
		}
	case CacheDriverMemory:
	default:
		errs = append(errs, fmt.Errorf("invalid env: CACHE_DRIVER must be %q or %q, got %q", CacheDriverMemory, CacheDriverRedis, cacheDriver))
	}

	postgres := PostgresConfig{
		Host:           os.Getenv("POSTGRES_HOST"),
		Port:           envOr("POSTGRES_PORT", "5432"),
		User:           os.Getenv("POSTGRES_USER"),
		Password:       os.Getenv("POSTGRES_PASSWORD"),
		DBName:         os.Getenv("POSTGRES_DB"),
		SSLMode:        envOr("POSTGRES_SSLMODE", "disable"),
		MigrationsPath: envOr("MIGRATIONS_PATH", "file://db/migrations"),
	}
	if postgres.Enabled() {
		postgres.User = mustEnv("POSTGRES_USER", &errs)
		postgres.DBName = mustEnv("POSTGRES_DB", &errs)
	}

	cfg := &Config{
		AppEnv:          appEnv,
		AppPort:         appPort,
		SnowflakeNodeID: int64(intEnv("SNOWFLAKE_NODE_ID", 1, &errs)),
		Cache: CacheConfig{
			Driver:     cacheDriver,
			TTLMinutes: intEnv("CACHE_TTL_MINUTES", 10, &errs),
		},
		Redis:    redis,
		Postgres: postgres,
		Suggestions: SuggestionConfig{
			TickSeconds:   intEnv("SUGGESTION_TICK_SECONDS", 5, &errs),
			SnoozeSeconds: intEnv("SNOOZE_DEFAULT_SECONDS", 60, &errs),
			MaxVisible:    intEnv("MAX_VISIBLE_SUGGESTIONS", 2, &errs),
			IdleMinutes:   intEnv("WORKSPACE_IDLE_MINUTES", 30, &errs),
		},
		Observability: ObservabilityConfig{
			ServiceName:  envOr("OTEL_SERVICE_NAME", "quote-workspace"),
			OTLPEndpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
			Environment:  appEnv,
		},
		RateLimit: RateLimitConfig{
			RPS:   floatEnv("RATE_LIMIT_RPS", 20, &errs),
			Burst: intEnv("RATE_LIMIT_BURST", 40, &errs),
		},
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return cfg, nil
}

func mustEnv(key string, errs *[]error) string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		*errs = append(*errs, errors.New("missing env: "+key))
	}
	return value
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// intEnv parses a non-negative integer, using fallback when the variable is unset.
func intEnv(key string, fallback int, errs *[]error) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		*errs = append(*errs, errors.New("conversion failed env: "+key))
		return fallback
	}
	return n
}

func floatEnv(key string, fallback float64, errs *[]error) float64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || f <= 0 {
		*errs = append(*errs, errors.New("conversion failed env: "+key))
		return fallback
	}
	return f
}
