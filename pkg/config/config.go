package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Redis     RedisConfig
	CORS      CORSConfig
	Log       LogConfig
	Backend   BackendConfig
	Timeline  TimelineConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
	Warmup    WarmupConfig
	Suggest   SuggestConfig
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// BackendConfig points at the scheduling backend that owns suggestions and bookings.
type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

// TimelineConfig is the work window, kept as text until the timeline package parses it.
type TimelineConfig struct {
	WorkStart          string
	WorkEnd            string
	GranularityMinutes int
}

// CacheConfig governs the redis read-through cache for calendar views.
type CacheConfig struct {
	Enabled bool
	TTL     time.Duration
}

// RateLimitConfig bounds per-client request rates. RPS <= 0 disables limiting.
type RateLimitConfig struct {
	RPS   float64
	Burst int
}

// WarmupConfig sizes the calendar cache warmup worker pool.
type WarmupConfig struct {
	Workers int
	Retries int
}

// SuggestConfig bounds suggestion requests.
type SuggestConfig struct {
	MaxDuration int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !isMissingFile(err) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.Redis = RedisConfig{
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Backend = BackendConfig{
		BaseURL: strings.TrimRight(v.GetString("BACKEND_URL"), "/"),
		Timeout: parseDuration(v.GetString("BACKEND_TIMEOUT"), 5*time.Second),
	}

	cfg.Timeline = TimelineConfig{
		WorkStart:          v.GetString("TIMELINE_WORK_START"),
		WorkEnd:            v.GetString("TIMELINE_WORK_END"),
		GranularityMinutes: v.GetInt("TIMELINE_GRANULARITY_MINUTES"),
	}

	cfg.Cache = CacheConfig{
		Enabled: v.GetBool("ENABLE_CALENDAR_CACHE"),
		TTL:     parseDuration(v.GetString("CALENDAR_CACHE_TTL"), time.Minute),
	}

	cfg.RateLimit = RateLimitConfig{
		RPS:   v.GetFloat64("RATE_LIMIT_RPS"),
		Burst: v.GetInt("RATE_LIMIT_BURST"),
	}

	cfg.Warmup = WarmupConfig{
		Workers: v.GetInt("WARMUP_WORKERS"),
		Retries: v.GetInt("WARMUP_RETRIES"),
	}

	cfg.Suggest = SuggestConfig{
		MaxDuration: v.GetInt("SUGGEST_MAX_DURATION"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("BACKEND_URL", "http://localhost:8000")
	v.SetDefault("BACKEND_TIMEOUT", "5s")

	v.SetDefault("TIMELINE_WORK_START", "09:00")
	v.SetDefault("TIMELINE_WORK_END", "18:00")
	v.SetDefault("TIMELINE_GRANULARITY_MINUTES", 15)

	v.SetDefault("ENABLE_CALENDAR_CACHE", false)
	v.SetDefault("CALENDAR_CACHE_TTL", "1m")

	v.SetDefault("RATE_LIMIT_RPS", 0)
	v.SetDefault("RATE_LIMIT_BURST", 20)

	v.SetDefault("WARMUP_WORKERS", 2)
	v.SetDefault("WARMUP_RETRIES", 2)

	v.SetDefault("SUGGEST_MAX_DURATION", 480)
}

func isMissingFile(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
