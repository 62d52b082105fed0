package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "/api/v1", cfg.APIPrefix)
	assert.Equal(t, "09:00", cfg.Timeline.WorkStart)
	assert.Equal(t, "18:00", cfg.Timeline.WorkEnd)
	assert.Equal(t, 15, cfg.Timeline.GranularityMinutes)
	assert.Equal(t, 5*time.Second, cfg.Backend.Timeout)
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, 480, cfg.Suggest.MaxDuration)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("BACKEND_URL", "http://planner:8000/")
	t.Setenv("BACKEND_TIMEOUT", "750ms")
	t.Setenv("TIMELINE_WORK_START", "08:30")
	t.Setenv("TIMELINE_GRANULARITY_MINUTES", "30")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test, ,http://b.test")
	t.Setenv("CALENDAR_CACHE_TTL", "not-a-duration")
	t.Setenv("RATE_LIMIT_RPS", "2.5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://planner:8000", cfg.Backend.BaseURL)
	assert.Equal(t, 750*time.Millisecond, cfg.Backend.Timeout)
	assert.Equal(t, "08:30", cfg.Timeline.WorkStart)
	assert.Equal(t, 30, cfg.Timeline.GranularityMinutes)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, time.Minute, cfg.Cache.TTL)
	assert.InDelta(t, 2.5, cfg.RateLimit.RPS, 0.0001)
}
