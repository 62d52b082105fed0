package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/meeting-planner-api/internal/service"
	"github.com/noah-isme/meeting-planner-api/pkg/response"
)

func TestRateLimitRejectsBurstOverflow(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RateLimit(0.001, 2, nil))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		router.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, codes)

	// a different client has its own bucket
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestLimiterStoreEvictsIdleClients(t *testing.T) {
	clock := time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC)
	store := newLimiterStore(1, 1)
	store.now = func() time.Time { return clock }
	store.lastSweep = clock

	first := store.get("10.0.0.1")
	store.get("10.0.0.2")
	require.Equal(t, 2, store.size())

	clock = clock.Add(5 * time.Minute)
	assert.Same(t, first, store.get("10.0.0.1"))

	// 10.0.0.2 has been idle past the ttl, 10.0.0.1 was seen 6 minutes ago
	clock = clock.Add(6 * time.Minute)
	store.get("10.0.0.3")
	assert.Equal(t, 2, store.size())

	clock = clock.Add(limiterIdleTTL + time.Minute)
	store.get("10.0.0.3")
	assert.Equal(t, 1, store.size())
	assert.NotSame(t, first, store.get("10.0.0.1"))
}

func TestRateLimitDisabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RateLimit(0, 1, nil))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusNoContent, rec.Code)
	}
}

func TestResponseMetaCarriesCacheHit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(WithResponseMeta())
	router.GET("/", func(c *gin.Context) {
		SetCacheHit(c, true)
		response.JSON(c, http.StatusOK, gin.H{"ok": true}, nil)
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Meta map[string]interface{} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body.Meta["cache_hit"])
	assert.Contains(t, body.Meta, "processing_time_ms")
}

func TestMetricsMiddlewareObservesRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	metrics := service.NewMetricsService()
	router := gin.New()
	router.Use(Metrics(metrics, "/metrics"))
	router.GET("/items/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	for _, path := range []string{"/items/7", "/items/8", "/nope/123", "/metrics"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	snapshot := metrics.Snapshot()
	assert.Equal(t, uint64(3), snapshot.RequestsTotal)
	assert.WithinDuration(t, time.Now().UTC(), snapshot.GeneratedAt, time.Minute)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rec.Body.String()
	assert.Contains(t, body, `path="/items/:id"`)
	assert.Contains(t, body, `path="unmatched"`)
	assert.NotContains(t, body, "/nope/123")
	assert.NotContains(t, body, `path="/metrics"`)
}
