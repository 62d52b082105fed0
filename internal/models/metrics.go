package models

import "time"

// MetricsSnapshot summarises instrumentation counters for the metrics summary endpoint.
type MetricsSnapshot struct {
	CacheHitRatio            float64   `json:"cache_hit_ratio"`
	CacheHits                uint64    `json:"cache_hits"`
	CacheMisses              uint64    `json:"cache_misses"`
	RequestsTotal            uint64    `json:"requests_total"`
	AverageRequestDurationMs float64   `json:"average_request_duration_ms"`
	BackendCalls             uint64    `json:"backend_calls"`
	BackendFailures          uint64    `json:"backend_failures"`
	AverageBackendDurationMs float64   `json:"average_backend_duration_ms"`
	TimelinesGenerated       uint64    `json:"timelines_generated"`
	Goroutines               int       `json:"goroutines"`
	GeneratedAt              time.Time `json:"generated_at"`
}
