package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/meeting-planner-api/pkg/response"
)

const cacheHitKey = "cache_hit"

// WithResponseMeta starts the processing timer reported in the response envelope meta.
func WithResponseMeta() gin.HandlerFunc {
	return func(c *gin.Context) {
		response.StartTimer(c)
		c.Next()
	}
}

// SetCacheHit records cache hit information for the current response.
func SetCacheHit(c *gin.Context, hit bool) {
	response.SetMeta(c, cacheHitKey, hit)
}
