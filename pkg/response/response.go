package response

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/meeting-planner-api/internal/models"
	appErrors "github.com/noah-isme/meeting-planner-api/pkg/errors"
)

const (
	metaKey      = "response_meta"
	startedAtKey = "response_started_at"
)

// Envelope represents the common response contract.
type Envelope struct {
	Data       interface{}            `json:"data,omitempty"`
	Error      *appErrors.Error       `json:"error,omitempty"`
	Pagination *models.Pagination     `json:"pagination,omitempty"`
	Meta       map[string]interface{} `json:"meta,omitempty"`
}

// JSON sends a success response with optional pagination metadata. Metadata
// recorded on the context with SetMeta is merged into the envelope.
func JSON(c *gin.Context, status int, data interface{}, pagination *models.Pagination, meta ...map[string]interface{}) {
	noStore(c)
	envelope := Envelope{Data: data, Pagination: pagination, Meta: contextMeta(c)}
	if len(meta) > 0 && meta[0] != nil {
		if envelope.Meta == nil {
			envelope.Meta = map[string]interface{}{}
		}
		for k, v := range meta[0] {
			envelope.Meta[k] = v
		}
	}
	c.JSON(status, envelope)
}

// Created responds with HTTP 201 Created.
func Created(c *gin.Context, data interface{}) {
	JSON(c, http.StatusCreated, data, nil)
}

// Error sends an error response converting the error to the common structure.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	noStore(c)
	c.AbortWithStatusJSON(appErr.Status, Envelope{Error: appErr})
}

// NoContent sends a 204 response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Attachment streams a rendered file as a download.
func Attachment(c *gin.Context, filename, contentType string, body []byte) {
	noStore(c)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, body)
}

// StartTimer marks the request start so JSON can report processing time.
func StartTimer(c *gin.Context) {
	c.Set(startedAtKey, time.Now())
}

// SetMeta records a metadata entry for the response envelope.
func SetMeta(c *gin.Context, key string, value interface{}) {
	if c == nil {
		return
	}
	meta, _ := c.Get(metaKey)
	typed, ok := meta.(map[string]interface{})
	if !ok {
		typed = map[string]interface{}{}
		c.Set(metaKey, typed)
	}
	typed[key] = value
}

func contextMeta(c *gin.Context) map[string]interface{} {
	var out map[string]interface{}
	if meta, exists := c.Get(metaKey); exists {
		if typed, ok := meta.(map[string]interface{}); ok && len(typed) > 0 {
			out = make(map[string]interface{}, len(typed)+1)
			for k, v := range typed {
				out[k] = v
			}
		}
	}
	if started, exists := c.Get(startedAtKey); exists {
		if at, ok := started.(time.Time); ok {
			if out == nil {
				out = map[string]interface{}{}
			}
			out["processing_time_ms"] = time.Since(at).Milliseconds()
		}
	}
	return out
}

func noStore(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
}
