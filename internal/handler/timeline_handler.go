package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/meeting-planner-api/internal/dto"
	"github.com/noah-isme/meeting-planner-api/internal/middleware"
	"github.com/noah-isme/meeting-planner-api/internal/models"
	"github.com/noah-isme/meeting-planner-api/internal/timeline"
	appErrors "github.com/noah-isme/meeting-planner-api/pkg/errors"
	"github.com/noah-isme/meeting-planner-api/pkg/response"
)

type timelineService interface {
	Calendar(ctx context.Context, userID int) (*models.CalendarView, bool, error)
	Timeline(ctx context.Context, userID int, style timeline.ClockStyle) (*dto.TimelineResponse, bool, error)
	Export(ctx context.Context, userID int, req dto.ExportRequest) (*dto.ExportFile, error)
}

// TimelineHandler serves per-user calendar timelines.
type TimelineHandler struct {
	service timelineService
}

// NewTimelineHandler builds a new handler.
func NewTimelineHandler(service timelineService) *TimelineHandler {
	return &TimelineHandler{service: service}
}

// Calendar godoc
// @Summary Raw calendar view of a user
// @Tags Calendar
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} response.Envelope
// @Router /calendar/{userId} [get]
func (h *TimelineHandler) Calendar(c *gin.Context) {
	userID, err := intParam(c, "userId")
	if err != nil {
		response.Error(c, err)
		return
	}
	view, hit, err := h.service.Calendar(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, hit)
	response.JSON(c, http.StatusOK, view, nil)
}

// Timeline godoc
// @Summary Merged availability timeline of a user
// @Tags Calendar
// @Produce json
// @Param userId path int true "User ID"
// @Param format query string false "Clock style: 24h, 12h or 12h-lower"
// @Success 200 {object} response.Envelope
// @Router /calendar/{userId}/timeline [get]
func (h *TimelineHandler) Timeline(c *gin.Context) {
	userID, err := intParam(c, "userId")
	if err != nil {
		response.Error(c, err)
		return
	}
	style, err := clockStyle(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	view, hit, err := h.service.Timeline(c.Request.Context(), userID, style)
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, hit)
	response.JSON(c, http.StatusOK, view, nil)
}

// Export godoc
// @Summary Download a user's day as CSV, PDF or iCalendar
// @Tags Calendar
// @Produce text/csv
// @Produce application/pdf
// @Produce text/calendar
// @Param userId path int true "User ID"
// @Param type query string true "csv, pdf or ics"
// @Param date query string false "YYYY-MM-DD, defaults to today"
// @Param format query string false "Clock style for csv/pdf labels"
// @Param mode query string false "segments (default) or ticks"
// @Success 200 {file} file
// @Router /calendar/{userId}/export [get]
func (h *TimelineHandler) Export(c *gin.Context) {
	userID, err := intParam(c, "userId")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.ExportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid export query"))
		return
	}
	file, err := h.service.Export(c.Request.Context(), userID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, file.Filename, file.ContentType, file.Body)
}
