package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/meeting-planner-api/internal/dto"
	"github.com/noah-isme/meeting-planner-api/internal/models"
	"github.com/noah-isme/meeting-planner-api/internal/timeline"
	appErrors "github.com/noah-isme/meeting-planner-api/pkg/errors"
	"github.com/noah-isme/meeting-planner-api/pkg/response"
)

type plannerService interface {
	Suggest(ctx context.Context, req dto.SuggestRequest, style timeline.ClockStyle) ([]dto.SlotSuggestion, error)
	Book(ctx context.Context, req dto.BookMeetingRequest, style timeline.ClockStyle) (*dto.MeetingView, error)
	Meetings(ctx context.Context, style timeline.ClockStyle) ([]dto.MeetingView, error)
	Users(ctx context.Context) ([]models.UserSchedule, error)
}

// PlannerHandler exposes suggestions, bookings and the backend user list.
type PlannerHandler struct {
	service plannerService
}

// NewPlannerHandler builds a new handler.
func NewPlannerHandler(service plannerService) *PlannerHandler {
	return &PlannerHandler{service: service}
}

// Suggestions godoc
// @Summary Suggest free meeting slots
// @Tags Planner
// @Produce json
// @Param duration query int true "Meeting length in minutes (1-480)"
// @Param user_id query int false "Restrict to one user"
// @Param format query string false "Clock style for labels"
// @Success 200 {object} response.Envelope
// @Router /suggestions [get]
func (h *PlannerHandler) Suggestions(c *gin.Context) {
	duration, err := intQuery(c, "duration")
	if err != nil {
		response.Error(c, err)
		return
	}
	if duration == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "duration is required"))
		return
	}
	userID, err := intQuery(c, "user_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	style, err := clockStyle(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	slots, err := h.service.Suggest(c.Request.Context(), dto.SuggestRequest{Duration: *duration, UserID: userID}, style)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, slots, nil, map[string]interface{}{"count": len(slots)})
}

// Book godoc
// @Summary Book a meeting
// @Tags Planner
// @Accept json
// @Produce json
// @Param payload body dto.BookMeetingRequest true "Booking"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /bookings [post]
func (h *PlannerHandler) Book(c *gin.Context) {
	var req dto.BookMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid booking payload"))
		return
	}
	style, err := clockStyle(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	meeting, err := h.service.Book(c.Request.Context(), req, style)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, meeting)
}

// Meetings godoc
// @Summary List booked meetings
// @Tags Planner
// @Produce json
// @Param format query string false "Clock style for labels"
// @Success 200 {object} response.Envelope
// @Router /meetings [get]
func (h *PlannerHandler) Meetings(c *gin.Context) {
	style, err := clockStyle(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	meetings, err := h.service.Meetings(c.Request.Context(), style)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, meetings, nil)
}

// Users godoc
// @Summary List users stored on the scheduling backend
// @Tags Planner
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /users [get]
func (h *PlannerHandler) Users(c *gin.Context) {
	users, err := h.service.Users(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, users, nil)
}
