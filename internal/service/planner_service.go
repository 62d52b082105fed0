package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/meeting-planner-api/internal/backend"
	"github.com/noah-isme/meeting-planner-api/internal/dto"
	"github.com/noah-isme/meeting-planner-api/internal/models"
	"github.com/noah-isme/meeting-planner-api/internal/timeline"
	appErrors "github.com/noah-isme/meeting-planner-api/pkg/errors"
)

const (
	// DefaultMeetingTitle is used when a booking arrives without a title.
	DefaultMeetingTitle = "Meeting"
	// DefaultMaxSuggestDuration bounds suggestion requests to one work day.
	DefaultMaxSuggestDuration = 480
)

// PlannerService fronts the backend's suggestion and booking endpoints.
type PlannerService struct {
	backend     backend.Client
	cache       *CacheService
	window      timeline.Window
	maxDuration int
	validator   *validator.Validate
	logger      *zap.Logger
}

// NewPlannerService constructs the service.
func NewPlannerService(client backend.Client, cache *CacheService, window timeline.Window, maxDuration int, validate *validator.Validate, logger *zap.Logger) *PlannerService {
	if window.Validate() != nil {
		window = timeline.DefaultWindow()
	}
	if maxDuration <= 0 {
		maxDuration = DefaultMaxSuggestDuration
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PlannerService{
		backend:     client,
		cache:       cache,
		window:      window,
		maxDuration: maxDuration,
		validator:   registerTimeValidators(validate),
		logger:      logger,
	}
}

// Suggest returns free slots of the requested duration, labelled in style.
func (s *PlannerService) Suggest(ctx context.Context, req dto.SuggestRequest, style timeline.ClockStyle) ([]dto.SlotSuggestion, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "invalid suggestion request")
	}
	if req.Duration > s.maxDuration {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("duration must be between 1 and %d minutes", s.maxDuration))
	}

	slots, err := s.backend.Suggest(ctx, req.Duration, req.UserID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SlotSuggestion, 0, len(slots))
	for _, iv := range slots {
		minutes := timeline.SlotDuration(iv)
		out = append(out, dto.SlotSuggestion{
			Start:           iv.Start,
			End:             iv.End,
			Label:           timeline.FormatRange(iv, style),
			DurationMinutes: minutes,
			Duration:        timeline.FormatDuration(minutes),
		})
	}
	return out, nil
}

// Book validates and books a meeting, then drops every cached calendar.
func (s *PlannerService) Book(ctx context.Context, req dto.BookMeetingRequest, style timeline.ClockStyle) (*dto.MeetingView, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "invalid booking")
	}
	iv, err := timeline.NewInterval(req.StartTime, req.EndTime)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid time format, use HH:MM")
	}
	if iv.Inverted() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "end time must be after start time")
	}
	if !s.window.Contains(iv) {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("meeting must be within work hours (%s)", timeline.FormatRange(timeline.Interval{Start: s.window.Start, End: s.window.End}, timeline.Clock24h)))
	}
	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = DefaultMeetingTitle
	}

	meeting, err := s.backend.Book(ctx, backend.BookRequest{StartTime: iv.Start, EndTime: iv.End, Title: title, UserID: req.UserID})
	if err != nil {
		return nil, err
	}

	// the backend lists every booking on every user's calendar
	if err := s.cache.InvalidateCalendars(ctx); err != nil {
		s.logger.Warn("calendar cache invalidation failed", zap.String("meeting_id", meeting.ID), zap.Error(err))
	}

	view := meetingView(*meeting, style)
	return &view, nil
}

// Meetings lists booked meetings with durations.
func (s *PlannerService) Meetings(ctx context.Context, style timeline.ClockStyle) ([]dto.MeetingView, error) {
	meetings, err := s.backend.Meetings(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MeetingView, 0, len(meetings))
	for _, m := range meetings {
		out = append(out, meetingView(m, style))
	}
	return out, nil
}

// Users lists the schedules stored on the backend.
func (s *PlannerService) Users(ctx context.Context) ([]models.UserSchedule, error) {
	return s.backend.Users(ctx)
}

func meetingView(m models.BookedMeeting, style timeline.ClockStyle) dto.MeetingView {
	minutes := timeline.SlotDuration(m.Interval())
	return dto.MeetingView{
		BookedMeeting:   m,
		Label:           timeline.FormatRange(m.Interval(), style),
		DurationMinutes: minutes,
		Duration:        timeline.FormatDuration(minutes),
	}
}
