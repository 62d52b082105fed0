package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/meeting-planner-api/internal/backend"
	"github.com/noah-isme/meeting-planner-api/internal/dto"
	"github.com/noah-isme/meeting-planner-api/internal/models"
	"github.com/noah-isme/meeting-planner-api/internal/timeline"
	appErrors "github.com/noah-isme/meeting-planner-api/pkg/errors"
	"github.com/noah-isme/meeting-planner-api/pkg/export"
	"github.com/noah-isme/meeting-planner-api/pkg/jobs"
)

const exportDateLayout = "2006-01-02"

// TimelineService builds labelled day timelines from backend calendars.
type TimelineService struct {
	backend   backend.Client
	cache     *CacheService
	metrics   *MetricsService
	window    timeline.Window
	validator *validator.Validate
	logger    *zap.Logger

	csv *export.CSVExporter
	pdf *export.PDFExporter
	ics *export.ICSExporter

	now func() time.Time
}

// NewTimelineService constructs the service for the given work window.
func NewTimelineService(client backend.Client, cache *CacheService, metrics *MetricsService, window timeline.Window, validate *validator.Validate, logger *zap.Logger) *TimelineService {
	if window.Validate() != nil {
		window = timeline.DefaultWindow()
	}
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TimelineService{
		backend:   client,
		cache:     cache,
		metrics:   metrics,
		window:    window,
		validator: validate,
		logger:    logger,
		csv:       export.NewCSVExporter(),
		pdf:       export.NewPDFExporter(),
		ics:       export.NewICSExporter(),
		now:       time.Now,
	}
}

// Window returns the configured work window.
func (s *TimelineService) Window() timeline.Window {
	return s.window
}

// Calendar returns the user's calendar view, reading through the cache. The
// boolean reports a cache hit.
func (s *TimelineService) Calendar(ctx context.Context, userID int) (*models.CalendarView, bool, error) {
	if userID <= 0 {
		return nil, false, appErrors.Clone(appErrors.ErrValidation, "user id must be positive")
	}
	key := CalendarKey(userID)
	var cached models.CalendarView
	if hit, err := s.cache.Get(ctx, key, &cached); err == nil && hit {
		return &cached, true, nil
	}

	view, err := s.backend.Calendar(ctx, userID)
	if err != nil {
		return nil, false, err
	}
	_ = s.cache.Set(ctx, key, view, 0)
	return view, false, nil
}

// Timeline generates and merges the user's day in the requested clock style.
func (s *TimelineService) Timeline(ctx context.Context, userID int, style timeline.ClockStyle) (*dto.TimelineResponse, bool, error) {
	view, hit, err := s.Calendar(ctx, userID)
	if err != nil {
		return nil, false, err
	}
	ticks := timeline.Generate(view.Busy, view.Meetings, s.window)
	segments := timeline.Merge(ticks, s.window.Granularity)
	s.metrics.ObserveTimeline(len(segments))

	out := &dto.TimelineResponse{
		UserID:     userID,
		Window:     s.window,
		Format:     string(style),
		Segments:   make([]dto.TimelineSegment, 0, len(segments)),
		TicksCount: len(ticks),
		Summary:    timeline.Summarize(segments),
	}
	for _, seg := range segments {
		out.Segments = append(out.Segments, dto.TimelineSegment{
			Segment:         seg,
			StartLabel:      timeline.FormatTime(seg.Start, style),
			EndLabel:        timeline.FormatTime(seg.End%timeline.MinutesPerDay, style),
			DurationMinutes: seg.Minutes(),
			Duration:        timeline.FormatDuration(seg.Minutes()),
		})
	}
	return out, hit, nil
}

// Warm loads the user's calendar from the backend into the cache.
func (s *TimelineService) Warm(ctx context.Context, userID int) error {
	if !s.cache.Enabled() {
		return nil
	}
	view, err := s.backend.Calendar(ctx, userID)
	if err != nil {
		return err
	}
	return s.cache.Set(ctx, CalendarKey(userID), view, 0)
}

// WarmupHandler adapts Warm to the job queue.
func (s *TimelineService) WarmupHandler() jobs.Handler {
	return func(ctx context.Context, job jobs.Job) error {
		userID, ok := job.Payload.(int)
		if !ok {
			s.logger.Error("warmup job without user id", zap.String("job_id", job.ID), zap.Any("payload", job.Payload))
			return nil
		}
		if err := s.Warm(ctx, userID); err != nil {
			return fmt.Errorf("warm calendar %d: %w", userID, err)
		}
		return nil
	}
}

// Export renders the user's day as CSV, PDF or iCalendar.
func (s *TimelineService) Export(ctx context.Context, userID int, req dto.ExportRequest) (*dto.ExportFile, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "invalid export request")
	}
	style, err := timeline.ParseClockStyle(req.Format)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, err.Error())
	}
	day := s.now().In(time.Local)
	if req.Date != "" {
		if day, err = time.ParseInLocation(exportDateLayout, req.Date, time.Local); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "date must be YYYY-MM-DD")
		}
	}
	date := day.Format(exportDateLayout)
	base := fmt.Sprintf("timeline-user-%d-%s", userID, date)

	switch req.Type {
	case "ics":
		view, _, err := s.Calendar(ctx, userID)
		if err != nil {
			return nil, err
		}
		body, err := s.ics.Render(meetingEvents(userID, day, view.Meetings))
		if err != nil {
			if errors.Is(err, export.ErrNoEvents) {
				return nil, appErrors.Clone(appErrors.ErrNotFound, "no meetings to export")
			}
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render calendar")
		}
		return &dto.ExportFile{Filename: base + ".ics", ContentType: s.ics.ContentType(), Body: body}, nil
	default:
		view, _, err := s.Timeline(ctx, userID, style)
		if err != nil {
			return nil, err
		}
		segments := make([]timeline.Segment, 0, len(view.Segments))
		for _, seg := range view.Segments {
			segments = append(segments, seg.Segment)
		}
		data := export.TimelineDataset(segments, style)
		if req.Mode == "ticks" {
			data = export.TickDataset(timeline.Expand(segments, s.window.Granularity), s.window.Granularity, style)
		}
		if req.Type == "csv" {
			body, err := s.csv.Render(data)
			if err != nil {
				return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
			}
			return &dto.ExportFile{Filename: base + ".csv", ContentType: s.csv.ContentType(), Body: body}, nil
		}
		title := fmt.Sprintf("Availability - user %d", userID)
		subtitle := fmt.Sprintf("%s, %s", date, timeline.FormatRange(timeline.Interval{Start: s.window.Start, End: s.window.End}, style))
		body, err := s.pdf.Render(data, title, subtitle)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		return &dto.ExportFile{Filename: base + ".pdf", ContentType: s.pdf.ContentType(), Body: body}, nil
	}
}

// meetingEvents places meetings on day as floating local times. Inverted meetings are skipped.
func meetingEvents(userID int, day time.Time, meetings []timeline.Meeting) []export.Event {
	midnight := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.Local)
	events := make([]export.Event, 0, len(meetings))
	for _, m := range meetings {
		if m.Interval().Inverted() {
			continue
		}
		seed := fmt.Sprintf("%d|%s|%s|%s|%s", userID, midnight.Format(exportDateLayout), m.Start, m.End, m.Title)
		events = append(events, export.Event{
			UID:     uuid.NewSHA1(uuid.NameSpaceURL, []byte(seed)).String() + "@planner-api",
			Summary: m.Title,
			Start:   midnight.Add(time.Duration(m.Start) * time.Minute),
			End:     midnight.Add(time.Duration(m.End) * time.Minute),
		})
	}
	return events
}
