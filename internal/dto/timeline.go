package dto

import (
	"github.com/noah-isme/meeting-planner-api/internal/timeline"
)

// TimelineSegment is a merged run with display labels.
type TimelineSegment struct {
	timeline.Segment
	StartLabel      string `json:"start_label"`
	EndLabel        string `json:"end_label"`
	DurationMinutes int    `json:"duration_minutes"`
	Duration        string `json:"duration"`
}

// TimelineResponse is one user's day.
type TimelineResponse struct {
	UserID     int               `json:"user_id"`
	Window     timeline.Window   `json:"window"`
	Format     string            `json:"format"`
	Segments   []TimelineSegment `json:"segments"`
	TicksCount int               `json:"ticks_count"`
	Summary    timeline.Summary  `json:"summary"`
}

// ExportRequest selects a rendering of a user's day.
type ExportRequest struct {
	Type   string `form:"type" validate:"required,oneof=csv pdf ics"`
	Date   string `form:"date" validate:"omitempty,datetime=2006-01-02"`
	Format string `form:"format" validate:"omitempty,oneof=24h 12h 12h-lower"`
	// Mode "ticks" writes one csv/pdf row per granularity step instead of per merged segment.
	Mode string `form:"mode" validate:"omitempty,oneof=segments ticks"`
}

// ExportFile is a rendered download.
type ExportFile struct {
	Filename    string
	ContentType string
	Body        []byte
}
