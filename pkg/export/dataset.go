package export

import (
	"github.com/noah-isme/meeting-planner-api/internal/timeline"
)

// Column names used by timeline datasets.
const (
	ColumnStart    = "Start"
	ColumnEnd      = "End"
	ColumnStatus   = "Status"
	ColumnTitle    = "Title"
	ColumnDuration = "Duration"
)

// Dataset defines tabular export content.
type Dataset struct {
	Headers []string
	Rows    []map[string]string
}

// TimelineDataset flattens merged segments into one row per segment.
func TimelineDataset(segments []timeline.Segment, style timeline.ClockStyle) Dataset {
	data := Dataset{
		Headers: []string{ColumnStart, ColumnEnd, ColumnStatus, ColumnTitle, ColumnDuration},
		Rows:    make([]map[string]string, 0, len(segments)),
	}
	for _, seg := range segments {
		data.Rows = append(data.Rows, map[string]string{
			ColumnStart:    timeline.FormatTime(seg.Start, style),
			ColumnEnd:      timeline.FormatTime(seg.End%timeline.MinutesPerDay, style),
			ColumnStatus:   string(seg.Status),
			ColumnTitle:    seg.Title,
			ColumnDuration: timeline.FormatDuration(seg.Minutes()),
		})
	}
	return data
}

// TickDataset writes one row per tick, each spanning granularity minutes.
func TickDataset(ticks []timeline.Tick, granularity int, style timeline.ClockStyle) Dataset {
	segments := make([]timeline.Segment, 0, len(ticks))
	for _, t := range ticks {
		segments = append(segments, timeline.Segment{
			Start:  t.Time,
			Last:   t.Time,
			End:    t.Time + timeline.TimeOfDay(granularity),
			Status: t.Status,
			Title:  t.Title,
		})
	}
	return TimelineDataset(segments, style)
}
