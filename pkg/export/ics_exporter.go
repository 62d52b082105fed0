package export

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/emersion/go-ical"
)

// ErrNoEvents is returned when there is nothing to put in a calendar.
var ErrNoEvents = errors.New("no events to export")

const productID = "-//meeting-planner//planner-api//EN"

// Event is a single calendar entry.
type Event struct {
	UID     string
	Summary string
	Start   time.Time
	End     time.Time
}

// ICSExporter renders events as an iCalendar document.
type ICSExporter struct {
	now func() time.Time
}

// NewICSExporter constructs an iCalendar exporter.
func NewICSExporter() *ICSExporter {
	return &ICSExporter{now: time.Now}
}

// ContentType is the MIME type of rendered output.
func (e *ICSExporter) ContentType() string { return "text/calendar; charset=utf-8" }

// Render encodes events into a VCALENDAR. Times in time.Local are written as floating local times.
func (e *ICSExporter) Render(events []Event) ([]byte, error) {
	if len(events) == 0 {
		return nil, ErrNoEvents
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, productID)

	stamp := e.now().UTC()
	for _, ev := range events {
		if !ev.End.After(ev.Start) {
			return nil, fmt.Errorf("event %q ends before it starts", ev.UID)
		}
		event := ical.NewEvent()
		event.Props.SetText(ical.PropUID, ev.UID)
		event.Props.SetDateTime(ical.PropDateTimeStamp, stamp)
		event.Props.SetDateTime(ical.PropDateTimeStart, ev.Start)
		event.Props.SetDateTime(ical.PropDateTimeEnd, ev.End)
		event.Props.SetText(ical.PropSummary, ev.Summary)
		cal.Children = append(cal.Children, event.Component)
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("encode ics: %w", err)
	}
	return buf.Bytes(), nil
}
