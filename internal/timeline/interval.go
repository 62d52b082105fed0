package timeline

import (
	"encoding/json"
	"fmt"
)

// Interval is a half-open [Start, End) busy period. Inverted intervals are
// representable; they simply cover nothing.
type Interval struct {
	Start TimeOfDay
	End   TimeOfDay
}

// InvalidIntervalError reports an interval whose start is not before its end.
type InvalidIntervalError struct {
	Interval Interval
}

func (e *InvalidIntervalError) Error() string {
	return fmt.Sprintf("invalid interval %s-%s: start must be before end", e.Interval.Start, e.Interval.End)
}

// NewInterval parses two HH:MM strings into an Interval without ordering checks.
func NewInterval(start, end string) (Interval, error) {
	s, err := ParseTime(start)
	if err != nil {
		return Interval{}, err
	}
	e, err := ParseTime(end)
	if err != nil {
		return Interval{}, err
	}
	return Interval{Start: s, End: e}, nil
}

// Contains applies the half-open containment rule.
func (iv Interval) Contains(t TimeOfDay) bool {
	return t >= iv.Start && t < iv.End
}

// Inverted reports whether the interval covers no time at all.
func (iv Interval) Inverted() bool {
	return iv.Start >= iv.End
}

// Validate rejects inverted intervals.
func (iv Interval) Validate() error {
	if iv.Inverted() {
		return &InvalidIntervalError{Interval: iv}
	}
	return nil
}

// MarshalJSON encodes the interval as ["HH:MM","HH:MM"].
func (iv Interval) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]TimeOfDay{iv.Start, iv.End})
}

// UnmarshalJSON decodes ["HH:MM","HH:MM"].
func (iv *Interval) UnmarshalJSON(data []byte) error {
	var pair []TimeOfDay
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("interval must have exactly two times, got %d", len(pair))
	}
	iv.Start, iv.End = pair[0], pair[1]
	return nil
}

// Meeting is a confirmed booking. It outranks busy intervals on the timeline.
type Meeting struct {
	Start TimeOfDay `json:"startTime"`
	End   TimeOfDay `json:"endTime"`
	Title string    `json:"title"`
}

// Interval returns the meeting span.
func (m Meeting) Interval() Interval {
	return Interval{Start: m.Start, End: m.End}
}
