package timeline

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// MinutesPerDay bounds every TimeOfDay value.
const MinutesPerDay = 24 * 60

// TimeOfDay is a naive wall-clock time expressed as minutes since 00:00.
type TimeOfDay int

// ClockStyle selects how a TimeOfDay is rendered for display.
type ClockStyle string

const (
	Clock24h      ClockStyle = "24h"
	Clock12h      ClockStyle = "12h"
	Clock12hLower ClockStyle = "12h-lower"
)

// MalformedTimeError reports text that is not a valid HH:MM time.
type MalformedTimeError struct {
	Input  string
	Reason string
}

func (e *MalformedTimeError) Error() string {
	return fmt.Sprintf("malformed time %q: %s", e.Input, e.Reason)
}

// ParseTime converts HH:MM (24-hour) text into a TimeOfDay.
func ParseTime(text string) (TimeOfDay, error) {
	hh, mm, ok := strings.Cut(text, ":")
	if !ok {
		return 0, &MalformedTimeError{Input: text, Reason: "expected HH:MM"}
	}
	if len(hh) == 0 || len(hh) > 2 || len(mm) != 2 {
		return 0, &MalformedTimeError{Input: text, Reason: "expected HH:MM"}
	}
	hours, err := parseDigits(hh)
	if err != nil {
		return 0, &MalformedTimeError{Input: text, Reason: "hours are not numeric"}
	}
	minutes, err := parseDigits(mm)
	if err != nil {
		return 0, &MalformedTimeError{Input: text, Reason: "minutes are not numeric"}
	}
	if hours > 23 {
		return 0, &MalformedTimeError{Input: text, Reason: "hours out of range"}
	}
	if minutes > 59 {
		return 0, &MalformedTimeError{Input: text, Reason: "minutes out of range"}
	}
	return TimeOfDay(hours*60 + minutes), nil
}

// MustParseTime is ParseTime for compile-time constants; it panics on bad input.
func MustParseTime(text string) TimeOfDay {
	t, err := ParseTime(text)
	if err != nil {
		panic(err)
	}
	return t
}

// parseDigits rejects signs and spaces that strconv.Atoi would otherwise accept.
func parseDigits(s string) (int, error) {
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, strconv.ErrSyntax
		}
	}
	return strconv.Atoi(s)
}

// Valid reports whether t lies within a single day.
func (t TimeOfDay) Valid() bool {
	return t >= 0 && t < MinutesPerDay
}

// Hour returns the 0-23 hour component.
func (t TimeOfDay) Hour() int { return int(t) / 60 }

// Minute returns the 0-59 minute component.
func (t TimeOfDay) Minute() int { return int(t) % 60 }

// String renders the canonical HH:MM form.
func (t TimeOfDay) String() string {
	return FormatTime(t, Clock24h)
}

// Format renders t in the requested clock style.
func (t TimeOfDay) Format(style ClockStyle) string {
	return FormatTime(t, style)
}

// FormatTime renders minutes as a display label. Unknown styles fall back to 24h.
func FormatTime(t TimeOfDay, style ClockStyle) string {
	hours, minutes := t.Hour(), t.Minute()
	switch style {
	case Clock12h, Clock12hLower:
		period := "AM"
		if hours >= 12 {
			period = "PM"
		}
		display := hours
		switch {
		case hours == 0:
			display = 12
		case hours > 12:
			display = hours - 12
		}
		if style == Clock12hLower {
			period = strings.ToLower(period)
		}
		return fmt.Sprintf("%d:%02d %s", display, minutes, period)
	default:
		return fmt.Sprintf("%02d:%02d", hours, minutes)
	}
}

// ParseClockStyle maps a query value to a ClockStyle; empty selects 24h.
func ParseClockStyle(raw string) (ClockStyle, error) {
	switch ClockStyle(strings.ToLower(strings.TrimSpace(raw))) {
	case "", Clock24h:
		return Clock24h, nil
	case Clock12h:
		return Clock12h, nil
	case Clock12hLower:
		return Clock12hLower, nil
	default:
		return "", fmt.Errorf("unknown clock style %q", raw)
	}
}

// MarshalJSON encodes the canonical HH:MM string.
func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes HH:MM and rejects anything else.
func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return &MalformedTimeError{Input: string(data), Reason: "expected a string"}
	}
	parsed, err := ParseTime(raw)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
