package timeline

import "fmt"

// SlotDuration returns the minutes between the two endpoints, or 0 when inverted.
func SlotDuration(iv Interval) int {
	if iv.Inverted() {
		return 0
	}
	return int(iv.End - iv.Start)
}

// FormatDuration renders minutes as "45 min", "1 h" or "1 h 30 min".
func FormatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}
	hours := minutes / 60
	mins := minutes % 60
	if mins == 0 {
		return fmt.Sprintf("%d h", hours)
	}
	return fmt.Sprintf("%d h %d min", hours, mins)
}

// FormatRange renders "start - end" in the requested style.
func FormatRange(iv Interval, style ClockStyle) string {
	return fmt.Sprintf("%s - %s", FormatTime(iv.Start, style), FormatTime(iv.End, style))
}
