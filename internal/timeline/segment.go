package timeline

// Segment is a maximal run of ticks sharing a status (and a title for meetings).
// Last is the start of the final tick in the run; End is the exclusive boundary.
type Segment struct {
	Start  TimeOfDay `json:"start"`
	Last   TimeOfDay `json:"last"`
	End    TimeOfDay `json:"end"`
	Status Status    `json:"status"`
	Title  string    `json:"title,omitempty"`
}

// Interval returns the [Start, End) span covered by the segment.
func (s Segment) Interval() Interval {
	return Interval{Start: s.Start, End: s.End}
}

// Minutes returns the covered duration.
func (s Segment) Minutes() int {
	return int(s.End - s.Start)
}

func (s Segment) accepts(t Tick) bool {
	if t.Status != s.Status {
		return false
	}
	return t.Status != StatusMeeting || t.Title == s.Title
}

// Merge collapses consecutive ticks in one left-to-right pass. granularity sets
// the exclusive End of each segment.
func Merge(ticks []Tick, granularity int) []Segment {
	if len(ticks) == 0 {
		return []Segment{}
	}
	step := TimeOfDay(granularity)
	segments := make([]Segment, 0, 4)
	open := Segment{Start: ticks[0].Time, Last: ticks[0].Time, Status: ticks[0].Status, Title: ticks[0].Title}
	for _, t := range ticks[1:] {
		if open.accepts(t) {
			open.Last = t.Time
			continue
		}
		open.End = open.Last + step
		segments = append(segments, open)
		open = Segment{Start: t.Time, Last: t.Time, Status: t.Status, Title: t.Title}
	}
	open.End = open.Last + step
	return append(segments, open)
}

// Expand turns segments back into ticks of the given granularity.
func Expand(segments []Segment, granularity int) []Tick {
	if granularity <= 0 {
		return nil
	}
	ticks := make([]Tick, 0, len(segments))
	for _, s := range segments {
		for m := s.Start; m <= s.Last; m += TimeOfDay(granularity) {
			ticks = append(ticks, Tick{Time: m, Status: s.Status, Title: s.Title})
		}
	}
	return ticks
}

// Summary totals the minutes spent in each status.
type Summary struct {
	AvailableMinutes int `json:"available_minutes"`
	BusyMinutes      int `json:"busy_minutes"`
	MeetingMinutes   int `json:"meeting_minutes"`
}

// Summarize adds up segment durations per status.
func Summarize(segments []Segment) Summary {
	var sum Summary
	for _, s := range segments {
		switch s.Status {
		case StatusAvailable:
			sum.AvailableMinutes += s.Minutes()
		case StatusBusy:
			sum.BusyMinutes += s.Minutes()
		case StatusMeeting:
			sum.MeetingMinutes += s.Minutes()
		}
	}
	return sum
}
