package timeline

import "fmt"

// Status classifies a tick or segment.
type Status string

const (
	StatusAvailable Status = "available"
	StatusBusy      Status = "busy"
	StatusMeeting   Status = "meeting"
)

// Default work window and sampling step.
const (
	DefaultWorkStart   TimeOfDay = 9 * 60
	DefaultWorkEnd     TimeOfDay = 18 * 60
	DefaultGranularity           = 15
)

// Window is the daily range that gets classified, sampled every Granularity minutes.
type Window struct {
	Start       TimeOfDay `json:"work_start"`
	End         TimeOfDay `json:"work_end"`
	Granularity int       `json:"granularity_minutes"`
}

// InvalidWindowError reports an unusable work window.
type InvalidWindowError struct {
	Window Window
	Reason string
}

func (e *InvalidWindowError) Error() string {
	return fmt.Sprintf("invalid work window %s-%s/%d: %s", e.Window.Start, e.Window.End, e.Window.Granularity, e.Reason)
}

// DefaultWindow returns 09:00-18:00 in 15 minute ticks.
func DefaultWindow() Window {
	return Window{Start: DefaultWorkStart, End: DefaultWorkEnd, Granularity: DefaultGranularity}
}

// ParseWindow builds a validated window from configuration text.
func ParseWindow(start, end string, granularity int) (Window, error) {
	s, err := ParseTime(start)
	if err != nil {
		return Window{}, err
	}
	e, err := ParseTime(end)
	if err != nil {
		return Window{}, err
	}
	w := Window{Start: s, End: e, Granularity: granularity}
	if err := w.Validate(); err != nil {
		return Window{}, err
	}
	return w, nil
}

// Validate checks ordering and step size. The window length must be a whole
// number of steps so no segment ends past End.
func (w Window) Validate() error {
	if w.Granularity <= 0 {
		return &InvalidWindowError{Window: w, Reason: "granularity must be positive"}
	}
	if w.Start >= w.End {
		return &InvalidWindowError{Window: w, Reason: "start must be before end"}
	}
	if int(w.End-w.Start)%w.Granularity != 0 {
		return &InvalidWindowError{Window: w, Reason: "window length must be a multiple of the granularity"}
	}
	return nil
}

// Contains reports whether the interval lies fully inside the window.
func (w Window) Contains(iv Interval) bool {
	return iv.Start >= w.Start && iv.End <= w.End
}

// Tick is one classified sample of the work window.
type Tick struct {
	Time   TimeOfDay `json:"time"`
	Status Status    `json:"status"`
	Title  string    `json:"title,omitempty"`
}

// Generate classifies every tick of the window. A tick is busy when any busy
// interval covers it and becomes a meeting when any meeting covers it; the first
// covering meeting supplies the title.
func Generate(busy []Interval, meetings []Meeting, w Window) []Tick {
	if w.Validate() != nil {
		return nil
	}
	ticks := make([]Tick, 0, (int(w.End-w.Start)+w.Granularity-1)/w.Granularity)
	for m := w.Start; m < w.End; m += TimeOfDay(w.Granularity) {
		tick := Tick{Time: m, Status: StatusAvailable}
		for _, iv := range busy {
			if iv.Contains(m) {
				tick.Status = StatusBusy
				break
			}
		}
		for _, mt := range meetings {
			if mt.Interval().Contains(m) {
				tick.Status = StatusMeeting
				tick.Title = mt.Title
				break
			}
		}
		ticks = append(ticks, tick)
	}
	return ticks
}
