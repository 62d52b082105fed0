package models

import (
	"time"

	"github.com/noah-isme/meeting-planner-api/internal/timeline"
)

// CalendarView is a user's busy list plus the meetings booked for them.
type CalendarView struct {
	ID       int                 `json:"id"`
	Busy     []timeline.Interval `json:"busy"`
	Meetings []timeline.Meeting  `json:"meetings"`
}

// BookedMeeting is a booking record owned by the backend.
type BookedMeeting struct {
	ID        string             `json:"id"`
	StartTime timeline.TimeOfDay `json:"startTime"`
	EndTime   timeline.TimeOfDay `json:"endTime"`
	Title     string             `json:"title"`
	BookedAt  string             `json:"bookedAt"`
	UserID    *int               `json:"user_id,omitempty"`
}

// Interval returns the booked span.
func (m BookedMeeting) Interval() timeline.Interval {
	return timeline.Interval{Start: m.StartTime, End: m.EndTime}
}

// Draft is an editable set of user schedules that has not been submitted yet.
type Draft struct {
	ID          string         `json:"id"`
	Users       []UserSchedule `json:"users"`
	SubmittedAt *time.Time     `json:"submitted_at,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// Clone deep-copies the draft.
func (d Draft) Clone() Draft {
	out := d
	out.Users = CloneUsers(d.Users)
	if d.SubmittedAt != nil {
		at := *d.SubmittedAt
		out.SubmittedAt = &at
	}
	return out
}

// DraftFilter pages through stored drafts.
type DraftFilter struct {
	Page     int
	PageSize int
}
