package models

import (
	"github.com/noah-isme/meeting-planner-api/internal/timeline"
)

// UserSchedule is one participant and the busy intervals they declared.
type UserSchedule struct {
	ID   int                 `json:"id"`
	Busy []timeline.Interval `json:"busy"`
}

// Clone returns a deep copy so callers never share the busy slice.
func (u UserSchedule) Clone() UserSchedule {
	busy := make([]timeline.Interval, len(u.Busy))
	copy(busy, u.Busy)
	return UserSchedule{ID: u.ID, Busy: busy}
}

// CloneUsers deep-copies a user list.
func CloneUsers(users []UserSchedule) []UserSchedule {
	out := make([]UserSchedule, len(users))
	for i, u := range users {
		out[i] = u.Clone()
	}
	return out
}

// Pagination contains pagination metadata returned in list responses.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
}
