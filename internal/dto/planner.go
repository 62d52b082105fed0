package dto

import (
	"github.com/noah-isme/meeting-planner-api/internal/models"
	"github.com/noah-isme/meeting-planner-api/internal/timeline"
)

// SuggestRequest asks for free slots of Duration minutes.
type SuggestRequest struct {
	Duration int  `form:"duration" json:"duration" validate:"required,min=1"`
	UserID   *int `form:"user_id" json:"user_id" validate:"omitempty,min=1"`
}

// SlotSuggestion is a free slot with display labels.
type SlotSuggestion struct {
	Start           timeline.TimeOfDay `json:"start"`
	End             timeline.TimeOfDay `json:"end"`
	Label           string             `json:"label"`
	DurationMinutes int                `json:"duration_minutes"`
	Duration        string             `json:"duration"`
}

// BookMeetingRequest books a meeting on the backend.
type BookMeetingRequest struct {
	StartTime string `json:"startTime" validate:"required,hhmm"`
	EndTime   string `json:"endTime" validate:"required,hhmm"`
	Title     string `json:"title" validate:"max=120"`
	UserID    *int   `json:"user_id" validate:"omitempty,min=1"`
}

// MeetingView decorates a booked meeting with its duration and label.
type MeetingView struct {
	models.BookedMeeting
	Label           string `json:"label"`
	DurationMinutes int    `json:"duration_minutes"`
	Duration        string `json:"duration"`
}
