// Package backend talks to the scheduling backend that owns stored busy
// lists, slot suggestions and bookings.
package backend

import (
	"context"
	"time"

	"github.com/noah-isme/meeting-planner-api/internal/models"
	"github.com/noah-isme/meeting-planner-api/internal/timeline"
)

// Client is the port to the scheduling backend.
type Client interface {
	SubmitSchedules(ctx context.Context, users []models.UserSchedule) (*SubmitResult, error)
	Users(ctx context.Context) ([]models.UserSchedule, error)
	Suggest(ctx context.Context, duration int, userID *int) ([]timeline.Interval, error)
	Calendar(ctx context.Context, userID int) (*models.CalendarView, error)
	Book(ctx context.Context, req BookRequest) (*models.BookedMeeting, error)
	Meetings(ctx context.Context) ([]models.BookedMeeting, error)
}

// Observer receives timing for each backend round trip.
type Observer interface {
	ObserveBackendCall(operation string, duration time.Duration, err error)
}

// SubmitResult acknowledges a schedule upload.
type SubmitResult struct {
	Message   string `json:"message"`
	UserCount int    `json:"userCount"`
}

// BookRequest asks the backend to book a meeting.
type BookRequest struct {
	StartTime timeline.TimeOfDay `json:"startTime"`
	EndTime   timeline.TimeOfDay `json:"endTime"`
	Title     string             `json:"title"`
	UserID    *int               `json:"user_id"`
}

type bookResponse struct {
	Message string                `json:"message"`
	Meeting *models.BookedMeeting `json:"meeting"`
}

type slotsRequest struct {
	Users []models.UserSchedule `json:"users"`
}
