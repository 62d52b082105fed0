package dto

import "github.com/noah-isme/meeting-planner-api/internal/models"

// CreateDraftRequest seeds a new draft. Example replaces Users with the bundled sample.
type CreateDraftRequest struct {
	Users   []models.UserSchedule `json:"users"`
	Example bool                  `json:"example"`
}

// UpdateBusySlotRequest replaces one busy interval.
type UpdateBusySlotRequest struct {
	Start string `json:"start" validate:"required,hhmm"`
	End   string `json:"end" validate:"required,hhmm"`
}

// SubmitDraftResponse reports what the backend accepted.
type SubmitDraftResponse struct {
	DraftID      string `json:"draft_id"`
	Message      string `json:"message"`
	UserCount    int    `json:"user_count"`
	WarmupQueued int    `json:"warmup_queued"`
}
