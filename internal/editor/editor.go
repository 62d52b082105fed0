// Package editor implements the schedule editing operations behind a draft.
//
// Every operation returns a fresh slice and never mutates or aliases its
// input. Failed operations return an unchanged copy together with the error.
package editor

import (
	"errors"
	"fmt"

	"github.com/noah-isme/meeting-planner-api/internal/models"
	"github.com/noah-isme/meeting-planner-api/internal/timeline"
)

var (
	// ErrUserNotFound is returned when no user carries the requested id.
	ErrUserNotFound = errors.New("user not found")
	// ErrSlotIndexOutOfRange is returned for a busy index the user does not have.
	ErrSlotIndexOutOfRange = errors.New("busy slot index out of range")
)

// DefaultBusySlot is appended by AddBusySlot.
var DefaultBusySlot = timeline.Interval{Start: 9 * 60, End: 10 * 60}

// DuplicateUserError reports two users sharing an id.
type DuplicateUserError struct {
	ID int
}

func (e *DuplicateUserError) Error() string {
	return fmt.Sprintf("duplicate user id %d", e.ID)
}

// InvalidUserIDError reports a user id that is not positive.
type InvalidUserIDError struct {
	ID int
}

func (e *InvalidUserIDError) Error() string {
	return fmt.Sprintf("invalid user id %d: ids must be positive", e.ID)
}

// NextID returns 1 for an empty list, else the largest id plus one.
func NextID(users []models.UserSchedule) int {
	if len(users) == 0 {
		return 1
	}
	highest := users[0].ID
	for _, u := range users[1:] {
		if u.ID > highest {
			highest = u.ID
		}
	}
	return highest + 1
}

// AddUser appends a user with the next free id and no busy intervals.
func AddUser(users []models.UserSchedule) []models.UserSchedule {
	out := models.CloneUsers(users)
	return append(out, models.UserSchedule{ID: NextID(users), Busy: []timeline.Interval{}})
}

// RemoveUser drops the user with the given id.
func RemoveUser(users []models.UserSchedule, id int) ([]models.UserSchedule, error) {
	if indexOf(users, id) < 0 {
		return models.CloneUsers(users), ErrUserNotFound
	}
	out := make([]models.UserSchedule, 0, len(users)-1)
	for _, u := range users {
		if u.ID != id {
			out = append(out, u.Clone())
		}
	}
	return out, nil
}

// AddBusySlot appends DefaultBusySlot to the user's busy list.
func AddBusySlot(users []models.UserSchedule, userID int) ([]models.UserSchedule, error) {
	return mutateBusy(users, userID, func(busy []timeline.Interval) ([]timeline.Interval, error) {
		return append(busy, DefaultBusySlot), nil
	})
}

// RemoveBusySlot deletes the busy interval at index.
func RemoveBusySlot(users []models.UserSchedule, userID, index int) ([]models.UserSchedule, error) {
	return mutateBusy(users, userID, func(busy []timeline.Interval) ([]timeline.Interval, error) {
		if index < 0 || index >= len(busy) {
			return nil, ErrSlotIndexOutOfRange
		}
		return append(busy[:index], busy[index+1:]...), nil
	})
}

// UpdateBusySlot replaces the busy interval at index. Inverted intervals are
// rejected with *timeline.InvalidIntervalError.
func UpdateBusySlot(users []models.UserSchedule, userID, index int, iv timeline.Interval) ([]models.UserSchedule, error) {
	return mutateBusy(users, userID, func(busy []timeline.Interval) ([]timeline.Interval, error) {
		if index < 0 || index >= len(busy) {
			return nil, ErrSlotIndexOutOfRange
		}
		if err := iv.Validate(); err != nil {
			return nil, err
		}
		busy[index] = iv
		return busy, nil
	})
}

// Validate checks that ids are positive and unique and rejects inverted intervals.
func Validate(users []models.UserSchedule) error {
	seen := make(map[int]struct{}, len(users))
	for _, u := range users {
		if u.ID <= 0 {
			return &InvalidUserIDError{ID: u.ID}
		}
		if _, dup := seen[u.ID]; dup {
			return &DuplicateUserError{ID: u.ID}
		}
		seen[u.ID] = struct{}{}
		for _, iv := range u.Busy {
			if err := iv.Validate(); err != nil {
				return err
			}
		}
	}
	return nil
}

// Example returns the sample schedules offered to new drafts.
func Example() []models.UserSchedule {
	return []models.UserSchedule{
		{ID: 1, Busy: []timeline.Interval{{Start: 540, End: 630}, {Start: 780, End: 840}}},
		{ID: 2, Busy: []timeline.Interval{{Start: 660, End: 720}, {Start: 900, End: 960}}},
		{ID: 3, Busy: []timeline.Interval{{Start: 570, End: 660}, {Start: 870, End: 930}}},
	}
}

func mutateBusy(users []models.UserSchedule, userID int, fn func([]timeline.Interval) ([]timeline.Interval, error)) ([]models.UserSchedule, error) {
	out := models.CloneUsers(users)
	idx := indexOf(out, userID)
	if idx < 0 {
		return out, ErrUserNotFound
	}
	busy, err := fn(out[idx].Clone().Busy)
	if err != nil {
		return out, err
	}
	out[idx].Busy = busy
	return out, nil
}

func indexOf(users []models.UserSchedule, id int) int {
	for i, u := range users {
		if u.ID == id {
			return i
		}
	}
	return -1
}
