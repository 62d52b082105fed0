package editor

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/meeting-planner-api/internal/models"
	"github.com/noah-isme/meeting-planner-api/internal/timeline"
)

func TestAddUserAssignsIDs(t *testing.T) {
	users := AddUser(nil)
	require.Len(t, users, 1)
	assert.Equal(t, 1, users[0].ID)
	assert.NotNil(t, users[0].Busy)
	assert.Empty(t, users[0].Busy)

	users = AddUser([]models.UserSchedule{{ID: 5, Busy: []timeline.Interval{}}})
	require.Len(t, users, 2)
	assert.Equal(t, 6, users[1].ID)

	users = AddUser([]models.UserSchedule{{ID: 7}, {ID: 2}})
	assert.Equal(t, 8, users[2].ID)
}

func TestIDsStayUniqueAcrossAddRemove(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	var users []models.UserSchedule
	for i := 0; i < 500; i++ {
		if len(users) > 0 && rng.Intn(3) == 0 {
			victim := users[rng.Intn(len(users))].ID
			var err error
			users, err = RemoveUser(users, victim)
			require.NoError(t, err)
		} else {
			users = AddUser(users)
		}
		require.NoError(t, Validate(users))
	}
}

func TestRemoveUser(t *testing.T) {
	users := Example()
	out, err := RemoveUser(users, 2)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, 1, out[0].ID)
	assert.Equal(t, 3, out[1].ID)
	assert.Len(t, users, 3)

	out, err = RemoveUser(users, 99)
	require.ErrorIs(t, err, ErrUserNotFound)
	assert.Equal(t, users, out)
}

func TestAddBusySlot(t *testing.T) {
	users := Example()
	out, err := AddBusySlot(users, 3)
	require.NoError(t, err)
	require.Len(t, out[2].Busy, 3)
	assert.Equal(t, DefaultBusySlot, out[2].Busy[2])
	assert.Len(t, users[2].Busy, 2, "input must not be mutated")
	assert.Equal(t, users[0], out[0])

	_, err = AddBusySlot(users, 42)
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestRemoveBusySlotLastIntervalKeepsUser(t *testing.T) {
	users := []models.UserSchedule{{ID: 1, Busy: []timeline.Interval{{Start: 540, End: 600}}}}
	out, err := RemoveBusySlot(users, 1, 0)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, 1, out[0].ID)
	assert.Empty(t, out[0].Busy)
	assert.Len(t, users[0].Busy, 1)
}

func TestRemoveBusySlotPreservesOrder(t *testing.T) {
	users := []models.UserSchedule{{ID: 1, Busy: []timeline.Interval{{Start: 540, End: 600}, {Start: 600, End: 660}, {Start: 700, End: 720}}}}
	out, err := RemoveBusySlot(users, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, []timeline.Interval{{Start: 540, End: 600}, {Start: 700, End: 720}}, out[0].Busy)
	assert.Len(t, users[0].Busy, 3)
	assert.Equal(t, timeline.Interval{Start: 600, End: 660}, users[0].Busy[1])
}

func TestRemoveBusySlotOutOfRange(t *testing.T) {
	users := Example()
	out, err := RemoveBusySlot(users, 1, 5)
	require.ErrorIs(t, err, ErrSlotIndexOutOfRange)
	assert.Equal(t, users, out)

	_, err = RemoveBusySlot(users, 1, -1)
	require.ErrorIs(t, err, ErrSlotIndexOutOfRange)
}

func TestUpdateBusySlot(t *testing.T) {
	users := Example()
	iv := timeline.Interval{Start: 600, End: 690}
	out, err := UpdateBusySlot(users, 2, 1, iv)
	require.NoError(t, err)
	assert.Equal(t, iv, out[1].Busy[1])
	assert.Equal(t, users[1].Busy[0], out[1].Busy[0])
	assert.Equal(t, timeline.Interval{Start: 900, End: 960}, users[1].Busy[1])
}

func TestUpdateBusySlotRejectsInvertedInterval(t *testing.T) {
	users := Example()
	out, err := UpdateBusySlot(users, 1, 0, timeline.Interval{Start: 660, End: 600})
	var invalid *timeline.InvalidIntervalError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, users, out)

	_, err = UpdateBusySlot(users, 1, 0, timeline.Interval{Start: 600, End: 600})
	require.ErrorAs(t, err, &invalid)
}

func TestUpdateBusySlotUnknownUser(t *testing.T) {
	_, err := UpdateBusySlot(Example(), 9, 0, DefaultBusySlot)
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(Example()))
	require.NoError(t, Validate(nil))

	var dup *DuplicateUserError
	require.ErrorAs(t, Validate([]models.UserSchedule{{ID: 1}, {ID: 1}}), &dup)
	assert.Equal(t, 1, dup.ID)

	var invalid *timeline.InvalidIntervalError
	require.ErrorAs(t, Validate([]models.UserSchedule{{ID: 1, Busy: []timeline.Interval{{Start: 700, End: 600}}}}), &invalid)

	var badID *InvalidUserIDError
	require.ErrorAs(t, Validate([]models.UserSchedule{{ID: 0}}), &badID)
}
