package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/meeting-planner-api/internal/dto"
	"github.com/noah-isme/meeting-planner-api/internal/models"
	"github.com/noah-isme/meeting-planner-api/internal/repository"
	"github.com/noah-isme/meeting-planner-api/internal/timeline"
	appErrors "github.com/noah-isme/meeting-planner-api/pkg/errors"
)

type draftFixture struct {
	svc     *DraftService
	backend *stubBackend
	cache   *memoryCache
	queue   *recordingQueue
}

func newDraftFixture() draftFixture {
	be := newStubBackend()
	mem := newMemoryCache()
	queue := &recordingQueue{}
	cache := NewCacheService(mem, NewMetricsService(), 0, nil, true)
	svc := NewDraftService(repository.NewDraftRepository(), be, cache, queue, nil, nil)
	return draftFixture{svc: svc, backend: be, cache: mem, queue: queue}
}

func TestDraftServiceCreateFromExample(t *testing.T) {
	f := newDraftFixture()
	draft, err := f.svc.Create(context.Background(), dto.CreateDraftRequest{Example: true})
	require.NoError(t, err)
	assert.Len(t, draft.Users, 3)
	assert.NotEmpty(t, draft.ID)
}

func TestDraftServiceCreateRejectsInvalidSeed(t *testing.T) {
	f := newDraftFixture()
	_, err := f.svc.Create(context.Background(), dto.CreateDraftRequest{Users: []models.UserSchedule{{ID: 1}, {ID: 1}}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
}

func TestDraftServiceEditingFlow(t *testing.T) {
	f := newDraftFixture()
	ctx := context.Background()

	draft, err := f.svc.Create(ctx, dto.CreateDraftRequest{})
	require.NoError(t, err)
	assert.Empty(t, draft.Users)

	draft, err = f.svc.AddUser(ctx, draft.ID)
	require.NoError(t, err)
	require.Len(t, draft.Users, 1)
	assert.Equal(t, 1, draft.Users[0].ID)

	draft, err = f.svc.AddBusySlot(ctx, draft.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, []timeline.Interval{{Start: 540, End: 600}}, draft.Users[0].Busy)

	draft, err = f.svc.UpdateBusySlot(ctx, draft.ID, 1, 0, dto.UpdateBusySlotRequest{Start: "13:00", End: "14:30"})
	require.NoError(t, err)
	assert.Equal(t, []timeline.Interval{{Start: 780, End: 870}}, draft.Users[0].Busy)

	stored, err := f.svc.Get(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, draft.Users, stored.Users)

	draft, err = f.svc.RemoveBusySlot(ctx, draft.ID, 1, 0)
	require.NoError(t, err)
	assert.Empty(t, draft.Users[0].Busy)

	draft, err = f.svc.RemoveUser(ctx, draft.ID, 1)
	require.NoError(t, err)
	assert.Empty(t, draft.Users)
}

func TestDraftServiceEditErrors(t *testing.T) {
	f := newDraftFixture()
	ctx := context.Background()
	draft, err := f.svc.Create(ctx, dto.CreateDraftRequest{Example: true})
	require.NoError(t, err)

	_, err = f.svc.RemoveUser(ctx, draft.ID, 42)
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))

	_, err = f.svc.RemoveBusySlot(ctx, draft.ID, 1, 9)
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))

	_, err = f.svc.UpdateBusySlot(ctx, draft.ID, 1, 0, dto.UpdateBusySlotRequest{Start: "9am", End: "10:00"})
	assert.True(t, errors.Is(err, appErrors.ErrValidation))

	_, err = f.svc.UpdateBusySlot(ctx, draft.ID, 1, 0, dto.UpdateBusySlotRequest{Start: "11:00", End: "10:00"})
	assert.True(t, errors.Is(err, appErrors.ErrValidation))

	_, err = f.svc.AddUser(ctx, "missing")
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))

	// failed edits leave the stored draft untouched
	stored, err := f.svc.Get(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, draft.Users, stored.Users)
}

func TestDraftServiceSubmit(t *testing.T) {
	f := newDraftFixture()
	ctx := context.Background()
	require.NoError(t, f.cache.Set(ctx, CalendarKey(2), models.CalendarView{ID: 2}, 0))
	require.NoError(t, f.cache.Set(ctx, CalendarKey(9), models.CalendarView{ID: 9}, 0))

	draft, err := f.svc.Create(ctx, dto.CreateDraftRequest{Example: true})
	require.NoError(t, err)

	res, err := f.svc.Submit(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, res.UserCount)
	assert.Equal(t, 3, res.WarmupQueued)
	assert.Len(t, f.queue.jobs, 3)
	assert.Equal(t, WarmupJobType, f.queue.jobs[0].Type)
	assert.Equal(t, 1, f.queue.jobs[0].Payload)
	assert.Equal(t, draft.Users, f.backend.submitted)

	assert.False(t, f.cache.has(CalendarKey(2)))
	assert.True(t, f.cache.has(CalendarKey(9)))

	stored, err := f.svc.Get(ctx, draft.ID)
	require.NoError(t, err)
	assert.NotNil(t, stored.SubmittedAt)

	edited, err := f.svc.AddBusySlot(ctx, draft.ID, 1)
	require.NoError(t, err)
	assert.Nil(t, edited.SubmittedAt, "edited draft no longer matches what was submitted")
	stored, err = f.svc.Get(ctx, draft.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.SubmittedAt)
}

func TestDraftServiceConcurrentEditsAreNotLost(t *testing.T) {
	f := newDraftFixture()
	ctx := context.Background()
	draft, err := f.svc.Create(ctx, dto.CreateDraftRequest{})
	require.NoError(t, err)

	const editors = 20
	var wg sync.WaitGroup
	for i := 0; i < editors; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.AddUser(ctx, draft.ID)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	stored, err := f.svc.Get(ctx, draft.ID)
	require.NoError(t, err)
	require.Len(t, stored.Users, editors)
	assert.Equal(t, editors, stored.Users[editors-1].ID)
}

func TestDraftServiceSubmitFailures(t *testing.T) {
	f := newDraftFixture()
	ctx := context.Background()

	empty, err := f.svc.Create(ctx, dto.CreateDraftRequest{})
	require.NoError(t, err)
	_, err = f.svc.Submit(ctx, empty.ID)
	assert.True(t, errors.Is(err, appErrors.ErrValidation))

	draft, err := f.svc.Create(ctx, dto.CreateDraftRequest{Example: true})
	require.NoError(t, err)
	f.backend.err = appErrors.Clone(appErrors.ErrBackendUnavailable, "down")
	_, err = f.svc.Submit(ctx, draft.ID)
	assert.True(t, errors.Is(err, appErrors.ErrBackendUnavailable))
	assert.Empty(t, f.queue.jobs)

	stored, err := f.svc.Get(ctx, draft.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.SubmittedAt)
}

func TestDraftServiceList(t *testing.T) {
	f := newDraftFixture()
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_, err := f.svc.Create(ctx, dto.CreateDraftRequest{})
		require.NoError(t, err)
	}
	drafts, pagination, err := f.svc.List(ctx, models.DraftFilter{PageSize: 2})
	require.NoError(t, err)
	assert.Len(t, drafts, 2)
	assert.Equal(t, 3, pagination.TotalCount)
	assert.Equal(t, 1, pagination.Page)
}
