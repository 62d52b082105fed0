package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/meeting-planner-api/internal/backend"
	"github.com/noah-isme/meeting-planner-api/internal/dto"
	"github.com/noah-isme/meeting-planner-api/internal/editor"
	"github.com/noah-isme/meeting-planner-api/internal/models"
	"github.com/noah-isme/meeting-planner-api/internal/timeline"
	appErrors "github.com/noah-isme/meeting-planner-api/pkg/errors"
	"github.com/noah-isme/meeting-planner-api/pkg/jobs"
)

// WarmupJobType tags calendar warmup jobs.
const WarmupJobType = "calendar.warm"

type draftRepository interface {
	Create(ctx context.Context, draft *models.Draft) error
	FindByID(ctx context.Context, id string) (*models.Draft, error)
	Update(ctx context.Context, draft *models.Draft) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter models.DraftFilter) ([]models.Draft, int, error)
}

type warmupQueue interface {
	TryEnqueue(job jobs.Job) error
}

// DraftService runs schedule editor sessions and submits finished drafts to the backend.
type DraftService struct {
	repo      draftRepository
	backend   backend.Client
	cache     *CacheService
	warmup    warmupQueue
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time

	locks sync.Map // draft id -> *sync.Mutex
}

// NewDraftService constructs the service. cache and warmup may be nil.
func NewDraftService(repo draftRepository, client backend.Client, cache *CacheService, warmup warmupQueue, validate *validator.Validate, logger *zap.Logger) *DraftService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DraftService{
		repo:      repo,
		backend:   client,
		cache:     cache,
		warmup:    warmup,
		validator: registerTimeValidators(validate),
		logger:    logger,
		now:       time.Now,
	}
}

// Create starts a draft from the given users or from the bundled example.
func (s *DraftService) Create(ctx context.Context, req dto.CreateDraftRequest) (*models.Draft, error) {
	users := req.Users
	if req.Example {
		users = editor.Example()
	}
	if err := editor.Validate(users); err != nil {
		return nil, editorError(err, 0, 0)
	}
	draft := &models.Draft{Users: models.CloneUsers(users)}
	if err := s.repo.Create(ctx, draft); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create draft")
	}
	s.logger.Debug("draft created", zap.String("draft_id", draft.ID), zap.Int("users", len(draft.Users)))
	return draft, nil
}

// Get returns a draft by id.
func (s *DraftService) Get(ctx context.Context, id string) (*models.Draft, error) {
	return s.repo.FindByID(ctx, id)
}

// List pages through drafts.
func (s *DraftService) List(ctx context.Context, filter models.DraftFilter) ([]models.Draft, *models.Pagination, error) {
	drafts, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list drafts")
	}
	page, size := filter.Page, filter.PageSize
	if page <= 0 {
		page = 1
	}
	if size <= 0 {
		size = 20
	}
	if size > 100 {
		size = 100
	}
	return drafts, &models.Pagination{Page: page, PageSize: size, TotalCount: total}, nil
}

// Delete discards a draft.
func (s *DraftService) Delete(ctx context.Context, id string) error {
	unlock := s.lock(id)
	defer unlock()
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.locks.Delete(id)
	return nil
}

// AddUser appends a user with the next free id.
func (s *DraftService) AddUser(ctx context.Context, id string) (*models.Draft, error) {
	return s.mutate(ctx, id, func(users []models.UserSchedule) ([]models.UserSchedule, error) {
		return editor.AddUser(users), nil
	})
}

// RemoveUser drops a user from the draft.
func (s *DraftService) RemoveUser(ctx context.Context, id string, userID int) (*models.Draft, error) {
	return s.mutate(ctx, id, func(users []models.UserSchedule) ([]models.UserSchedule, error) {
		out, err := editor.RemoveUser(users, userID)
		return out, editorErrorOrNil(err, userID, 0)
	})
}

// AddBusySlot appends the default busy slot to a user.
func (s *DraftService) AddBusySlot(ctx context.Context, id string, userID int) (*models.Draft, error) {
	return s.mutate(ctx, id, func(users []models.UserSchedule) ([]models.UserSchedule, error) {
		out, err := editor.AddBusySlot(users, userID)
		return out, editorErrorOrNil(err, userID, 0)
	})
}

// RemoveBusySlot deletes the busy slot at index.
func (s *DraftService) RemoveBusySlot(ctx context.Context, id string, userID, index int) (*models.Draft, error) {
	return s.mutate(ctx, id, func(users []models.UserSchedule) ([]models.UserSchedule, error) {
		out, err := editor.RemoveBusySlot(users, userID, index)
		return out, editorErrorOrNil(err, userID, index)
	})
}

// UpdateBusySlot replaces the busy slot at index with the requested times.
func (s *DraftService) UpdateBusySlot(ctx context.Context, id string, userID, index int, req dto.UpdateBusySlotRequest) (*models.Draft, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "invalid busy slot")
	}
	iv, err := timeline.NewInterval(req.Start, req.End)
	if err != nil {
		return nil, editorError(err, userID, index)
	}
	return s.mutate(ctx, id, func(users []models.UserSchedule) ([]models.UserSchedule, error) {
		out, err := editor.UpdateBusySlot(users, userID, index, iv)
		return out, editorErrorOrNil(err, userID, index)
	})
}

// Submit uploads the draft's schedules to the backend, drops stale cached
// calendars and queues warmup of the submitted users.
func (s *DraftService) Submit(ctx context.Context, id string) (*dto.SubmitDraftResponse, error) {
	unlock := s.lock(id)
	defer unlock()

	draft, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(draft.Users) == 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "draft has no users to submit")
	}
	if err := editor.Validate(draft.Users); err != nil {
		return nil, editorError(err, 0, 0)
	}

	result, err := s.backend.SubmitSchedules(ctx, draft.Users)
	if err != nil {
		return nil, err
	}

	submittedAt := s.now().UTC()
	draft.SubmittedAt = &submittedAt
	if err := s.repo.Update(ctx, draft); err != nil {
		s.logger.Warn("failed to mark draft submitted", zap.String("draft_id", id), zap.Error(err))
	}

	userIDs := make([]int, 0, len(draft.Users))
	for _, u := range draft.Users {
		userIDs = append(userIDs, u.ID)
	}
	if err := s.cache.InvalidateCalendars(ctx, userIDs...); err != nil {
		s.logger.Warn("calendar cache invalidation failed", zap.String("draft_id", id), zap.Error(err))
	}

	return &dto.SubmitDraftResponse{
		DraftID:      id,
		Message:      result.Message,
		UserCount:    result.UserCount,
		WarmupQueued: s.enqueueWarmup(userIDs),
	}, nil
}

func (s *DraftService) enqueueWarmup(userIDs []int) int {
	if s.warmup == nil || !s.cache.Enabled() {
		return 0
	}
	queued := 0
	for _, uid := range userIDs {
		job := jobs.Job{ID: uuid.NewString(), Type: WarmupJobType, Payload: uid}
		if err := s.warmup.TryEnqueue(job); err != nil {
			if !errors.Is(err, jobs.ErrQueueFull) {
				s.logger.Warn("warmup enqueue failed", zap.Int("user_id", uid), zap.Error(err))
			}
			continue
		}
		queued++
	}
	return queued
}

// lock serialises read-modify-write cycles on one draft.
func (s *DraftService) lock(id string) func() {
	mu, _ := s.locks.LoadOrStore(id, &sync.Mutex{})
	m := mu.(*sync.Mutex)
	m.Lock()
	return m.Unlock
}

// mutate applies fn to the draft's users. Any edit marks the draft as not submitted.
func (s *DraftService) mutate(ctx context.Context, id string, fn func([]models.UserSchedule) ([]models.UserSchedule, error)) (*models.Draft, error) {
	unlock := s.lock(id)
	defer unlock()

	draft, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	users, err := fn(draft.Users)
	if err != nil {
		return nil, err
	}
	draft.Users = users
	draft.SubmittedAt = nil
	if err := s.repo.Update(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

func editorErrorOrNil(err error, userID, index int) error {
	if err == nil {
		return nil
	}
	return editorError(err, userID, index)
}
