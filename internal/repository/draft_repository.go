package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/noah-isme/meeting-planner-api/internal/models"
	appErrors "github.com/noah-isme/meeting-planner-api/pkg/errors"
)

// DraftRepository keeps editor drafts in process memory. Values are copied on the way in and out.
type DraftRepository struct {
	mu     sync.RWMutex
	drafts map[string]models.Draft
	now    func() time.Time
}

// NewDraftRepository constructs an empty draft repository.
func NewDraftRepository() *DraftRepository {
	return &DraftRepository{drafts: make(map[string]models.Draft), now: time.Now}
}

// Create stores a new draft and assigns its id and timestamps.
func (r *DraftRepository) Create(ctx context.Context, draft *models.Draft) error {
	now := r.now().UTC()
	draft.ID = uuid.NewString()
	draft.CreatedAt = now
	draft.UpdatedAt = now
	if draft.Users == nil {
		draft.Users = []models.UserSchedule{}
	}

	r.mu.Lock()
	r.drafts[draft.ID] = draft.Clone()
	r.mu.Unlock()
	return nil
}

// FindByID returns a copy of the stored draft.
func (r *DraftRepository) FindByID(ctx context.Context, id string) (*models.Draft, error) {
	r.mu.RLock()
	draft, ok := r.drafts[id]
	r.mu.RUnlock()
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "draft not found")
	}
	out := draft.Clone()
	return &out, nil
}

// Update replaces an existing draft and bumps UpdatedAt.
func (r *DraftRepository) Update(ctx context.Context, draft *models.Draft) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.drafts[draft.ID]
	if !ok {
		return appErrors.Clone(appErrors.ErrNotFound, "draft not found")
	}
	draft.CreatedAt = existing.CreatedAt
	draft.UpdatedAt = r.now().UTC()
	r.drafts[draft.ID] = draft.Clone()
	return nil
}

// Delete removes a draft.
func (r *DraftRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.drafts[id]; !ok {
		return appErrors.Clone(appErrors.ErrNotFound, "draft not found")
	}
	delete(r.drafts, id)
	return nil
}

// List returns drafts newest first along with the total count.
func (r *DraftRepository) List(ctx context.Context, filter models.DraftFilter) ([]models.Draft, int, error) {
	r.mu.RLock()
	all := make([]models.Draft, 0, len(r.drafts))
	for _, d := range r.drafts {
		all = append(all, d.Clone())
	}
	r.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		if all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].ID < all[j].ID
		}
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	page, size := normalizePage(filter.Page, filter.PageSize)
	total := len(all)
	start := (page - 1) * size
	if start >= total {
		return []models.Draft{}, total, nil
	}
	end := start + size
	if end > total {
		end = total
	}
	return all[start:end], total, nil
}

func normalizePage(page, size int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if size <= 0 {
		size = 20
	}
	if size > 100 {
		size = 100
	}
	return page, size
}
