package service

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/noah-isme/meeting-planner-api/internal/backend"
	"github.com/noah-isme/meeting-planner-api/internal/models"
	"github.com/noah-isme/meeting-planner-api/internal/timeline"
	appErrors "github.com/noah-isme/meeting-planner-api/pkg/errors"
	"github.com/noah-isme/meeting-planner-api/pkg/jobs"
)

type stubBackend struct {
	mu         sync.Mutex
	submitted  []models.UserSchedule
	calendars  map[int]*models.CalendarView
	calls      map[string]int
	suggestion []timeline.Interval
	booked     []backend.BookRequest
	meetings   []models.BookedMeeting
	err        error
}

func newStubBackend() *stubBackend {
	return &stubBackend{calendars: map[int]*models.CalendarView{}, calls: map[string]int{}}
}

func (b *stubBackend) record(op string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls[op]++
	return b.err
}

func (b *stubBackend) count(op string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls[op]
}

func (b *stubBackend) SubmitSchedules(ctx context.Context, users []models.UserSchedule) (*backend.SubmitResult, error) {
	if err := b.record("submit"); err != nil {
		return nil, err
	}
	b.submitted = models.CloneUsers(users)
	return &backend.SubmitResult{Message: "User slots updated successfully", UserCount: len(users)}, nil
}

func (b *stubBackend) Users(ctx context.Context) ([]models.UserSchedule, error) {
	if err := b.record("users"); err != nil {
		return nil, err
	}
	return models.CloneUsers(b.submitted), nil
}

func (b *stubBackend) Suggest(ctx context.Context, duration int, userID *int) ([]timeline.Interval, error) {
	if err := b.record("suggest"); err != nil {
		return nil, err
	}
	return b.suggestion, nil
}

func (b *stubBackend) Calendar(ctx context.Context, userID int) (*models.CalendarView, error) {
	if err := b.record("calendar"); err != nil {
		return nil, err
	}
	view, ok := b.calendars[userID]
	if !ok {
		return &models.CalendarView{ID: userID, Busy: []timeline.Interval{}, Meetings: []timeline.Meeting{}}, nil
	}
	return view, nil
}

func (b *stubBackend) Book(ctx context.Context, req backend.BookRequest) (*models.BookedMeeting, error) {
	if err := b.record("book"); err != nil {
		return nil, err
	}
	b.booked = append(b.booked, req)
	return &models.BookedMeeting{ID: "m-1", StartTime: req.StartTime, EndTime: req.EndTime, Title: req.Title, UserID: req.UserID}, nil
}

func (b *stubBackend) Meetings(ctx context.Context) ([]models.BookedMeeting, error) {
	if err := b.record("meetings"); err != nil {
		return nil, err
	}
	return b.meetings, nil
}

// memoryCache is a CacheRepository backed by a map of JSON payloads.
type memoryCache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string][]byte{}}
}

func (m *memoryCache) Get(ctx context.Context, key string, dest interface{}) error {
	m.mu.Lock()
	raw, ok := m.entries[key]
	m.mu.Unlock()
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (m *memoryCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.entries[key] = raw
	m.mu.Unlock()
	return nil
}

func (m *memoryCache) Delete(ctx context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.entries, k)
	}
	return nil
}

func (m *memoryCache) DeleteByPattern(ctx context.Context, pattern string) error {
	prefix := strings.TrimSuffix(pattern, "*")
	m.mu.Lock()
	defer m.mu.Unlock()
	for k := range m.entries {
		if strings.HasPrefix(k, prefix) {
			delete(m.entries, k)
		}
	}
	return nil
}

func (m *memoryCache) has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.entries[key]
	return ok
}

type recordingQueue struct {
	jobs []jobs.Job
	err  error
}

func (q *recordingQueue) TryEnqueue(job jobs.Job) error {
	if q.err != nil {
		return q.err
	}
	q.jobs = append(q.jobs, job)
	return nil
}
