package backend

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/meeting-planner-api/internal/models"
	"github.com/noah-isme/meeting-planner-api/internal/timeline"
	"github.com/noah-isme/meeting-planner-api/pkg/config"
	appErrors "github.com/noah-isme/meeting-planner-api/pkg/errors"
	"github.com/noah-isme/meeting-planner-api/pkg/middleware/requestid"
)

type recordingObserver struct {
	mu    sync.Mutex
	calls map[string]int
	fails int
}

func (o *recordingObserver) ObserveBackendCall(operation string, _ time.Duration, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.calls == nil {
		o.calls = map[string]int{}
	}
	o.calls[operation]++
	if err != nil {
		o.fails++
	}
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*HTTPClient, *recordingObserver) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	obs := &recordingObserver{}
	return NewHTTPClient(config.BackendConfig{BaseURL: srv.URL + "/", Timeout: time.Second}, obs, nil), obs
}

func TestSubmitSchedulesPostsUsers(t *testing.T) {
	var got slotsRequest
	client, obs := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/slots", r.URL.Path)
		assert.Equal(t, "trace-1", r.Header.Get(requestid.HeaderName))
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &got))
		_, _ = w.Write([]byte(`{"message":"User slots updated successfully","userCount":1}`))
	})

	ctx := requestid.WithValue(context.Background(), "trace-1")
	users := []models.UserSchedule{{ID: 1, Busy: []timeline.Interval{{Start: 540, End: 630}}}}
	res, err := client.SubmitSchedules(ctx, users)
	require.NoError(t, err)
	assert.Equal(t, 1, res.UserCount)
	assert.Equal(t, users, got.Users)
	assert.Equal(t, 1, obs.calls["submit"])
}

func TestSuggestEncodesQuery(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/suggest", r.URL.Path)
		assert.Equal(t, "30", r.URL.Query().Get("duration"))
		assert.Equal(t, "2", r.URL.Query().Get("user_id"))
		_, _ = w.Write([]byte(`[["09:00","09:30"],["09:30","10:00"]]`))
	})

	uid := 2
	slots, err := client.Suggest(context.Background(), 30, &uid)
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, timeline.Interval{Start: 570, End: 600}, slots[1])
}

func TestCalendarDecodesMeetings(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/calendar/3", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":3,"busy":[["09:00","10:30"]],"meetings":[{"id":"m1","startTime":"11:00","endTime":"11:30","title":"Sync","bookedAt":"2025-01-01T08:00:00","user_id":null}]}`))
	})

	view, err := client.Calendar(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 3, view.ID)
	require.Len(t, view.Meetings, 1)
	assert.Equal(t, "Sync", view.Meetings[0].Title)
	assert.Equal(t, timeline.TimeOfDay(660), view.Meetings[0].Start)
}

func TestCalendarFillsEmptyLists(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":9}`))
	})

	view, err := client.Calendar(context.Background(), 9)
	require.NoError(t, err)
	assert.NotNil(t, view.Busy)
	assert.NotNil(t, view.Meetings)
}

func TestBookReturnsMeeting(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req BookRequest
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &req))
		assert.Equal(t, timeline.TimeOfDay(600), req.StartTime)
		assert.Equal(t, "Review", req.Title)
		_, _ = w.Write([]byte(`{"message":"Meeting booked successfully","meeting":{"id":"m-1","startTime":"10:00","endTime":"10:30","title":"Review","bookedAt":"2025-01-01T09:00:00","user_id":1}}`))
	})

	uid := 1
	meeting, err := client.Book(context.Background(), BookRequest{StartTime: 600, EndTime: 630, Title: "Review", UserID: &uid})
	require.NoError(t, err)
	assert.Equal(t, "m-1", meeting.ID)
	require.NotNil(t, meeting.UserID)
	assert.Equal(t, 1, *meeting.UserID)
}

func TestBackendErrorsAreMapped(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		want   *appErrors.Error
		msg    string
	}{
		{name: "business rule", status: http.StatusBadRequest, body: `{"error":"Time slot is not available"}`, want: appErrors.ErrValidation, msg: "Time slot is not available"},
		{name: "framework detail", status: http.StatusUnprocessableEntity, body: `{"detail":[{"msg":"value is not a valid integer"}]}`, want: appErrors.ErrValidation, msg: "value is not a valid integer"},
		{name: "missing", status: http.StatusNotFound, body: `{"detail":"Not Found"}`, want: appErrors.ErrNotFound, msg: "Not Found"},
		{name: "server", status: http.StatusInternalServerError, body: `oops`, want: appErrors.ErrBackendUnavailable, msg: "scheduling backend returned 500"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client, obs := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			})
			_, err := client.Meetings(context.Background())
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want))
			assert.Equal(t, tc.msg, appErrors.FromError(err).Message)
			assert.Equal(t, 1, obs.fails)
		})
	}
}

func TestMalformedPayloadIsReported(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":1,"busy":[["9am","10:00"]]}]`))
	})

	_, err := client.Users(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrBackendPayload))
}

func TestUnreachableBackend(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()
	client := NewHTTPClient(config.BackendConfig{BaseURL: srv.URL, Timeout: 200 * time.Millisecond}, nil, nil)

	_, err := client.Users(context.Background())
	require.Error(t, err)
	assert.True(t, IsUnavailable(err))
}
