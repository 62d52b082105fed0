package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/meeting-planner-api/internal/models"
	"github.com/noah-isme/meeting-planner-api/internal/timeline"
	"github.com/noah-isme/meeting-planner-api/pkg/config"
	appErrors "github.com/noah-isme/meeting-planner-api/pkg/errors"
	"github.com/noah-isme/meeting-planner-api/pkg/middleware/requestid"
)

const maxBodyBytes = 1 << 20

// HTTPClient implements Client over the backend's JSON API.
type HTTPClient struct {
	baseURL  string
	http     *http.Client
	observer Observer
	logger   *zap.Logger
}

// NewHTTPClient builds a client for cfg.BaseURL with cfg.Timeout per request.
func NewHTTPClient(cfg config.BackendConfig, observer Observer, logger *zap.Logger) *HTTPClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPClient{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		http:     &http.Client{Timeout: timeout},
		observer: observer,
		logger:   logger,
	}
}

// SubmitSchedules replaces the backend's busy lists for the given users.
func (c *HTTPClient) SubmitSchedules(ctx context.Context, users []models.UserSchedule) (*SubmitResult, error) {
	var out SubmitResult
	if err := c.do(ctx, "submit", http.MethodPost, "/slots", nil, slotsRequest{Users: users}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Users lists every user the backend knows about.
func (c *HTTPClient) Users(ctx context.Context) ([]models.UserSchedule, error) {
	out := []models.UserSchedule{}
	if err := c.do(ctx, "users", http.MethodGet, "/users", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Suggest asks for free slots of duration minutes, optionally for a single user.
func (c *HTTPClient) Suggest(ctx context.Context, duration int, userID *int) ([]timeline.Interval, error) {
	query := url.Values{}
	query.Set("duration", strconv.Itoa(duration))
	if userID != nil {
		query.Set("user_id", strconv.Itoa(*userID))
	}
	out := []timeline.Interval{}
	if err := c.do(ctx, "suggest", http.MethodGet, "/suggest", query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Calendar fetches one user's busy list and meetings.
func (c *HTTPClient) Calendar(ctx context.Context, userID int) (*models.CalendarView, error) {
	var out models.CalendarView
	path := "/calendar/" + strconv.Itoa(userID)
	if err := c.do(ctx, "calendar", http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	if out.Busy == nil {
		out.Busy = []timeline.Interval{}
	}
	if out.Meetings == nil {
		out.Meetings = []timeline.Meeting{}
	}
	return &out, nil
}

// Book creates a meeting.
func (c *HTTPClient) Book(ctx context.Context, req BookRequest) (*models.BookedMeeting, error) {
	var out bookResponse
	if err := c.do(ctx, "book", http.MethodPost, "/book", nil, req, &out); err != nil {
		return nil, err
	}
	if out.Meeting == nil {
		return nil, appErrors.Clone(appErrors.ErrBackendPayload, "booking response carried no meeting")
	}
	return out.Meeting, nil
}

// Meetings lists booked meetings.
func (c *HTTPClient) Meetings(ctx context.Context) ([]models.BookedMeeting, error) {
	out := []models.BookedMeeting{}
	if err := c.do(ctx, "meetings", http.MethodGet, "/meetings", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) do(ctx context.Context, op, method, path string, query url.Values, body, dest interface{}) (err error) {
	start := time.Now()
	defer func() {
		elapsed := time.Since(start)
		if c.observer != nil {
			c.observer.ObserveBackendCall(op, elapsed, err)
		}
		fields := []zap.Field{zap.String("operation", op), zap.String("method", method), zap.String("path", path), zap.Duration("latency", elapsed)}
		if err != nil {
			c.logger.Warn("backend call failed", append(fields, zap.Error(err))...)
			return
		}
		c.logger.Debug("backend call", fields...)
	}()

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, marshalErr := json.Marshal(body)
		if marshalErr != nil {
			return fmt.Errorf("marshal %s request: %w", op, marshalErr)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("build %s request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if id := requestid.FromContext(ctx); id != "" {
		req.Header.Set(requestid.HeaderName, id)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrBackendUnavailable.Code, appErrors.ErrBackendUnavailable.Status, appErrors.ErrBackendUnavailable.Message)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrBackendUnavailable.Code, appErrors.ErrBackendUnavailable.Status, "read backend response")
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return statusError(resp.StatusCode, raw)
	}

	if dest == nil {
		return nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return appErrors.Wrap(err, appErrors.ErrBackendPayload.Code, appErrors.ErrBackendPayload.Status, appErrors.ErrBackendPayload.Message)
	}
	return nil
}

// backend error bodies are either {"error": "..."} or {"detail": ...}
type errorBody struct {
	Error  string          `json:"error"`
	Detail json.RawMessage `json:"detail"`
}

func statusError(status int, raw []byte) error {
	message := backendMessage(raw)
	switch {
	case status >= http.StatusInternalServerError:
		if message == "" {
			message = fmt.Sprintf("scheduling backend returned %d", status)
		}
		return appErrors.Clone(appErrors.ErrBackendUnavailable, message)
	case status == http.StatusNotFound:
		if message == "" {
			message = "resource not found on scheduling backend"
		}
		return appErrors.Clone(appErrors.ErrNotFound, message)
	default:
		if message == "" {
			message = fmt.Sprintf("scheduling backend rejected the request (%d)", status)
		}
		return appErrors.Clone(appErrors.ErrValidation, message)
	}
}

func backendMessage(raw []byte) string {
	var body errorBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	if body.Error != "" {
		return body.Error
	}
	if len(body.Detail) == 0 {
		return ""
	}
	var detail string
	if err := json.Unmarshal(body.Detail, &detail); err == nil {
		return detail
	}
	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(body.Detail, &items); err == nil && len(items) > 0 {
		return items[0].Msg
	}
	return ""
}

// IsUnavailable reports whether err means the backend could not be reached.
func IsUnavailable(err error) bool {
	return errors.Is(err, appErrors.ErrBackendUnavailable)
}

var _ Client = (*HTTPClient)(nil)
