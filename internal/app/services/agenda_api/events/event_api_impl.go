package events

import (
	"agenda-service/internal/app/contracts"
	"agenda-service/internal/app/models"
	"agenda-service/internal/app/services/core/scheduling"
	"agenda-service/internal/pkg/constvars"
	"agenda-service/internal/pkg/exceptions"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type eventAPIClient struct {
	BaseUrl string
	client  *http.Client
	limiter *rate.Limiter
	Log     *zap.Logger
}

// NewEventAPIClient builds the HTTP client for the remote scheduling API.
// Every call carries the configured timeout and the shared outbound rate
// limit; the engine itself never retries.
func NewEventAPIClient(baseUrl string, timeout time.Duration, requestsPerSecond int, logger *zap.Logger) contracts.EventAPIClient {
	return &eventAPIClient{
		BaseUrl: baseUrl + "/events",
		client:  &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond),
		Log:     logger,
	}
}

func (c *eventAPIClient) FindAll(ctx context.Context, criteria scheduling.FilterCriteria) ([]models.ScheduleEvent, error) {
	query := url.Values{}
	if criteria.Type != "" {
		query.Set("type", criteria.Type)
	}
	if criteria.Status != "" {
		query.Set("status", criteria.Status)
	}
	if criteria.StaffID != "" {
		query.Set("staffId", criteria.StaffID)
	}
	if criteria.BranchID != "" {
		query.Set("branchId", criteria.BranchID)
	}
	if !criteria.StartDate.IsZero() {
		query.Set("startDate", criteria.StartDate.Format(constvars.DateOnlyLayout))
	}
	if !criteria.EndDate.IsZero() {
		query.Set("endDate", criteria.EndDate.Format(constvars.DateOnlyLayout))
	}

	body, err := c.do(ctx, constvars.MethodGet, c.BaseUrl+"?"+query.Encode(), nil, constvars.StatusOK)
	if err != nil {
		return nil, err
	}
	return c.parseEventBatch(ctx, body), nil
}

func (c *eventAPIClient) FindForMonth(ctx context.Context, criteria scheduling.FilterCriteria, year int, month time.Month) ([]models.ScheduleEvent, error) {
	criteria.StartDate, criteria.EndDate = scheduling.PadMonthRange(year, month)
	return c.FindAll(ctx, criteria)
}

func (c *eventAPIClient) FindByID(ctx context.Context, eventID string) (*models.ScheduleEvent, error) {
	body, err := c.do(ctx, constvars.MethodGet, fmt.Sprintf("%s/%s", c.BaseUrl, eventID), nil, constvars.StatusOK)
	if err != nil {
		return nil, err
	}

	event, ok := eventFromRecord(gjson.ParseBytes(body))
	if !ok {
		return nil, exceptions.ErrMalformedRecord(fmt.Errorf("event %s", eventID))
	}
	return &event, nil
}

func (c *eventAPIClient) Create(ctx context.Context, event models.ScheduleEvent) (*models.ScheduleEvent, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	body, err := c.do(ctx, constvars.MethodPost, c.BaseUrl, payload, constvars.StatusCreated)
	if err != nil {
		return nil, err
	}

	created := new(models.ScheduleEvent)
	if err := json.Unmarshal(body, created); err != nil {
		return nil, exceptions.ErrDecodeResponse(err)
	}
	return created, nil
}

func (c *eventAPIClient) UpdateStatus(ctx context.Context, eventID, status string) (*models.ScheduleEvent, error) {
	payload, err := json.Marshal(map[string]string{"status": status})
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	body, err := c.do(ctx, constvars.MethodPatch, fmt.Sprintf("%s/%s/status", c.BaseUrl, eventID), payload, constvars.StatusOK)
	if err != nil {
		return nil, err
	}

	updated := new(models.ScheduleEvent)
	if err := json.Unmarshal(body, updated); err != nil {
		return nil, exceptions.ErrDecodeResponse(err)
	}
	return updated, nil
}

func (c *eventAPIClient) Reschedule(ctx context.Context, eventID string, start, end time.Time, title, color string) (*models.ScheduleEvent, error) {
	payload, err := json.Marshal(map[string]interface{}{
		"start": start.UTC().Format(time.RFC3339),
		"end":   end.UTC().Format(time.RFC3339),
		"title": title,
		"color": color,
	})
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	body, err := c.do(ctx, constvars.MethodPatch, fmt.Sprintf("%s/%s", c.BaseUrl, eventID), payload, constvars.StatusOK)
	if err != nil {
		return nil, err
	}

	updated := new(models.ScheduleEvent)
	if err := json.Unmarshal(body, updated); err != nil {
		return nil, exceptions.ErrDecodeResponse(err)
	}
	return updated, nil
}

func (c *eventAPIClient) DeleteBatch(ctx context.Context, eventIDs []string) error {
	payload, err := json.Marshal(map[string][]string{"ids": eventIDs})
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	_, err = c.do(ctx, constvars.MethodDelete, c.BaseUrl, payload, constvars.StatusOK)
	return err
}

// do performs one request against the scheduling API and maps transport
// failures onto the engine's error taxonomy. 404 becomes a not-found error so
// callers can distinguish a vanished event from a dead upstream.
func (c *eventAPIClient) do(ctx context.Context, method, endpoint string, payload []byte, wantStatus int) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, exceptions.ErrUpstreamUnavailable(err)
	}

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewBuffer(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	resp, err := c.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			return nil, exceptions.ErrUpstreamTimeout(err)
		}
		return nil, exceptions.ErrUpstreamUnavailable(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err)
	}

	if resp.StatusCode == constvars.StatusNotFound {
		return nil, exceptions.ErrEventNotFound(fmt.Errorf("%s %s", method, endpoint))
	}
	if resp.StatusCode != wantStatus && (resp.StatusCode < 200 || resp.StatusCode > 299) {
		return nil, exceptions.ErrUpstreamStatus(fmt.Errorf("%s %s", method, endpoint), resp.StatusCode)
	}
	return body, nil
}

func isTimeout(err error) bool {
	var timeoutErr interface{ Timeout() bool }
	return errors.As(err, &timeoutErr) && timeoutErr.Timeout()
}

// parseEventBatch decodes the upstream event array leniently: records missing
// an id, start, or end are dropped with a warning instead of failing the
// whole batch, so one bad row cannot blank a calendar.
func (c *eventAPIClient) parseEventBatch(ctx context.Context, body []byte) []models.ScheduleEvent {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	parsed := gjson.ParseBytes(body)
	records := parsed.Array()
	if parsed.IsObject() {
		records = parsed.Get("data").Array()
	}

	events := make([]models.ScheduleEvent, 0, len(records))
	dropped := 0
	for _, record := range records {
		event, ok := eventFromRecord(record)
		if !ok {
			dropped++
			c.Log.Warn("eventAPIClient.FindAll dropping malformed event record",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingEventIDKey, record.Get("id").String()),
			)
			continue
		}
		events = append(events, event)
	}

	if dropped > 0 {
		c.Log.Warn("eventAPIClient.FindAll batch contained malformed records",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingDroppedCountKey, dropped),
			zap.Int(constvars.LoggingEventCountKey, len(events)),
		)
	}
	return events
}

func eventFromRecord(record gjson.Result) (models.ScheduleEvent, bool) {
	id := record.Get("id").String()
	start, errStart := time.Parse(time.RFC3339, record.Get("start").String())
	end, errEnd := time.Parse(time.RFC3339, record.Get("end").String())
	if id == "" || errStart != nil || errEnd != nil || !start.Before(end) {
		return models.ScheduleEvent{}, false
	}

	event := models.ScheduleEvent{
		ID:        id,
		Type:      record.Get("type").String(),
		StaffID:   record.Get("staffId").String(),
		BranchID:  record.Get("branchId").String(),
		Start:     start.UTC(),
		End:       end.UTC(),
		Status:    record.Get("status").String(),
		Title:     record.Get("title").String(),
		Color:     record.Get("color").String(),
		Notes:     record.Get("notes").String(),
		PatientID: record.Get("patientId").String(),
		ServiceID: record.Get("serviceId").String(),
	}
	if createdAt, err := time.Parse(time.RFC3339, record.Get("createdAt").String()); err == nil {
		event.CreatedAt = createdAt.UTC()
	}
	return event, true
}
