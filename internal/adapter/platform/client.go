package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
	"adpilot/internal/metrics"
)

const dateLayout = "2006-01-02"

// Client is a typed wrapper over the ad platform HTTP API. Every method is
// a logical call retried according to the RetryPolicy; failures are
// recorded in the API error log. It has no campaign business logic.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	policy     RetryPolicy

	errors  port.APIErrorRepository
	clock   port.Clock
	metrics *metrics.Metrics
	logger  *slog.Logger

	sleep func(ctx context.Context, d time.Duration) error
}

// Config holds the client settings.
type Config struct {
	BaseURL string
	Token   string
	// Timeout bounds a single HTTP attempt. Defaults to 10s.
	Timeout time.Duration
	Retry   RetryPolicy
}

// NewClient returns a platform client. errs may be nil to disable error
// log persistence.
func NewClient(cfg Config, errs port.APIErrorRepository, m *metrics.Metrics, logger *slog.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		token:      cfg.Token,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		policy:     cfg.Retry.normalized(),
		errors:     errs,
		clock:      port.SystemClock{},
		metrics:    m,
		logger:     logger,
		sleep:      sleepCtx,
	}
}

type campaignPayload struct {
	ID              json.Number `json:"id"`
	Active          bool        `json:"active"`
	Status          string      `json:"status"`
	PausedReasons   []string    `json:"paused_reasons"`
	MaxDaily        float64     `json:"max_daily"`
	ScheduleEndTime string      `json:"schedule_end_time"`
}

type budgetPayload struct {
	MaxDaily float64 `json:"max_daily"`
}

type schedulePayload struct {
	ScheduleEndTime string `json:"schedule_end_time"`
}

type spendPayload struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// call describes one logical API call.
type call struct {
	operation  string
	method     string
	path       string
	query      url.Values
	externalID string
	body       any
	out        any
}

// GetStatus reads the current run state of a campaign.
func (c *Client) GetStatus(ctx context.Context, externalID string) (domain.ExternalStatus, error) {
	var out campaignPayload
	err := c.do(ctx, call{
		operation:  "get_status",
		method:     http.MethodGet,
		path:       "/campaigns/" + url.PathEscape(externalID),
		externalID: externalID,
		out:        &out,
	})
	if err != nil {
		return domain.ExternalStatus{}, err
	}
	return domain.ExternalStatus{
		ExternalID:      externalID,
		Active:          out.Active,
		Status:          out.Status,
		PausedReasons:   out.PausedReasons,
		DailyBudget:     out.MaxDaily,
		ScheduleEndTime: out.ScheduleEndTime,
		ObservedAt:      c.clock.Now(),
	}, nil
}

// Pause stops a campaign.
func (c *Client) Pause(ctx context.Context, externalID string) error {
	return c.do(ctx, call{
		operation:  "pause",
		method:     http.MethodPost,
		path:       "/campaigns/" + url.PathEscape(externalID) + "/pause",
		externalID: externalID,
	})
}

// Activate starts a campaign.
func (c *Client) Activate(ctx context.Context, externalID string) error {
	return c.do(ctx, call{
		operation:  "activate",
		method:     http.MethodPost,
		path:       "/campaigns/" + url.PathEscape(externalID) + "/run",
		externalID: externalID,
	})
}

// SetDailyBudget replaces the daily budget. The amount is rounded to cents.
func (c *Client) SetDailyBudget(ctx context.Context, externalID string, amount float64) error {
	return c.do(ctx, call{
		operation:  "set_budget",
		method:     http.MethodPut,
		path:       "/campaigns/" + url.PathEscape(externalID) + "/budget",
		externalID: externalID,
		body:       budgetPayload{MaxDaily: domain.RoundCents(amount)},
	})
}

// SetScheduleEndTime sets when the campaign stops serving, in UTC.
func (c *Client) SetScheduleEndTime(ctx context.Context, externalID string, end time.Time) error {
	return c.do(ctx, call{
		operation:  "set_schedule_end",
		method:     http.MethodPatch,
		path:       "/campaigns/" + url.PathEscape(externalID),
		externalID: externalID,
		body:       schedulePayload{ScheduleEndTime: end.UTC().Format(domain.ScheduleTimeLayout)},
	})
}

// GetSpend returns the cost accrued between from and until (UTC dates).
func (c *Client) GetSpend(ctx context.Context, externalID string, from, until time.Time) (float64, error) {
	var out spendPayload
	q := url.Values{}
	q.Set("date_from", from.UTC().Format(dateLayout))
	q.Set("date_to", until.UTC().Format(dateLayout))
	err := c.do(ctx, call{
		operation:  "get_spend",
		method:     http.MethodGet,
		path:       "/campaigns/" + url.PathEscape(externalID) + "/spend",
		query:      q,
		externalID: externalID,
		out:        &out,
	})
	if err != nil {
		return 0, err
	}
	return out.Amount, nil
}

// do runs a logical call with retries. The first failure opens an error log
// row, or reuses the open row of the same operation and external id. Later
// failures bump its retry count and a final success resolves it.
func (c *Client) do(ctx context.Context, cl call) error {
	var (
		key     = uuid.NewString()
		logID   int64
		lastErr error
		started = c.clock.Now()
		logger  = c.logger.With("operation", cl.operation, "external_id", cl.externalID, "call_key", key)
	)

	attempt := 1
	for ; ; attempt++ {
		lastErr = c.attempt(ctx, cl)
		if lastErr == nil {
			c.metrics.IncPlatformRequest(cl.operation, "ok")
			if logID != 0 {
				c.resolveFailure(ctx, logID, logger)
			}
			return nil
		}
		c.metrics.IncPlatformRequest(cl.operation, "error")
		logID = c.recordFailure(ctx, key, cl, logID, lastErr, logger)

		if !isTemporary(lastErr) || attempt >= c.policy.MaxAttempts {
			break
		}
		delay := c.policy.Backoff(attempt)
		elapsed := c.clock.Now().Sub(started)
		if c.policy.MaxElapsed > 0 && elapsed+delay > c.policy.MaxElapsed {
			logger.Warn("retry budget exhausted", "attempt", attempt, "elapsed", elapsed)
			break
		}
		logger.Warn("platform call failed, retrying", "attempt", attempt, "backoff", delay, "error", lastErr)
		c.metrics.IncPlatformRetry(cl.operation)
		if err := c.sleep(ctx, delay); err != nil {
			return &RetryError{Operation: cl.operation, Attempts: attempt, Err: lastErr}
		}
	}

	logger.Error("platform call failed", "attempts", attempt, "error", lastErr)
	return &RetryError{Operation: cl.operation, Attempts: attempt, Err: lastErr}
}

func (c *Client) attempt(ctx context.Context, cl call) error {
	endpoint := c.baseURL + cl.path
	if len(cl.query) > 0 {
		endpoint += "?" + cl.query.Encode()
	}

	var body io.Reader
	if cl.body != nil {
		b, err := json.Marshal(cl.body)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", cl.operation, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, endpoint, body)
	if err != nil {
		return fmt.Errorf("build %s request: %w", cl.operation, err)
	}
	req.Header.Set("Accept", "application/json")
	if cl.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Error{Operation: cl.operation, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &Error{Operation: cl.operation, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(msg))}
	}
	if cl.out == nil {
		return nil
	}
	if err = json.NewDecoder(resp.Body).Decode(cl.out); err != nil {
		return &Error{Operation: cl.operation, StatusCode: resp.StatusCode, Body: "malformed response", Err: err}
	}
	return nil
}

func (c *Client) recordFailure(ctx context.Context, key string, cl call, logID int64, cause error, logger *slog.Logger) int64 {
	if c.errors == nil {
		return logID
	}
	var status *int
	if pe, ok := cause.(*Error); ok && pe.StatusCode != 0 {
		code := pe.StatusCode
		status = &code
	}
	now := c.clock.Now()
	ctx = context.WithoutCancel(ctx)

	if logID == 0 {
		// a failure that outlives one call keeps updating the same row
		open, err := c.errors.FindUnresolved(ctx, cl.operation, cl.externalID)
		if err != nil {
			logger.Error("failed to look up api error log", "error", err)
		} else if open != nil {
			logID = open.ID
		}
	}
	if logID != 0 {
		if err := c.errors.RecordRetry(ctx, logID, cause.Error(), status, now); err != nil {
			logger.Error("failed to update api error log", "error", err)
		}
		return logID
	}

	entry := &domain.APIErrorLog{
		ActionKey:    key,
		Operation:    cl.operation,
		Method:       cl.method,
		Endpoint:     cl.path,
		ExternalID:   cl.externalID,
		StatusCode:   status,
		ErrorMessage: cause.Error(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if cl.body != nil {
		if b, err := json.Marshal(cl.body); err == nil {
			s := string(b)
			entry.RequestBody = &s
		}
	}
	if err := c.errors.Create(ctx, entry); err != nil {
		logger.Error("failed to create api error log", "error", err)
		return 0
	}
	return entry.ID
}

func (c *Client) resolveFailure(ctx context.Context, logID int64, logger *slog.Logger) {
	if c.errors == nil {
		return
	}
	if err := c.errors.Resolve(context.WithoutCancel(ctx), logID, c.clock.Now()); err != nil {
		logger.Error("failed to resolve api error log", "id", logID, "error", err)
	}
}
