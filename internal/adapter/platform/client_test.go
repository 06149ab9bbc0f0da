package platform

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adpilot/internal/adapter/memory"
)

func newTestClient(t *testing.T, h http.HandlerFunc) (*Client, *memory.Store, *[]time.Duration) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	store := memory.NewStore()
	c := NewClient(Config{BaseURL: srv.URL, Token: "secret", Retry: DefaultRetryPolicy()}, store.Ports().APIErrors, nil, nil)

	clock := &fakeClock{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
	c.clock = clock

	var slept []time.Duration
	c.sleep = func(_ context.Context, d time.Duration) error {
		slept = append(slept, d)
		clock.now = clock.now.Add(d)
		return nil
	}
	return c, store, &slept
}

type fakeClock struct{ now time.Time }

func (f *fakeClock) Now() time.Time { return f.now }

func TestGetStatusDecodesCampaign(t *testing.T) {
	c, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/campaigns/42", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		_, _ = io.WriteString(w, `{"id": 42, "active": false, "status": "paused", "paused_reasons": ["total_budget_reached"], "max_daily": 12.5}`)
	})

	st, err := c.GetStatus(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, "42", st.ExternalID)
	assert.False(t, st.Active)
	assert.True(t, st.BudgetExhausted())
	assert.InDelta(t, 12.5, st.DailyBudget, 0.001)
}

func TestRetryThenSuccessResolvesErrorLog(t *testing.T) {
	var calls atomic.Int32
	c, store, slept := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) <= 2 {
			http.Error(w, "upstream down", http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, c.Pause(context.Background(), "7"))
	assert.EqualValues(t, 3, calls.Load())
	assert.Equal(t, []time.Duration{time.Second, 1500 * time.Millisecond}, *slept)

	logs := store.APIErrors()
	require.Len(t, logs, 1)
	assert.Equal(t, "pause", logs[0].Operation)
	assert.Equal(t, 1, logs[0].RetryCount)
	assert.True(t, logs[0].Resolved)
	require.NotNil(t, logs[0].StatusCode)
	assert.Equal(t, http.StatusBadGateway, *logs[0].StatusCode)
}

func TestRetryExhaustion(t *testing.T) {
	var calls atomic.Int32
	c, store, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	err := c.Activate(context.Background(), "7")
	var rerr *RetryError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, 5, rerr.Attempts)
	assert.EqualValues(t, 5, calls.Load())

	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, http.StatusServiceUnavailable, perr.StatusCode)

	logs := store.APIErrors()
	require.Len(t, logs, 1)
	assert.Equal(t, 4, logs[0].RetryCount)
	assert.False(t, logs[0].Resolved)
}

func TestClientErrorNotRetried(t *testing.T) {
	var calls atomic.Int32
	c, store, slept := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, `{"error":"bad budget"}`, http.StatusBadRequest)
	})

	err := c.SetDailyBudget(context.Background(), "7", 10)
	require.Error(t, err)
	assert.EqualValues(t, 1, calls.Load())
	assert.Empty(t, *slept)

	logs := store.APIErrors()
	require.Len(t, logs, 1)
	require.NotNil(t, logs[0].RequestBody)
	assert.JSONEq(t, `{"max_daily":10}`, *logs[0].RequestBody)
}

func TestMaxElapsedStopsRetries(t *testing.T) {
	var calls atomic.Int32
	c, _, slept := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	})
	c.policy.MaxElapsed = 2 * time.Second

	err := c.Pause(context.Background(), "7")
	require.Error(t, err)
	// 1s fits, the following 1.5s would push past the two second bound.
	assert.EqualValues(t, 2, calls.Load())
	assert.Equal(t, []time.Duration{time.Second}, *slept)
}

func TestCanceledContextStopsRetries(t *testing.T) {
	c, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	c.sleep = func(context.Context, time.Duration) error { return context.Canceled }

	err := c.Pause(context.Background(), "7")
	var rerr *RetryError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, 1, rerr.Attempts)
}

func TestSetScheduleEndTimeFormat(t *testing.T) {
	c, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "2025-03-01 23:59:59", body["schedule_end_time"])
		w.WriteHeader(http.StatusOK)
	})

	end := time.Date(2025, 3, 1, 23, 59, 59, 0, time.UTC)
	require.NoError(t, c.SetScheduleEndTime(context.Background(), "7", end))
}

func TestGetSpendQuery(t *testing.T) {
	c, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/campaigns/7/spend", r.URL.Path)
		assert.Equal(t, "2025-03-01", r.URL.Query().Get("date_from"))
		assert.Equal(t, "2025-03-01", r.URL.Query().Get("date_to"))
		_, _ = io.WriteString(w, `{"amount": 13.37, "currency": "USD"}`)
	})

	day := time.Date(2025, 3, 1, 15, 0, 0, 0, time.UTC)
	spent, err := c.GetSpend(context.Background(), "7", day, day)
	require.NoError(t, err)
	assert.InDelta(t, 13.37, spent, 0.0001)
}

func TestBackoffGrowsByMultiplier(t *testing.T) {
	p := DefaultRetryPolicy()
	assert.Equal(t, time.Second, p.Backoff(1))
	assert.Equal(t, 1500*time.Millisecond, p.Backoff(2))
	assert.Equal(t, 2250*time.Millisecond, p.Backoff(3))
}

func TestTemporaryClassification(t *testing.T) {
	assert.True(t, isTemporary(&Error{StatusCode: 429}))
	assert.True(t, isTemporary(&Error{StatusCode: 503}))
	assert.False(t, isTemporary(&Error{StatusCode: 404}))
	assert.True(t, isTemporary(&Error{Err: errors.New("connection reset")}))
	assert.False(t, isTemporary(&Error{Err: context.Canceled}))
	assert.False(t, isTemporary(errors.New("encode failure")))
}

func TestRepeatedFailuresShareErrorLogRow(t *testing.T) {
	c, store, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	})
	ctx := context.Background()

	require.Error(t, c.Pause(ctx, "7"))
	require.Error(t, c.Pause(ctx, "7"))
	require.Error(t, c.Pause(ctx, "8"))

	logs := store.APIErrors()
	require.Len(t, logs, 2)
	assert.Equal(t, "7", logs[0].ExternalID)
	assert.Equal(t, 1, logs[0].RetryCount)
	assert.Equal(t, "8", logs[1].ExternalID)
	assert.Zero(t, logs[1].RetryCount)

	// once resolved, the next failure opens a fresh row
	require.NoError(t, store.Ports().APIErrors.Resolve(ctx, logs[0].ID, time.Now()))
	require.Error(t, c.Pause(ctx, "7"))
	assert.Len(t, store.APIErrors(), 3)
}
