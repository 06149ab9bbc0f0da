package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adpilot/internal/core/domain"
	"adpilot/internal/db"
)

// newTestPool connects to the database named by ADPILOT_TEST_POSTGRES and
// applies the migrations. Tests are skipped when it is unset.
func newTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	addr := os.Getenv("ADPILOT_TEST_POSTGRES")
	if addr == "" {
		t.Skip("ADPILOT_TEST_POSTGRES not set")
	}
	require.NoError(t, db.Migrate(addr))

	pool, err := pgxpool.New(context.Background(), addr)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(context.Background(), `TRUNCATE action_logs, api_error_logs, url_budget_contributions,
        monitoring_entries, url_records, campaigns RESTART IDENTITY`)
	require.NoError(t, err)
	return pool
}

func insertCampaign(t *testing.T, pool *pgxpool.Pool, ext string) int64 {
	t.Helper()
	var id int64
	err := pool.QueryRow(context.Background(), `INSERT INTO campaigns (name, external_id, price_per_thousand)
        VALUES ('test', $1, 2) RETURNING id`, ext).Scan(&id)
	require.NoError(t, err)
	return id
}

func TestCampaignSpendTransition(t *testing.T) {
	pool := newTestPool(t)
	ctx := context.Background()
	repo := NewCampaignRepository(pool)
	id := insertCampaign(t, pool, "777")

	now := time.Now().UTC().Truncate(time.Second)
	due := now.Add(11 * time.Minute)
	require.NoError(t, repo.ApplySpendTransition(ctx, id, domain.SpendTransition{
		State:        domain.SpendStateHighSpendWaiting,
		LastActionAt: &now,
		WaitUntil:    &due,
	}))

	c, err := repo.GetCampaign(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.SpendStateHighSpendWaiting, c.SpendState)
	require.NotNil(t, c.HighSpendWaitUntil)
	assert.True(t, due.Equal(*c.HighSpendWaitUntil))

	budget := 13.0
	require.NoError(t, repo.ApplySpendTransition(ctx, id, domain.SpendTransition{
		State:          domain.SpendStateHighSpendBudgetUpdated,
		ClearWaitUntil: true,
		CalcTime:       &now,
		DailyBudget:    &budget,
	}))

	c, err = repo.GetCampaign(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, c.HighSpendWaitUntil)
	require.NotNil(t, c.DailyBudget)
	assert.InDelta(t, 13.0, *c.DailyBudget, 0.001)
	require.NotNil(t, c.LastActionAt, "untouched columns are kept")

	assert.ErrorIs(t, repo.ApplySpendTransition(ctx, id+100, domain.SpendTransition{State: domain.SpendStateNormal}),
		domain.ErrCampaignNotFound)
	_, err = repo.GetCampaign(ctx, id+100)
	assert.ErrorIs(t, err, domain.ErrCampaignNotFound)
}

func TestMonitoringUpsertKeepsAddedAt(t *testing.T) {
	pool := newTestPool(t)
	ctx := context.Background()
	repo := NewMonitoringRepository(pool)
	id := insertCampaign(t, pool, "778")

	first := time.Now().UTC().Truncate(time.Second)
	later := first.Add(time.Hour)
	entry := domain.MonitoringEntry{CampaignID: id, Type: domain.MonitorPauseStatus, ExternalID: "778", AddedAt: first, UpdatedAt: first}
	require.NoError(t, repo.Upsert(ctx, entry))

	entry.AddedAt, entry.UpdatedAt = later, later
	require.NoError(t, repo.Upsert(ctx, entry))

	got, err := repo.Get(ctx, id, domain.MonitorPauseStatus)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, first.Equal(got.AddedAt))

	require.NoError(t, repo.Deactivate(ctx, id, domain.MonitorPauseStatus, later))
	active, err := repo.ListActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)

	missing, err := repo.Get(ctx, id, domain.MonitorEmptyURL)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestBudgetLogSkipsLoggedURLs(t *testing.T) {
	pool := newTestPool(t)
	ctx := context.Background()
	repo := NewBudgetLogRepository(pool)
	id := insertCampaign(t, pool, "779")

	now := time.Now().UTC()
	added, err := repo.Append(ctx, []domain.BudgetContribution{
		{CampaignID: id, URLID: 1, Price: 2, CreatedAt: now},
		{CampaignID: id, URLID: 2, Price: 1, CreatedAt: now},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, added)

	added, err = repo.Append(ctx, []domain.BudgetContribution{
		{CampaignID: id, URLID: 2, Price: 1, CreatedAt: now},
		{CampaignID: id, URLID: 3, Price: 4, CreatedAt: now},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, added)

	items, err := repo.ListByCampaign(ctx, id)
	require.NoError(t, err)
	assert.InDelta(t, 7.0, domain.SumContributions(items), 0.001)

	require.NoError(t, repo.Clear(ctx, id))
	items, err = repo.ListByCampaign(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestAPIErrorLifecycle(t *testing.T) {
	pool := newTestPool(t)
	ctx := context.Background()
	repo := NewAPIErrorRepository(pool)

	now := time.Now().UTC()
	e := &domain.APIErrorLog{ActionKey: "k1", Operation: "pause", Method: "POST", Endpoint: "/campaigns/1/pause",
		ErrorMessage: "timeout", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, repo.Create(ctx, e))
	require.NotZero(t, e.ID)

	open, err := repo.FindUnresolved(ctx, "pause", "")
	require.NoError(t, err)
	require.NotNil(t, open)
	assert.Equal(t, e.ID, open.ID)

	code := 503
	require.NoError(t, repo.RecordRetry(ctx, e.ID, "unavailable", &code, now))
	require.NoError(t, repo.Resolve(ctx, e.ID, now))

	open, err = repo.FindUnresolved(ctx, "pause", "")
	require.NoError(t, err)
	assert.Nil(t, open)
	assert.ErrorIs(t, repo.Resolve(ctx, e.ID+1, now), domain.ErrAPIErrorNotFound)

	items, total, err := repo.List(ctx, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].RetryCount)
	assert.True(t, items[0].Resolved)
	require.NotNil(t, items[0].StatusCode)
	assert.Equal(t, 503, *items[0].StatusCode)
}
