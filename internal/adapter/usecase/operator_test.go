package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adpilot/internal/core/domain"
)

func TestForceBudgetRecalculation(t *testing.T) {
	e := highSpendEnv(t)
	c := e.campaign(t, 1)
	c.DailySpent = 4
	e.store.PutCampaign(*c)

	res, err := e.uc.ForceBudgetRecalculation(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Contributions)
	assert.InDelta(t, 7.00, res.Budget, 0.001)
	assert.True(t, res.ActionTaken)

	c = e.campaign(t, 1)
	assert.Equal(t, domain.SpendStateHighSpendBudgetUpdated, c.SpendState)
	assert.InDelta(t, 7.00, e.platform.status("42").DailyBudget, 0.001)
	assert.Empty(t, e.budgetLog(t, 1))
}

func TestForceBudgetRecalculationRejectsUncontrollable(t *testing.T) {
	e := newTestEnv(t)
	e.store.PutCampaign(domain.Campaign{ID: 1, ExternalID: ptr("42")})
	e.store.PutCampaign(domain.Campaign{ID: 2, Enabled: true})

	_, err := e.uc.ForceBudgetRecalculation(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrCampaignDisabled)
	_, err = e.uc.ForceBudgetRecalculation(context.Background(), 2)
	assert.ErrorIs(t, err, domain.ErrNoExternalID)
	_, err = e.uc.ForceBudgetRecalculation(context.Background(), 3)
	assert.ErrorIs(t, err, domain.ErrCampaignNotFound)
}

func TestForceSpendRefreshOnlyStoresSpend(t *testing.T) {
	e := newTestEnv(t)
	e.addCampaign(1, "42", true)
	c := e.campaign(t, 1)
	c.Enabled = false
	e.store.PutCampaign(*c)
	e.platform.setSpend("42", 50)

	rep, err := e.uc.ForceSpendRefresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Processed)

	c = e.campaign(t, 1)
	assert.InDelta(t, 50, c.DailySpent, 0.001)
	assert.Equal(t, domain.SpendStateNormal, c.SpendState)
	assert.Empty(t, e.budgetLog(t, 1))
}

func TestListAPIErrorsPaging(t *testing.T) {
	e := newTestEnv(t)
	repo := e.store.Ports().APIErrors
	for range 25 {
		require.NoError(t, repo.Create(context.Background(), &domain.APIErrorLog{Operation: "get_status"}))
	}

	page, err := e.uc.ListAPIErrors(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 20, page.Limit)
	assert.EqualValues(t, 25, page.Total)
	assert.Len(t, page.Items, 20)

	page, err = e.uc.ListAPIErrors(context.Background(), 2, 20)
	require.NoError(t, err)
	assert.Len(t, page.Items, 5)

	page, err = e.uc.ListAPIErrors(context.Background(), 1, 500)
	require.NoError(t, err)
	assert.Equal(t, 100, page.Limit)
}

func TestResolveAPIError(t *testing.T) {
	e := newTestEnv(t)
	entry := &domain.APIErrorLog{Operation: "pause"}
	require.NoError(t, e.store.Ports().APIErrors.Create(context.Background(), entry))

	require.NoError(t, e.uc.ResolveAPIError(context.Background(), entry.ID))
	logs := e.store.APIErrors()
	require.Len(t, logs, 1)
	assert.True(t, logs[0].Resolved)
	require.NotNil(t, logs[0].ResolvedAt)
	assert.Equal(t, testStart, *logs[0].ResolvedAt)

	assert.ErrorIs(t, e.uc.ResolveAPIError(context.Background(), 999), domain.ErrAPIErrorNotFound)
}
