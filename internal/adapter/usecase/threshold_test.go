package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// TestThresholdPausesOnLowInventory: three URLs with 2+1+0 clicks left and a
// pause threshold of 5 pause the campaign and create a pause_status entry.
func TestThresholdPausesOnLowInventory(t *testing.T) {
	e := newTestEnv(t)
	e.addCampaign(1, "42", true)
	require.NoError(t, e.store.UpdateThresholds(context.Background(), 1, domain.Thresholds{MinPause: 5, MinReactivate: 15}))
	e.addURL(1, 1, 1000, 998, testStart)
	e.addURL(2, 1, 1000, 999, testStart)
	e.addURL(3, 1, 1000, 1000, testStart)

	rep := e.sweep(t, port.SweepThreshold)

	assert.Equal(t, 1, rep.Processed)
	assert.Zero(t, rep.Failed)
	assert.Equal(t, 1, e.platform.count("pause"))
	assert.False(t, e.platform.status("42").Active)
	assert.True(t, e.watched(t, 1, domain.MonitorPauseStatus))
}

// TestThresholdDeadZone: inventory between the thresholds never pauses or
// activates, whatever the external state.
func TestThresholdDeadZone(t *testing.T) {
	e := newTestEnv(t)
	e.addCampaign(1, "a", true)
	e.addCampaign(2, "b", false)
	e.addURL(1, 1, 20000, 10000, testStart)
	e.addURL(2, 2, 20000, 10000, testStart)
	require.NoError(t, e.uc.registry.Watch(context.Background(), 2, "b", domain.MonitorPauseStatus))

	for range 3 {
		e.sweep(t, port.SweepThreshold)
		e.clock.Advance(time.Minute)
	}

	assert.Zero(t, e.platform.count("pause"))
	assert.Zero(t, e.platform.count("activate"))
}

func TestThresholdReactivatesHeldCampaign(t *testing.T) {
	e := newTestEnv(t)
	e.addCampaign(1, "42", true)
	e.addURL(1, 1, 3000, 0, testStart)

	e.sweep(t, port.SweepThreshold)
	require.True(t, e.watched(t, 1, domain.MonitorPauseStatus))

	e.addURL(2, 1, 20000, 0, testStart)
	e.clock.Advance(time.Minute)
	e.sweep(t, port.SweepThreshold)

	assert.Equal(t, 1, e.platform.count("activate"))
	assert.True(t, e.platform.status("42").Active)
	assert.False(t, e.watched(t, 1, domain.MonitorPauseStatus))
	assert.True(t, e.watched(t, 1, domain.MonitorActiveStatus))
}

func TestThresholdLeavesUnheldPausedCampaign(t *testing.T) {
	e := newTestEnv(t)
	e.addCampaign(1, "42", false)
	e.addURL(1, 1, 50000, 0, testStart)

	e.sweep(t, port.SweepThreshold)

	assert.Zero(t, e.platform.count("activate"))
	assert.False(t, e.watched(t, 1, domain.MonitorActiveStatus))
}

func TestThresholdSkipsDisabledAndUnlinked(t *testing.T) {
	e := newTestEnv(t)
	e.addCampaign(1, "42", true)
	e.store.PutCampaign(domain.Campaign{ID: 1, ExternalID: ptr("42"), Enabled: false})
	e.store.PutCampaign(domain.Campaign{ID: 2, Enabled: true})

	rep := e.sweep(t, port.SweepThreshold)

	assert.Zero(t, rep.Processed)
	assert.Zero(t, e.platform.count("get_status"))
}

func TestSetThresholdsRejectsInvalidPair(t *testing.T) {
	e := newTestEnv(t)
	e.addCampaign(1, "42", true)

	err := e.uc.SetThresholds(context.Background(), 1, 5000, 5000)
	if !errors.Is(err, domain.ErrInvalidThresholds) {
		t.Fatalf("expected ErrInvalidThresholds, got %v", err)
	}
	c := e.campaign(t, 1)
	assert.Nil(t, c.MinPauseClicks)
	assert.Nil(t, c.MinActivateClicks)

	require.NoError(t, e.uc.SetThresholds(context.Background(), 1, 100, 200))
	c = e.campaign(t, 1)
	require.NotNil(t, c.MinPauseClicks)
	assert.EqualValues(t, 100, *c.MinPauseClicks)

	assert.ErrorIs(t, e.uc.SetThresholds(context.Background(), 9, 1, 2), domain.ErrCampaignNotFound)
}

// TestLowInventoryAfterRefillStaysPaused: a campaign kept running by a
// budget update runs out of URLs, gets a small refill and must stay paused
// through the following threshold and reassert sweeps.
func TestLowInventoryAfterRefillStaysPaused(t *testing.T) {
	e := newTestEnv(t)
	e.addCampaign(1, "42", true)
	require.NoError(t, e.uc.registry.Watch(context.Background(), 1, "42", domain.MonitorActiveStatus))

	e.sweep(t, port.SweepEmptyURL)
	require.Equal(t, 1, e.platform.count("pause"))
	require.True(t, e.watched(t, 1, domain.MonitorEmptyURL))

	e.clock.Advance(time.Minute)
	e.addURL(1, 1, 100, 0, e.clock.Now())
	e.sweep(t, port.SweepEmptyURL)
	require.False(t, e.watched(t, 1, domain.MonitorEmptyURL))

	e.clock.Advance(time.Minute)
	e.sweep(t, port.SweepThreshold)
	assert.True(t, e.watched(t, 1, domain.MonitorPauseStatus))
	assert.False(t, e.watched(t, 1, domain.MonitorActiveStatus))

	e.clock.Advance(time.Minute)
	e.sweep(t, port.SweepReassert)
	e.sweep(t, port.SweepThreshold)

	assert.Zero(t, e.platform.count("activate"))
	assert.Equal(t, 1, e.platform.count("pause"))
	assert.False(t, e.platform.status("42").Active)
}

// TestReassertActiveHoldsLowInventory: an active_status obligation on a
// campaign the platform paused itself is not used to reactivate it while
// inventory is below the pause threshold.
func TestReassertActiveHoldsLowInventory(t *testing.T) {
	e := newTestEnv(t)
	e.addCampaign(1, "42", false)
	e.addURL(1, 1, 100, 0, testStart)
	require.NoError(t, e.uc.registry.Watch(context.Background(), 1, "42", domain.MonitorActiveStatus))

	e.sweep(t, port.SweepReassert)

	assert.Zero(t, e.platform.count("activate"))
	assert.True(t, e.watched(t, 1, domain.MonitorPauseStatus))
	assert.False(t, e.watched(t, 1, domain.MonitorActiveStatus))
}

// TestReactivationStopsOnExhaustedBudget: a refused reactivation drops the
// hold so later sweeps do not retry it.
func TestReactivationStopsOnExhaustedBudget(t *testing.T) {
	e := newTestEnv(t)
	e.addCampaign(1, "42", false)
	e.platform.mu.Lock()
	e.platform.campaigns["42"].PausedReasons = []string{domain.ReasonTotalBudgetReached}
	e.platform.mu.Unlock()
	e.addURL(1, 1, 50000, 0, testStart)
	require.NoError(t, e.uc.registry.Watch(context.Background(), 1, "42", domain.MonitorPauseStatus))

	rep := e.sweep(t, port.SweepThreshold)
	assert.Zero(t, rep.Failed)
	assert.False(t, e.watched(t, 1, domain.MonitorPauseStatus))
	reads := e.platform.count("get_status")

	e.clock.Advance(time.Minute)
	e.sweep(t, port.SweepThreshold)
	e.sweep(t, port.SweepReassert)

	assert.Zero(t, e.platform.count("activate"))
	assert.Equal(t, reads, e.platform.count("get_status"))
}
