package usecase

import (
	"context"
	"time"

	"adpilot/internal/core/domain"
)

// evaluateSpend reads today's spend, stores it and advances the high-spend
// state machine by at most one step.
func (u *ControlUseCase) evaluateSpend(ctx context.Context, c *domain.Campaign) error {
	now := u.clock.Now()
	if err := u.refreshSpend(ctx, c, now); err != nil {
		return err
	}

	if c.DailySpent < u.opts.HighSpendThreshold {
		if c.SpendState.IsHighSpend() {
			return u.endHighSpend(ctx, c)
		}
		return nil
	}

	switch c.SpendState {
	case domain.SpendStateHighSpendWaiting:
		return u.checkWait(ctx, c, now)
	case domain.SpendStateHighSpendBudgetUpdated:
		return u.checkLateURLs(ctx, c, now)
	default:
		// normal, low_spend_under_threshold, or a first_time episode that
		// was interrupted before the wait was armed.
		return u.startHighSpend(ctx, c, now)
	}
}

// refreshSpend reads today's spend and stores it on the campaign.
func (u *ControlUseCase) refreshSpend(ctx context.Context, c *domain.Campaign, now time.Time) error {
	today := now.UTC().Truncate(24 * time.Hour)
	spent, err := u.platform.GetSpend(ctx, c.ExtID(), today, today)
	if err != nil {
		return err
	}
	upd := domain.SpendUpdate{Amount: spent, Date: today, CheckedAt: now}
	if err = u.store.Campaigns.UpdateSpend(ctx, c.ID, upd); err != nil {
		return err
	}
	c.DailySpent = spent
	c.DailySpentDate = &upd.Date
	c.LastSpentCheck = &upd.CheckedAt
	return nil
}

// startHighSpend prices every active URL into the budget log and arms the
// wait. The due time is persisted so a restart does not lose it.
func (u *ControlUseCase) startHighSpend(ctx context.Context, c *domain.Campaign, now time.Time) error {
	err := u.store.Campaigns.ApplySpendTransition(ctx, c.ID, domain.SpendTransition{
		State:        domain.SpendStateHighSpendFirstTime,
		LastActionAt: &now,
	})
	if err != nil {
		return err
	}

	added, err := u.logContributions(ctx, c, now)
	if err != nil {
		return err
	}

	wait := c.Wait(u.opts.HighSpendWait)
	due := now.Add(wait)
	err = u.store.Campaigns.ApplySpendTransition(ctx, c.ID, domain.SpendTransition{
		State:        domain.SpendStateHighSpendWaiting,
		LastActionAt: &now,
		WaitUntil:    &due,
	})
	if err != nil {
		return err
	}
	c.SpendState = domain.SpendStateHighSpendWaiting
	c.LastActionAt = &now
	c.HighSpendWaitUntil = &due

	u.armWait(c.ID, wait)
	u.logger.Info("high spend detected",
		"campaign_id", c.ID, "spent", c.DailySpent, "contributions", added, "due_at", due)
	return nil
}

// logContributions prices the remaining clicks of every active URL.
func (u *ControlUseCase) logContributions(ctx context.Context, c *domain.Campaign, now time.Time) (int, error) {
	urls, err := u.store.URLs.ListActiveByCampaign(ctx, c.ID)
	if err != nil {
		return 0, err
	}
	return u.store.BudgetLog.Append(ctx, contributions(c, urls, now))
}

func contributions(c *domain.Campaign, urls []domain.URLRecord, now time.Time) []domain.BudgetContribution {
	items := make([]domain.BudgetContribution, 0, len(urls))
	for _, url := range urls {
		items = append(items, domain.BudgetContribution{
			CampaignID: c.ID,
			URLID:      url.ID,
			Price:      domain.URLPrice(url, c.PricePerThousand),
			CreatedAt:  now,
		})
	}
	return items
}

// checkWait applies the budget once the wait is due. Before that it only
// makes sure a timer is armed, which matters after a restart.
func (u *ControlUseCase) checkWait(ctx context.Context, c *domain.Campaign, now time.Time) error {
	due, ok := c.WaitDueAt(u.opts.HighSpendWait)
	if ok && now.Before(due) {
		if !u.waits.Armed(c.ID) {
			u.armWait(c.ID, due.Sub(now))
		}
		return nil
	}
	_, err := u.applyBudget(ctx, c, now)
	return err
}

// endHighSpend abandons the episode when spend drops under the threshold.
func (u *ControlUseCase) endHighSpend(ctx context.Context, c *domain.Campaign) error {
	if err := u.store.BudgetLog.Clear(ctx, c.ID); err != nil {
		return err
	}
	u.waits.Cancel(c.ID)
	err := u.store.Campaigns.ApplySpendTransition(ctx, c.ID, domain.SpendTransition{
		State:          domain.SpendStateLowSpendUnderThreshold,
		ClearWaitUntil: true,
		ClearCalcTime:  true,
	})
	if err != nil {
		return err
	}
	u.logger.Info("spend back under threshold", "campaign_id", c.ID, "spent", c.DailySpent, "previous_state", c.SpendState)
	c.SpendState = domain.SpendStateLowSpendUnderThreshold
	return nil
}

func (u *ControlUseCase) armWait(campaignID int64, d time.Duration) {
	u.waits.Schedule(campaignID, d, func() { u.onWaitElapsed(campaignID) })
}

// onWaitElapsed is the timer callback. It rechecks everything because the
// campaign may have been disabled, unlinked or handled by a sweep meanwhile.
func (u *ControlUseCase) onWaitElapsed(campaignID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), u.opts.CampaignTimeout)
	defer cancel()

	unlock := u.locks.lock(campaignID)
	defer unlock()

	logger := u.logger.With("campaign_id", campaignID)
	c, err := u.store.Campaigns.GetCampaign(ctx, campaignID)
	if err != nil {
		logger.Error("wait callback: load campaign", "error", err)
		return
	}
	if !c.Controllable() || c.SpendState != domain.SpendStateHighSpendWaiting {
		logger.Debug("wait callback: nothing to do", "state", c.SpendState, "enabled", c.Enabled)
		return
	}
	now := u.clock.Now()
	if due, ok := c.WaitDueAt(u.opts.HighSpendWait); ok && now.Before(due) {
		return
	}
	if _, err = u.applyBudget(ctx, c, now); err != nil {
		logger.Error("wait callback: budget calculation failed", "error", err)
	}
}
