package usecase

import (
	"context"
	"errors"
	"time"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// applyBudget turns the budget log into one daily budget: today's spend plus
// every logged contribution. The campaign then runs until the end of the UTC
// day unless a pause obligation holds it.
func (u *ControlUseCase) applyBudget(ctx context.Context, c *domain.Campaign, now time.Time) (*port.BudgetResult, error) {
	items, err := u.store.BudgetLog.ListByCampaign(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	budget := domain.RoundCents(c.DailySpent + domain.SumContributions(items))

	res, err := u.actuator.EnsureDailyBudget(ctx, c, budget)
	if err != nil {
		return nil, err
	}
	if _, err = u.actuator.EnsureScheduleEndTime(ctx, c, domain.EndOfDay(now)); err != nil {
		return nil, err
	}
	if err = u.keepRunning(ctx, c); err != nil {
		return nil, err
	}

	err = u.store.Campaigns.ApplySpendTransition(ctx, c.ID, domain.SpendTransition{
		State:          domain.SpendStateHighSpendBudgetUpdated,
		LastActionAt:   &now,
		ClearWaitUntil: true,
		CalcTime:       &now,
		DailyBudget:    &budget,
	})
	if err != nil {
		return nil, err
	}
	c.SpendState = domain.SpendStateHighSpendBudgetUpdated
	c.HighSpendWaitUntil = nil
	c.HighSpendBudgetCalcTime = &now
	c.DailyBudget = &budget

	if err = u.store.BudgetLog.Clear(ctx, c.ID); err != nil {
		return nil, err
	}
	u.waits.Cancel(c.ID)

	u.logger.Info("daily budget applied",
		"campaign_id", c.ID, "budget", budget, "spent", c.DailySpent, "contributions", len(items), "action_taken", res.ActionTaken)
	return &port.BudgetResult{
		CampaignID:    c.ID,
		Budget:        budget,
		Contributions: len(items),
		ActionTaken:   res.ActionTaken,
	}, nil
}

// keepRunning activates the campaign after a budget change and watches it,
// unless a pause obligation holds it or the total budget is spent.
func (u *ControlUseCase) keepRunning(ctx context.Context, c *domain.Campaign) error {
	held, err := u.pauseHeld(ctx, c.ID)
	if err != nil || held {
		return err
	}
	_, err = u.actuator.Ensure(ctx, c, domain.DesiredActive)
	if errors.Is(err, domain.ErrBudgetExhausted) {
		u.logger.Warn("campaign not activated, total budget reached", "campaign_id", c.ID)
		return nil
	}
	if err != nil {
		return err
	}
	return u.registry.Watch(ctx, c.ID, c.ExtID(), domain.MonitorActiveStatus)
}

// checkLateURLs prices URLs created after the last budget calculation once
// they are old enough and raises the budget by their contribution. The
// calculation cutoff moves to the newest URL included.
func (u *ControlUseCase) checkLateURLs(ctx context.Context, c *domain.Campaign, now time.Time) error {
	if c.HighSpendBudgetCalcTime == nil {
		return nil
	}
	urls, err := u.store.URLs.ListActiveCreatedAfter(ctx, c.ID, *c.HighSpendBudgetCalcTime)
	if err != nil {
		return err
	}

	var ready []domain.URLRecord
	for _, url := range urls {
		if now.Sub(url.CreatedAt) < u.opts.LateURLGrace {
			break
		}
		ready = append(ready, url)
	}
	if len(ready) == 0 {
		return nil
	}

	items := contributions(c, ready, now)
	if _, err = u.store.BudgetLog.Append(ctx, items); err != nil {
		return err
	}

	base := c.DailySpent
	if c.DailyBudget != nil {
		base = *c.DailyBudget
	}
	budget := domain.RoundCents(base + domain.SumContributions(items))
	if _, err = u.actuator.EnsureDailyBudget(ctx, c, budget); err != nil {
		return err
	}

	cutoff := ready[len(ready)-1].CreatedAt
	err = u.store.Campaigns.ApplySpendTransition(ctx, c.ID, domain.SpendTransition{
		State:        domain.SpendStateHighSpendBudgetUpdated,
		LastActionAt: &now,
		CalcTime:     &cutoff,
		DailyBudget:  &budget,
	})
	if err != nil {
		return err
	}
	c.HighSpendBudgetCalcTime = &cutoff
	c.DailyBudget = &budget

	if err = u.store.BudgetLog.Clear(ctx, c.ID); err != nil {
		return err
	}
	u.logger.Info("late urls added to budget", "campaign_id", c.ID, "urls", len(ready), "budget", budget)
	return nil
}
