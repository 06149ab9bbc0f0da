package usecase

import (
	"context"
	"errors"

	"adpilot/internal/core/domain"
)

// evaluateThreshold pauses a campaign that ran out of click inventory and
// reactivates one this mechanism paused once inventory is back. Between the
// two thresholds nothing happens.
func (u *ControlUseCase) evaluateThreshold(ctx context.Context, c *domain.Campaign) error {
	urls, err := u.store.URLs.ListActiveByCampaign(ctx, c.ID)
	if err != nil {
		return err
	}
	remaining := domain.RemainingClicks(urls)

	th := c.Thresholds(u.opts.Thresholds)
	if err = th.Validate(); err != nil {
		return err
	}

	switch th.Decide(remaining) {
	case domain.DecisionPause:
		taken, err := u.holdPaused(ctx, c, domain.MonitorPauseStatus)
		if taken {
			u.logger.Info("campaign paused on low inventory",
				"campaign_id", c.ID, "remaining", remaining, "min_pause", th.MinPause)
		}
		return err
	case domain.DecisionReactivate:
		return u.reactivate(ctx, c, remaining)
	default:
		return nil
	}
}

// reactivate releases a pause_status hold. Campaigns not held by this
// mechanism are left alone.
func (u *ControlUseCase) reactivate(ctx context.Context, c *domain.Campaign, remaining int64) error {
	held, err := u.registry.IsWatched(ctx, c.ID, domain.MonitorPauseStatus)
	if err != nil || !held {
		return err
	}

	res, err := u.actuator.Ensure(ctx, c, domain.DesiredActive)
	if errors.Is(err, domain.ErrBudgetExhausted) {
		u.logger.Warn("total budget reached, pause hold dropped", "campaign_id", c.ID)
		return u.registry.Unwatch(ctx, c.ID, domain.MonitorPauseStatus)
	}
	if err != nil {
		return err
	}

	if err = u.registry.Unwatch(ctx, c.ID, domain.MonitorPauseStatus); err != nil {
		return err
	}
	if err = u.registry.Watch(ctx, c.ID, c.ExtID(), domain.MonitorActiveStatus); err != nil {
		return err
	}
	u.logger.Info("campaign reactivated", "campaign_id", c.ID, "remaining", remaining, "action_taken", res.ActionTaken)
	return nil
}
