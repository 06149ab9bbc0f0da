package usecase

import (
	"context"
	"errors"
	"fmt"

	"adpilot/internal/core/domain"
)

// reassertItems builds one sweep item per active monitoring entry. Entries
// of the same campaign serialise on the campaign lock.
func (u *ControlUseCase) reassertItems(ctx context.Context) ([]sweepItem, error) {
	entries, err := u.registry.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[domain.MonitoringType]int, len(domain.MonitoringTypes))
	items := make([]sweepItem, 0, len(entries))
	for _, e := range entries {
		counts[e.Type]++
		items = append(items, sweepItem{
			campaignID: e.CampaignID,
			run:        func(ctx context.Context) error { return u.reassert(ctx, e) },
		})
	}
	for _, t := range domain.MonitoringTypes {
		u.metrics.SetMonitoringActive(string(t), counts[t])
	}
	return items, nil
}

// reassert enforces one obligation against drift. Entries pointing at a
// missing or unlinked campaign are skipped; disabled campaigns are left
// alone.
func (u *ControlUseCase) reassert(ctx context.Context, e domain.MonitoringEntry) error {
	logger := u.logger.With("campaign_id", e.CampaignID, "type", e.Type)

	c, err := u.store.Campaigns.GetCampaign(ctx, e.CampaignID)
	if errors.Is(err, domain.ErrCampaignNotFound) {
		logger.Warn("monitoring entry without campaign, skipped")
		return nil
	}
	if err != nil {
		return err
	}
	if c.ExtID() == "" {
		logger.Warn("monitoring entry for campaign without external id, skipped")
		return nil
	}
	if !c.Enabled {
		return nil
	}

	switch e.Type {
	case domain.MonitorActiveStatus:
		return u.reassertActive(ctx, c)
	case domain.MonitorPauseStatus:
		return u.reassertPause(ctx, c)
	case domain.MonitorEmptyURL:
		return u.reassertEmpty(ctx, c)
	default:
		return fmt.Errorf("unknown monitoring type %q", e.Type)
	}
}

func (u *ControlUseCase) reassertActive(ctx context.Context, c *domain.Campaign) error {
	held, err := u.pauseHeld(ctx, c.ID)
	if err != nil || held {
		return err
	}

	// Inventory at or below the pause threshold turns the obligation into a
	// pause hold instead of reactivating.
	urls, err := u.store.URLs.ListActiveByCampaign(ctx, c.ID)
	if err != nil {
		return err
	}
	remaining := domain.RemainingClicks(urls)
	th := c.Thresholds(u.opts.Thresholds)
	if th.Validate() == nil && th.Decide(remaining) == domain.DecisionPause {
		taken, err := u.holdPaused(ctx, c, domain.MonitorPauseStatus)
		if taken {
			u.logger.Info("campaign paused on low inventory", "campaign_id", c.ID, "remaining", remaining)
		}
		return err
	}

	res, err := u.actuator.Ensure(ctx, c, domain.DesiredActive)
	if errors.Is(err, domain.ErrBudgetExhausted) {
		u.logger.Warn("total budget reached, active monitoring dropped", "campaign_id", c.ID)
		return u.registry.Unwatch(ctx, c.ID, domain.MonitorActiveStatus)
	}
	if err != nil {
		return err
	}
	if res.ActionTaken {
		u.logger.Info("drift corrected, campaign reactivated", "campaign_id", c.ID)
	}
	return nil
}

// reassertPause releases the hold when inventory is back, otherwise keeps
// the campaign paused.
func (u *ControlUseCase) reassertPause(ctx context.Context, c *domain.Campaign) error {
	urls, err := u.store.URLs.ListActiveByCampaign(ctx, c.ID)
	if err != nil {
		return err
	}
	remaining := domain.RemainingClicks(urls)
	th := c.Thresholds(u.opts.Thresholds)
	if th.Validate() == nil && th.Decide(remaining) == domain.DecisionReactivate {
		return u.reactivate(ctx, c, remaining)
	}

	res, err := u.actuator.Ensure(ctx, c, domain.DesiredPaused)
	if err != nil {
		return err
	}
	if res.ActionTaken {
		u.logger.Info("drift corrected, campaign paused", "campaign_id", c.ID, "remaining", remaining)
	}
	return nil
}

func (u *ControlUseCase) reassertEmpty(ctx context.Context, c *domain.Campaign) error {
	urls, err := u.store.URLs.ListActiveByCampaign(ctx, c.ID)
	if err != nil {
		return err
	}
	if len(urls) > 0 {
		return u.registry.Unwatch(ctx, c.ID, domain.MonitorEmptyURL)
	}

	res, err := u.actuator.Ensure(ctx, c, domain.DesiredPaused)
	if err != nil {
		return err
	}
	if res.ActionTaken {
		u.logger.Info("drift corrected, empty campaign paused", "campaign_id", c.ID)
	}
	return nil
}
