package usecase

import (
	"context"

	"adpilot/internal/core/domain"
)

// evaluateEmptyInventory pauses a running campaign that has no active URLs
// and drops the hold once URLs are back. Further pause decisions then belong
// to the threshold evaluator.
func (u *ControlUseCase) evaluateEmptyInventory(ctx context.Context, c *domain.Campaign) error {
	urls, err := u.store.URLs.ListActiveByCampaign(ctx, c.ID)
	if err != nil {
		return err
	}
	if len(urls) == 0 {
		taken, err := u.holdPaused(ctx, c, domain.MonitorEmptyURL)
		if taken {
			u.logger.Info("campaign paused, no active urls", "campaign_id", c.ID)
		}
		return err
	}

	watched, err := u.registry.IsWatched(ctx, c.ID, domain.MonitorEmptyURL)
	if err != nil || !watched {
		return err
	}
	return u.registry.Unwatch(ctx, c.ID, domain.MonitorEmptyURL)
}
