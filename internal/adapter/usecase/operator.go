package usecase

import (
	"context"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// sweepSpendRefresh labels the operator spend refresh in reports and metrics.
const sweepSpendRefresh port.SweepKind = "spend-refresh"

// ForceBudgetRecalculation applies the aggregate budget now. When no
// episode is running, the active URLs are priced first.
func (u *ControlUseCase) ForceBudgetRecalculation(ctx context.Context, campaignID int64) (*port.BudgetResult, error) {
	unlock := u.locks.lock(campaignID)
	defer unlock()

	c, err := u.loadControllable(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	now := u.clock.Now()
	logged, err := u.store.BudgetLog.ListByCampaign(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	if len(logged) == 0 {
		if _, err = u.logContributions(ctx, c, now); err != nil {
			return nil, err
		}
	}
	return u.applyBudget(ctx, c, now)
}

// SetThresholds validates before anything is stored.
func (u *ControlUseCase) SetThresholds(ctx context.Context, campaignID int64, minPause, minReactivate int64) error {
	th, err := domain.NewThresholds(minPause, minReactivate)
	if err != nil {
		return err
	}

	unlock := u.locks.lock(campaignID)
	defer unlock()

	if err = u.store.Campaigns.UpdateThresholds(ctx, campaignID, th); err != nil {
		return err
	}
	u.logger.Info("thresholds updated", "campaign_id", campaignID, "min_pause", minPause, "min_reactivate", minReactivate)
	return nil
}

// ForceSpendRefresh stores today's spend for every linked campaign without
// advancing the state machine.
func (u *ControlUseCase) ForceSpendRefresh(ctx context.Context) (port.SweepReport, error) {
	campaigns, err := u.store.Campaigns.ListWithExternalID(ctx)
	if err != nil {
		return port.SweepReport{Sweep: sweepSpendRefresh}, err
	}
	items := make([]sweepItem, 0, len(campaigns))
	for _, c := range campaigns {
		id := c.ID
		items = append(items, sweepItem{
			campaignID: id,
			run: func(ctx context.Context) error {
				c, err := u.store.Campaigns.GetCampaign(ctx, id)
				if err != nil {
					return err
				}
				return u.refreshSpend(ctx, c, u.clock.Now())
			},
		})
	}
	return u.sweep(ctx, sweepSpendRefresh, items), nil
}

// ListAPIErrors returns one page of the platform error log, newest first.
func (u *ControlUseCase) ListAPIErrors(ctx context.Context, page, limit int) (*domain.APIErrorPage, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultPageLimit
	}
	limit = min(limit, maxPageLimit)

	items, total, err := u.store.APIErrors.List(ctx, (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.APIErrorLog{}
	}
	return &domain.APIErrorPage{Items: items, Total: total, Page: page, Limit: limit}, nil
}

// ResolveAPIError marks an error log entry resolved. Unknown ids return
// domain.ErrAPIErrorNotFound.
func (u *ControlUseCase) ResolveAPIError(ctx context.Context, id int64) error {
	return u.store.APIErrors.Resolve(ctx, id, u.clock.Now())
}

func (u *ControlUseCase) loadControllable(ctx context.Context, campaignID int64) (*domain.Campaign, error) {
	c, err := u.store.Campaigns.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	switch {
	case c.ExtID() == "":
		return nil, domain.ErrNoExternalID
	case !c.Enabled:
		return nil, domain.ErrCampaignDisabled
	}
	return c, nil
}
