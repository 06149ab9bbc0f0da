package usecase

import (
	"context"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// Registry is the monitoring registry: the durable list of standing
// obligations the reassert sweep enforces.
type Registry struct {
	repo  port.MonitoringRepository
	clock port.Clock
}

// NewRegistry returns a registry over repo. Timestamps come from clock.
func NewRegistry(repo port.MonitoringRepository, clock port.Clock) *Registry {
	return &Registry{repo: repo, clock: clock}
}

// Watch activates the (campaign, type) obligation. Repeated calls only
// refresh the timestamps.
func (r *Registry) Watch(ctx context.Context, campaignID int64, externalID string, t domain.MonitoringType) error {
	now := r.clock.Now()
	return r.repo.Upsert(ctx, domain.MonitoringEntry{
		CampaignID: campaignID,
		Type:       t,
		ExternalID: externalID,
		Active:     true,
		AddedAt:    now,
		UpdatedAt:  now,
	})
}

// Unwatch deactivates the obligation and keeps the row as history.
func (r *Registry) Unwatch(ctx context.Context, campaignID int64, t domain.MonitoringType) error {
	return r.repo.Deactivate(ctx, campaignID, t, r.clock.Now())
}

// ListActive returns every obligation currently in force.
func (r *Registry) ListActive(ctx context.Context) ([]domain.MonitoringEntry, error) {
	return r.repo.ListActive(ctx)
}

// IsWatched reports whether the (campaign, type) obligation is active. A
// missing entry is not watched.
func (r *Registry) IsWatched(ctx context.Context, campaignID int64, t domain.MonitoringType) (bool, error) {
	e, err := r.repo.Get(ctx, campaignID, t)
	if err != nil {
		return false, err
	}
	return e != nil && e.Active, nil
}
