package port

import (
	"context"
	"time"

	"adpilot/internal/core/domain"
)

// CampaignRepository persists the control state of campaigns. Campaign rows
// are owned by the surrounding product; the controller only updates its
// own columns and never deletes.
type CampaignRepository interface {
	// GetCampaign returns a campaign by id or domain.ErrCampaignNotFound.
	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)
	// ListControllable returns enabled campaigns that carry an external id.
	ListControllable(ctx context.Context) ([]domain.Campaign, error)
	// ListWithExternalID returns every campaign linked to the platform,
	// enabled or not.
	ListWithExternalID(ctx context.Context) ([]domain.Campaign, error)
	// UpdateSpend stores the latest spend observation.
	UpdateSpend(ctx context.Context, id int64, upd domain.SpendUpdate) error
	// ApplySpendTransition stores a change of the high-spend workflow state.
	ApplySpendTransition(ctx context.Context, id int64, tr domain.SpendTransition) error
	// UpdateThresholds stores per-campaign click thresholds. Callers must
	// validate before calling.
	UpdateThresholds(ctx context.Context, id int64, t domain.Thresholds) error
	// UpdateLastVerified stores the last confirmed external status.
	UpdateLastVerified(ctx context.Context, id int64, status string, at time.Time) error
}

// URLRepository reads URL inventory. It is read-only for the controller.
type URLRepository interface {
	// ListActiveByCampaign returns the active URLs of a campaign.
	ListActiveByCampaign(ctx context.Context, campaignID int64) ([]domain.URLRecord, error)
	// ListActiveCreatedAfter returns active URLs created strictly after t,
	// oldest first.
	ListActiveCreatedAfter(ctx context.Context, campaignID int64, t time.Time) ([]domain.URLRecord, error)
}

// MonitoringRepository is the durable monitoring registry.
type MonitoringRepository interface {
	// Upsert inserts or re-activates the entry for (CampaignID, Type).
	Upsert(ctx context.Context, entry domain.MonitoringEntry) error
	// Deactivate marks the entry inactive. Missing entries are ignored.
	Deactivate(ctx context.Context, campaignID int64, t domain.MonitoringType, at time.Time) error
	// Get returns the entry or nil when none exists.
	Get(ctx context.Context, campaignID int64, t domain.MonitoringType) (*domain.MonitoringEntry, error)
	// ListActive returns all active entries.
	ListActive(ctx context.Context) ([]domain.MonitoringEntry, error)
}

// BudgetLogRepository stores URL budget contributions of high-spend episodes.
type BudgetLogRepository interface {
	// Append stores contributions; a URL already logged for the campaign is
	// skipped. It returns the number of rows added.
	Append(ctx context.Context, items []domain.BudgetContribution) (int, error)
	// ListByCampaign returns the contributions of a campaign.
	ListByCampaign(ctx context.Context, campaignID int64) ([]domain.BudgetContribution, error)
	// Clear removes every contribution of a campaign.
	Clear(ctx context.Context, campaignID int64) error
}

// APIErrorRepository stores failed platform calls for operators.
type APIErrorRepository interface {
	// Create inserts the row and sets its ID.
	Create(ctx context.Context, e *domain.APIErrorLog) error
	// FindUnresolved returns the open row of an operation on one external
	// campaign, or nil when there is none.
	FindUnresolved(ctx context.Context, operation, externalID string) (*domain.APIErrorLog, error)
	// RecordRetry increments the retry count and stores the latest failure.
	RecordRetry(ctx context.Context, id int64, message string, statusCode *int, at time.Time) error
	// Resolve marks the row resolved or returns domain.ErrAPIErrorNotFound.
	Resolve(ctx context.Context, id int64, at time.Time) error
	// List returns a page of rows, newest first, and the total count.
	List(ctx context.Context, offset, limit int) ([]domain.APIErrorLog, int64, error)
}

// ActionLogRepository is the audit trail of the safety layer.
type ActionLogRepository interface {
	Record(ctx context.Context, entry domain.ActionLog) error
}

// Store groups every repository the controller needs.
type Store struct {
	Campaigns  CampaignRepository
	URLs       URLRepository
	Monitoring MonitoringRepository
	BudgetLog  BudgetLogRepository
	APIErrors  APIErrorRepository
	Actions    ActionLogRepository
}
