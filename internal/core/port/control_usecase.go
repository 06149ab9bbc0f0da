package port

import (
	"context"
	"fmt"
	"time"

	"adpilot/internal/core/domain"
)

// SweepKind names one of the periodic entry points.
type SweepKind string

const (
	SweepSpend     SweepKind = "spend"
	SweepThreshold SweepKind = "threshold"
	SweepEmptyURL  SweepKind = "empty-url"
	SweepReassert  SweepKind = "reassert"
)

// SweepKinds lists every sweep in the order the built-in scheduler runs them.
var SweepKinds = []SweepKind{SweepSpend, SweepThreshold, SweepEmptyURL, SweepReassert}

// ParseSweepKind validates a sweep name.
func ParseSweepKind(s string) (SweepKind, error) {
	switch k := SweepKind(s); k {
	case SweepSpend, SweepThreshold, SweepEmptyURL, SweepReassert:
		return k, nil
	default:
		return "", fmt.Errorf("unknown sweep %q", s)
	}
}

// ControlUseCase is the primary port used by the HTTP adapter, the CLI and
// the built-in scheduler.
type ControlUseCase interface {
	// RunSweep evaluates every eligible campaign (or registry entry) once.
	// Per-campaign failures are logged and counted, never returned.
	RunSweep(ctx context.Context, kind SweepKind) (SweepReport, error)

	// ForceBudgetRecalculation computes and applies the aggregate daily
	// budget now, without waiting for the high-spend delay.
	ForceBudgetRecalculation(ctx context.Context, campaignID int64) (*BudgetResult, error)

	// SetThresholds validates and stores per-campaign click thresholds.
	SetThresholds(ctx context.Context, campaignID int64, minPause, minReactivate int64) error

	// ForceSpendRefresh re-reads and stores today's spend for all campaigns
	// linked to the platform.
	ForceSpendRefresh(ctx context.Context) (SweepReport, error)

	// ListAPIErrors returns a page of the platform error log. Pages start at 1.
	ListAPIErrors(ctx context.Context, page, limit int) (*domain.APIErrorPage, error)

	// ResolveAPIError marks an error log entry as resolved.
	ResolveAPIError(ctx context.Context, id int64) error
}

// SweepReport summarises one sweep run.
type SweepReport struct {
	Sweep     SweepKind     `json:"sweep"`
	RunID     string        `json:"run_id"`
	Processed int           `json:"processed"`
	Failed    int           `json:"failed"`
	Duration  time.Duration `json:"duration"`
}

// BudgetResult describes an applied aggregate budget.
type BudgetResult struct {
	CampaignID    int64   `json:"campaign_id"`
	Budget        float64 `json:"budget"`
	Contributions int     `json:"contributions"`
	ActionTaken   bool    `json:"action_taken"`
}
