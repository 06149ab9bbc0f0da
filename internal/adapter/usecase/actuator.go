package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
	"adpilot/internal/metrics"
)

// Actuator is the safety layer in front of every mutating platform call. It
// reads the current status, compares it with the desired one and only then
// mutates. It never retries; the platform client does.
type Actuator struct {
	platform  port.PlatformClient
	cache     port.StatusCache
	campaigns port.CampaignRepository
	actions   port.ActionLogRepository
	clock     port.Clock
	ttl       time.Duration
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

// NewActuator returns a safety layer. ttl bounds how old a persisted
// verified status may be to stand in for an unreadable platform.
func NewActuator(
	platform port.PlatformClient,
	cache port.StatusCache,
	campaigns port.CampaignRepository,
	actions port.ActionLogRepository,
	clock port.Clock,
	ttl time.Duration,
	m *metrics.Metrics,
	logger *slog.Logger,
) *Actuator {
	return &Actuator{
		platform:  platform,
		cache:     cache,
		campaigns: campaigns,
		actions:   actions,
		clock:     clock,
		ttl:       ttl,
		metrics:   m,
		logger:    logger.With("layer", "actuator"),
	}
}

// Status returns the external status of the campaign from the cache or the
// platform. When the platform fails, a verified status younger than the
// freshness window is used instead; older data is never trusted.
func (a *Actuator) Status(ctx context.Context, c *domain.Campaign) (domain.ExternalStatus, error) {
	ext := c.ExtID()
	if ext == "" {
		return domain.ExternalStatus{}, domain.ErrNoExternalID
	}
	if a.cache != nil {
		if st, ok := a.cache.Get(ctx, ext); ok {
			return st, nil
		}
	}

	st, err := a.platform.GetStatus(ctx, ext)
	if err == nil {
		a.remember(ctx, c, st)
		return st, nil
	}

	if c.LastVerifiedStatus != nil && c.LastVerifiedAt != nil && a.clock.Now().Sub(*c.LastVerifiedAt) < a.ttl {
		a.logger.Warn("using last verified status", "campaign_id", c.ID, "error", err)
		return domain.ExternalStatus{
			ExternalID: ext,
			Active:     *c.LastVerifiedStatus == string(domain.DesiredActive),
			Status:     *c.LastVerifiedStatus,
			ObservedAt: *c.LastVerifiedAt,
		}, nil
	}
	return domain.ExternalStatus{}, fmt.Errorf("%w: %w", domain.ErrStatusUnavailable, err)
}

// Ensure drives the campaign to the desired run state. Activating a
// campaign whose total budget is reached fails with domain.ErrBudgetExhausted.
func (a *Actuator) Ensure(ctx context.Context, c *domain.Campaign, desired domain.DesiredState) (domain.EnsureResult, error) {
	action := domain.ActionPause
	if desired == domain.DesiredActive {
		action = domain.ActionActivate
	}

	st, err := a.Status(ctx, c)
	if err != nil {
		return domain.EnsureResult{}, err
	}
	if st.Matches(desired) {
		a.record(ctx, c, action, string(desired), false, nil)
		return domain.EnsureResult{AlreadyInDesiredState: true}, nil
	}
	if desired == domain.DesiredActive && st.BudgetExhausted() {
		return domain.EnsureResult{}, domain.ErrBudgetExhausted
	}

	return a.mutate(ctx, c, action, string(desired), func(ctx context.Context, ext string) error {
		if desired == domain.DesiredActive {
			return a.platform.Activate(ctx, ext)
		}
		return a.platform.Pause(ctx, ext)
	})
}

// EnsureDailyBudget sets the daily budget unless it already matches within
// domain.BudgetTolerance.
func (a *Actuator) EnsureDailyBudget(ctx context.Context, c *domain.Campaign, amount float64) (domain.EnsureResult, error) {
	amount = domain.RoundCents(amount)
	desired := fmt.Sprintf("%.2f", amount)

	st, err := a.Status(ctx, c)
	if err != nil {
		return domain.EnsureResult{}, err
	}
	if domain.BudgetEqual(st.DailyBudget, amount) {
		a.record(ctx, c, domain.ActionSetBudget, desired, false, nil)
		return domain.EnsureResult{AlreadyInDesiredState: true}, nil
	}
	return a.mutate(ctx, c, domain.ActionSetBudget, desired, func(ctx context.Context, ext string) error {
		return a.platform.SetDailyBudget(ctx, ext, amount)
	})
}

// EnsureScheduleEndTime sets when the campaign stops serving.
func (a *Actuator) EnsureScheduleEndTime(ctx context.Context, c *domain.Campaign, end time.Time) (domain.EnsureResult, error) {
	desired := end.UTC().Format(domain.ScheduleTimeLayout)

	st, err := a.Status(ctx, c)
	if err != nil {
		return domain.EnsureResult{}, err
	}
	if st.ScheduleEndTime == desired {
		a.record(ctx, c, domain.ActionSetEndTime, desired, false, nil)
		return domain.EnsureResult{AlreadyInDesiredState: true}, nil
	}
	return a.mutate(ctx, c, domain.ActionSetEndTime, desired, func(ctx context.Context, ext string) error {
		return a.platform.SetScheduleEndTime(ctx, ext, end)
	})
}

func (a *Actuator) mutate(
	ctx context.Context,
	c *domain.Campaign,
	action domain.Action,
	desired string,
	call func(ctx context.Context, ext string) error,
) (domain.EnsureResult, error) {
	ext := c.ExtID()
	if err := call(ctx, ext); err != nil {
		a.record(ctx, c, action, desired, true, err)
		return domain.EnsureResult{}, &domain.ActuationError{Action: action, CampaignID: c.ID, ExternalID: ext, Err: err}
	}
	a.record(ctx, c, action, desired, true, nil)
	a.logger.Info("platform state changed", "campaign_id", c.ID, "external_id", ext, "action", action, "desired", desired)

	if a.cache != nil {
		a.cache.Invalidate(ctx, ext)
	}
	if st, err := a.platform.GetStatus(ctx, ext); err != nil {
		a.logger.Warn("status refresh after change failed", "campaign_id", c.ID, "error", err)
	} else {
		a.remember(ctx, c, st)
	}
	return domain.EnsureResult{ActionTaken: true}, nil
}

// remember caches a fresh status and persists it as last verified.
func (a *Actuator) remember(ctx context.Context, c *domain.Campaign, st domain.ExternalStatus) {
	if a.cache != nil {
		a.cache.Set(ctx, st)
	}
	label := string(domain.DesiredPaused)
	if st.Active {
		label = string(domain.DesiredActive)
	}
	at := st.ObservedAt
	if at.IsZero() {
		at = a.clock.Now()
	}
	if err := a.campaigns.UpdateLastVerified(ctx, c.ID, label, at); err != nil {
		a.logger.Warn("failed to store verified status", "campaign_id", c.ID, "error", err)
		return
	}
	c.LastVerifiedStatus = &label
	c.LastVerifiedAt = &at
}

func (a *Actuator) record(ctx context.Context, c *domain.Campaign, action domain.Action, desired string, taken bool, cause error) {
	result := "skipped"
	switch {
	case cause != nil:
		result = "failed"
	case taken:
		result = "taken"
	}
	a.metrics.IncActuation(string(action), result)

	entry := domain.ActionLog{
		CampaignID: c.ID,
		ExternalID: c.ExtID(),
		Action:     action,
		Desired:    desired,
		Taken:      taken,
		Success:    cause == nil,
		CreatedAt:  a.clock.Now(),
	}
	if cause != nil {
		msg := cause.Error()
		entry.Error = &msg
	}
	if err := a.actions.Record(context.WithoutCancel(ctx), entry); err != nil {
		a.logger.Error("failed to record action", "campaign_id", c.ID, "action", action, "error", err)
	}
}
