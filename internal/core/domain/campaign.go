package domain

import "time"

// SpendState is the position of a campaign in the high-spend workflow.
type SpendState string

const (
	SpendStateNormal                 SpendState = "normal"
	SpendStateHighSpendFirstTime     SpendState = "high_spend_first_time"
	SpendStateHighSpendWaiting       SpendState = "high_spend_waiting"
	SpendStateHighSpendBudgetUpdated SpendState = "high_spend_budget_updated"
	SpendStateLowSpendUnderThreshold SpendState = "low_spend_under_threshold"
)

// IsHighSpend reports whether the state belongs to a running high-spend episode.
func (s SpendState) IsHighSpend() bool {
	switch s {
	case SpendStateHighSpendFirstTime, SpendStateHighSpendWaiting, SpendStateHighSpendBudgetUpdated:
		return true
	default:
		return false
	}
}

// Campaign represents a locally owned campaign that mirrors one campaign on
// the ad platform. Money is kept in currency units (dollars) as float64; the
// platform accepts two decimal places.
type Campaign struct {
	ID         int64
	Name       string
	ExternalID *string // nil disables all control
	Enabled    bool

	MinPauseClicks    *int64 // nil = system default
	MinActivateClicks *int64 // nil = system default
	WaitMinutes       *int   // high-spend wait, nil = system default
	PricePerThousand  float64

	SpendState              SpendState
	LastActionAt            *time.Time
	DailySpent              float64
	DailySpentDate          *time.Time
	LastSpentCheck          *time.Time
	HighSpendBudgetCalcTime *time.Time
	HighSpendWaitUntil      *time.Time
	DailyBudget             *float64

	LastVerifiedStatus *string
	LastVerifiedAt     *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Controllable reports whether the controller may act on the campaign.
func (c *Campaign) Controllable() bool {
	return c != nil && c.Enabled && c.ExternalID != nil && *c.ExternalID != ""
}

// ExtID returns the external id or an empty string.
func (c *Campaign) ExtID() string {
	if c == nil || c.ExternalID == nil {
		return ""
	}
	return *c.ExternalID
}

// Thresholds resolves the campaign-specific thresholds, falling back to def
// for any value that is not set.
func (c *Campaign) Thresholds(def Thresholds) Thresholds {
	t := def
	if c.MinPauseClicks != nil {
		t.MinPause = *c.MinPauseClicks
	}
	if c.MinActivateClicks != nil {
		t.MinReactivate = *c.MinActivateClicks
	}
	return t
}

// Wait returns the configured high-spend wait period.
func (c *Campaign) Wait(def time.Duration) time.Duration {
	if c.WaitMinutes != nil && *c.WaitMinutes > 0 {
		return time.Duration(*c.WaitMinutes) * time.Minute
	}
	return def
}

// WaitDueAt returns when the high-spend wait ends. The persisted due-at wins;
// older rows without one fall back to the last action plus the wait period.
func (c *Campaign) WaitDueAt(def time.Duration) (time.Time, bool) {
	if c.HighSpendWaitUntil != nil {
		return *c.HighSpendWaitUntil, true
	}
	if c.LastActionAt != nil {
		return c.LastActionAt.Add(c.Wait(def)), true
	}
	return time.Time{}, false
}

// SpendUpdate carries the per-tick spend observation that is stored
// regardless of the state machine decision.
type SpendUpdate struct {
	Amount    float64
	Date      time.Time
	CheckedAt time.Time
}

// SpendTransition is a persisted change of the high-spend workflow fields.
// Nil pointers leave a column untouched unless the matching Clear flag is set.
type SpendTransition struct {
	State          SpendState
	LastActionAt   *time.Time
	WaitUntil      *time.Time
	ClearWaitUntil bool
	CalcTime       *time.Time
	ClearCalcTime  bool
	DailyBudget    *float64
}
