package domain

import (
	"slices"
	"time"
)

// DesiredState is the external run state the controller asserts.
type DesiredState string

const (
	DesiredActive DesiredState = "active"
	DesiredPaused DesiredState = "paused"
)

// Paused reasons reported by the platform that no budget change can fix.
const (
	ReasonTotalBudgetReached = "total_budget_reached"
)

// ExternalStatus is the last observed state of a campaign on the platform.
type ExternalStatus struct {
	ExternalID      string    `json:"external_id"`
	Active          bool      `json:"active"`
	Status          string    `json:"status"`
	PausedReasons   []string  `json:"paused_reasons,omitempty"`
	DailyBudget     float64   `json:"daily_budget"`
	ScheduleEndTime string    `json:"schedule_end_time,omitempty"`
	ObservedAt      time.Time `json:"observed_at"`
}

// Matches reports whether the status already satisfies d.
func (s ExternalStatus) Matches(d DesiredState) bool {
	if d == DesiredActive {
		return s.Active
	}
	return !s.Active
}

// BudgetExhausted reports the terminal "total budget reached" state.
func (s ExternalStatus) BudgetExhausted() bool {
	return slices.Contains(s.PausedReasons, ReasonTotalBudgetReached)
}

// ScheduleTimeLayout is the platform's schedule timestamp format (UTC).
const ScheduleTimeLayout = "2006-01-02 15:04:05"

// EndOfDay returns the last second of t's UTC day.
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 23, 59, 59, 0, time.UTC)
}
