package domain

import "time"

// Action is a mutating platform operation issued by the safety layer.
type Action string

const (
	ActionPause      Action = "pause"
	ActionActivate   Action = "activate"
	ActionSetBudget  Action = "set_budget"
	ActionSetEndTime Action = "set_schedule_end"
)

// ActionLog records one safety layer attempt, taken or skipped.
type ActionLog struct {
	ID         int64
	CampaignID int64
	ExternalID string
	Action     Action
	Desired    string
	Taken      bool
	Success    bool
	Error      *string
	CreatedAt  time.Time
}

// EnsureResult reports what the safety layer did.
type EnsureResult struct {
	ActionTaken           bool `json:"action_taken"`
	AlreadyInDesiredState bool `json:"already_in_desired_state"`
}
