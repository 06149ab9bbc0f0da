package domain

import (
	"errors"
	"fmt"
)

var (
	ErrCampaignNotFound  = errors.New("campaign not found")
	ErrAPIErrorNotFound  = errors.New("api error log entry not found")
	ErrInvalidThresholds = errors.New("reactivation threshold must be greater than pause threshold")
	ErrNoExternalID      = errors.New("campaign has no external id")
	ErrCampaignDisabled  = errors.New("campaign control is disabled")
	ErrBudgetExhausted   = errors.New("campaign total budget reached")
	ErrStatusUnavailable = errors.New("external status unavailable")
)

// ActuationError is returned by the safety layer when a mutating call to the
// platform fails. The attempt itself is already recorded in the action log.
type ActuationError struct {
	Action     Action
	CampaignID int64
	ExternalID string
	Err        error
}

func (e *ActuationError) Error() string {
	return fmt.Sprintf("%s campaign %d (external %s): %v", e.Action, e.CampaignID, e.ExternalID, e.Err)
}

func (e *ActuationError) Unwrap() error {
	return e.Err
}
