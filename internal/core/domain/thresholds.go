package domain

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

const (
	DefaultMinPauseClicks    int64 = 5000
	DefaultMinActivateClicks int64 = 15000
)

// Thresholds are the click-inventory bounds that drive pause and
// reactivation. The gap between them is a dead zone where nothing happens.
type Thresholds struct {
	MinPause      int64 `validate:"gte=0"`
	MinReactivate int64 `validate:"gtfield=MinPause"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// DefaultThresholds returns the system-wide thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{MinPause: DefaultMinPauseClicks, MinReactivate: DefaultMinActivateClicks}
}

// NewThresholds builds validated thresholds. Reactivation must be strictly
// above pause.
func NewThresholds(minPause, minReactivate int64) (Thresholds, error) {
	t := Thresholds{MinPause: minPause, MinReactivate: minReactivate}
	if err := t.Validate(); err != nil {
		return Thresholds{}, err
	}
	return t, nil
}

// Validate checks the invariant reactivate > pause >= 0.
func (t Thresholds) Validate() error {
	if err := validate.Struct(t); err != nil {
		return fmt.Errorf("%w: pause=%d reactivate=%d: %v", ErrInvalidThresholds, t.MinPause, t.MinReactivate, err)
	}
	return nil
}

// Decision is the outcome of comparing remaining inventory with thresholds.
type Decision int

const (
	DecisionNone Decision = iota
	DecisionPause
	DecisionReactivate
)

// Decide classifies remaining clicks. Values strictly between the two
// thresholds produce DecisionNone.
func (t Thresholds) Decide(remaining int64) Decision {
	switch {
	case remaining <= t.MinPause:
		return DecisionPause
	case remaining >= t.MinReactivate:
		return DecisionReactivate
	default:
		return DecisionNone
	}
}
