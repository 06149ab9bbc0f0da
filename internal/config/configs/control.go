package configs

import "time"

// Control holds the policy knobs of the reconciliation core.
type Control struct {
	MinPauseClicks    int64 `env:"MIN_PAUSE_CLICKS" envDefault:"5000" validate:"gte=0"`
	MinActivateClicks int64 `env:"MIN_ACTIVATE_CLICKS" envDefault:"15000" validate:"gtfield=MinPauseClicks"`

	// HighSpendThreshold is the daily spend that starts a high-spend episode.
	HighSpendThreshold float64 `env:"HIGH_SPEND_THRESHOLD" envDefault:"10" validate:"gt=0"`
	// HighSpendWait is the default delay before the aggregate budget is applied.
	HighSpendWait time.Duration `env:"HIGH_SPEND_WAIT" envDefault:"11m" validate:"gt=0"`
	// LateURLGrace is the age a URL created after the budget calculation
	// must reach before it is added to the budget.
	LateURLGrace time.Duration `env:"LATE_URL_GRACE" envDefault:"9m" validate:"gte=0"`

	// SweepConcurrency bounds how many campaigns a sweep evaluates at once.
	SweepConcurrency int `env:"SWEEP_CONCURRENCY" envDefault:"4" validate:"gte=1"`
	// CampaignTimeout bounds the evaluation of one campaign in a sweep.
	CampaignTimeout time.Duration `env:"CAMPAIGN_TIMEOUT" envDefault:"2m" validate:"gt=0"`
}
