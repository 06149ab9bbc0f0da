package configs

import "time"

// Scheduler configures the optional in-process sweep scheduler. Production
// deployments usually leave it off and call the sweep endpoints from cron.
type Scheduler struct {
	Enabled           bool          `env:"ENABLED" envDefault:"false"`
	SpendInterval     time.Duration `env:"SPEND_INTERVAL" envDefault:"5m" validate:"gt=0"`
	ThresholdInterval time.Duration `env:"THRESHOLD_INTERVAL" envDefault:"3m" validate:"gt=0"`
	EmptyURLInterval  time.Duration `env:"EMPTY_URL_INTERVAL" envDefault:"3m" validate:"gt=0"`
	ReassertInterval  time.Duration `env:"REASSERT_INTERVAL" envDefault:"2m" validate:"gt=0"`
}
