package configs

import (
	"net/url"
	"time"
)

// Platform configures the ad platform API client.
type Platform struct {
	BaseURL  url.URL `env:"BASE_URL" envDefault:"https://api.trafficstars.com/v1.1/advertiser"`
	APIToken string  `env:"API_TOKEN"`

	// RequestTimeout bounds a single HTTP attempt.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s" validate:"gt=0"`
	// MaxAttempts is the number of tries per logical call, first one included.
	MaxAttempts int `env:"MAX_ATTEMPTS" envDefault:"5" validate:"gte=1"`
	// BaseDelay is the first backoff; each further attempt waits 1.5x longer.
	BaseDelay time.Duration `env:"BASE_DELAY" envDefault:"1s" validate:"gte=0"`
	// MaxElapsed bounds the wall time spent retrying one logical call.
	MaxElapsed time.Duration `env:"MAX_ELAPSED" envDefault:"60s" validate:"gt=0"`
}
