package configs

import "time"

// Cache configures the external status cache. The memory backend is local
// to the process; the redis backend is shared between workers.
type Cache struct {
	Backend  string        `env:"BACKEND" envDefault:"memory" validate:"oneof=memory redis"`
	TTL      time.Duration `env:"TTL" envDefault:"30s" validate:"gt=0"`
	RedisURL string        `env:"REDIS_URL" envDefault:"redis://localhost:6379/0" validate:"required_if=Backend redis"`
	Prefix   string        `env:"PREFIX" envDefault:"adpilot:status:"`
}
