package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, int64(5000), cfg.Control.MinPauseClicks)
	assert.Equal(t, int64(15000), cfg.Control.MinActivateClicks)
	assert.Equal(t, 11*time.Minute, cfg.Control.HighSpendWait)
	assert.Equal(t, 9*time.Minute, cfg.Control.LateURLGrace)
	assert.Equal(t, 10.0, cfg.Control.HighSpendThreshold)
	assert.Equal(t, 5, cfg.Platform.MaxAttempts)
	assert.Equal(t, 10*time.Second, cfg.Platform.RequestTimeout)
	assert.Equal(t, 30*time.Second, cfg.Cache.TTL)
	assert.Equal(t, "memory", cfg.Cache.Backend)
	assert.False(t, cfg.Scheduler.Enabled)
}

func TestLoadRejectsReactivateNotAbovePause(t *testing.T) {
	t.Setenv("CONTROL_MIN_PAUSE_CLICKS", "5000")
	t.Setenv("CONTROL_MIN_ACTIVATE_CLICKS", "5000")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MinActivateClicks")
}

func TestLoadRejectsUnknownCacheBackend(t *testing.T) {
	t.Setenv("CACHE_BACKEND", "memcached")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PLATFORM_API_TOKEN", "secret")
	t.Setenv("PLATFORM_BASE_DELAY", "250ms")
	t.Setenv("CONTROL_SWEEP_CONCURRENCY", "8")
	t.Setenv("LOG_FORMAT", "JSON")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "secret", cfg.Platform.APIToken)
	assert.Equal(t, 250*time.Millisecond, cfg.Platform.BaseDelay)
	assert.Equal(t, 8, cfg.Control.SweepConcurrency)
	assert.Equal(t, "json", cfg.Log.SlogFormat())
}
