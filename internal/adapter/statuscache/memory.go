// Package statuscache keeps recently observed campaign statuses so that a
// sweep touching the same campaign twice does not read it from the
// platform twice.
package statuscache

import (
	"context"
	"sync"
	"time"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
	"adpilot/internal/metrics"
)

// Memory is a process-local cache with a fixed freshness window.
type Memory struct {
	mu      sync.Mutex
	ttl     time.Duration
	clock   port.Clock
	entries map[string]domain.ExternalStatus
	metrics *metrics.Metrics
}

// NewMemory returns an empty cache. A nil clock uses the system clock.
func NewMemory(ttl time.Duration, clock port.Clock, m *metrics.Metrics) *Memory {
	if clock == nil {
		clock = port.SystemClock{}
	}
	return &Memory{
		ttl:     ttl,
		clock:   clock,
		entries: make(map[string]domain.ExternalStatus),
		metrics: m,
	}
}

// Get returns a status observed within the freshness window. Stale entries
// are dropped.
func (c *Memory) Get(_ context.Context, externalID string) (domain.ExternalStatus, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	st, ok := c.entries[externalID]
	if ok && c.clock.Now().Sub(st.ObservedAt) >= c.ttl {
		delete(c.entries, externalID)
		ok = false
	}
	c.metrics.IncCacheLookup(ok)
	return st, ok
}

// Set stores a snapshot. A zero ObservedAt is stamped with the current time.
func (c *Memory) Set(_ context.Context, st domain.ExternalStatus) {
	if st.ObservedAt.IsZero() {
		st.ObservedAt = c.clock.Now()
	}
	c.mu.Lock()
	c.entries[st.ExternalID] = st
	c.mu.Unlock()
}

// Invalidate drops the snapshot of externalID.
func (c *Memory) Invalidate(_ context.Context, externalID string) {
	c.mu.Lock()
	delete(c.entries, externalID)
	c.mu.Unlock()
}
