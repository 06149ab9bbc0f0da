package port

import (
	"context"
	"time"

	"adpilot/internal/core/domain"
)

// PlatformClient is the subset of the ad platform API the controller uses.
// Implementations handle transport retries; callers never retry.
type PlatformClient interface {
	GetStatus(ctx context.Context, externalID string) (domain.ExternalStatus, error)
	Pause(ctx context.Context, externalID string) error
	Activate(ctx context.Context, externalID string) error
	SetDailyBudget(ctx context.Context, externalID string, amount float64) error
	SetScheduleEndTime(ctx context.Context, externalID string, end time.Time) error
	// GetSpend returns the accrued cost between two UTC dates, inclusive.
	GetSpend(ctx context.Context, externalID string, from, until time.Time) (float64, error)
}

// StatusCache holds recently observed external statuses. Entries past their
// freshness window must not be returned.
type StatusCache interface {
	Get(ctx context.Context, externalID string) (domain.ExternalStatus, bool)
	Set(ctx context.Context, status domain.ExternalStatus)
	Invalidate(ctx context.Context, externalID string)
}

// Clock abstracts time for sweeps and caches.
type Clock interface {
	Now() time.Time
}

// SystemClock is the default runtime clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
