package domain

import "time"

// URLStatus is the lifecycle status of a tracked URL.
type URLStatus string

const (
	URLStatusActive URLStatus = "active"
)

// URLRecord is a URL owned by a campaign together with its click capacity.
// The controller never writes these rows.
type URLRecord struct {
	ID         int64
	CampaignID int64
	Status     URLStatus
	ClickLimit int64
	Clicks     int64
	CreatedAt  time.Time
}

// Remaining returns the unconsumed clicks, floored at zero.
func (u URLRecord) Remaining() int64 {
	if r := u.ClickLimit - u.Clicks; r > 0 {
		return r
	}
	return 0
}

// IsActive reports whether the URL counts towards inventory.
func (u URLRecord) IsActive() bool {
	return u.Status == URLStatusActive
}

// RemainingClicks sums remaining clicks over the active URLs.
func RemainingClicks(urls []URLRecord) int64 {
	var total int64
	for _, u := range urls {
		if u.IsActive() {
			total += u.Remaining()
		}
	}
	return total
}
