package domain

import (
	"fmt"
	"time"
)

// MonitoringType names a standing obligation the re-assertion sweep keeps
// enforcing for a campaign.
type MonitoringType string

const (
	// MonitorActiveStatus keeps a campaign running after a budget bump or
	// a threshold reactivation.
	MonitorActiveStatus MonitoringType = "active_status"
	// MonitorPauseStatus keeps a campaign paused while its click inventory
	// is below the reactivation threshold.
	MonitorPauseStatus MonitoringType = "pause_status"
	// MonitorEmptyURL keeps a campaign paused while it has no active URLs.
	MonitorEmptyURL MonitoringType = "empty_url"
)

// MonitoringTypes lists every monitoring type.
var MonitoringTypes = []MonitoringType{MonitorActiveStatus, MonitorPauseStatus, MonitorEmptyURL}

// ParseMonitoringType converts a stored value into a MonitoringType.
func ParseMonitoringType(s string) (MonitoringType, error) {
	switch t := MonitoringType(s); t {
	case MonitorActiveStatus, MonitorPauseStatus, MonitorEmptyURL:
		return t, nil
	default:
		return "", fmt.Errorf("unknown monitoring type %q", s)
	}
}

// Desired returns the external state the obligation asserts.
func (t MonitoringType) Desired() DesiredState {
	if t == MonitorActiveStatus {
		return DesiredActive
	}
	return DesiredPaused
}

// MonitoringEntry is one row of the monitoring registry. At most one entry
// exists per (CampaignID, Type); inactive entries are kept as history.
type MonitoringEntry struct {
	CampaignID int64
	Type       MonitoringType
	ExternalID string
	Active     bool
	AddedAt    time.Time
	UpdatedAt  time.Time
}
