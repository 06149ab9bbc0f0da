package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNew(t *testing.T) {
	m := New()
	if m == nil {
		t.Fatal("New() returned nil")
	}
	if m.Registry() == nil {
		t.Error("Registry() returned nil")
	}
}

func TestObserveSweep(t *testing.T) {
	m := New()

	m.ObserveSweep("spend", 0, time.Second)
	m.ObserveSweep("spend", 2, time.Second)

	if got := testutil.ToFloat64(m.SweepsTotal.WithLabelValues("spend")); got != 2 {
		t.Errorf("sweeps_total = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.SweepCampaignErrors.WithLabelValues("spend")); got != 2 {
		t.Errorf("campaign_errors_total = %v, want 2", got)
	}
}

func TestCounters(t *testing.T) {
	m := New()

	m.IncPlatformRequest("pause", "error")
	m.IncPlatformRetry("pause")
	m.IncActuation("pause", "skipped")
	m.IncCacheLookup(true)
	m.IncCacheLookup(false)
	m.IncCacheLookup(false)
	m.SetMonitoringActive("pause_status", 3)

	if got := testutil.ToFloat64(m.PlatformRequestsTotal.WithLabelValues("pause", "error")); got != 1 {
		t.Errorf("platform_requests_total = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.StatusCacheLookup.WithLabelValues("miss")); got != 2 {
		t.Errorf("cache misses = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.MonitoringActive.WithLabelValues("pause_status")); got != 3 {
		t.Errorf("monitoring_active = %v, want 3", got)
	}
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.ObserveSweep("spend", 1, time.Second)
	m.IncPlatformRequest("pause", "ok")
	m.IncPlatformRetry("pause")
	m.IncActuation("pause", "taken")
	m.IncCacheLookup(true)
	m.SetMonitoringActive("empty_url", 1)
}
