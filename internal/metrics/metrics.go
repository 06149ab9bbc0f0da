package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics holds all Prometheus metrics of the controller. A nil *Metrics is
// valid and records nothing, which keeps tests free of registry setup.
type Metrics struct {
	SweepsTotal          *prometheus.CounterVec
	SweepCampaignErrors  *prometheus.CounterVec
	SweepDurationSeconds *prometheus.HistogramVec

	PlatformRequestsTotal *prometheus.CounterVec
	PlatformRetriesTotal  *prometheus.CounterVec

	ActuationsTotal   *prometheus.CounterVec
	StatusCacheLookup *prometheus.CounterVec

	MonitoringActive *prometheus.GaugeVec

	registry *prometheus.Registry
}

// New creates a Metrics instance with all metrics registered on a private
// registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		SweepsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "adpilot_sweeps_total",
				Help: "Total number of sweep runs",
			},
			[]string{"sweep"},
		),
		SweepCampaignErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "adpilot_sweep_campaign_errors_total",
				Help: "Total number of per-campaign evaluation failures",
			},
			[]string{"sweep"},
		),
		SweepDurationSeconds: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "adpilot_sweep_duration_seconds",
				Help:    "Sweep duration in seconds",
				Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120},
			},
			[]string{"sweep"},
		),
		PlatformRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "adpilot_platform_requests_total",
				Help: "Total number of ad platform HTTP attempts",
			},
			[]string{"operation", "outcome"},
		),
		PlatformRetriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "adpilot_platform_retries_total",
				Help: "Total number of retried ad platform calls",
			},
			[]string{"operation"},
		),
		ActuationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "adpilot_actuations_total",
				Help: "Safety layer attempts by action and result",
			},
			[]string{"action", "result"},
		),
		StatusCacheLookup: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "adpilot_status_cache_lookups_total",
				Help: "External status cache lookups by result",
			},
			[]string{"result"},
		),
		MonitoringActive: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "adpilot_monitoring_active_entries",
				Help: "Active monitoring registry entries seen by the last reassert sweep",
			},
			[]string{"type"},
		),
		registry: reg,
	}

	reg.MustRegister(
		m.SweepsTotal,
		m.SweepCampaignErrors,
		m.SweepDurationSeconds,
		m.PlatformRequestsTotal,
		m.PlatformRetriesTotal,
		m.ActuationsTotal,
		m.StatusCacheLookup,
		m.MonitoringActive,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Registry returns the Prometheus registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveSweep records one sweep run.
func (m *Metrics) ObserveSweep(sweep string, failed int, d time.Duration) {
	if m == nil {
		return
	}
	m.SweepsTotal.WithLabelValues(sweep).Inc()
	m.SweepDurationSeconds.WithLabelValues(sweep).Observe(d.Seconds())
	if failed > 0 {
		m.SweepCampaignErrors.WithLabelValues(sweep).Add(float64(failed))
	}
}

// IncPlatformRequest counts one HTTP attempt against the platform.
func (m *Metrics) IncPlatformRequest(operation, outcome string) {
	if m == nil {
		return
	}
	m.PlatformRequestsTotal.WithLabelValues(operation, outcome).Inc()
}

// IncPlatformRetry counts one retry of a logical platform call.
func (m *Metrics) IncPlatformRetry(operation string) {
	if m == nil {
		return
	}
	m.PlatformRetriesTotal.WithLabelValues(operation).Inc()
}

// IncActuation counts a safety layer attempt. result is taken, skipped or failed.
func (m *Metrics) IncActuation(action, result string) {
	if m == nil {
		return
	}
	m.ActuationsTotal.WithLabelValues(action, result).Inc()
}

// IncCacheLookup counts a status cache hit or miss.
func (m *Metrics) IncCacheLookup(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.StatusCacheLookup.WithLabelValues(result).Inc()
}

// SetMonitoringActive sets the active entry count of a monitoring type.
func (m *Metrics) SetMonitoringActive(kind string, n int) {
	if m == nil {
		return
	}
	m.MonitoringActive.WithLabelValues(kind).Set(float64(n))
}
