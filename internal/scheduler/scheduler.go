// Package scheduler runs the control sweeps on fixed intervals inside the
// serve process.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"adpilot/internal/config/configs"
	"adpilot/internal/core/port"
)

// SweepRunner is the part of port.ControlUseCase the scheduler needs.
type SweepRunner interface {
	RunSweep(ctx context.Context, kind port.SweepKind) (port.SweepReport, error)
}

// Job binds a sweep to its interval.
type Job struct {
	Kind     port.SweepKind
	Interval time.Duration
}

// Scheduler triggers every job on its own ticker. Runs of the same job never
// overlap; different jobs run concurrently and rely on the per-campaign
// locks of the use case.
type Scheduler struct {
	runner SweepRunner
	jobs   []Job
	logger *slog.Logger
}

// New returns a scheduler for jobs. Nothing runs until Start.
func New(runner SweepRunner, jobs []Job, logger *slog.Logger) *Scheduler {
	return &Scheduler{runner: runner, jobs: jobs, logger: logger.With("module", "scheduler")}
}

// JobsFromConfig returns one job per sweep kind.
func JobsFromConfig(cfg configs.Scheduler) []Job {
	return []Job{
		{Kind: port.SweepSpend, Interval: cfg.SpendInterval},
		{Kind: port.SweepThreshold, Interval: cfg.ThresholdInterval},
		{Kind: port.SweepEmptyURL, Interval: cfg.EmptyURLInterval},
		{Kind: port.SweepReassert, Interval: cfg.ReassertInterval},
	}
}

// Start launches the loops in background goroutines and returns a stop
// function that cancels them and waits for running sweeps to return.
func (s *Scheduler) Start(parent context.Context) func() {
	ctx, cancel := context.WithCancel(parent)

	var wg sync.WaitGroup
	for _, job := range s.jobs {
		if job.Interval <= 0 {
			s.logger.Warn("sweep disabled", slog.String("sweep", string(job.Kind)))
			continue
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.loop(ctx, job)
		}()
	}

	return func() {
		cancel()
		wg.Wait()
	}
}

func (s *Scheduler) loop(ctx context.Context, job Job) {
	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()

	s.runOnce(ctx, job.Kind)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runOnce(ctx, job.Kind)
		}
	}
}

func (s *Scheduler) runOnce(ctx context.Context, kind port.SweepKind) {
	report, err := s.runner.RunSweep(ctx, kind)
	if err != nil {
		if ctx.Err() == nil {
			s.logger.Error("sweep failed", slog.String("sweep", string(kind)), slog.Any("error", err))
		}
		return
	}
	s.logger.Debug("sweep finished",
		slog.String("sweep", string(kind)),
		slog.String("run_id", report.RunID),
		slog.Int("processed", report.Processed),
		slog.Int("failed", report.Failed),
	)
}
