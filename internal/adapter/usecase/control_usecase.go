package usecase

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
	"adpilot/internal/metrics"
)

// Options are the policy knobs of the control core.
type Options struct {
	// Thresholds are the system-wide click thresholds.
	Thresholds domain.Thresholds
	// HighSpendThreshold is the daily spend that starts a high-spend episode.
	HighSpendThreshold float64
	// HighSpendWait is the default delay before the aggregate budget is
	// applied. Campaigns may override it.
	HighSpendWait time.Duration
	// LateURLGrace is the minimum age of a URL created after the budget
	// calculation before it is priced into the budget.
	LateURLGrace time.Duration
	// StatusTTL is how long a verified status stays usable as a fallback
	// when the platform cannot be read.
	StatusTTL time.Duration

	Concurrency     int
	CampaignTimeout time.Duration
}

// DefaultOptions returns the production defaults.
func DefaultOptions() Options {
	return Options{
		Thresholds:         domain.DefaultThresholds(),
		HighSpendThreshold: 10,
		HighSpendWait:      11 * time.Minute,
		LateURLGrace:       9 * time.Minute,
		StatusTTL:          30 * time.Second,
		Concurrency:        4,
		CampaignTimeout:    2 * time.Minute,
	}
}

// Deps are the collaborators of the control core.
type Deps struct {
	Store    port.Store
	Platform port.PlatformClient
	Cache    port.StatusCache
	Clock    port.Clock
	Metrics  *metrics.Metrics
	Logger   *slog.Logger
}

// ControlUseCase implements port.ControlUseCase. It owns the per-campaign
// locks and the in-process wait timers; everything that must survive a
// restart lives in the store.
type ControlUseCase struct {
	store    port.Store
	platform port.PlatformClient
	clock    port.Clock
	metrics  *metrics.Metrics
	logger   *slog.Logger
	opts     Options

	actuator *Actuator
	registry *Registry
	locks    *campaignLocks
	waits    *waitTimers
}

var _ port.ControlUseCase = (*ControlUseCase)(nil)

// NewControlUseCase wires the control core.
func NewControlUseCase(d Deps, opts Options) *ControlUseCase {
	if d.Clock == nil {
		d.Clock = port.SystemClock{}
	}
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}
	if opts.CampaignTimeout <= 0 {
		opts.CampaignTimeout = 2 * time.Minute
	}
	logger := d.Logger.With("module", "control")

	return &ControlUseCase{
		store:    d.Store,
		platform: d.Platform,
		clock:    d.Clock,
		metrics:  d.Metrics,
		logger:   logger,
		opts:     opts,
		actuator: NewActuator(d.Platform, d.Cache, d.Store.Campaigns, d.Store.Actions, d.Clock, opts.StatusTTL, d.Metrics, logger),
		registry: NewRegistry(d.Store.Monitoring, d.Clock),
		locks:    newCampaignLocks(),
		waits:    newWaitTimers(),
	}
}

// Stop cancels pending wait timers. Pending waits are recovered from the
// store by the next spend sweep.
func (u *ControlUseCase) Stop() {
	u.waits.Stop()
}

// RunSweep evaluates every eligible campaign once.
func (u *ControlUseCase) RunSweep(ctx context.Context, kind port.SweepKind) (port.SweepReport, error) {
	var (
		items []sweepItem
		err   error
	)
	switch kind {
	case port.SweepSpend:
		items, err = u.campaignItems(ctx, u.evaluateSpend)
	case port.SweepThreshold:
		items, err = u.campaignItems(ctx, u.evaluateThreshold)
	case port.SweepEmptyURL:
		items, err = u.campaignItems(ctx, u.evaluateEmptyInventory)
	case port.SweepReassert:
		items, err = u.reassertItems(ctx)
	default:
		_, err = port.ParseSweepKind(string(kind))
	}
	if err != nil {
		return port.SweepReport{Sweep: kind}, err
	}
	return u.sweep(ctx, kind, items), nil
}

type sweepItem struct {
	campaignID int64
	run        func(ctx context.Context) error
}

// campaignItems turns the controllable campaigns into sweep items. Each item
// reloads its campaign under the lock so it sees writes made by timers and
// operator actions.
func (u *ControlUseCase) campaignItems(ctx context.Context, eval func(context.Context, *domain.Campaign) error) ([]sweepItem, error) {
	campaigns, err := u.store.Campaigns.ListControllable(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]sweepItem, 0, len(campaigns))
	for _, c := range campaigns {
		id := c.ID
		items = append(items, sweepItem{
			campaignID: id,
			run: func(ctx context.Context) error {
				c, err := u.store.Campaigns.GetCampaign(ctx, id)
				if err != nil {
					return err
				}
				if !c.Controllable() {
					return nil
				}
				return eval(ctx, c)
			},
		})
	}
	return items, nil
}

// sweep runs the items with bounded concurrency. A failing campaign is
// logged and counted; it never stops its siblings.
func (u *ControlUseCase) sweep(ctx context.Context, kind port.SweepKind, items []sweepItem) port.SweepReport {
	started := time.Now()
	report := port.SweepReport{Sweep: kind, RunID: uuid.NewString(), Processed: len(items)}
	logger := u.logger.With("sweep", string(kind), "run_id", report.RunID)

	var (
		g      errgroup.Group
		failed atomic.Int64
	)
	g.SetLimit(u.opts.Concurrency)

	for _, it := range items {
		g.Go(func() error {
			if ctx.Err() != nil {
				failed.Add(1)
				return nil
			}
			unlock := u.locks.lock(it.campaignID)
			defer unlock()

			cctx, cancel := context.WithTimeout(ctx, u.opts.CampaignTimeout)
			defer cancel()

			if err := it.run(cctx); err != nil {
				failed.Add(1)
				logger.Error("campaign evaluation failed", "campaign_id", it.campaignID, "error", err)
			}
			return nil
		})
	}
	_ = g.Wait()

	report.Failed = int(failed.Load())
	report.Duration = time.Since(started)
	u.metrics.ObserveSweep(string(kind), report.Failed, report.Duration)
	logger.Info("sweep finished", "processed", report.Processed, "failed", report.Failed, "duration", report.Duration)
	return report
}

// pauseHeld reports whether a pause obligation is active for the campaign.
func (u *ControlUseCase) pauseHeld(ctx context.Context, campaignID int64) (bool, error) {
	for _, t := range []domain.MonitoringType{domain.MonitorPauseStatus, domain.MonitorEmptyURL} {
		ok, err := u.registry.IsWatched(ctx, campaignID, t)
		if err != nil || ok {
			return ok, err
		}
	}
	return false, nil
}

// holdPaused pauses an active campaign and records the obligation. A failed
// pause still records it so the reassert sweep keeps trying. A campaign
// found already paused is only taken over while active_status is watched;
// otherwise the pause belongs to someone else.
func (u *ControlUseCase) holdPaused(ctx context.Context, c *domain.Campaign, t domain.MonitoringType) (bool, error) {
	res, err := u.actuator.Ensure(ctx, c, domain.DesiredPaused)
	var aerr *domain.ActuationError
	if err != nil && !errors.As(err, &aerr) {
		return false, err
	}
	if !res.ActionTaken && err == nil {
		managed, werr := u.registry.IsWatched(ctx, c.ID, domain.MonitorActiveStatus)
		if werr != nil || !managed {
			return false, werr
		}
	}
	if werr := u.registry.Watch(ctx, c.ID, c.ExtID(), t); werr != nil {
		return res.ActionTaken, errors.Join(err, werr)
	}
	if t == domain.MonitorPauseStatus {
		if uerr := u.registry.Unwatch(ctx, c.ID, domain.MonitorActiveStatus); uerr != nil {
			return res.ActionTaken, errors.Join(err, uerr)
		}
	}
	return res.ActionTaken, err
}

type campaignLocks struct {
	mu sync.Mutex
	m  map[int64]*sync.Mutex
}

func newCampaignLocks() *campaignLocks {
	return &campaignLocks{m: make(map[int64]*sync.Mutex)}
}

// lock serialises work on one campaign and returns the unlock function.
func (l *campaignLocks) lock(id int64) func() {
	l.mu.Lock()
	mu, ok := l.m[id]
	if !ok {
		mu = &sync.Mutex{}
		l.m[id] = mu
	}
	l.mu.Unlock()

	mu.Lock()
	return mu.Unlock
}
