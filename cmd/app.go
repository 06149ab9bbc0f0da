package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"gopkg.in/natefinch/lumberjack.v2"

	"adpilot/internal/adapter/platform"
	"adpilot/internal/adapter/postgres"
	"adpilot/internal/adapter/statuscache"
	"adpilot/internal/adapter/usecase"
	"adpilot/internal/config"
	"adpilot/internal/config/configs"
	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
	"adpilot/internal/db"
	"adpilot/internal/metrics"
)

// newLogger builds the process logger. Output always goes to stdout and,
// when a file is configured, to a size-rotated log file as well.
func newLogger(cfg configs.Logger) (*slog.Logger, io.Closer) {
	var (
		out    io.Writer = os.Stdout
		closer io.Closer = io.NopCloser(nil)
	)
	if cfg.File != "" {
		rotator := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
		}
		out = io.MultiWriter(os.Stdout, rotator)
		closer = rotator
	}

	var handler slog.Handler
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	switch cfg.SlogFormat() {
	case "json":
		handler = slog.NewJSONHandler(out, opts)
	default:
		handler = slog.NewTextHandler(out, opts)
	}
	return slog.New(handler), closer
}

// app holds the wired control core and everything that must be released
// when the command ends.
type app struct {
	cfg     config.Config
	logger  *slog.Logger
	pool    *pgxpool.Pool
	metrics *metrics.Metrics
	control *usecase.ControlUseCase

	closers []func()
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

// bootstrap loads configuration and opens the database. The control core
// is only built by withControl so that migrate and seed need no platform
// settings.
func bootstrap(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger, logCloser := newLogger(cfg.Log)
	slog.SetDefault(logger)

	a := &app{cfg: cfg, logger: logger}
	a.closers = append(a.closers, func() { _ = logCloser.Close() })

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		} else {
			logger.Info("migrations applied successfully")
		}
	}

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("database connection: %w", err)
	}
	a.pool = pool
	a.closers = append(a.closers, pool.Close)
	return a, nil
}

// withControl wires the platform client, the status cache and the control
// use case on top of the database pool.
func (a *app) withControl(ctx context.Context) error {
	if a.cfg.Platform.APIToken == "" {
		return errors.New("PLATFORM_API_TOKEN is required")
	}

	a.metrics = metrics.New()
	store := postgres.NewStore(a.pool)

	client := platform.NewClient(platform.Config{
		BaseURL: a.cfg.Platform.BaseURL.String(),
		Token:   a.cfg.Platform.APIToken,
		Timeout: a.cfg.Platform.RequestTimeout,
		Retry: platform.RetryPolicy{
			MaxAttempts: a.cfg.Platform.MaxAttempts,
			BaseDelay:   a.cfg.Platform.BaseDelay,
			Multiplier:  platform.DefaultRetryPolicy().Multiplier,
			MaxElapsed:  a.cfg.Platform.MaxElapsed,
		},
	}, store.APIErrors, a.metrics, a.logger)

	cache, err := a.statusCache(ctx)
	if err != nil {
		return err
	}

	ctl := a.cfg.Control
	a.control = usecase.NewControlUseCase(usecase.Deps{
		Store:    store,
		Platform: client,
		Cache:    cache,
		Clock:    port.SystemClock{},
		Metrics:  a.metrics,
		Logger:   a.logger,
	}, usecase.Options{
		Thresholds: domain.Thresholds{
			MinPause:      ctl.MinPauseClicks,
			MinReactivate: ctl.MinActivateClicks,
		},
		HighSpendThreshold: ctl.HighSpendThreshold,
		HighSpendWait:      ctl.HighSpendWait,
		LateURLGrace:       ctl.LateURLGrace,
		StatusTTL:          a.cfg.Cache.TTL,
		Concurrency:        ctl.SweepConcurrency,
		CampaignTimeout:    ctl.CampaignTimeout,
	})
	a.closers = append(a.closers, a.control.Stop)
	return nil
}

func (a *app) statusCache(ctx context.Context) (port.StatusCache, error) {
	switch a.cfg.Cache.Backend {
	case "redis":
		client, err := statuscache.Connect(ctx, a.cfg.Cache.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("redis connection: %w", err)
		}
		a.closers = append(a.closers, func() { _ = client.Close() })
		return statuscache.NewRedis(client, a.cfg.Cache.TTL, a.cfg.Cache.Prefix, a.metrics, a.logger), nil
	default:
		return statuscache.NewMemory(a.cfg.Cache.TTL, port.SystemClock{}, a.metrics), nil
	}
}
