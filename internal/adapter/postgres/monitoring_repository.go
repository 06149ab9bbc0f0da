package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adpilot/internal/core/domain"
)

// MonitoringRepository stores the monitoring registry. The primary key
// (campaign_id, type) keeps one row per obligation.
type MonitoringRepository struct {
	pool *pgxpool.Pool
}

// NewMonitoringRepository returns a repository over pool.
func NewMonitoringRepository(pool *pgxpool.Pool) *MonitoringRepository {
	return &MonitoringRepository{pool: pool}
}

// Upsert activates the entry. An entry that is already active keeps its
// added_at.
func (r *MonitoringRepository) Upsert(ctx context.Context, e domain.MonitoringEntry) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO monitoring_entries
        (campaign_id, type, external_id, active, added_at, updated_at)
        VALUES ($1, $2, $3, TRUE, $4, $5)
        ON CONFLICT (campaign_id, type) DO UPDATE SET
            external_id = EXCLUDED.external_id,
            added_at = CASE WHEN monitoring_entries.active THEN monitoring_entries.added_at ELSE EXCLUDED.added_at END,
            active = TRUE,
            updated_at = EXCLUDED.updated_at`,
		e.CampaignID, e.Type, e.ExternalID, e.AddedAt, e.UpdatedAt)
	return err
}

// Deactivate marks an active entry inactive. Missing entries are ignored.
func (r *MonitoringRepository) Deactivate(ctx context.Context, campaignID int64, t domain.MonitoringType, at time.Time) error {
	_, err := r.pool.Exec(ctx, `UPDATE monitoring_entries SET active = FALSE, updated_at = $3
        WHERE campaign_id = $1 AND type = $2 AND active`, campaignID, t, at)
	return err
}

// Get returns the entry for (campaignID, t) or nil when there is none.
func (r *MonitoringRepository) Get(ctx context.Context, campaignID int64, t domain.MonitoringType) (*domain.MonitoringEntry, error) {
	e, err := scanMonitoring(r.pool.QueryRow(ctx, `SELECT campaign_id, type, external_id, active, added_at, updated_at
        FROM monitoring_entries WHERE campaign_id = $1 AND type = $2`, campaignID, t))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// ListActive returns all active entries ordered by campaign.
func (r *MonitoringRepository) ListActive(ctx context.Context) ([]domain.MonitoringEntry, error) {
	rows, err := r.pool.Query(ctx, `SELECT campaign_id, type, external_id, active, added_at, updated_at
        FROM monitoring_entries WHERE active ORDER BY campaign_id, type`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.MonitoringEntry, error) {
		return scanMonitoring(row)
	})
}

func scanMonitoring(row pgx.Row) (domain.MonitoringEntry, error) {
	var (
		e    domain.MonitoringEntry
		kind string
	)
	if err := row.Scan(&e.CampaignID, &kind, &e.ExternalID, &e.Active, &e.AddedAt, &e.UpdatedAt); err != nil {
		return e, err
	}
	t, err := domain.ParseMonitoringType(kind)
	if err != nil {
		return e, err
	}
	e.Type = t
	return e, nil
}
