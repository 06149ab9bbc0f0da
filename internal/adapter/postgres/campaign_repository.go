package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"adpilot/internal/core/domain"
)

// CampaignRepository implements port.CampaignRepository using pgxpool for
// PostgreSQL. It only writes the control columns of a campaign.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

const campaignColumns = `
    id,
    name,
    external_id,
    enabled,
    min_pause_clicks,
    min_activate_clicks,
    high_spend_wait_minutes,
    price_per_thousand,
    spend_state,
    last_action_at,
    daily_spent,
    daily_spent_date,
    last_spent_check,
    high_spend_budget_calc_time,
    high_spend_wait_until,
    daily_budget,
    last_verified_status,
    last_verified_at,
    created_at,
    updated_at`

func scanCampaign(row pgx.Row) (domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.ExternalID,
		&c.Enabled,
		&c.MinPauseClicks,
		&c.MinActivateClicks,
		&c.WaitMinutes,
		&c.PricePerThousand,
		&c.SpendState,
		&c.LastActionAt,
		&c.DailySpent,
		&c.DailySpentDate,
		&c.LastSpentCheck,
		&c.HighSpendBudgetCalcTime,
		&c.HighSpendWaitUntil,
		&c.DailyBudget,
		&c.LastVerifiedStatus,
		&c.LastVerifiedAt,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}

// GetCampaign returns a campaign by id.
func (r *CampaignRepository) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	c, err := scanCampaign(r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrCampaignNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListControllable returns enabled campaigns linked to the platform.
func (r *CampaignRepository) ListControllable(ctx context.Context) ([]domain.Campaign, error) {
	return r.list(ctx, `SELECT `+campaignColumns+` FROM campaigns
        WHERE enabled AND external_id IS NOT NULL AND external_id <> ''
        ORDER BY id`)
}

// ListWithExternalID returns every campaign linked to the platform.
func (r *CampaignRepository) ListWithExternalID(ctx context.Context) ([]domain.Campaign, error) {
	return r.list(ctx, `SELECT `+campaignColumns+` FROM campaigns
        WHERE external_id IS NOT NULL AND external_id <> ''
        ORDER BY id`)
}

func (r *CampaignRepository) list(ctx context.Context, query string) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		return scanCampaign(row)
	})
}

// UpdateSpend stores the latest spend observation.
func (r *CampaignRepository) UpdateSpend(ctx context.Context, id int64, upd domain.SpendUpdate) error {
	tag, err := r.pool.Exec(ctx, `UPDATE campaigns
        SET daily_spent = $2, daily_spent_date = $3, last_spent_check = $4, updated_at = now()
        WHERE id = $1`, id, upd.Amount, upd.Date, upd.CheckedAt)
	return affected(tag, err)
}

// ApplySpendTransition stores a change of the high-spend workflow state.
// The row is locked first so that concurrent workers see transitions in
// order.
func (r *CampaignRepository) ApplySpendTransition(ctx context.Context, id int64, tr domain.SpendTransition) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	var current domain.SpendState
	err = tx.QueryRow(ctx, `SELECT spend_state FROM campaigns WHERE id = $1 FOR UPDATE`, id).Scan(&current)
	if errors.Is(err, pgx.ErrNoRows) {
		err = domain.ErrCampaignNotFound
		return err
	}
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `UPDATE campaigns SET
        spend_state = $2,
        last_action_at = COALESCE($3::timestamptz, last_action_at),
        high_spend_wait_until = CASE WHEN $4::boolean THEN NULL
            ELSE COALESCE($5::timestamptz, high_spend_wait_until) END,
        high_spend_budget_calc_time = CASE WHEN $6::boolean THEN NULL
            ELSE COALESCE($7::timestamptz, high_spend_budget_calc_time) END,
        daily_budget = COALESCE($8::numeric, daily_budget),
        updated_at = now()
        WHERE id = $1`,
		id, tr.State, tr.LastActionAt, tr.ClearWaitUntil, tr.WaitUntil, tr.ClearCalcTime, tr.CalcTime, tr.DailyBudget)
	return err
}

// UpdateThresholds stores validated per-campaign thresholds.
func (r *CampaignRepository) UpdateThresholds(ctx context.Context, id int64, t domain.Thresholds) error {
	tag, err := r.pool.Exec(ctx, `UPDATE campaigns
        SET min_pause_clicks = $2, min_activate_clicks = $3, updated_at = now()
        WHERE id = $1`, id, t.MinPause, t.MinReactivate)
	return affected(tag, err)
}

// UpdateLastVerified stores the last confirmed external status.
func (r *CampaignRepository) UpdateLastVerified(ctx context.Context, id int64, status string, at time.Time) error {
	tag, err := r.pool.Exec(ctx, `UPDATE campaigns
        SET last_verified_status = $2, last_verified_at = $3
        WHERE id = $1`, id, status, at)
	return affected(tag, err)
}

func affected(tag pgconn.CommandTag, err error) error {
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCampaignNotFound
	}
	return nil
}
