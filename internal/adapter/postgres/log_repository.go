package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adpilot/internal/core/domain"
)

// BudgetLogRepository stores the URL budget contributions.
type BudgetLogRepository struct {
	pool *pgxpool.Pool
}

// NewBudgetLogRepository returns a repository over pool.
func NewBudgetLogRepository(pool *pgxpool.Pool) *BudgetLogRepository {
	return &BudgetLogRepository{pool: pool}
}

// Append inserts the contributions in one transaction. URLs already logged
// for the campaign are skipped by the (campaign_id, url_id) constraint.
func (r *BudgetLogRepository) Append(ctx context.Context, items []domain.BudgetContribution) (added int, err error) {
	if len(items) == 0 {
		return 0, nil
	}
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	for _, it := range items {
		tag, execErr := tx.Exec(ctx, `INSERT INTO url_budget_contributions (campaign_id, url_id, price, created_at)
            VALUES ($1, $2, $3, $4) ON CONFLICT (campaign_id, url_id) DO NOTHING`,
			it.CampaignID, it.URLID, it.Price, it.CreatedAt)
		if execErr != nil {
			err = execErr
			return 0, err
		}
		added += int(tag.RowsAffected())
	}
	return added, nil
}

// ListByCampaign returns the contributions of a campaign in insert order.
func (r *BudgetLogRepository) ListByCampaign(ctx context.Context, campaignID int64) ([]domain.BudgetContribution, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, campaign_id, url_id, price, created_at
        FROM url_budget_contributions WHERE campaign_id = $1 ORDER BY id`, campaignID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.BudgetContribution, error) {
		var c domain.BudgetContribution
		err := row.Scan(&c.ID, &c.CampaignID, &c.URLID, &c.Price, &c.CreatedAt)
		return c, err
	})
}

// Clear drops every contribution of a campaign.
func (r *BudgetLogRepository) Clear(ctx context.Context, campaignID int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM url_budget_contributions WHERE campaign_id = $1`, campaignID)
	return err
}

// APIErrorRepository stores failed platform calls.
type APIErrorRepository struct {
	pool *pgxpool.Pool
}

// NewAPIErrorRepository returns a repository over pool.
func NewAPIErrorRepository(pool *pgxpool.Pool) *APIErrorRepository {
	return &APIErrorRepository{pool: pool}
}

// Create inserts the row and sets e.ID.
func (r *APIErrorRepository) Create(ctx context.Context, e *domain.APIErrorLog) error {
	return r.pool.QueryRow(ctx, `INSERT INTO api_error_logs
        (action_key, operation, method, endpoint, external_id, request_body, status_code,
         error_message, retry_count, resolved, created_at, updated_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,0,FALSE,$9,$10) RETURNING id`,
		e.ActionKey, e.Operation, e.Method, e.Endpoint, e.ExternalID, e.RequestBody, e.StatusCode,
		e.ErrorMessage, e.CreatedAt, e.UpdatedAt).Scan(&e.ID)
}

// FindUnresolved returns the newest open row for the operation on one
// external campaign.
func (r *APIErrorRepository) FindUnresolved(ctx context.Context, operation, externalID string) (*domain.APIErrorLog, error) {
	var e domain.APIErrorLog
	err := r.pool.QueryRow(ctx, `SELECT id, action_key, operation, method, endpoint, external_id,
        request_body, status_code, error_message, retry_count, resolved, resolved_at, created_at, updated_at
        FROM api_error_logs WHERE NOT resolved AND operation = $1 AND external_id = $2
        ORDER BY id DESC LIMIT 1`, operation, externalID).Scan(
		&e.ID, &e.ActionKey, &e.Operation, &e.Method, &e.Endpoint, &e.ExternalID,
		&e.RequestBody, &e.StatusCode, &e.ErrorMessage, &e.RetryCount, &e.Resolved, &e.ResolvedAt,
		&e.CreatedAt, &e.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// RecordRetry bumps retry_count and stores the latest failure.
func (r *APIErrorRepository) RecordRetry(ctx context.Context, id int64, message string, statusCode *int, at time.Time) error {
	tag, err := r.pool.Exec(ctx, `UPDATE api_error_logs
        SET retry_count = retry_count + 1, error_message = $2, status_code = $3, updated_at = $4
        WHERE id = $1`, id, message, statusCode, at)
	return apiErrorAffected(tag.RowsAffected(), err)
}

// Resolve closes the row. Unknown ids return domain.ErrAPIErrorNotFound.
func (r *APIErrorRepository) Resolve(ctx context.Context, id int64, at time.Time) error {
	tag, err := r.pool.Exec(ctx, `UPDATE api_error_logs
        SET resolved = TRUE, resolved_at = $2, updated_at = $2
        WHERE id = $1`, id, at)
	return apiErrorAffected(tag.RowsAffected(), err)
}

// List returns a page of rows, newest first, and the total row count.
func (r *APIErrorRepository) List(ctx context.Context, offset, limit int) ([]domain.APIErrorLog, int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM api_error_logs`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT id, action_key, operation, method, endpoint, external_id,
        request_body, status_code, error_message, retry_count, resolved, resolved_at, created_at, updated_at
        FROM api_error_logs ORDER BY id DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.APIErrorLog, error) {
		var e domain.APIErrorLog
		err := row.Scan(&e.ID, &e.ActionKey, &e.Operation, &e.Method, &e.Endpoint, &e.ExternalID,
			&e.RequestBody, &e.StatusCode, &e.ErrorMessage, &e.RetryCount, &e.Resolved, &e.ResolvedAt,
			&e.CreatedAt, &e.UpdatedAt)
		return e, err
	})
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func apiErrorAffected(n int64, err error) error {
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrAPIErrorNotFound
	}
	return nil
}

// ActionLogRepository is the audit trail of the safety layer.
type ActionLogRepository struct {
	pool *pgxpool.Pool
}

// NewActionLogRepository returns a repository over pool.
func NewActionLogRepository(pool *pgxpool.Pool) *ActionLogRepository {
	return &ActionLogRepository{pool: pool}
}

// Record appends one audit row.
func (r *ActionLogRepository) Record(ctx context.Context, a domain.ActionLog) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO action_logs
        (campaign_id, external_id, action, desired, taken, success, error, created_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		a.CampaignID, a.ExternalID, a.Action, a.Desired, a.Taken, a.Success, a.Error, a.CreatedAt)
	return err
}
