package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adpilot/internal/core/domain"
)

// URLRepository reads URL inventory owned by the surrounding product.
type URLRepository struct {
	pool *pgxpool.Pool
}

// NewURLRepository returns a repository over pool.
func NewURLRepository(pool *pgxpool.Pool) *URLRepository {
	return &URLRepository{pool: pool}
}

const urlColumns = `id, campaign_id, status, click_limit, clicks, created_at`

func scanURL(row pgx.CollectableRow) (domain.URLRecord, error) {
	var u domain.URLRecord
	err := row.Scan(&u.ID, &u.CampaignID, &u.Status, &u.ClickLimit, &u.Clicks, &u.CreatedAt)
	return u, err
}

// ListActiveByCampaign returns the active URLs of a campaign.
func (r *URLRepository) ListActiveByCampaign(ctx context.Context, campaignID int64) ([]domain.URLRecord, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+urlColumns+` FROM url_records
        WHERE campaign_id = $1 AND status = $2
        ORDER BY id`, campaignID, domain.URLStatusActive)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanURL)
}

// ListActiveCreatedAfter returns active URLs created strictly after t,
// oldest first.
func (r *URLRepository) ListActiveCreatedAfter(ctx context.Context, campaignID int64, t time.Time) ([]domain.URLRecord, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+urlColumns+` FROM url_records
        WHERE campaign_id = $1 AND status = $2 AND created_at > $3
        ORDER BY created_at, id`, campaignID, domain.URLStatusActive, t)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanURL)
}
