package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"adpilot/internal/core/port"
)

// NewStore returns every repository backed by the same pool.
func NewStore(pool *pgxpool.Pool) port.Store {
	return port.Store{
		Campaigns:  NewCampaignRepository(pool),
		URLs:       NewURLRepository(pool),
		Monitoring: NewMonitoringRepository(pool),
		BudgetLog:  NewBudgetLogRepository(pool),
		APIErrors:  NewAPIErrorRepository(pool),
		Actions:    NewActionLogRepository(pool),
	}
}
