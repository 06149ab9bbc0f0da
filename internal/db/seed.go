package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo campaigns and URL inventory. External ids are left
// unset for all but the first campaign so that only one of them is
// controlled against a real platform account.
func Seed(ctx context.Context, db *pgxpool.Pool, externalID string) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	for i := 1; i <= 5; i++ {
		name := fmt.Sprintf("Campaign %d", i)
		var ext *string
		if i == 1 && externalID != "" {
			ext = &externalID
		}
		pricePerThousand := 1.5 + float64(r.Intn(300))/100
		_, err := db.Exec(ctx, `INSERT INTO campaigns
    (id, name, external_id, enabled, price_per_thousand, spend_state, created_at, updated_at)
VALUES ($1,$2,$3,TRUE,$4,'normal',now(),now()) ON CONFLICT DO NOTHING`,
			i, name, ext, pricePerThousand)
		if err != nil {
			return err
		}

		// URL inventory with a mix of nearly consumed and fresh links
		for j := 1; j <= 4; j++ {
			urlID := (i-1)*10 + j
			limit := int64(1000 * (1 + r.Intn(20)))
			clicks := r.Int63n(limit + 1)
			created := time.Now().Add(-time.Duration(r.Intn(72)) * time.Hour)
			_, err = db.Exec(ctx, `INSERT INTO url_records
(id, campaign_id, status, click_limit, clicks, created_at)
VALUES ($1,$2,'active',$3,$4,$5) ON CONFLICT DO NOTHING`,
				urlID, i, limit, clicks, created)
			if err != nil {
				return err
			}
		}
	}

	// keep BIGSERIAL sequences ahead of the explicit ids
	for _, table := range []string{"campaigns", "url_records"} {
		_, err := db.Exec(ctx, fmt.Sprintf(`SELECT setval(pg_get_serial_sequence('%s', 'id'), (SELECT COALESCE(max(id), 1) FROM %s))`, table, table))
		if err != nil {
			return err
		}
	}
	return nil
}
