package domain

import (
	"math"
	"time"
)

// BudgetContribution is the price of one URL's remaining clicks, logged while
// a campaign is in a high-spend episode.
type BudgetContribution struct {
	ID         int64
	CampaignID int64
	URLID      int64
	Price      float64
	CreatedAt  time.Time
}

// BudgetTolerance is the smallest budget difference worth a platform write.
const BudgetTolerance = 0.01

// URLPrice prices the remaining clicks of a URL at the campaign rate.
func URLPrice(u URLRecord, pricePerThousand float64) float64 {
	return RoundCents(float64(u.Remaining()) / 1000 * pricePerThousand)
}

// SumContributions adds the prices of the given contributions.
func SumContributions(items []BudgetContribution) float64 {
	var total float64
	for _, c := range items {
		total += c.Price
	}
	return RoundCents(total)
}

// RoundCents rounds to two decimals.
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// BudgetEqual reports whether two amounts are the same number of cents.
// Any difference of at least BudgetTolerance is a change.
func BudgetEqual(a, b float64) bool {
	return math.Round(a/BudgetTolerance) == math.Round(b/BudgetTolerance)
}
