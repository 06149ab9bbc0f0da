package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBudgetEqualOneCentIsAChange(t *testing.T) {
	tests := []struct {
		a, b float64
		want bool
	}{
		{13.00, 13.01, false},
		{0.01, 0.02, false},
		{100.10, 100.11, false},
		{25.004, 25, true},
		{12.35, 12.35, true},
		{0, 0.004, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BudgetEqual(tt.a, tt.b), "%.3f vs %.3f", tt.a, tt.b)
	}
}

func TestURLPriceUsesRemainingClicks(t *testing.T) {
	u := URLRecord{Status: URLStatusActive, ClickLimit: 3000, Clicks: 500}

	assert.InDelta(t, 5.0, URLPrice(u, 2), 0.0001)
	assert.InDelta(t, 7.5, SumContributions([]BudgetContribution{{Price: 5}, {Price: 2.5}}), 0.0001)
}
