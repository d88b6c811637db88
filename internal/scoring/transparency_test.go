package scoring

import (
	"testing"

	"github.com/QVllasa/signalleague/internal/database/types"
	"github.com/QVllasa/signalleague/internal/database/types/enum"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func price(v int64) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.NewFromInt(v), Valid: true}
}

func TestTransparencyScore(t *testing.T) {
	tests := []struct {
		name     string
		inputs   TransparencyInputs
		expected int
	}{
		{
			name: "established free group with honest history scores full marks",
			inputs: TransparencyInputs{
				PricingModel:     enum.PricingModelFree,
				MonthsActive:     14,
				HasFoundedDate:   true,
				Trades:           types.TradeStats{Total: 25, Wins: 15, Losses: 10},
				PublishedReviews: 6,
				ScamFlags:        0,
			},
			expected: 100,
		},
		{
			name:     "brand new group with no data scores only open community",
			inputs:   TransparencyInputs{PricingModel: enum.PricingModelPaid},
			// Paid with no price recorded still gets fair pricing credit.
			expected: 8 + 3,
		},
		{
			name: "expensive paid group that hides losses",
			inputs: TransparencyInputs{
				PricingModel:     enum.PricingModelPaid,
				Price:            price(250),
				MonthsActive:     8,
				HasFoundedDate:   true,
				Trades:           types.TradeStats{Total: 30, Wins: 30},
				PublishedReviews: 3,
				ScamFlags:        4,
			},
			// losses 0 + age 10 + performance 25 + pricing 0 + criticism 5 + community 3 + testimonials 0
			expected: 43,
		},
		{
			name: "freemium group with a few losses",
			inputs: TransparencyInputs{
				PricingModel:     enum.PricingModelFreemium,
				Price:            price(40),
				MonthsActive:     4,
				HasFoundedDate:   true,
				Trades:           types.TradeStats{Total: 8, Wins: 7, Losses: 1},
				PublishedReviews: 2,
				ScamFlags:        1,
			},
			// losses 15 + age 5 + performance 8 + pricing 8 + criticism 5 + community 7 + testimonials 5
			expected: 53,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, factors := TransparencyScore(&tt.inputs)
			assert.Equal(t, tt.expected, score)
			assert.Equal(t, score, factors.Total())
		})
	}
}

func TestTransparencyFactorLadders(t *testing.T) {
	t.Run("shows losses steps on loss ratio", func(t *testing.T) {
		assert.Equal(t, 0, calcShowsLosses(&types.TradeStats{}))
		assert.Equal(t, 0, calcShowsLosses(&types.TradeStats{Total: 10, Wins: 10}))
		assert.Equal(t, 10, calcShowsLosses(&types.TradeStats{Total: 100, Losses: 5}))
		assert.Equal(t, 15, calcShowsLosses(&types.TradeStats{Total: 100, Losses: 10}))
		assert.Equal(t, 20, calcShowsLosses(&types.TradeStats{Total: 100, Losses: 20}))
	})

	t.Run("track record age requires a founding date", func(t *testing.T) {
		assert.Equal(t, 0, calcTrackRecordAge(24, false))
		assert.Equal(t, 0, calcTrackRecordAge(2, true))
		assert.Equal(t, 5, calcTrackRecordAge(3, true))
		assert.Equal(t, 10, calcTrackRecordAge(6, true))
		assert.Equal(t, 15, calcTrackRecordAge(12, true))
	})

	t.Run("fair pricing steps on monthly price", func(t *testing.T) {
		assert.Equal(t, 10, calcFairPricing(enum.PricingModelFree, decimal.NullDecimal{}))
		assert.Equal(t, 8, calcFairPricing(enum.PricingModelPaid, price(50)))
		assert.Equal(t, 5, calcFairPricing(enum.PricingModelPaid, price(100)))
		assert.Equal(t, 3, calcFairPricing(enum.PricingModelPaid, price(200)))
		assert.Equal(t, 0, calcFairPricing(enum.PricingModelPaid, price(201)))
	})
}
