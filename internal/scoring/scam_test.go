package scoring

import (
	"testing"

	"github.com/QVllasa/signalleague/internal/database/types"
	"github.com/QVllasa/signalleague/internal/database/types/enum"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flagNames(flags []RedFlag) []string {
	var names []string
	for _, f := range flags {
		names = append(names, f.Name)
	}

	return names
}

func TestDetectRedFlags(t *testing.T) {
	tests := []struct {
		name     string
		inputs   ScamInputs
		expected []string
	}{
		{
			name:     "clean group triggers nothing",
			inputs:   ScamInputs{Trades: types.TradeStats{Total: 30, Wins: 20, Losses: 10}, MonthsActive: 12, HasFoundedDate: true},
			expected: nil,
		},
		{
			name:     "suspiciously high win rate",
			inputs:   ScamInputs{Trades: types.TradeStats{Total: 20, Wins: 19, Losses: 1}, MonthsActive: 12, HasFoundedDate: true},
			expected: []string{FlagOnlyShowsWinners},
		},
		{
			name:     "high win rate on too few trades is ignored",
			inputs:   ScamInputs{Trades: types.TradeStats{Total: 9, Wins: 9}, MonthsActive: 12, HasFoundedDate: true},
			expected: nil,
		},
		{
			name:     "exactly 90 percent win rate is not flagged",
			inputs:   ScamInputs{Trades: types.TradeStats{Total: 20, Wins: 18, Losses: 2}, MonthsActive: 12, HasFoundedDate: true},
			expected: nil,
		},
		{
			name:     "group younger than three months",
			inputs:   ScamInputs{MonthsActive: 2, HasFoundedDate: true},
			expected: []string{FlagAccountTooNew},
		},
		{
			name:     "unknown founding date is not treated as new",
			inputs:   ScamInputs{MonthsActive: 0, HasFoundedDate: false},
			expected: nil,
		},
		{
			name:     "overpriced subscription",
			inputs:   ScamInputs{MonthsActive: 12, HasFoundedDate: true, Price: price(250)},
			expected: []string{FlagHighPrice},
		},
		{
			name:     "negative community sentiment",
			inputs:   ScamInputs{MonthsActive: 12, HasFoundedDate: true, Mentions: types.MentionStats{Total: 10, Negative: 7}},
			expected: []string{FlagNegativeSentiment},
		},
		{
			name:     "negative sentiment needs enough mentions",
			inputs:   ScamInputs{MonthsActive: 12, HasFoundedDate: true, Mentions: types.MentionStats{Total: 4, Negative: 4}},
			expected: nil,
		},
		{
			name: "every rule can fire at once",
			inputs: ScamInputs{
				Trades:         types.TradeStats{Total: 50, Wins: 49, Losses: 1},
				MonthsActive:   1,
				HasFoundedDate: true,
				ScamReports:    7,
				Price:          price(500),
				Mentions:       types.MentionStats{Total: 20, Negative: 18},
			},
			expected: []string{
				FlagOnlyShowsWinners,
				FlagAccountTooNew,
				FlagMultipleScamReports,
				FlagHighPrice,
				FlagNegativeSentiment,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := DetectRedFlags(&tt.inputs)
			assert.Equal(t, tt.expected, flagNames(flags))
		})
	}
}

func TestScamReportSeverityEscalation(t *testing.T) {
	base := ScamInputs{MonthsActive: 12, HasFoundedDate: true}

	base.ScamReports = 2
	assert.Empty(t, DetectRedFlags(&base))

	base.ScamReports = 3

	flags := DetectRedFlags(&base)
	require.Len(t, flags, 1)
	assert.Equal(t, enum.SeverityHigh, flags[0].Severity)

	base.ScamReports = 5

	flags = DetectRedFlags(&base)
	require.Len(t, flags, 1)
	assert.Equal(t, enum.SeverityCritical, flags[0].Severity)
}

func TestOverallRisk(t *testing.T) {
	assert.Equal(t, enum.SeverityLow, OverallRisk(nil))

	flags := []RedFlag{
		{Name: FlagHighPrice, Severity: enum.SeverityMedium},
		{Name: FlagMultipleScamReports, Severity: enum.SeverityCritical},
		{Name: FlagOnlyShowsWinners, Severity: enum.SeverityHigh},
	}
	assert.Equal(t, enum.SeverityCritical, OverallRisk(flags))
}

func TestHighPriceDescriptionUsesExactPrice(t *testing.T) {
	in := ScamInputs{
		MonthsActive:   12,
		HasFoundedDate: true,
		Price:          decimal.NullDecimal{Decimal: decimal.NewFromFloat(299.99), Valid: true},
	}

	flags := DetectRedFlags(&in)
	require.Len(t, flags, 1)
	assert.Contains(t, flags[0].Description, "$299.99")
}
