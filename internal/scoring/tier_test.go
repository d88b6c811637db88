package scoring

import (
	"testing"

	"github.com/QVllasa/signalleague/internal/database/types"
	"github.com/QVllasa/signalleague/internal/database/types/enum"
	"github.com/stretchr/testify/assert"
)

func TestTierScore(t *testing.T) {
	tests := []struct {
		name     string
		stats    types.ReviewStats
		expected float64
	}{
		{
			name: "perfect group maxes every component",
			stats: types.ReviewStats{
				AvgRating:         5,
				ReviewCount:       50,
				StdDev:            0,
				RecentReviewCount: 50,
				AvgHelpful:        5,
			},
			expected: 100,
		},
		{
			name: "solid group with stale reviews",
			stats: types.ReviewStats{
				AvgRating:         4,
				ReviewCount:       50,
				StdDev:            1,
				RecentReviewCount: 0,
				AvgHelpful:        2.5,
			},
			// 80*.40 + 100*.20 + 50*.15 + 0*.15 + 50*.10
			expected: 64.5,
		},
		{
			name: "single glowing review is held back by volume",
			stats: types.ReviewStats{
				AvgRating:         5,
				ReviewCount:       1,
				StdDev:            0,
				RecentReviewCount: 1,
				AvgHelpful:        0,
			},
			// volume = log2(2)/log2(51)*100 = 17.6323...
			// 100*.40 + 17.6323*.20 + 100*.15 + 100*.15 + 0
			expected: 73.53,
		},
		{
			name: "wildly inconsistent ratings zero out consistency",
			stats: types.ReviewStats{
				AvgRating:         3,
				ReviewCount:       50,
				StdDev:            2.5,
				RecentReviewCount: 0,
				AvgHelpful:        0,
			},
			// 60*.40 + 100*.20 + 0 + 0 + 0
			expected: 44,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, _ := TierScore(&tt.stats)
			assert.InDelta(t, tt.expected, score, 0.01)
		})
	}
}

func TestTierScoreActivityBonus(t *testing.T) {
	// A single recent review adds the flat bonus on top of the ratio.
	stats := types.ReviewStats{
		AvgRating:         3,
		ReviewCount:       10,
		RecentReviewCount: 1,
	}

	_, components := TierScore(&stats)
	assert.InDelta(t, 40, components.Activity, 0.01)

	// The bonus cannot push activity past 100.
	stats.RecentReviewCount = 10

	_, components = TierScore(&stats)
	assert.InDelta(t, 100, components.Activity, 0.01)
}

func TestScoreToTier(t *testing.T) {
	tests := []struct {
		score    float64
		expected enum.Tier
	}{
		{score: 100, expected: enum.TierS},
		{score: 90, expected: enum.TierS},
		{score: 89.99, expected: enum.TierA},
		{score: 75, expected: enum.TierA},
		{score: 60, expected: enum.TierB},
		{score: 45, expected: enum.TierC},
		{score: 30, expected: enum.TierD},
		{score: 29.99, expected: enum.TierF},
		{score: 0, expected: enum.TierF},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ScoreToTier(tt.score), "score %v", tt.score)
	}
}
