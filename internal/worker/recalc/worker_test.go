package recalc

import (
	"testing"

	"github.com/QVllasa/signalleague/internal/database/types/enum"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPassProgress(t *testing.T) {
	tests := []struct {
		name      string
		completed int64
		total     int64
		expected  int64
	}{
		{name: "start of pass", completed: 0, total: 50, expected: 10},
		{name: "halfway", completed: 25, total: 50, expected: 50},
		{name: "all groups scored", completed: 50, total: 50, expected: 90},
		{name: "no groups", completed: 0, total: 0, expected: 10},
		// More groups than bar segments must still advance the bar.
		{name: "large batch partial", completed: 100, total: 500, expected: 26},
		{name: "large batch complete", completed: 500, total: 500, expected: 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, passProgress(tt.completed, tt.total))
		})
	}
}

func TestTierDistribution(t *testing.T) {
	results := []*groupResult{
		{GroupID: uuid.New(), Tier: enum.TierA, Score: 80.5},
		{GroupID: uuid.New(), Tier: enum.TierA, Score: 77.0},
		{GroupID: uuid.New(), Tier: enum.TierF, Score: 12.25},
		nil, // failed group
		{GroupID: uuid.New(), Tier: enum.TierUnranked},
	}

	assert.Equal(t, map[string]int{
		"A":        2,
		"F":        1,
		"UNRANKED": 1,
	}, tierDistribution(results))
}

func TestTierDistributionEmpty(t *testing.T) {
	assert.Empty(t, tierDistribution(nil))
	assert.Empty(t, tierDistribution([]*groupResult{nil, nil}))
}
