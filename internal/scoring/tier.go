package scoring

import (
	"math"

	"github.com/QVllasa/signalleague/internal/database/types"
	"github.com/QVllasa/signalleague/internal/database/types/enum"
)

// Component weights for the tier score. They sum to 1.0 so the weighted total
// stays on the same 0-100 scale as the components.
const (
	weightReviews     = 0.40
	weightVolume      = 0.20
	weightConsistency = 0.15
	weightActivity    = 0.15
	weightCommunity   = 0.10
)

const (
	// maxStdDev is the rating spread at which the consistency component
	// bottoms out. Ratings are on a 1-5 scale.
	maxStdDev = 2.0

	// volumeSaturation is the review count at which the volume component
	// reaches 100. Growth is logarithmic below that.
	volumeSaturation = 50

	// activityBonus is added whenever at least one review landed inside
	// the recent window.
	activityBonus = 30

	// helpfulMultiplier converts average helpful votes into the 0-100
	// community component.
	helpfulMultiplier = 20
)

// TierComponents is the per-component breakdown of a tier score, each on a
// 0-100 scale before weighting.
type TierComponents struct {
	Review      float64
	Volume      float64
	Consistency float64
	Activity    float64
	Community   float64
}

// TierScore computes the weighted 0-100 tier score from published review
// aggregates, rounded to two decimal places. The caller is responsible for
// treating groups with zero reviews as unranked instead.
func TierScore(stats *types.ReviewStats) (float64, TierComponents) {
	// Average rating normalized from the 1-5 scale to 0-100.
	reviewScore := stats.AvgRating / 5 * 100

	// More reviews raise the score with diminishing returns.
	volumeScore := math.Min(100, math.Log2(float64(stats.ReviewCount)+1)/math.Log2(volumeSaturation+1)*100)

	// A tighter rating spread means reviewers agree with each other.
	consistencyScore := math.Max(0, (1-stats.StdDev/maxStdDev)*100)

	// Recent reviews relative to total, with a flat bonus for any recent
	// activity at all.
	var activityRatio float64
	if stats.ReviewCount > 0 {
		activityRatio = float64(stats.RecentReviewCount) / float64(stats.ReviewCount)
	}

	activityScore := activityRatio * 100
	if stats.RecentReviewCount > 0 {
		activityScore += activityBonus
	}

	activityScore = math.Min(100, activityScore)

	// Helpful votes measure how much the community trusts the reviews.
	communityScore := math.Min(100, stats.AvgHelpful*helpfulMultiplier)

	components := TierComponents{
		Review:      reviewScore,
		Volume:      volumeScore,
		Consistency: consistencyScore,
		Activity:    activityScore,
		Community:   communityScore,
	}

	total := reviewScore*weightReviews +
		volumeScore*weightVolume +
		consistencyScore*weightConsistency +
		activityScore*weightActivity +
		communityScore*weightCommunity

	return round2(total), components
}

// ScoreToTier maps a 0-100 score onto the discrete tier ladder.
func ScoreToTier(score float64) enum.Tier {
	switch {
	case score >= 90:
		return enum.TierS
	case score >= 75:
		return enum.TierA
	case score >= 60:
		return enum.TierB
	case score >= 45:
		return enum.TierC
	case score >= 30:
		return enum.TierD
	default:
		return enum.TierF
	}
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
