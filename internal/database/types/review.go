package types

import (
	"time"

	"github.com/QVllasa/signalleague/internal/database/types/enum"
	"github.com/google/uuid"
)

// Review is one user's rating of one group. At most one review exists per
// (user, group) pair; only published reviews count toward aggregates.
type Review struct {
	ID               uuid.UUID         `bun:",pk,type:uuid,default:gen_random_uuid()" json:"id"`
	UserID           uuid.UUID         `bun:",notnull,type:uuid"                      json:"userId"`
	GroupID          uuid.UUID         `bun:",notnull,type:uuid"                      json:"groupId"`
	OverallRating    float64           `bun:",notnull"                                json:"overallRating"`
	SignalQuality    float64           `bun:",notnull"                                json:"signalQuality"`
	RiskManagement   float64           `bun:",notnull"                                json:"riskManagement"`
	ValueForMoney    float64           `bun:",notnull"                                json:"valueForMoney"`
	CommunitySupport float64           `bun:",notnull"                                json:"communitySupport"`
	Transparency     float64           `bun:",notnull"                                json:"transparency"`
	Status           enum.ReviewStatus `bun:",notnull,default:'published'"            json:"status"`
	HelpfulCount     int               `bun:",notnull,default:0"                      json:"helpfulCount"`
	CreatedAt        time.Time         `bun:",notnull,default:current_timestamp"      json:"createdAt"`
}

// ReviewStats are the published-review aggregates the tier engine reads.
type ReviewStats struct {
	AvgRating         float64 `bun:"avg_rating"`
	ReviewCount       int     `bun:"review_count"`
	StdDev            float64 `bun:"std_dev"`
	RecentReviewCount int     `bun:"recent_review_count"`
	AvgHelpful        float64 `bun:"avg_helpful"`
}
