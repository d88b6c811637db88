package types

import (
	"time"

	"github.com/QVllasa/signalleague/internal/database/types/enum"
	"github.com/google/uuid"
)

// TierRanking is the current tier row for a group, one per group, upserted on
// every recalculation.
type TierRanking struct {
	GroupID        uuid.UUID `bun:",pk,type:uuid"                      json:"groupId"`
	Tier           enum.Tier `bun:",notnull"                           json:"tier"`
	AlgorithmScore *float64  `bun:",nullzero"                          json:"algorithmScore"`
	CommunityScore *float64  `bun:",nullzero"                          json:"communityScore"`
	TotalScore     *float64  `bun:",nullzero"                          json:"totalScore"`
	CalculatedAt   time.Time `bun:",notnull,default:current_timestamp" json:"calculatedAt"`
}

// TierHistory is an append-only trail of tier recalculations, one row per
// ranked run. It is intentionally never pruned.
type TierHistory struct {
	ID         int64     `bun:",pk,autoincrement"                  json:"id"`
	GroupID    uuid.UUID `bun:",notnull,type:uuid"                 json:"groupId"`
	Tier       enum.Tier `bun:",notnull"                           json:"tier"`
	TotalScore float64   `bun:",notnull"                           json:"totalScore"`
	RecordedAt time.Time `bun:",notnull,default:current_timestamp" json:"recordedAt"`
}
