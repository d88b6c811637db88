package types

import (
	"time"

	"github.com/QVllasa/signalleague/internal/database/types/enum"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TradeRating is a user's self-reported outcome for one of a group's signals.
// Rows are append-only and never edited.
type TradeRating struct {
	ID            uuid.UUID           `bun:",pk,type:uuid,default:gen_random_uuid()" json:"id"`
	UserID        uuid.UUID           `bun:",notnull,type:uuid"                      json:"userId"`
	GroupID       uuid.UUID           `bun:",notnull,type:uuid"                      json:"groupId"`
	Outcome       enum.TradeOutcome   `bun:",notnull"                                json:"outcome"`
	ReturnPercent decimal.NullDecimal `bun:"type:numeric(7,2)"                       json:"returnPercent"`
	CreatedAt     time.Time           `bun:",notnull,default:current_timestamp"      json:"createdAt"`
}

// TradeStats are the trade-rating aggregates read by the transparency scorer
// and the scam detector.
type TradeStats struct {
	Total  int `bun:"total"`
	Wins   int `bun:"wins"`
	Losses int `bun:"losses"`
}

// WinRatio returns wins/total, or 0 when no trades are rated.
func (s *TradeStats) WinRatio() float64 {
	if s.Total == 0 {
		return 0
	}

	return float64(s.Wins) / float64(s.Total)
}

// LossRatio returns losses/total, or 0 when no trades are rated.
func (s *TradeStats) LossRatio() float64 {
	if s.Total == 0 {
		return 0
	}

	return float64(s.Losses) / float64(s.Total)
}
