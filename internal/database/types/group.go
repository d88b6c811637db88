package types

import (
	"errors"
	"time"

	"github.com/QVllasa/signalleague/internal/database/types/enum"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrGroupNotFound = errors.New("group not found")

// SignalGroup represents a trading community under evaluation.
//
// The derived fields (avg score, review count, transparency score, scam risk,
// win rate, total trade ratings) are owned exclusively by the scoring workers
// and are recomputed wholesale from source rows on every pass.
type SignalGroup struct {
	ID                uuid.UUID           `bun:",pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Name              string              `bun:",notnull"                                json:"name"`
	Slug              string              `bun:",notnull,unique"                         json:"slug"`
	Description       string              `bun:",nullzero"                               json:"description"`
	Platform          enum.Platform       `bun:",notnull"                                json:"platform"`
	PlatformHandle    string              `bun:",nullzero"                               json:"platformHandle"`
	PlatformURL       string              `bun:",nullzero"                               json:"platformUrl"`
	PricingModel      enum.PricingModel   `bun:",notnull"                                json:"pricingModel"`
	Price             decimal.NullDecimal `bun:"type:numeric(10,2)"                      json:"price"`
	FoundedAt         *time.Time          `bun:"type:date"                               json:"foundedAt"`
	Status            enum.GroupStatus    `bun:",notnull,default:'pending'"              json:"status"`
	AvgScore          decimal.NullDecimal `bun:"type:numeric(3,1)"                       json:"avgScore"`
	ReviewCount       int                 `bun:",notnull,default:0"                      json:"reviewCount"`
	TransparencyScore *int                `bun:",nullzero"                               json:"transparencyScore"`
	ScamRisk          enum.Severity       `bun:",nullzero"                               json:"scamRisk"`
	WinRate           decimal.NullDecimal `bun:"type:numeric(5,2)"                       json:"winRate"`
	TotalTradeRatings int                 `bun:",notnull,default:0"                      json:"totalTradeRatings"`
	CreatedAt         time.Time           `bun:",notnull,default:current_timestamp"      json:"createdAt"`
	UpdatedAt         time.Time           `bun:",notnull,default:current_timestamp"      json:"updatedAt"`
}

// GroupMeta is the subset of group columns the scoring passes read.
type GroupMeta struct {
	ID           uuid.UUID           `bun:"id"`
	PricingModel enum.PricingModel   `bun:"pricing_model"`
	Price        decimal.NullDecimal `bun:"price"`
	FoundedAt    *time.Time          `bun:"founded_at"`
	Status       enum.GroupStatus    `bun:"status"`
}

// MonthsSinceFounding returns whole calendar months between the founding date
// and now, or false if no founding date is recorded.
func (m *GroupMeta) MonthsSinceFounding(now time.Time) (int, bool) {
	if m.FoundedAt == nil {
		return 0, false
	}

	months := (now.Year()-m.FoundedAt.Year())*12 + int(now.Month()) - int(m.FoundedAt.Month())

	return months, true
}
