package types

import (
	"time"

	"github.com/QVllasa/signalleague/internal/database/types/enum"
	"github.com/google/uuid"
)

// ScamFlag is one detected (or manually curated) red flag on a group.
// Auto-detected flags are replaced atomically on every detection run;
// manually curated flags are never touched by the detector.
type ScamFlag struct {
	ID           int64         `bun:",pk,autoincrement"                  json:"id"`
	GroupID      uuid.UUID     `bun:",notnull,type:uuid"                 json:"groupId"`
	Flag         string        `bun:",notnull"                           json:"flag"`
	Description  string        `bun:",notnull"                           json:"description"`
	Severity     enum.Severity `bun:",notnull"                           json:"severity"`
	AutoDetected bool          `bun:",notnull,default:false"             json:"autoDetected"`
	CreatedAt    time.Time     `bun:",notnull,default:current_timestamp" json:"createdAt"`
}

// Report is a user report against a group or review. The scam detector counts
// scam-reason reports targeting groups.
type Report struct {
	ID         int64                 `bun:",pk,autoincrement"                  json:"id"`
	ReporterID uuid.UUID             `bun:",notnull,type:uuid"                 json:"reporterId"`
	TargetType enum.ReportTargetType `bun:",notnull"                           json:"targetType"`
	TargetID   uuid.UUID             `bun:",notnull,type:uuid"                 json:"targetId"`
	Reason     enum.ReportReason     `bun:",notnull"                           json:"reason"`
	Details    string                `bun:",nullzero"                          json:"details"`
	CreatedAt  time.Time             `bun:",notnull,default:current_timestamp" json:"createdAt"`
}
