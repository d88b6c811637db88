package types

import (
	"time"

	"github.com/QVllasa/signalleague/internal/database/types/enum"
)

// BotQueueItem is a pending bot response produced by the mention triage
// worker. The payload carries exactly one variant matching the action type.
type BotQueueItem struct {
	ID        int64            `bun:",pk,autoincrement"                  json:"id"`
	Action    enum.QueueAction `bun:",notnull"                           json:"action"`
	Payload   QueuePayload     `bun:"type:jsonb,notnull"                 json:"payload"`
	Priority  int              `bun:",notnull,default:0"                 json:"priority"`
	Status    enum.QueueStatus `bun:",notnull,default:'queued'"          json:"status"`
	CreatedAt time.Time        `bun:",notnull,default:current_timestamp" json:"createdAt"`
}

// QueuePayload is a tagged union: exactly one variant is set, matching the
// queue item's action type.
type QueuePayload struct {
	PnLCommentary  *PnLCommentaryPayload  `json:"pnlCommentary,omitempty"`
	GroupDiscovery *GroupDiscoveryPayload `json:"groupDiscovery,omitempty"`
	ScamAlert      *ScamAlertPayload      `json:"scamAlert,omitempty"`
	GeneralCT      *GeneralCTPayload      `json:"generalCt,omitempty"`
}

// PnLCommentaryPayload queues commentary on a high-engagement PnL post.
type PnLCommentaryPayload struct {
	TweetID         string         `json:"tweetId"`
	AuthorUsername  string         `json:"authorUsername"`
	AuthorFollowers int            `json:"authorFollowers"`
	Text            string         `json:"text"`
	Confidence      float64        `json:"confidence"`
	Sentiment       enum.Sentiment `json:"sentiment"`
	Engagement      int            `json:"engagement"`
}

// GroupDiscoveryPayload queues follow-up on a promoted group.
type GroupDiscoveryPayload struct {
	TweetID        string        `json:"tweetId"`
	AuthorUsername string        `json:"authorUsername"`
	Links          []MentionLink `json:"links"`
	Engagement     int           `json:"engagement"`
}

// ScamAlertPayload queues an alert response to a scam report.
type ScamAlertPayload struct {
	TweetID        string `json:"tweetId"`
	AuthorUsername string `json:"authorUsername"`
	Text           string `json:"text"`
	Engagement     int    `json:"engagement"`
}

// GeneralCTPayload queues a response to general crypto-Twitter content.
type GeneralCTPayload struct {
	TweetID        string         `json:"tweetId"`
	AuthorUsername string         `json:"authorUsername"`
	Text           string         `json:"text"`
	Sentiment      enum.Sentiment `json:"sentiment"`
	Engagement     int            `json:"engagement"`
}
