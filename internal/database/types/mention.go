package types

import (
	"time"

	"github.com/QVllasa/signalleague/internal/database/types/enum"
	"github.com/google/uuid"
)

// MentionLink is a platform invite link extracted from a mention's text or
// its author's bio, stored alongside the classified mention.
type MentionLink struct {
	Platform enum.LinkPlatform `json:"platform"`
	URL      string            `json:"url"`
	Handle   string            `json:"handle"`
}

// TwitterMention is one observed post about a group. Rows arrive raw from the
// external collector (Processed=false) and are enriched in place by the
// mention triage worker. Deduplicated by the external tweet ID.
type TwitterMention struct {
	ID              int64             `bun:",pk,autoincrement"                  json:"id"`
	TweetID         string            `bun:",notnull,unique"                    json:"tweetId"`
	GroupID         *uuid.UUID        `bun:"type:uuid"                          json:"groupId"`
	AuthorID        string            `bun:",notnull"                           json:"authorId"`
	AuthorUsername  string            `bun:",notnull"                           json:"authorUsername"`
	AuthorFollowers int               `bun:",notnull,default:0"                 json:"authorFollowers"`
	AuthorBio       string            `bun:",nullzero"                          json:"authorBio"`
	Text            string            `bun:",notnull"                           json:"text"`
	HasPhoto        bool              `bun:",notnull,default:false"             json:"hasPhoto"`
	IsQuoteTweet    bool              `bun:",notnull,default:false"             json:"isQuoteTweet"`
	LikeCount       int               `bun:",notnull,default:0"                 json:"likeCount"`
	RetweetCount    int               `bun:",notnull,default:0"                 json:"retweetCount"`
	ReplyCount      int               `bun:",notnull,default:0"                 json:"replyCount"`
	QuoteCount      int               `bun:",notnull,default:0"                 json:"quoteCount"`
	Classification  enum.TweetType    `bun:",nullzero"                          json:"classification"`
	Confidence      float64           `bun:",notnull,default:0"                 json:"confidence"`
	Sentiment       enum.Sentiment    `bun:",nullzero"                          json:"sentiment"`
	Engagement      int               `bun:",notnull,default:0"                 json:"engagement"`
	Links           []MentionLink     `bun:"type:jsonb"                         json:"links"`
	Processed       bool              `bun:",notnull,default:false"             json:"processed"`
	TweetedAt       time.Time         `bun:",notnull"                           json:"tweetedAt"`
	CreatedAt       time.Time         `bun:",notnull,default:current_timestamp" json:"createdAt"`
}

// MentionStats are the trailing-window aggregates read by the scam detector's
// negative sentiment rule.
type MentionStats struct {
	Total    int `bun:"total"`
	Negative int `bun:"negative"`
}

// NegativeRatio returns negative/total, or 0 when there are no mentions.
func (s *MentionStats) NegativeRatio() float64 {
	if s.Total == 0 {
		return 0
	}

	return float64(s.Negative) / float64(s.Total)
}
