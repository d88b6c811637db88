package enum

// Sentiment is the keyword-derived polarity of a mention's text.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// TweetType is the triage category assigned by the tweet classifier.
// The declaration order is the tie-break order during classification.
type TweetType string

const (
	TweetTypePnLPost    TweetType = "pnl_post"
	TweetTypeGroupPromo TweetType = "group_promo"
	TweetTypeScamReport TweetType = "scam_report"
	TweetTypeDrama      TweetType = "drama"
	TweetTypeGeneral    TweetType = "general"
	TweetTypeIrrelevant TweetType = "irrelevant"
)

// LinkPlatform identifies which messaging platform an extracted link points to.
type LinkPlatform string

const (
	LinkPlatformTelegram LinkPlatform = "telegram"
	LinkPlatformDiscord  LinkPlatform = "discord"
	LinkPlatformWhop     LinkPlatform = "whop"
	LinkPlatformUnknown  LinkPlatform = "unknown"
)
