package enum

// QueueAction is the kind of bot response queued for a classified mention.
type QueueAction string

const (
	QueueActionPnLCommentary  QueueAction = "pnl_commentary"
	QueueActionGroupDiscovery QueueAction = "group_discovery"
	QueueActionScamAlert      QueueAction = "scam_alert"
	QueueActionGeneralCT      QueueAction = "general_ct"
)

// QueueStatus tracks a queued bot action through its lifecycle.
type QueueStatus string

const (
	QueueStatusQueued  QueueStatus = "queued"
	QueueStatusPosted  QueueStatus = "posted"
	QueueStatusFailed  QueueStatus = "failed"
	QueueStatusSkipped QueueStatus = "skipped"
)
