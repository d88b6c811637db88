package enum

// ReportReason is why a user reported a review or group.
type ReportReason string

const (
	ReportReasonSpam          ReportReason = "spam"
	ReportReasonFakeReview    ReportReason = "fake_review"
	ReportReasonScam          ReportReason = "scam"
	ReportReasonInappropriate ReportReason = "inappropriate"
	ReportReasonOther         ReportReason = "other"
)

// ReportTargetType is what kind of entity a report points at.
type ReportTargetType string

const (
	ReportTargetTypeReview ReportTargetType = "review"
	ReportTargetTypeGroup  ReportTargetType = "group"
)
