package enum

// Platform identifies where a signal group hosts its community.
type Platform string

const (
	PlatformTwitter  Platform = "twitter"
	PlatformDiscord  Platform = "discord"
	PlatformTelegram Platform = "telegram"
	PlatformWhop     Platform = "whop"
)

// PricingModel describes how a group charges its members.
type PricingModel string

const (
	PricingModelFree     PricingModel = "free"
	PricingModelPaid     PricingModel = "paid"
	PricingModelFreemium PricingModel = "freemium"
)

// GroupStatus represents the lifecycle state of a signal group.
// Only approved groups are eligible for score recalculation.
type GroupStatus string

const (
	GroupStatusPending   GroupStatus = "pending"
	GroupStatusApproved  GroupStatus = "approved"
	GroupStatusRejected  GroupStatus = "rejected"
	GroupStatusSuspended GroupStatus = "suspended"
)

// Tier is the discrete rank assigned by the tier ranking engine.
type Tier string

const (
	TierS        Tier = "S"
	TierA        Tier = "A"
	TierB        Tier = "B"
	TierC        Tier = "C"
	TierD        Tier = "D"
	TierF        Tier = "F"
	TierUnranked Tier = "UNRANKED"
)
