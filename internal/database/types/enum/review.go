package enum

// ReviewStatus gates whether a review counts toward aggregate statistics.
// Only published reviews are included.
type ReviewStatus string

const (
	ReviewStatusPublished ReviewStatus = "published"
	ReviewStatusFlagged   ReviewStatus = "flagged"
	ReviewStatusRemoved   ReviewStatus = "removed"
)

// TradeOutcome is a user's self-reported result for a trade signal.
type TradeOutcome string

const (
	TradeOutcomeWin       TradeOutcome = "win"
	TradeOutcomeLoss      TradeOutcome = "loss"
	TradeOutcomeBreakeven TradeOutcome = "breakeven"
	TradeOutcomeUnknown   TradeOutcome = "unknown"
)
