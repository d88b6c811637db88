package scoring

import (
	"fmt"
	"math"

	"github.com/QVllasa/signalleague/internal/database/types"
	"github.com/QVllasa/signalleague/internal/database/types/enum"
	"github.com/shopspring/decimal"
)

// Red flag identifiers emitted by the detection rules.
const (
	FlagOnlyShowsWinners    = "only_shows_winners"
	FlagAccountTooNew       = "account_too_new"
	FlagMultipleScamReports = "multiple_scam_reports"
	FlagHighPrice           = "high_price"
	FlagNegativeSentiment   = "negative_sentiment"
)

// Rule thresholds.
const (
	// A win rate above this across at least minRatedTrades trades is
	// considered too good to be honest.
	suspiciousWinRate = 0.9
	minRatedTrades    = 10

	// Groups younger than this many months have no track record.
	minTrackRecordMonths = 3

	// Scam report counts that escalate to high and critical severity.
	scamReportsHigh     = 3
	scamReportsCritical = 5

	// Negative mention ratio above this across at least minRecentMentions
	// recent mentions signals community distrust.
	negativeMentionRatio = 0.6
	minRecentMentions    = 5
)

// maxFairPrice is the monthly price above which a subscription is flagged.
var maxFairPrice = decimal.NewFromInt(200)

// RedFlag is one triggered detection rule.
type RedFlag struct {
	Name        string
	Description string
	Severity    enum.Severity
}

// ScamInputs are the aggregates the detection rules read. Mentions covers the
// trailing 30-day window only.
type ScamInputs struct {
	Trades         types.TradeStats
	MonthsActive   int
	HasFoundedDate bool
	ScamReports    int
	Price          decimal.NullDecimal
	Mentions       types.MentionStats
}

// DetectRedFlags runs every detection rule and returns the triggered flags.
func DetectRedFlags(in *ScamInputs) []RedFlag {
	rules := []func(*ScamInputs) *RedFlag{
		detectOnlyShowsWinners,
		detectAccountTooNew,
		detectMultipleScamReports,
		detectHighPrice,
		detectNegativeSentiment,
	}

	var flags []RedFlag

	for _, rule := range rules {
		if flag := rule(in); flag != nil {
			flags = append(flags, *flag)
		}
	}

	return flags
}

// OverallRisk returns the highest severity across the flags, or low when no
// rule triggered.
func OverallRisk(flags []RedFlag) enum.Severity {
	risk := enum.SeverityLow
	for _, flag := range flags {
		risk = enum.MaxSeverity(risk, flag.Severity)
	}

	return risk
}

func detectOnlyShowsWinners(in *ScamInputs) *RedFlag {
	if in.Trades.Total < minRatedTrades || in.Trades.WinRatio() <= suspiciousWinRate {
		return nil
	}

	return &RedFlag{
		Name: FlagOnlyShowsWinners,
		Description: fmt.Sprintf(
			"Win rate is suspiciously high (%d%% across %d rated trades). Legitimate groups show losses too.",
			int(math.Round(in.Trades.WinRatio()*100)), in.Trades.Total,
		),
		Severity: enum.SeverityHigh,
	}
}

func detectAccountTooNew(in *ScamInputs) *RedFlag {
	if !in.HasFoundedDate || in.MonthsActive >= minTrackRecordMonths {
		return nil
	}

	plural := "s"
	if in.MonthsActive == 1 {
		plural = ""
	}

	return &RedFlag{
		Name: FlagAccountTooNew,
		Description: fmt.Sprintf(
			"Group was founded less than 3 months ago (%d month%s old). New groups have no proven track record.",
			in.MonthsActive, plural,
		),
		Severity: enum.SeverityMedium,
	}
}

func detectMultipleScamReports(in *ScamInputs) *RedFlag {
	switch {
	case in.ScamReports >= scamReportsCritical:
		return &RedFlag{
			Name: FlagMultipleScamReports,
			Description: fmt.Sprintf(
				"%d users have reported this group as a scam. Exercise extreme caution.", in.ScamReports,
			),
			Severity: enum.SeverityCritical,
		}
	case in.ScamReports >= scamReportsHigh:
		return &RedFlag{
			Name: FlagMultipleScamReports,
			Description: fmt.Sprintf(
				"%d users have reported this group as a scam. Proceed with caution.", in.ScamReports,
			),
			Severity: enum.SeverityHigh,
		}
	default:
		return nil
	}
}

func detectHighPrice(in *ScamInputs) *RedFlag {
	if !in.Price.Valid || in.Price.Decimal.LessThanOrEqual(maxFairPrice) {
		return nil
	}

	return &RedFlag{
		Name: FlagHighPrice,
		Description: fmt.Sprintf(
			"Subscription price ($%s) is unusually high. Most legitimate groups charge under $200/month.",
			in.Price.Decimal.String(),
		),
		Severity: enum.SeverityMedium,
	}
}

func detectNegativeSentiment(in *ScamInputs) *RedFlag {
	if in.Mentions.Total < minRecentMentions || in.Mentions.NegativeRatio() <= negativeMentionRatio {
		return nil
	}

	return &RedFlag{
		Name: FlagNegativeSentiment,
		Description: fmt.Sprintf(
			"%d%% of %d recent Twitter mentions are negative. The community has concerns about this group.",
			int(math.Round(in.Mentions.NegativeRatio()*100)), in.Mentions.Total,
		),
		Severity: enum.SeverityHigh,
	}
}
