package scoring

import (
	"github.com/QVllasa/signalleague/internal/database/types"
	"github.com/QVllasa/signalleague/internal/database/types/enum"
	"github.com/shopspring/decimal"
)

// TransparencyFactors breaks the 0-100 transparency score into its seven
// factors. The maximums sum to exactly 100.
type TransparencyFactors struct {
	ShowsLosses           int `json:"showsLosses"`           // max 20
	TrackRecordAge        int `json:"trackRecordAge"`        // max 15
	VerifiedPerformance   int `json:"verifiedPerformance"`   // max 25
	FairPricing           int `json:"fairPricing"`           // max 10
	ResponsiveToCriticism int `json:"responsiveToCriticism"` // max 10
	OpenCommunity         int `json:"openCommunity"`         // max 10
	NoFakeTestimonials    int `json:"noFakeTestimonials"`    // max 10
}

// Total sums all factors into the 0-100 transparency score.
func (f *TransparencyFactors) Total() int {
	return f.ShowsLosses +
		f.TrackRecordAge +
		f.VerifiedPerformance +
		f.FairPricing +
		f.ResponsiveToCriticism +
		f.OpenCommunity +
		f.NoFakeTestimonials
}

// TransparencyInputs are the aggregates the transparency scorer reads.
type TransparencyInputs struct {
	PricingModel     enum.PricingModel
	Price            decimal.NullDecimal
	MonthsActive     int
	HasFoundedDate   bool
	Trades           types.TradeStats
	PublishedReviews int
	ScamFlags        int
}

// TransparencyScore computes the 0-100 transparency score and its factor
// breakdown from group aggregates.
func TransparencyScore(in *TransparencyInputs) (int, TransparencyFactors) {
	factors := TransparencyFactors{
		ShowsLosses:           calcShowsLosses(&in.Trades),
		TrackRecordAge:        calcTrackRecordAge(in.MonthsActive, in.HasFoundedDate),
		VerifiedPerformance:   calcVerifiedPerformance(in.Trades.Total),
		FairPricing:           calcFairPricing(in.PricingModel, in.Price),
		ResponsiveToCriticism: calcResponsiveToCriticism(in.PublishedReviews),
		OpenCommunity:         calcOpenCommunity(in.PricingModel),
		NoFakeTestimonials:    calcNoFakeTestimonials(in.ScamFlags),
	}

	return factors.Total(), factors
}

// calcShowsLosses rewards groups that rate losing trades too. A healthy loss
// ratio gets full marks; some losses get partial credit.
func calcShowsLosses(trades *types.TradeStats) int {
	if trades.Total == 0 {
		return 0
	}

	lossRatio := trades.LossRatio()

	switch {
	case lossRatio >= 0.2:
		return 20
	case lossRatio >= 0.1:
		return 15
	case lossRatio > 0:
		return 10
	default:
		return 0
	}
}

func calcTrackRecordAge(monthsActive int, hasFoundedDate bool) int {
	if !hasFoundedDate {
		return 0
	}

	switch {
	case monthsActive >= 12:
		return 15
	case monthsActive >= 6:
		return 10
	case monthsActive >= 3:
		return 5
	default:
		return 0
	}
}

func calcVerifiedPerformance(tradeRatingCount int) int {
	switch {
	case tradeRatingCount >= 20:
		return 25
	case tradeRatingCount >= 10:
		return 15
	case tradeRatingCount >= 5:
		return 8
	default:
		return 0
	}
}

func calcFairPricing(pricingModel enum.PricingModel, price decimal.NullDecimal) int {
	if pricingModel == enum.PricingModelFree {
		return 10
	}

	// A missing price on a paid group counts as zero.
	numericPrice := decimal.Zero
	if price.Valid {
		numericPrice = price.Decimal
	}

	switch {
	case numericPrice.LessThanOrEqual(decimal.NewFromInt(50)):
		return 8
	case numericPrice.LessThanOrEqual(decimal.NewFromInt(100)):
		return 5
	case numericPrice.LessThanOrEqual(decimal.NewFromInt(200)):
		return 3
	default:
		return 0
	}
}

func calcResponsiveToCriticism(reviewCount int) int {
	switch {
	case reviewCount >= 5:
		return 10
	case reviewCount >= 2:
		return 5
	default:
		return 0
	}
}

func calcOpenCommunity(pricingModel enum.PricingModel) int {
	switch pricingModel {
	case enum.PricingModelFree:
		return 10
	case enum.PricingModelFreemium:
		return 7
	default:
		return 3
	}
}

func calcNoFakeTestimonials(scamFlagCount int) int {
	switch {
	case scamFlagCount == 0:
		return 10
	case scamFlagCount <= 2:
		return 5
	default:
		return 0
	}
}
