package classifier

import (
	"strings"

	"github.com/QVllasa/signalleague/internal/database/types/enum"
)

// DetermineSentiment derives the polarity of a text from positive vs negative
// keyword counts. Ties are neutral.
func DetermineSentiment(text string) enum.Sentiment {
	lower := strings.ToLower(text)

	positive := countMatches(lower, positiveKeywords)
	negative := countMatches(lower, negativeKeywords)

	switch {
	case positive > negative && positive >= 1:
		return enum.SentimentPositive
	case negative > positive && negative >= 1:
		return enum.SentimentNegative
	default:
		return enum.SentimentNeutral
	}
}
