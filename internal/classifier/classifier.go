// Package classifier assigns triage categories to observed tweets using
// keyword heuristics, extracts platform invite links, and derives sentiment
// and engagement signals for downstream scoring.
package classifier

import (
	"math"
	"regexp"
	"strings"

	"github.com/QVllasa/signalleague/internal/database/types"
	"github.com/QVllasa/signalleague/internal/database/types/enum"
)

const (
	// minClassificationScore is the lowest category score that still counts
	// as a classification. Anything below is irrelevant.
	minClassificationScore = 2

	// confidenceCeiling is the category score that maps to confidence 1.0.
	confidenceCeiling = 15
)

var (
	// dollarAmount matches PnL figures like "$1,500" or "+$500".
	dollarAmount = regexp.MustCompile(`\+?\$[\d,]+(?:\.\d{2})?`)

	// percentage matches figures like "+15%" or "200%".
	percentage = regexp.MustCompile(`[+-]?\d+(?:\.\d+)?%`)

	// promoBioPatterns are link fragments in an author bio that suggest the
	// author is promoting a group.
	promoBioPatterns = []string{"t.me/", "discord.gg/", "whop.com/", "linktr.ee/"}
)

// Tweet is the subset of mention fields classification reads.
type Tweet struct {
	Text         string
	AuthorBio    string
	HasPhoto     bool
	IsQuoteTweet bool
}

// Result is the outcome of classifying one tweet.
type Result struct {
	Type       enum.TweetType
	Confidence float64
	Links      []types.MentionLink
}

// categoryOrder fixes the tie-break order: when two categories score the
// same, the earlier one wins.
var categoryOrder = []enum.TweetType{
	enum.TweetTypePnLPost,
	enum.TweetTypeGroupPromo,
	enum.TweetTypeScamReport,
	enum.TweetTypeDrama,
	enum.TweetTypeGeneral,
}

// Classify scores a tweet against each category's keyword heuristics and
// returns the best match with a 0-1 confidence. Tweets scoring below the
// minimum threshold in every category are irrelevant.
func Classify(tweet *Tweet) Result {
	textLower := strings.ToLower(tweet.Text)
	bioLower := strings.ToLower(tweet.AuthorBio)
	combined := textLower + " " + bioLower

	// Links are extracted from the tweet text and the author bio together.
	links := ExtractGroupLinks(tweet.Text + " " + tweet.AuthorBio)

	scores := map[enum.TweetType]int{
		enum.TweetTypePnLPost:    scorePnLPost(tweet, textLower),
		enum.TweetTypeGroupPromo: scoreGroupPromo(textLower, bioLower, len(links)),
		enum.TweetTypeScamReport: countMatches(textLower, scamKeywords) * 3,
		enum.TweetTypeDrama:      scoreDrama(tweet, textLower),
		enum.TweetTypeGeneral:    min(countMatches(combined, cryptoKeywords), 3),
	}

	bestType := enum.TweetTypeIrrelevant
	bestScore := 0

	for _, category := range categoryOrder {
		if scores[category] > bestScore {
			bestScore = scores[category]
			bestType = category
		}
	}

	if bestScore < minClassificationScore {
		return Result{Type: enum.TweetTypeIrrelevant}
	}

	confidence := math.Min(float64(bestScore)/confidenceCeiling, 1)

	return Result{
		Type:       bestType,
		Confidence: math.Round(confidence*100) / 100,
		Links:      links,
	}
}

// scorePnLPost detects profit-and-loss brag posts. Dollar amounts,
// percentages, and attached photos all suggest a PnL screenshot.
func scorePnLPost(tweet *Tweet, textLower string) int {
	matches := countMatches(textLower, pnlKeywords)
	if matches == 0 {
		return 0
	}

	score := matches * 2

	if dollarAmount.MatchString(tweet.Text) {
		score += 3
	}

	if percentage.MatchString(tweet.Text) {
		score += 2
	}

	if tweet.HasPhoto {
		score += 3
	}

	return score
}

// scoreGroupPromo detects group promotion posts. Extracted platform links
// and promo fragments in the author bio raise the score.
func scoreGroupPromo(textLower, bioLower string, linkCount int) int {
	matches := countMatches(textLower, groupPromoKeywords)
	if matches == 0 {
		return 0
	}

	score := matches*2 + linkCount*3

	for _, fragment := range promoBioPatterns {
		if strings.Contains(bioLower, fragment) {
			score += 2
			break
		}
	}

	return score
}

// scoreDrama detects call-out and feud posts. Quote tweets criticizing
// someone raise the score.
func scoreDrama(tweet *Tweet, textLower string) int {
	matches := countMatches(textLower, dramaKeywords)
	if matches == 0 {
		return 0
	}

	score := matches * 2
	if tweet.IsQuoteTweet {
		score += 2
	}

	return score
}

// Engagement sums a tweet's interaction counts, weighting amplifying
// interactions (retweets and quotes) double.
func Engagement(likes, retweets, replies, quotes int) int {
	return likes + retweets*2 + replies + quotes*2
}

// Priority scores how urgently a queued bot response should be handled,
// from 1 to 10.
func Priority(engagement, followers int) int {
	var priority int

	switch {
	case engagement > 1000:
		priority += 4
	case engagement > 500:
		priority += 3
	case engagement > 100:
		priority += 2
	default:
		priority++
	}

	switch {
	case followers > 100_000:
		priority += 4
	case followers > 50_000:
		priority += 3
	case followers > 10_000:
		priority += 2
	case followers > 5_000:
		priority++
	}

	return min(priority, 10)
}
