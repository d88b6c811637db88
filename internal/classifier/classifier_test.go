package classifier

import (
	"testing"

	"github.com/QVllasa/signalleague/internal/database/types"
	"github.com/QVllasa/signalleague/internal/database/types/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name               string
		tweet              Tweet
		expectedType       enum.TweetType
		expectedConfidence float64
	}{
		{
			name:         "unrelated chatter is irrelevant",
			tweet:        Tweet{Text: "had a great sandwich for lunch today"},
			expectedType: enum.TweetTypeIrrelevant,
		},
		{
			name:         "single crypto keyword stays below the threshold",
			tweet:        Tweet{Text: "watching btc today"},
			expectedType: enum.TweetTypeIrrelevant,
		},
		{
			name:               "two crypto keywords clear the threshold",
			tweet:              Tweet{Text: "watching btc and eth today"},
			expectedType:       enum.TweetTypeGeneral,
			expectedConfidence: 0.13,
		},
		{
			name: "pnl brag with dollar figure and screenshot",
			tweet: Tweet{
				Text:     "Massive PnL today +$1,500 on the btc long, up 12% overall",
				HasPhoto: true,
			},
			// pnl: 2 keywords (pnl, +%? no) -> "pnl" matches, "+%" not in text
			// 1*2 + dollar 3 + percent 2 + photo 3 = 10
			expectedType:       enum.TweetTypePnLPost,
			expectedConfidence: 0.67,
		},
		{
			name: "group promo with invite link",
			tweet: Tweet{
				Text: "Join my VIP signal group for daily calls t.me/examplegroup",
			},
			// promo: join + vip + signal group = 3*2 + 1 link * 3 = 9
			expectedType:       enum.TweetTypeGroupPromo,
			expectedConfidence: 0.6,
		},
		{
			name: "scam report outweighs general crypto content",
			tweet: Tweet{
				Text: "beware this group is a scam, total fraud, they rugged everyone on the eth trade",
			},
			// scam, rugged, fraud, beware = 4*3 = 12
			expectedType:       enum.TweetTypeScamReport,
			expectedConfidence: 0.8,
		},
		{
			name: "quote tweet drama",
			tweet: Tweet{
				Text:         "this clown got exposed with receipts",
				IsQuoteTweet: true,
			},
			// drama: 3*2 + quote 2 = 8
			expectedType:       enum.TweetTypeDrama,
			expectedConfidence: 0.53,
		},
		{
			name:         "tie between categories goes to the earlier one",
			tweet:        Tweet{Text: "profit drama"},
			expectedType: enum.TweetTypePnLPost,
			// both pnl and drama score 2
			expectedConfidence: 0.13,
		},
		{
			name: "promo link in bio only",
			tweet: Tweet{
				Text:      "sign up for membership now",
				AuthorBio: "trader | linktr.ee/someone",
			},
			// promo: 2*2 + bio pattern 2 = 6
			expectedType:       enum.TweetTypeGroupPromo,
			expectedConfidence: 0.4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Classify(&tt.tweet)
			assert.Equal(t, tt.expectedType, result.Type)
			assert.InDelta(t, tt.expectedConfidence, result.Confidence, 0.001)
		})
	}
}

func TestClassifyIrrelevantDropsLinks(t *testing.T) {
	// A link alone does not clear the threshold without promo keywords, and
	// irrelevant results carry no links.
	result := Classify(&Tweet{Text: "check t.me/somegroup"})
	assert.Equal(t, enum.TweetTypeIrrelevant, result.Type)
	assert.Zero(t, result.Confidence)
	assert.Empty(t, result.Links)
}

func TestExtractGroupLinks(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []types.MentionLink
	}{
		{
			name: "bare telegram link",
			text: "join t.me/example now",
			expected: []types.MentionLink{
				{Platform: enum.LinkPlatformTelegram, URL: "https://t.me/example", Handle: "example"},
			},
		},
		{
			name: "full https url is canonicalized",
			text: "https://T.ME/Example",
			expected: []types.MentionLink{
				{Platform: enum.LinkPlatformTelegram, URL: "https://t.me/Example", Handle: "Example"},
			},
		},
		{
			name: "discord and whop with path segments",
			text: "discord.gg/abc-123 and whop.com/group/premium",
			expected: []types.MentionLink{
				{Platform: enum.LinkPlatformDiscord, URL: "https://discord.gg/abc-123", Handle: "abc-123"},
				{Platform: enum.LinkPlatformWhop, URL: "https://whop.com/group/premium", Handle: "group/premium"},
			},
		},
		{
			name:     "no links",
			text:     "nothing to see here",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractGroupLinks(tt.text))
		})
	}
}

func TestDeduplicateLinks(t *testing.T) {
	links := []types.MentionLink{
		{Platform: enum.LinkPlatformTelegram, URL: "https://t.me/Example", Handle: "Example"},
		{Platform: enum.LinkPlatformTelegram, URL: "https://t.me/example", Handle: "example"},
		{Platform: enum.LinkPlatformDiscord, URL: "https://discord.gg/abc", Handle: "abc"},
	}

	unique := DeduplicateLinks(links)
	require.Len(t, unique, 2)
	// First occurrence wins
	assert.Equal(t, "https://t.me/Example", unique[0].URL)
	assert.Equal(t, "https://discord.gg/abc", unique[1].URL)
}

func TestDetermineSentiment(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected enum.Sentiment
	}{
		{name: "positive", text: "amazing calls, insane gains, lfg", expected: enum.SentimentPositive},
		{name: "negative", text: "total scam, lost everything, avoid", expected: enum.SentimentNegative},
		{name: "neutral without keywords", text: "entered a position this morning", expected: enum.SentimentNeutral},
		{name: "tie is neutral", text: "profit then loss", expected: enum.SentimentNeutral},
		{name: "keywords respect word boundaries", text: "walking downtown with my badge", expected: enum.SentimentNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetermineSentiment(tt.text))
		})
	}
}

func TestEngagement(t *testing.T) {
	assert.Equal(t, 0, Engagement(0, 0, 0, 0))
	// likes + 2*retweets + replies + 2*quotes
	assert.Equal(t, 10+2*5+3+2*1, Engagement(10, 5, 3, 1))
}

func TestPriority(t *testing.T) {
	tests := []struct {
		name       string
		engagement int
		followers  int
		expected   int
	}{
		{name: "floor", engagement: 0, followers: 0, expected: 1},
		{name: "moderate engagement only", engagement: 150, followers: 1000, expected: 2},
		{name: "big account low engagement", engagement: 50, followers: 60_000, expected: 4},
		{name: "viral from a whale account", engagement: 5000, followers: 500_000, expected: 8},
		{name: "both ladders max out", engagement: 2000, followers: 200_000, expected: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Priority(tt.engagement, tt.followers))
		})
	}
}
