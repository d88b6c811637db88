package mention

import (
	"testing"
	"time"

	"github.com/QVllasa/signalleague/internal/database/types"
	"github.com/QVllasa/signalleague/internal/database/types/enum"
	"github.com/QVllasa/signalleague/internal/setup/config"
	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/rueidis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "Alpha Calls VIP", expected: "alpha-calls-vip"},
		{input: "  --Crypto!! Signals--  ", expected: "crypto-signals"},
		{input: "already-a-slug", expected: "already-a-slug"},
		{input: "___", expected: ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, slugify(tt.input), "input %q", tt.input)
	}
}

func TestSlugifyTruncates(t *testing.T) {
	long := ""
	for range 30 {
		long += "abcde"
	}

	assert.Len(t, slugify(long), 100)
}

func TestDeriveGroupName(t *testing.T) {
	link := types.MentionLink{Platform: enum.LinkPlatformTelegram, URL: "https://t.me/alphacalls", Handle: "alphacalls"}
	assert.Equal(t, "alphacalls", deriveGroupName(link, "trader"))

	// Path suffixes are dropped
	link.Handle = "alphacalls/premium"
	assert.Equal(t, "alphacalls", deriveGroupName(link, "trader"))

	// Short handles fall back to author and platform
	link.Handle = "ab"
	assert.Equal(t, "trader-telegram", deriveGroupName(link, "trader"))
}

func TestMatchLinkToGroup(t *testing.T) {
	groups := []*types.SignalGroup{
		{
			ID:             uuid.New(),
			Name:           "Alpha Calls",
			Slug:           "alpha-calls",
			PlatformHandle: "alphacalls",
			PlatformURL:    "https://t.me/alphacalls",
		},
		{
			ID:   uuid.New(),
			Name: "Moon Boys",
			Slug: "moon-boys",
		},
	}

	tests := []struct {
		name     string
		link     types.MentionLink
		expected *types.SignalGroup
	}{
		{
			name:     "match by platform url",
			link:     types.MentionLink{URL: "https://t.me/alphacalls", Handle: "alphacalls"},
			expected: groups[0],
		},
		{
			name:     "match by handle ignoring case",
			link:     types.MentionLink{URL: "https://t.me/AlphaCalls", Handle: "AlphaCalls"},
			expected: groups[0],
		},
		{
			name:     "match by slug",
			link:     types.MentionLink{URL: "https://whop.com/moon-boys", Handle: "moon-boys"},
			expected: groups[1],
		},
		{
			name:     "match by squashed name",
			link:     types.MentionLink{URL: "https://t.me/moonboys", Handle: "moonboys"},
			expected: groups[1],
		},
		{
			name:     "no match",
			link:     types.MentionLink{URL: "https://discord.gg/unknown", Handle: "unknown"},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, matchLinkToGroup(tt.link, groups))
		})
	}
}

func TestActionFor(t *testing.T) {
	assert.Equal(t, enum.QueueActionPnLCommentary, actionFor(enum.TweetTypePnLPost))
	assert.Equal(t, enum.QueueActionGroupDiscovery, actionFor(enum.TweetTypeGroupPromo))
	assert.Equal(t, enum.QueueActionScamAlert, actionFor(enum.TweetTypeScamReport))
	assert.Equal(t, enum.QueueActionGeneralCT, actionFor(enum.TweetTypeDrama))
	assert.Equal(t, enum.QueueActionGeneralCT, actionFor(enum.TweetTypeGeneral))
}

func TestClaimTweet(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	defer mr.Close()

	client, err := rueidis.NewClient(rueidis.ClientOption{
		InitAddress:  []string{mr.Addr()},
		DisableCache: true,
	})
	require.NoError(t, err)

	defer client.Close()

	w := &Worker{
		dedup:  client,
		cfg:    &config.Triage{SeenTTL: 3600},
		logger: zap.NewNop(),
	}

	ctx := t.Context()

	claimed, err := w.claimTweet(ctx, "1234567890")
	require.NoError(t, err)
	assert.True(t, claimed)

	// Second claim for the same tweet fails
	claimed, err = w.claimTweet(ctx, "1234567890")
	require.NoError(t, err)
	assert.False(t, claimed)

	// A different tweet is claimable
	claimed, err = w.claimTweet(ctx, "9999999999")
	require.NoError(t, err)
	assert.True(t, claimed)

	// Claims expire with the TTL
	mr.FastForward(3601 * time.Second)

	claimed, err = w.claimTweet(ctx, "1234567890")
	require.NoError(t, err)
	assert.True(t, claimed)
}
