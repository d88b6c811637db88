package mention

import (
	"testing"

	"github.com/QVllasa/signalleague/internal/database/types"
	"github.com/QVllasa/signalleague/internal/setup/config"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/rueidis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestTriageMentionLostClaim(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	defer mr.Close()

	client, err := rueidis.NewClient(rueidis.ClientOption{
		InitAddress:  []string{mr.Addr()},
		DisableCache: true,
	})
	require.NoError(t, err)

	defer client.Close()

	// No database client: any write attempt on the lost-claim path would
	// panic the test.
	w := &Worker{
		dedup:  client,
		cfg:    &config.Triage{SeenTTL: 3600},
		logger: zap.NewNop(),
	}

	ctx := t.Context()

	// Another instance holds the claim for this tweet.
	claimed, err := w.claimTweet(ctx, "42")
	require.NoError(t, err)
	require.True(t, claimed)

	m := &types.TwitterMention{TweetID: "42", Text: "joined this alpha group"}

	require.NoError(t, w.triageMention(ctx, m, nil))

	// The mention must be left exactly as fetched so the claim winner's
	// enrichment is the only write that lands.
	assert.False(t, m.Processed)
	assert.Empty(t, m.Classification)
	assert.Zero(t, m.Confidence)
	assert.Empty(t, m.Links)
}
