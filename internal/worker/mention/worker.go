// Package mention implements the triage worker for raw Twitter mentions:
// classification, sentiment, link extraction, group discovery, and queueing
// of bot responses for high-reach tweets.
package mention

import (
	"context"
	"fmt"
	"time"

	"github.com/QVllasa/signalleague/internal/classifier"
	"github.com/QVllasa/signalleague/internal/database"
	"github.com/QVllasa/signalleague/internal/database/types"
	"github.com/QVllasa/signalleague/internal/database/types/enum"
	"github.com/QVllasa/signalleague/internal/progress"
	"github.com/QVllasa/signalleague/internal/redis"
	"github.com/QVllasa/signalleague/internal/setup"
	"github.com/QVllasa/signalleague/internal/setup/config"
	"github.com/QVllasa/signalleague/internal/worker/core"
	"github.com/redis/rueidis"
	"go.uber.org/zap"
)

// Worker triages raw mentions in batches on a fixed interval.
type Worker struct {
	db        database.Client
	dedup     rueidis.Client
	bar       *progress.Bar
	reporter  *core.StatusReporter
	cfg       *config.Triage
	batchSize int
	logger    *zap.Logger
}

// New creates a new mention triage worker.
func New(app *setup.App, bar *progress.Bar, logger *zap.Logger) (*Worker, error) {
	dedup, err := app.RedisManager.GetClient(redis.MentionDedupDBIndex)
	if err != nil {
		return nil, fmt.Errorf("failed to get dedup Redis client: %w", err)
	}

	return &Worker{
		db:        app.DB,
		dedup:     dedup,
		bar:       bar,
		reporter:  core.NewStatusReporter(app.StatusClient, "mention", logger),
		cfg:       &app.Config.Worker.Triage,
		batchSize: app.Config.Worker.BatchSizes.TriageMentions,
		logger:    logger,
	}, nil
}

// Start begins the triage worker's main loop. It blocks forever.
func (w *Worker) Start() {
	ctx := context.Background()

	w.logger.Info("Mention triage worker started",
		zap.String("workerID", w.reporter.GetWorkerID()))
	w.reporter.Start(ctx)

	defer w.reporter.Stop()

	w.bar.SetTotal(100)

	interval := time.Duration(w.cfg.Interval) * time.Millisecond

	for {
		w.bar.Reset()
		w.reporter.SetHealthy(true)

		processed, err := w.runBatch(ctx)
		if err != nil {
			w.logger.Error("Triage batch failed", zap.Error(err))
			w.reporter.SetHealthy(false)
		}

		// An empty batch means the backlog is drained; wait for more.
		if processed == 0 {
			w.bar.SetStepMessage("Waiting for mentions", 100)
			w.reporter.UpdateStatus("Waiting for mentions", 100)
			time.Sleep(interval)
		}
	}
}

// runBatch triages one batch of unprocessed mentions and returns how many
// were handled.
func (w *Worker) runBatch(ctx context.Context) (int, error) {
	w.bar.SetStepMessage("Fetching unprocessed mentions", 0)
	w.reporter.UpdateStatus("Fetching unprocessed mentions", 0)

	mentions, err := w.db.Model().Mention().GetUnprocessed(ctx, w.batchSize)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch unprocessed mentions: %w", err)
	}

	if len(mentions) == 0 {
		return 0, nil
	}

	w.bar.SetStepMessage("Loading approved groups", 10)
	w.reporter.UpdateStatus("Loading approved groups", 10)

	groups, err := w.db.Model().Group().GetApprovedGroupsForMatching(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load approved groups: %w", err)
	}

	w.bar.SetStepMessage("Triaging mentions", 20)
	w.reporter.UpdateStatus("Triaging mentions", 20)

	for i, m := range mentions {
		if err := w.triageMention(ctx, m, groups); err != nil {
			w.logger.Error("Failed to triage mention",
				zap.String("tweetID", m.TweetID), zap.Error(err))
		}

		w.bar.SetCurrent(20 + int64(i+1)*80/int64(len(mentions)))
	}

	w.logger.Info("Triage batch complete", zap.Int("mentions", len(mentions)))

	return len(mentions), nil
}

// triageMention classifies one mention and persists the enrichment. Tweets
// already claimed by another worker instance are skipped entirely: only the
// claim winner writes, so a slow loser cannot overwrite the winner's
// enrichment with zero values, and a crashed winner leaves the row
// unprocessed until the claim expires.
func (w *Worker) triageMention(ctx context.Context, m *types.TwitterMention, groups []*types.SignalGroup) error {
	claimed, err := w.claimTweet(ctx, m.TweetID)
	if err != nil {
		return err
	}

	if !claimed {
		return nil
	}

	result := classifier.Classify(&classifier.Tweet{
		Text:         m.Text,
		AuthorBio:    m.AuthorBio,
		HasPhoto:     m.HasPhoto,
		IsQuoteTweet: m.IsQuoteTweet,
	})

	m.Classification = result.Type
	m.Confidence = result.Confidence
	m.Sentiment = classifier.DetermineSentiment(m.Text)
	m.Engagement = classifier.Engagement(m.LikeCount, m.RetweetCount, m.ReplyCount, m.QuoteCount)
	m.Links = result.Links
	m.Processed = true

	if result.Type != enum.TweetTypeIrrelevant {
		// Attribute the mention to a known group when a link matches.
		for _, link := range result.Links {
			if matched := matchLinkToGroup(link, groups); matched != nil {
				m.GroupID = &matched.ID
				break
			}
		}

		if result.Type == enum.TweetTypeGroupPromo {
			w.discoverGroups(ctx, m, result.Links, groups)
		}

		if m.Engagement > w.cfg.EngagementThreshold || m.AuthorFollowers > w.cfg.FollowerThreshold {
			if err := w.queueResponse(ctx, m); err != nil {
				w.logger.Error("Failed to queue bot response",
					zap.String("tweetID", m.TweetID), zap.Error(err))
			}
		}
	}

	return w.db.Model().Mention().SaveClassification(ctx, m)
}

// claimTweet marks the tweet ID as seen in Redis. Returns false if another
// worker already claimed it.
func (w *Worker) claimTweet(ctx context.Context, tweetID string) (bool, error) {
	key := "mention:seen:" + tweetID
	ttl := time.Duration(w.cfg.SeenTTL) * time.Second

	resp := w.dedup.Do(ctx, w.dedup.B().Set().Key(key).Value("1").Nx().Ex(ttl).Build())
	if err := resp.Error(); err != nil {
		if rueidis.IsRedisNil(err) {
			return false, nil
		}

		return false, fmt.Errorf("failed to claim tweet: %w", err)
	}

	return true, nil
}

// discoverGroups inserts pending group rows for promo links that match no
// known group. Link duplicates within the same tweet are collapsed first.
func (w *Worker) discoverGroups(
	ctx context.Context, m *types.TwitterMention, links []types.MentionLink, groups []*types.SignalGroup,
) {
	// The author bio may carry links the tweet text does not.
	allLinks := append(links, classifier.ExtractGroupLinks(m.AuthorBio)...)

	for _, link := range classifier.DeduplicateLinks(allLinks) {
		if matchLinkToGroup(link, groups) != nil {
			continue
		}

		name := deriveGroupName(link, m.AuthorUsername)

		inserted, err := w.db.Model().Group().InsertDiscoveredGroup(ctx, &types.SignalGroup{
			Name:           name,
			Slug:           slugify(name),
			Description:    fmt.Sprintf("Discovered from @%s's tweet. Platform: %s", m.AuthorUsername, link.Platform),
			Platform:       enum.Platform(link.Platform),
			PlatformHandle: link.Handle,
			PlatformURL:    link.URL,
			PricingModel:   enum.PricingModelPaid,
			Status:         enum.GroupStatusPending,
		})
		if err != nil {
			w.logger.Error("Failed to insert discovered group",
				zap.String("url", link.URL), zap.Error(err))

			continue
		}

		if inserted {
			w.logger.Info("Discovered new group",
				zap.String("name", name),
				zap.String("platform", string(link.Platform)),
				zap.String("sourceTweet", m.TweetID))
		}
	}
}

// queueResponse enqueues a bot action for a high-reach mention with a payload
// variant matching the classification.
func (w *Worker) queueResponse(ctx context.Context, m *types.TwitterMention) error {
	action := actionFor(m.Classification)

	var payload types.QueuePayload

	switch action {
	case enum.QueueActionPnLCommentary:
		payload.PnLCommentary = &types.PnLCommentaryPayload{
			TweetID:         m.TweetID,
			AuthorUsername:  m.AuthorUsername,
			AuthorFollowers: m.AuthorFollowers,
			Text:            m.Text,
			Confidence:      m.Confidence,
			Sentiment:       m.Sentiment,
			Engagement:      m.Engagement,
		}
	case enum.QueueActionGroupDiscovery:
		payload.GroupDiscovery = &types.GroupDiscoveryPayload{
			TweetID:        m.TweetID,
			AuthorUsername: m.AuthorUsername,
			Links:          m.Links,
			Engagement:     m.Engagement,
		}
	case enum.QueueActionScamAlert:
		payload.ScamAlert = &types.ScamAlertPayload{
			TweetID:        m.TweetID,
			AuthorUsername: m.AuthorUsername,
			Text:           m.Text,
			Engagement:     m.Engagement,
		}
	default:
		payload.GeneralCT = &types.GeneralCTPayload{
			TweetID:        m.TweetID,
			AuthorUsername: m.AuthorUsername,
			Text:           m.Text,
			Sentiment:      m.Sentiment,
			Engagement:     m.Engagement,
		}
	}

	return w.db.Model().Queue().Enqueue(ctx, &types.BotQueueItem{
		Action:   action,
		Payload:  payload,
		Priority: classifier.Priority(m.Engagement, m.AuthorFollowers),
		Status:   enum.QueueStatusQueued,
	})
}
