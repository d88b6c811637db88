package models

import (
	"context"
	"fmt"
	"time"

	"github.com/QVllasa/signalleague/internal/database/dbretry"
	"github.com/QVllasa/signalleague/internal/database/types"
	"github.com/QVllasa/signalleague/internal/database/types/enum"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// MentionModel handles database operations for Twitter mentions.
type MentionModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewMention creates a new MentionModel instance.
func NewMention(db *bun.DB, logger *zap.Logger) *MentionModel {
	return &MentionModel{
		db:     db,
		logger: logger.Named("db_mention"),
	}
}

// GetMentionStats aggregates mentions for one group since the given cutoff.
func (m *MentionModel) GetMentionStats(
	ctx context.Context, groupID uuid.UUID, since time.Time,
) (*types.MentionStats, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (*types.MentionStats, error) {
		var stats types.MentionStats

		err := m.db.NewSelect().
			TableExpr("twitter_mentions").
			ColumnExpr("COUNT(*) AS total").
			ColumnExpr("COUNT(*) FILTER (WHERE sentiment = ?) AS negative", enum.SentimentNegative).
			Where("group_id = ?", groupID).
			Where("tweeted_at >= ?", since).
			Scan(ctx, &stats)
		if err != nil {
			return nil, fmt.Errorf("failed to get mention stats: %w", err)
		}

		return &stats, nil
	})
}

// GetUnprocessed returns raw mentions awaiting triage, oldest first.
func (m *MentionModel) GetUnprocessed(ctx context.Context, limit int) ([]*types.TwitterMention, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) ([]*types.TwitterMention, error) {
		var mentions []*types.TwitterMention

		err := m.db.NewSelect().
			Model(&mentions).
			ModelTableExpr("twitter_mentions").
			Where("processed = false").
			Order("created_at ASC").
			Limit(limit).
			Scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get unprocessed mentions: %w", err)
		}

		return mentions, nil
	})
}

// SaveClassification writes the triage result back onto the mention row and
// marks it processed.
func (m *MentionModel) SaveClassification(ctx context.Context, mention *types.TwitterMention) error {
	return dbretry.NoResult(ctx, func(ctx context.Context) error {
		_, err := m.db.NewUpdate().
			Model(mention).
			ModelTableExpr("twitter_mentions").
			Column("group_id", "classification", "confidence", "sentiment", "engagement", "links", "processed").
			Where("id = ?", mention.ID).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to save mention classification: %w", err)
		}

		return nil
	})
}
