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

// ReviewModel handles database operations for reviews.
type ReviewModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewReview creates a new ReviewModel instance.
func NewReview(db *bun.DB, logger *zap.Logger) *ReviewModel {
	return &ReviewModel{
		db:     db,
		logger: logger.Named("db_review"),
	}
}

// GetGroupReviewStats aggregates published reviews for one group. Reviews
// created after recentCutoff count toward the recent review total.
func (m *ReviewModel) GetGroupReviewStats(
	ctx context.Context, groupID uuid.UUID, recentCutoff time.Time,
) (*types.ReviewStats, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (*types.ReviewStats, error) {
		var stats types.ReviewStats

		err := m.db.NewSelect().
			TableExpr("reviews").
			ColumnExpr("COALESCE(AVG(overall_rating), 0) AS avg_rating").
			ColumnExpr("COUNT(*) AS review_count").
			ColumnExpr("COALESCE(STDDEV(overall_rating), 0) AS std_dev").
			ColumnExpr("COUNT(*) FILTER (WHERE created_at > ?) AS recent_review_count", recentCutoff).
			ColumnExpr("COALESCE(AVG(helpful_count), 0) AS avg_helpful").
			Where("group_id = ?", groupID).
			Where("status = ?", enum.ReviewStatusPublished).
			Scan(ctx, &stats)
		if err != nil {
			return nil, fmt.Errorf("failed to get review stats: %w", err)
		}

		return &stats, nil
	})
}

// CountPublished returns the number of published reviews for a group.
func (m *ReviewModel) CountPublished(ctx context.Context, groupID uuid.UUID) (int, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (int, error) {
		count, err := m.db.NewSelect().
			TableExpr("reviews").
			Where("group_id = ?", groupID).
			Where("status = ?", enum.ReviewStatusPublished).
			Count(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to count published reviews: %w", err)
		}

		return count, nil
	})
}
