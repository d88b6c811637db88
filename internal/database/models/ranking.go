package models

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/QVllasa/signalleague/internal/database/dbretry"
	"github.com/QVllasa/signalleague/internal/database/types"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// ErrRankingNotFound is returned when a group has no tier ranking row yet.
var ErrRankingNotFound = errors.New("tier ranking not found")

// RankingModel handles database operations for tier rankings and history.
type RankingModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewRanking creates a new RankingModel instance.
func NewRanking(db *bun.DB, logger *zap.Logger) *RankingModel {
	return &RankingModel{
		db:     db,
		logger: logger.Named("db_ranking"),
	}
}

// UpsertRanking inserts or replaces the group's current tier ranking row.
func (m *RankingModel) UpsertRanking(ctx context.Context, ranking *types.TierRanking) error {
	ranking.CalculatedAt = time.Now()

	return dbretry.NoResult(ctx, func(ctx context.Context) error {
		_, err := m.db.NewInsert().
			Model(ranking).
			ModelTableExpr("tier_rankings").
			On("CONFLICT (group_id) DO UPDATE").
			Set("tier = EXCLUDED.tier").
			Set("algorithm_score = EXCLUDED.algorithm_score").
			Set("community_score = EXCLUDED.community_score").
			Set("total_score = EXCLUDED.total_score").
			Set("calculated_at = EXCLUDED.calculated_at").
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to upsert tier ranking: %w", err)
		}

		return nil
	})
}

// AppendHistory adds one row to the group's tier history trail.
//
// History rows are written after the ranking upsert. A ranking row without a
// matching history row (from a failure between the two writes) is harmless:
// every run recomputes from source data, never from history.
func (m *RankingModel) AppendHistory(ctx context.Context, entry *types.TierHistory) error {
	return dbretry.NoResult(ctx, func(ctx context.Context) error {
		_, err := m.db.NewInsert().
			Model(entry).
			ModelTableExpr("tier_history").
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to append tier history: %w", err)
		}

		return nil
	})
}

// GetRanking retrieves the current tier ranking for a group.
func (m *RankingModel) GetRanking(ctx context.Context, groupID uuid.UUID) (*types.TierRanking, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (*types.TierRanking, error) {
		var ranking types.TierRanking

		err := m.db.NewSelect().
			TableExpr("tier_rankings").
			ColumnExpr("group_id, tier, algorithm_score, community_score, total_score, calculated_at").
			Where("group_id = ?", groupID).
			Scan(ctx, &ranking)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, ErrRankingNotFound
			}

			return nil, fmt.Errorf("failed to get tier ranking: %w", err)
		}

		return &ranking, nil
	})
}
