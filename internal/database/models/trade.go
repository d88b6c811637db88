package models

import (
	"context"
	"fmt"

	"github.com/QVllasa/signalleague/internal/database/dbretry"
	"github.com/QVllasa/signalleague/internal/database/types"
	"github.com/QVllasa/signalleague/internal/database/types/enum"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// TradeModel handles database operations for trade ratings.
type TradeModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewTrade creates a new TradeModel instance.
func NewTrade(db *bun.DB, logger *zap.Logger) *TradeModel {
	return &TradeModel{
		db:     db,
		logger: logger.Named("db_trade"),
	}
}

// GetGroupTradeStats aggregates trade ratings for one group.
func (m *TradeModel) GetGroupTradeStats(ctx context.Context, groupID uuid.UUID) (*types.TradeStats, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (*types.TradeStats, error) {
		var stats types.TradeStats

		err := m.db.NewSelect().
			TableExpr("trade_ratings").
			ColumnExpr("COUNT(*) AS total").
			ColumnExpr("COUNT(*) FILTER (WHERE outcome = ?) AS wins", enum.TradeOutcomeWin).
			ColumnExpr("COUNT(*) FILTER (WHERE outcome = ?) AS losses", enum.TradeOutcomeLoss).
			Where("group_id = ?", groupID).
			Scan(ctx, &stats)
		if err != nil {
			return nil, fmt.Errorf("failed to get trade stats: %w", err)
		}

		return &stats, nil
	})
}
