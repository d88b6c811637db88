package models

import (
	"context"
	"fmt"

	"github.com/QVllasa/signalleague/internal/database/dbretry"
	"github.com/QVllasa/signalleague/internal/database/types"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// QueueModel handles database operations for the bot response queue.
type QueueModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewQueue creates a new QueueModel instance.
func NewQueue(db *bun.DB, logger *zap.Logger) *QueueModel {
	return &QueueModel{
		db:     db,
		logger: logger.Named("db_queue"),
	}
}

// Enqueue adds a bot action to the queue.
func (m *QueueModel) Enqueue(ctx context.Context, item *types.BotQueueItem) error {
	return dbretry.NoResult(ctx, func(ctx context.Context) error {
		_, err := m.db.NewInsert().
			Model(item).
			ModelTableExpr("bot_queue").
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to enqueue bot action: %w", err)
		}

		return nil
	})
}
