package models

import (
	"context"
	"fmt"

	"github.com/QVllasa/signalleague/internal/database/dbretry"
	"github.com/QVllasa/signalleague/internal/database/types"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// FlagModel handles database operations for scam flags.
type FlagModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewFlag creates a new FlagModel instance.
func NewFlag(db *bun.DB, logger *zap.Logger) *FlagModel {
	return &FlagModel{
		db:     db,
		logger: logger.Named("db_flag"),
	}
}

// ReplaceAutoFlags swaps the group's auto-detected flags for the given set.
//
// Delete and insert run in one transaction so concurrent readers never observe
// a window with zero flags. Manually curated flags are left untouched.
func (m *FlagModel) ReplaceAutoFlags(ctx context.Context, groupID uuid.UUID, flags []*types.ScamFlag) error {
	return dbretry.Transaction(ctx, m.db, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewDelete().
			Model((*types.ScamFlag)(nil)).
			ModelTableExpr("scam_flags").
			Where("group_id = ?", groupID).
			Where("auto_detected = true").
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to delete auto-detected flags: %w", err)
		}

		if len(flags) == 0 {
			return nil
		}

		_, err = tx.NewInsert().
			Model(&flags).
			ModelTableExpr("scam_flags").
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to insert scam flags: %w", err)
		}

		return nil
	})
}

// CountFlags returns the total number of flags on a group, auto-detected and
// manual alike.
func (m *FlagModel) CountFlags(ctx context.Context, groupID uuid.UUID) (int, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (int, error) {
		count, err := m.db.NewSelect().
			TableExpr("scam_flags").
			Where("group_id = ?", groupID).
			Count(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to count scam flags: %w", err)
		}

		return count, nil
	})
}
