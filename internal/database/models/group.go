package models

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/QVllasa/signalleague/internal/database/dbretry"
	"github.com/QVllasa/signalleague/internal/database/types"
	"github.com/QVllasa/signalleague/internal/database/types/enum"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// GroupModel handles database operations for signal groups.
type GroupModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewGroup creates a new GroupModel instance.
func NewGroup(db *bun.DB, logger *zap.Logger) *GroupModel {
	return &GroupModel{
		db:     db,
		logger: logger.Named("db_group"),
	}
}

// GetApprovedGroupIDs returns the IDs of all groups eligible for score
// recalculation. Suspended and rejected groups keep their last computed values.
func (m *GroupModel) GetApprovedGroupIDs(ctx context.Context) ([]uuid.UUID, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) ([]uuid.UUID, error) {
		var ids []uuid.UUID

		err := m.db.NewSelect().
			TableExpr("signal_groups").
			ColumnExpr("id").
			Where("status = ?", enum.GroupStatusApproved).
			Order("created_at ASC").
			Scan(ctx, &ids)
		if err != nil {
			return nil, fmt.Errorf("failed to get approved group IDs: %w", err)
		}

		return ids, nil
	})
}

// GetGroupMeta retrieves the metadata columns the scoring passes read.
func (m *GroupModel) GetGroupMeta(ctx context.Context, groupID uuid.UUID) (*types.GroupMeta, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (*types.GroupMeta, error) {
		var meta types.GroupMeta

		err := m.db.NewSelect().
			TableExpr("signal_groups").
			ColumnExpr("id, pricing_model, price, founded_at, status").
			Where("id = ?", groupID).
			Scan(ctx, &meta)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, types.ErrGroupNotFound
			}

			return nil, fmt.Errorf("failed to get group meta: %w", err)
		}

		return &meta, nil
	})
}

// UpdateTransparencyScore overwrites the group's transparency score.
// This is a current-state-only metric; no history is kept.
func (m *GroupModel) UpdateTransparencyScore(ctx context.Context, groupID uuid.UUID, score int) error {
	return dbretry.NoResult(ctx, func(ctx context.Context) error {
		_, err := m.db.NewUpdate().
			Model((*types.SignalGroup)(nil)).
			ModelTableExpr("signal_groups").
			Set("transparency_score = ?", score).
			Set("updated_at = now()").
			Where("id = ?", groupID).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to update transparency score: %w", err)
		}

		return nil
	})
}

// UpdateScamRisk overwrites the group's overall scam risk.
func (m *GroupModel) UpdateScamRisk(ctx context.Context, groupID uuid.UUID, risk enum.Severity) error {
	return dbretry.NoResult(ctx, func(ctx context.Context) error {
		_, err := m.db.NewUpdate().
			Model((*types.SignalGroup)(nil)).
			ModelTableExpr("signal_groups").
			Set("scam_risk = ?", risk).
			Set("updated_at = now()").
			Where("id = ?", groupID).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to update scam risk: %w", err)
		}

		return nil
	})
}

// RefreshDerivedStats recomputes the group's review and trade aggregates
// directly from source rows. The subqueries count only published reviews, and
// the win rate considers rated trades only.
func (m *GroupModel) RefreshDerivedStats(ctx context.Context, groupID uuid.UUID) error {
	return dbretry.NoResult(ctx, func(ctx context.Context) error {
		_, err := m.db.NewUpdate().
			Model((*types.SignalGroup)(nil)).
			ModelTableExpr("signal_groups AS g").
			Set("avg_score = (SELECT ROUND(AVG(overall_rating)::numeric, 1) FROM reviews WHERE group_id = g.id AND status = ?)", enum.ReviewStatusPublished).
			Set("review_count = (SELECT COUNT(*) FROM reviews WHERE group_id = g.id AND status = ?)", enum.ReviewStatusPublished).
			Set("total_trade_ratings = (SELECT COUNT(*) FROM trade_ratings WHERE group_id = g.id)").
			Set("win_rate = (SELECT ROUND(COUNT(*) FILTER (WHERE outcome = ?) * 100.0 / NULLIF(COUNT(*), 0), 2) FROM trade_ratings WHERE group_id = g.id)", enum.TradeOutcomeWin).
			Set("updated_at = now()").
			Where("g.id = ?", groupID).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to refresh derived stats: %w", err)
		}

		return nil
	})
}

// GetApprovedGroupsForMatching returns the columns needed to match extracted
// platform links against known groups.
func (m *GroupModel) GetApprovedGroupsForMatching(ctx context.Context) ([]*types.SignalGroup, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) ([]*types.SignalGroup, error) {
		var groups []*types.SignalGroup

		err := m.db.NewSelect().
			TableExpr("signal_groups").
			ColumnExpr("id, name, slug, platform, platform_handle, platform_url").
			Where("status = ?", enum.GroupStatusApproved).
			Scan(ctx, &groups)
		if err != nil {
			return nil, fmt.Errorf("failed to get groups for matching: %w", err)
		}

		return groups, nil
	})
}

// InsertDiscoveredGroup records a group found through a promoted link.
// Duplicate slugs are ignored so repeated promos do not error.
func (m *GroupModel) InsertDiscoveredGroup(ctx context.Context, group *types.SignalGroup) (bool, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (bool, error) {
		result, err := m.db.NewInsert().
			Model(group).
			ModelTableExpr("signal_groups").
			On("CONFLICT (slug) DO NOTHING").
			Exec(ctx)
		if err != nil {
			return false, fmt.Errorf("failed to insert discovered group: %w", err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return false, fmt.Errorf("failed to get affected rows: %w", err)
		}

		return affected > 0, nil
	})
}
