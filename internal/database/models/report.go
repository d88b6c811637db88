package models

import (
	"context"
	"fmt"

	"github.com/QVllasa/signalleague/internal/database/dbretry"
	"github.com/QVllasa/signalleague/internal/database/types/enum"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// ReportModel handles database operations for user reports.
type ReportModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewReport creates a new ReportModel instance.
func NewReport(db *bun.DB, logger *zap.Logger) *ReportModel {
	return &ReportModel{
		db:     db,
		logger: logger.Named("db_report"),
	}
}

// CountScamReports returns how many users reported the group as a scam.
func (m *ReportModel) CountScamReports(ctx context.Context, groupID uuid.UUID) (int, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (int, error) {
		count, err := m.db.NewSelect().
			TableExpr("reports").
			Where("target_type = ?", enum.ReportTargetTypeGroup).
			Where("target_id = ?", groupID).
			Where("reason = ?", enum.ReportReasonScam).
			Count(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to count scam reports: %w", err)
		}

		return count, nil
	})
}
