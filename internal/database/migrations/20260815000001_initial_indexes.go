package migrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		_, err := db.NewRaw(`
			-- Review aggregate queries filter on group and status
			CREATE INDEX IF NOT EXISTS idx_reviews_group_status
			ON reviews (group_id, status);

			CREATE INDEX IF NOT EXISTS idx_trade_ratings_group
			ON trade_ratings (group_id);

			CREATE INDEX IF NOT EXISTS idx_scam_flags_group
			ON scam_flags (group_id, auto_detected);

			CREATE INDEX IF NOT EXISTS idx_reports_target
			ON reports (target_type, target_id, reason);

			-- Trailing-window sentiment aggregates
			CREATE INDEX IF NOT EXISTS idx_twitter_mentions_group_time
			ON twitter_mentions (group_id, tweeted_at DESC);

			-- Triage worker scans for unprocessed mentions
			CREATE INDEX IF NOT EXISTS idx_twitter_mentions_unprocessed
			ON twitter_mentions (created_at ASC)
			WHERE processed = false;

			CREATE INDEX IF NOT EXISTS idx_tier_history_group_time
			ON tier_history (group_id, recorded_at DESC);

			CREATE INDEX IF NOT EXISTS idx_signal_groups_status
			ON signal_groups (status);

			CREATE INDEX IF NOT EXISTS idx_bot_queue_pending
			ON bot_queue (priority DESC, created_at ASC)
			WHERE status = 'queued';
		`).Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to create indexes: %w", err)
		}

		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		_, err := db.NewRaw(`
			DROP INDEX IF EXISTS idx_reviews_group_status;
			DROP INDEX IF EXISTS idx_trade_ratings_group;
			DROP INDEX IF EXISTS idx_scam_flags_group;
			DROP INDEX IF EXISTS idx_reports_target;
			DROP INDEX IF EXISTS idx_twitter_mentions_group_time;
			DROP INDEX IF EXISTS idx_twitter_mentions_unprocessed;
			DROP INDEX IF EXISTS idx_tier_history_group_time;
			DROP INDEX IF EXISTS idx_signal_groups_status;
			DROP INDEX IF EXISTS idx_bot_queue_pending;
		`).Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to drop indexes: %w", err)
		}

		return nil
	})
}
