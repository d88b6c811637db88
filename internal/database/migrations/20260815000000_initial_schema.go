package migrations

import (
	"context"
	"fmt"
	"strings"

	"github.com/QVllasa/signalleague/internal/database/types"
	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		tables := []struct {
			model any
			name  string
		}{
			{(*types.SignalGroup)(nil), "signal_groups"},
			{(*types.Review)(nil), "reviews"},
			{(*types.TradeRating)(nil), "trade_ratings"},
			{(*types.TierRanking)(nil), "tier_rankings"},
			{(*types.TierHistory)(nil), "tier_history"},
			{(*types.ScamFlag)(nil), "scam_flags"},
			{(*types.Report)(nil), "reports"},
			{(*types.TwitterMention)(nil), "twitter_mentions"},
			{(*types.BotQueueItem)(nil), "bot_queue"},
		}

		for _, table := range tables {
			_, err := db.NewCreateTable().
				Model(table.model).
				ModelTableExpr(table.name).
				IfNotExists().
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to create table %s: %w", table.name, err)
			}
		}

		// One review per (user, group) pair
		_, err := db.NewRaw(
			"CREATE UNIQUE INDEX IF NOT EXISTS reviews_user_group_idx ON reviews (user_id, group_id)",
		).Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to create reviews unique index: %w", err)
		}

		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		tableNames := []string{
			"bot_queue",
			"twitter_mentions",
			"reports",
			"scam_flags",
			"tier_history",
			"tier_rankings",
			"trade_ratings",
			"reviews",
			"signal_groups",
		}

		var dropStmt strings.Builder
		dropStmt.WriteString("DROP TABLE IF EXISTS ")
		dropStmt.WriteString(strings.Join(tableNames, ", "))
		dropStmt.WriteString(" CASCADE")

		_, err := db.NewRaw(dropStmt.String()).Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to drop tables: %w", err)
		}

		return nil
	})
}
