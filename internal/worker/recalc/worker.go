// Package recalc implements the scheduled scoring worker. Each run refreshes
// every approved group's derived stats, tier ranking, transparency score, and
// scam risk flags.
package recalc

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/QVllasa/signalleague/internal/database"
	"github.com/QVllasa/signalleague/internal/database/models"
	"github.com/QVllasa/signalleague/internal/database/types"
	"github.com/QVllasa/signalleague/internal/database/types/enum"
	"github.com/QVllasa/signalleague/internal/progress"
	"github.com/QVllasa/signalleague/internal/scoring"
	"github.com/QVllasa/signalleague/internal/setup"
	"github.com/QVllasa/signalleague/internal/setup/config"
	"github.com/QVllasa/signalleague/internal/worker/core"
	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

// mentionWindow is the trailing window the negative sentiment rule reads.
const mentionWindow = 30 * 24 * time.Hour

// Worker runs full scoring passes over all approved groups on a cron
// schedule.
type Worker struct {
	db       database.Client
	bar      *progress.Bar
	reporter *core.StatusReporter
	cfg      *config.Recalc
	logger   *zap.Logger
}

// groupResult is the outcome of one group's scoring pass.
type groupResult struct {
	GroupID      uuid.UUID
	Tier         enum.Tier
	Score        float64
	Transparency int
	Risk         enum.Severity
}

// New creates a new recalculation worker.
func New(app *setup.App, bar *progress.Bar, logger *zap.Logger) *Worker {
	return &Worker{
		db:       app.DB,
		bar:      bar,
		reporter: core.NewStatusReporter(app.StatusClient, "recalc", logger),
		cfg:      &app.Config.Worker.Recalc,
		logger:   logger,
	}
}

// Start runs an initial scoring pass immediately, then repeats on the
// configured cron schedule. It blocks forever.
func (w *Worker) Start() {
	ctx := context.Background()

	w.logger.Info("Recalculation worker started",
		zap.String("workerID", w.reporter.GetWorkerID()),
		zap.String("schedule", w.cfg.Schedule))
	w.reporter.Start(ctx)

	defer w.reporter.Stop()

	w.bar.SetTotal(100)

	// First pass runs immediately so a fresh deployment is scored without
	// waiting for the schedule.
	w.runPass(ctx)

	c := cron.New()

	if _, err := c.AddFunc(w.cfg.Schedule, func() { w.runPass(ctx) }); err != nil {
		w.logger.Fatal("Invalid recalculation schedule",
			zap.String("schedule", w.cfg.Schedule), zap.Error(err))
	}

	c.Run()
}

// runPass scores every approved group, skipping groups that fail so one bad
// group cannot stall the rest, and logs a summary of the computed results.
func (w *Worker) runPass(ctx context.Context) {
	w.bar.Reset()
	w.reporter.SetHealthy(true)

	w.bar.SetStepMessage("Loading approved groups", 0)
	w.reporter.UpdateStatus("Loading approved groups", 0)

	groupIDs, err := w.db.Model().Group().GetApprovedGroupIDs(ctx)
	if err != nil {
		w.logger.Error("Failed to load approved groups", zap.Error(err))
		w.reporter.SetHealthy(false)

		return
	}

	w.bar.SetStepMessage("Scoring groups", 10)
	w.reporter.UpdateStatus("Scoring groups", 10)

	var completed atomic.Int64

	p := pool.NewWithResults[*groupResult]().WithMaxGoroutines(w.cfg.Concurrency)
	for _, groupID := range groupIDs {
		p.Go(func() *groupResult {
			result, err := w.scoreGroup(ctx, groupID)
			if err != nil {
				w.logger.Error("Failed to score group",
					zap.String("groupID", groupID.String()), zap.Error(err))
			}

			w.bar.SetCurrent(passProgress(completed.Add(1), int64(len(groupIDs))))

			return result
		})
	}

	results := p.Wait()

	failed := 0

	for _, result := range results {
		if result == nil {
			failed++
			continue
		}

		w.logger.Debug("Scored group",
			zap.String("groupID", result.GroupID.String()),
			zap.String("tier", string(result.Tier)),
			zap.Float64("score", result.Score),
			zap.Int("transparency", result.Transparency),
			zap.String("scamRisk", string(result.Risk)))
	}

	w.bar.SetStepMessage("Pass complete", 100)
	w.reporter.UpdateStatus("Pass complete", 100)

	if failed > 0 {
		w.reporter.SetHealthy(false)
	}

	w.logger.Info("Recalculation pass complete",
		zap.Int("groups", len(groupIDs)),
		zap.Int("failed", failed),
		zap.Any("tiers", tierDistribution(results)))
}

// passProgress maps completed groups onto the 10-90 segment of the bar. The
// segment endpoints are claimed by the load and summary steps.
func passProgress(completed, total int64) int64 {
	return 10 + completed*80/max(total, 1)
}

// tierDistribution counts the scored groups per tier, skipping failures.
func tierDistribution(results []*groupResult) map[string]int {
	tiers := make(map[string]int)

	for _, result := range results {
		if result != nil {
			tiers[string(result.Tier)]++
		}
	}

	return tiers
}

// scoreGroup runs the full scoring pipeline for one group: derived stats,
// tier ranking, scam detection, then transparency (so the transparency pass
// sees the fresh scam flags).
func (w *Worker) scoreGroup(ctx context.Context, groupID uuid.UUID) (*groupResult, error) {
	if err := w.db.Model().Group().RefreshDerivedStats(ctx, groupID); err != nil {
		return nil, err
	}

	tier, score, err := w.rankGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}

	risk, err := w.detectScamRisk(ctx, groupID)
	if err != nil {
		return nil, err
	}

	transparency, err := w.scoreTransparency(ctx, groupID)
	if err != nil {
		return nil, err
	}

	return &groupResult{
		GroupID:      groupID,
		Tier:         tier,
		Score:        score,
		Transparency: transparency,
		Risk:         risk,
	}, nil
}

// rankGroup computes and persists the group's tier. Groups with no published
// reviews are marked unranked with no score and no history entry. Tier
// movements relative to the previous run are logged.
func (w *Worker) rankGroup(ctx context.Context, groupID uuid.UUID) (enum.Tier, float64, error) {
	previous, err := w.db.Model().Ranking().GetRanking(ctx, groupID)
	if err != nil && !errors.Is(err, models.ErrRankingNotFound) {
		return "", 0, err
	}

	recentCutoff := time.Now().AddDate(0, 0, -w.cfg.RecentReviewDays)

	stats, err := w.db.Model().Review().GetGroupReviewStats(ctx, groupID, recentCutoff)
	if err != nil {
		return "", 0, err
	}

	if stats.ReviewCount == 0 {
		return enum.TierUnranked, 0, w.db.Model().Ranking().UpsertRanking(ctx, &types.TierRanking{
			GroupID:      groupID,
			Tier:         enum.TierUnranked,
			CalculatedAt: time.Now(),
		})
	}

	score, _ := scoring.TierScore(stats)
	tier := scoring.ScoreToTier(score)

	err = w.db.Model().Ranking().UpsertRanking(ctx, &types.TierRanking{
		GroupID:        groupID,
		Tier:           tier,
		AlgorithmScore: &score,
		TotalScore:     &score,
		CalculatedAt:   time.Now(),
	})
	if err != nil {
		return "", 0, err
	}

	if previous != nil && previous.Tier != tier {
		w.logger.Info("Tier changed",
			zap.String("groupID", groupID.String()),
			zap.String("from", string(previous.Tier)),
			zap.String("to", string(tier)),
			zap.Float64("score", score))
	}

	return tier, score, w.db.Model().Ranking().AppendHistory(ctx, &types.TierHistory{
		GroupID:    groupID,
		Tier:       tier,
		TotalScore: score,
		RecordedAt: time.Now(),
	})
}

// detectScamRisk evaluates the detection rules, replaces the group's
// auto-detected flags, and updates its overall risk level.
func (w *Worker) detectScamRisk(ctx context.Context, groupID uuid.UUID) (enum.Severity, error) {
	meta, err := w.db.Model().Group().GetGroupMeta(ctx, groupID)
	if err != nil {
		return "", err
	}

	trades, err := w.db.Model().Trade().GetGroupTradeStats(ctx, groupID)
	if err != nil {
		return "", err
	}

	scamReports, err := w.db.Model().Report().CountScamReports(ctx, groupID)
	if err != nil {
		return "", err
	}

	mentions, err := w.db.Model().Mention().GetMentionStats(ctx, groupID, time.Now().Add(-mentionWindow))
	if err != nil {
		return "", err
	}

	months, hasFounded := meta.MonthsSinceFounding(time.Now())

	flags := scoring.DetectRedFlags(&scoring.ScamInputs{
		Trades:         *trades,
		MonthsActive:   months,
		HasFoundedDate: hasFounded,
		ScamReports:    scamReports,
		Price:          meta.Price,
		Mentions:       *mentions,
	})

	rows := make([]*types.ScamFlag, len(flags))
	for i, flag := range flags {
		rows[i] = &types.ScamFlag{
			GroupID:      groupID,
			Flag:         flag.Name,
			Description:  flag.Description,
			Severity:     flag.Severity,
			AutoDetected: true,
		}
	}

	if err := w.db.Model().Flag().ReplaceAutoFlags(ctx, groupID, rows); err != nil {
		return "", err
	}

	risk := scoring.OverallRisk(flags)

	return risk, w.db.Model().Group().UpdateScamRisk(ctx, groupID, risk)
}

// scoreTransparency computes and persists the group's transparency score.
func (w *Worker) scoreTransparency(ctx context.Context, groupID uuid.UUID) (int, error) {
	meta, err := w.db.Model().Group().GetGroupMeta(ctx, groupID)
	if err != nil {
		return 0, err
	}

	trades, err := w.db.Model().Trade().GetGroupTradeStats(ctx, groupID)
	if err != nil {
		return 0, err
	}

	reviewCount, err := w.db.Model().Review().CountPublished(ctx, groupID)
	if err != nil {
		return 0, err
	}

	flagCount, err := w.db.Model().Flag().CountFlags(ctx, groupID)
	if err != nil {
		return 0, err
	}

	months, hasFounded := meta.MonthsSinceFounding(time.Now())

	score, _ := scoring.TransparencyScore(&scoring.TransparencyInputs{
		PricingModel:     meta.PricingModel,
		Price:            meta.Price,
		MonthsActive:     months,
		HasFoundedDate:   hasFounded,
		Trades:           *trades,
		PublishedReviews: reviewCount,
		ScamFlags:        flagCount,
	})

	return score, w.db.Model().Group().UpdateTransparencyScore(ctx, groupID, score)
}
