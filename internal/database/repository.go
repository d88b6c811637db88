package database

import (
	"github.com/QVllasa/signalleague/internal/database/models"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// Repository provides access to all database models.
type Repository struct {
	group   *models.GroupModel
	review  *models.ReviewModel
	trade   *models.TradeModel
	ranking *models.RankingModel
	flag    *models.FlagModel
	report  *models.ReportModel
	mention *models.MentionModel
	queue   *models.QueueModel
}

// NewRepository creates a new repository instance with all models.
func NewRepository(db *bun.DB, logger *zap.Logger) *Repository {
	return &Repository{
		group:   models.NewGroup(db, logger),
		review:  models.NewReview(db, logger),
		trade:   models.NewTrade(db, logger),
		ranking: models.NewRanking(db, logger),
		flag:    models.NewFlag(db, logger),
		report:  models.NewReport(db, logger),
		mention: models.NewMention(db, logger),
		queue:   models.NewQueue(db, logger),
	}
}

// Group returns the signal group model repository.
func (r *Repository) Group() *models.GroupModel {
	return r.group
}

// Review returns the review model repository.
func (r *Repository) Review() *models.ReviewModel {
	return r.review
}

// Trade returns the trade rating model repository.
func (r *Repository) Trade() *models.TradeModel {
	return r.trade
}

// Ranking returns the tier ranking model repository.
func (r *Repository) Ranking() *models.RankingModel {
	return r.ranking
}

// Flag returns the scam flag model repository.
func (r *Repository) Flag() *models.FlagModel {
	return r.flag
}

// Report returns the report model repository.
func (r *Repository) Report() *models.ReportModel {
	return r.report
}

// Mention returns the Twitter mention model repository.
func (r *Repository) Mention() *models.MentionModel {
	return r.mention
}

// Queue returns the bot queue model repository.
func (r *Repository) Queue() *models.QueueModel {
	return r.queue
}
