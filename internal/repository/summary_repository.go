package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pulsewatch/pulsewatch/internal/domain"
	"github.com/pulsewatch/pulsewatch/pkg/pagination"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SummaryRepository interface {
	// Upsert replaces the (user_id, date) row wholesale; re-running the
	// aggregator for a date overwrites rather than accumulates.
	Upsert(ctx context.Context, summary *domain.DailySummary) error
	GetByUserDate(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.DailySummary, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.SummaryFilter) ([]domain.DailySummary, error)
	// ListRecent returns the newest n summaries for a user, newest first.
	ListRecent(ctx context.Context, userID uuid.UUID, n int) ([]domain.DailySummary, error)
}

type summaryRepository struct {
	db *gorm.DB
}

func NewSummaryRepository(db *gorm.DB) SummaryRepository {
	return &summaryRepository{db: db}
}

func (r *summaryRepository) Upsert(ctx context.Context, summary *domain.DailySummary) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"sleep_hours", "steps", "screen_unlocks", "typing_score",
				"mood_avg", "energy_avg", "stress_avg", "anxiety_avg",
				"risk_level", "updated_at",
			}),
		}).
		Create(summary).Error
}

func (r *summaryRepository) GetByUserDate(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.DailySummary, error) {
	var summary domain.DailySummary
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		First(&summary).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &summary, nil
}

func (r *summaryRepository) List(ctx context.Context, userID uuid.UUID, filter domain.SummaryFilter) ([]domain.DailySummary, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC")

	// Apply date filters
	if filter.From != nil {
		query = query.Where("date >= ?", filter.From)
	}
	if filter.To != nil {
		query = query.Where("date <= ?", filter.To)
	}

	// Apply cursor pagination
	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			// For DESC order: rows with date < cursor.Date, or the same
			// date but a smaller id.
			query = query.Where(
				"(date < ?) OR (date = ? AND id < ?)",
				cursor.Date, cursor.Date, cursor.ID,
			)
		}
	}

	// Fetch one extra to determine if there are more results
	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var summaries []domain.DailySummary
	if err := query.Find(&summaries).Error; err != nil {
		return nil, err
	}

	return summaries, nil
}

func (r *summaryRepository) ListRecent(ctx context.Context, userID uuid.UUID, n int) ([]domain.DailySummary, error) {
	var summaries []domain.DailySummary
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Limit(n).
		Find(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}
