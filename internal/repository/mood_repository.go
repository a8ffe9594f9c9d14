package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pulsewatch/pulsewatch/internal/domain"
	"gorm.io/gorm"
)

// MoodRepository reads self-reported mood entries. The pipeline never
// mutates entries; Create exists only for the seed path.
type MoodRepository interface {
	Create(ctx context.Context, entry *domain.MoodEntry) error
	ListRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.MoodEntry, error)
}

type moodRepository struct {
	db *gorm.DB
}

func NewMoodRepository(db *gorm.DB) MoodRepository {
	return &moodRepository{db: db}
}

func (r *moodRepository) Create(ctx context.Context, entry *domain.MoodEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *moodRepository) ListRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.MoodEntry, error) {
	var entries []domain.MoodEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("created_at >= ? AND created_at <= ?", from, to).
		Order("created_at ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
