package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pulsewatch/pulsewatch/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SampleRepository interface {
	// Upsert writes samples keyed on (user_id, metric_type, timestamp).
	// A repeated write with the same key overwrites metric_value, so
	// ingesting the same reading twice never produces two rows.
	Upsert(ctx context.Context, samples []domain.Sample) error
	// ListRange returns all samples for a user with timestamps inside
	// [from, to], ordered by timestamp ascending.
	ListRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.Sample, error)
}

type sampleRepository struct {
	db *gorm.DB
}

func NewSampleRepository(db *gorm.DB) SampleRepository {
	return &sampleRepository{db: db}
}

func (r *sampleRepository) Upsert(ctx context.Context, samples []domain.Sample) error {
	if len(samples) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "user_id"},
				{Name: "metric_type"},
				{Name: "timestamp"},
			},
			DoUpdates: clause.AssignmentColumns([]string{"metric_value"}),
		}).
		Create(&samples).Error
}

func (r *sampleRepository) ListRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.Sample, error) {
	var samples []domain.Sample
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("timestamp >= ? AND timestamp <= ?", from, to).
		Order("timestamp ASC").
		Find(&samples).Error
	if err != nil {
		return nil, err
	}
	return samples, nil
}
