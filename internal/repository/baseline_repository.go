package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/pulsewatch/pulsewatch/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BaselineRepository interface {
	// GetByUser returns the user's profile, or (nil, nil) when none
	// exists yet; absence of a baseline is a normal state, not an error.
	GetByUser(ctx context.Context, userID uuid.UUID) (*domain.BaselineProfile, error)
	// Upsert replaces the profile wholesale. Baselines are recomputed
	// from scratch, never incrementally patched.
	Upsert(ctx context.Context, profile *domain.BaselineProfile) error
}

type baselineRepository struct {
	db *gorm.DB
}

func NewBaselineRepository(db *gorm.DB) BaselineRepository {
	return &baselineRepository{db: db}
}

func (r *baselineRepository) GetByUser(ctx context.Context, userID uuid.UUID) (*domain.BaselineProfile, error) {
	var profile domain.BaselineProfile
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profile).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *baselineRepository) Upsert(ctx context.Context, profile *domain.BaselineProfile) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"sleep_mean", "sleep_sd", "steps_mean", "steps_sd",
				"unlocks_mean", "unlocks_sd", "updated_at",
			}),
		}).
		Create(profile).Error
}
