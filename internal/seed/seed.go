package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/pulsewatch/pulsewatch/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const seededDays = 30

// Run seeds the database with sample users, sensor samples, and mood
// entries. Safe to call multiple times.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Sample{},
		&domain.MoodEntry{},
		&domain.DailySummary{},
		&domain.BaselineProfile{},
	); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	users := []domain.User{
		{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Timezone: "Europe/Amsterdam"},
		{ID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), Timezone: "America/New_York"},
		{ID: uuid.MustParse("33333333-3333-3333-3333-333333333333"), Timezone: "Asia/Tokyo"},
		{ID: uuid.MustParse("44444444-4444-4444-4444-444444444444"), Timezone: "Australia/Sydney"},
	}

	for _, user := range users {
		if err := db.Where("id = ?", user.ID).FirstOrCreate(&user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", user.ID, err)
		}
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for _, user := range users {
		if err := seedSamplesForUser(db, user, rng); err != nil {
			return err
		}
		if err := seedMoodEntriesForUser(db, user, rng); err != nil {
			return err
		}
	}

	log.Println("Seed completed")
	return nil
}

// seedSamplesForUser writes one reading per metric per day. Writes go
// through an upsert on (user_id, metric_type, timestamp) so re-running
// the seed overwrites instead of duplicating.
func seedSamplesForUser(db *gorm.DB, user domain.User, rng *rand.Rand) error {
	now := time.Now().UTC()
	for i := 0; i < seededDays; i++ {
		date := now.AddDate(0, 0, -i)
		morning := time.Date(date.Year(), date.Month(), date.Day(), 7, 30, 0, 0, time.UTC)
		evening := time.Date(date.Year(), date.Month(), date.Day(), 21, 0, 0, 0, time.UTC)

		samples := []domain.Sample{
			{UserID: user.ID, MetricType: domain.MetricSleepHours, MetricValue: 6 + rng.Float64()*3, Timestamp: morning},
			{UserID: user.ID, MetricType: domain.MetricSleepQuality, MetricValue: float64(5 + rng.Intn(5)), Timestamp: morning},
			{UserID: user.ID, MetricType: domain.MetricSteps, MetricValue: float64(3000 + rng.Intn(9000)), Timestamp: evening},
			{UserID: user.ID, MetricType: domain.MetricActivityLevel, MetricValue: 0.2 + rng.Float64()*0.6, Timestamp: evening},
			{UserID: user.ID, MetricType: domain.MetricScreenUnlocks, MetricValue: float64(40 + rng.Intn(80)), Timestamp: evening},
			{UserID: user.ID, MetricType: domain.MetricScreenMinutes, MetricValue: float64(90 + rng.Intn(240)), Timestamp: evening},
		}

		for _, sample := range samples {
			err := db.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "user_id"}, {Name: "metric_type"}, {Name: "timestamp"}},
				DoUpdates: clause.AssignmentColumns([]string{"metric_value"}),
			}).Create(&sample).Error
			if err != nil {
				return fmt.Errorf("failed to create sample for user %s: %w", user.ID, err)
			}
		}
	}
	return nil
}

// seedMoodEntriesForUser writes roughly one check-in every other day.
func seedMoodEntriesForUser(db *gorm.DB, user domain.User, rng *rand.Rand) error {
	now := time.Now().UTC()
	for i := 0; i < seededDays; i++ {
		if rng.Float32() < 0.4 {
			continue
		}

		date := now.AddDate(0, 0, -i)
		createdAt := time.Date(date.Year(), date.Month(), date.Day(), 18+rng.Intn(4), rng.Intn(60), 0, 0, time.UTC)

		entry := domain.MoodEntry{
			UserID:    user.ID,
			Mood:      5 + rng.Intn(4),
			Energy:    4 + rng.Intn(5),
			Stress:    1 + rng.Intn(4),
			Anxiety:   1 + rng.Intn(4),
			CreatedAt: createdAt,
		}

		if err := db.Where("user_id = ? AND created_at = ?", user.ID, createdAt).FirstOrCreate(&entry).Error; err != nil {
			return fmt.Errorf("failed to create mood entry for user %s: %w", user.ID, err)
		}
	}
	return nil
}
