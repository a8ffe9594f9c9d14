package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pulsewatch/pulsewatch/internal/domain"
)

func sampleAt(userID uuid.UUID, metric domain.MetricType, value float64, ts time.Time) domain.Sample {
	return domain.Sample{
		UserID:      userID,
		MetricType:  metric,
		MetricValue: value,
		Timestamp:   ts,
	}
}

func TestAggregateDay(t *testing.T) {
	userID := uuid.New()
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("steps are summed, other metrics averaged", func(t *testing.T) {
		samples := []domain.Sample{
			sampleAt(userID, domain.MetricSteps, 3000, day.Add(9*time.Hour)),
			sampleAt(userID, domain.MetricSteps, 2500, day.Add(14*time.Hour)),
			sampleAt(userID, domain.MetricSteps, 1500, day.Add(20*time.Hour)),
			sampleAt(userID, domain.MetricSleepHours, 6, day.Add(7*time.Hour)),
			sampleAt(userID, domain.MetricSleepHours, 8, day.Add(8*time.Hour)),
			sampleAt(userID, domain.MetricScreenUnlocks, 40, day.Add(12*time.Hour)),
			sampleAt(userID, domain.MetricScreenUnlocks, 80, day.Add(18*time.Hour)),
			sampleAt(userID, domain.MetricActivityLevel, 0.5, day.Add(10*time.Hour)),
		}

		agg := aggregateDay(samples, nil)

		if agg.steps == nil || *agg.steps != 7000 {
			t.Errorf("steps = %v, want 7000", agg.steps)
		}
		if agg.sleepHours == nil || *agg.sleepHours != 7 {
			t.Errorf("sleepHours = %v, want 7", agg.sleepHours)
		}
		if agg.screenUnlocks == nil || *agg.screenUnlocks != 60 {
			t.Errorf("screenUnlocks = %v, want 60", agg.screenUnlocks)
		}
		if agg.typingScore == nil || *agg.typingScore != 0.5 {
			t.Errorf("typingScore = %v, want 0.5", agg.typingScore)
		}
	})

	t.Run("mood entries average across check-ins", func(t *testing.T) {
		moods := []domain.MoodEntry{
			{UserID: userID, Mood: 4, Energy: 3, Stress: 4, Anxiety: 5, CreatedAt: day.Add(9 * time.Hour)},
			{UserID: userID, Mood: 6, Energy: 5, Stress: 2, Anxiety: 3, CreatedAt: day.Add(20 * time.Hour)},
		}

		agg := aggregateDay(nil, moods)

		if agg.moodAvg == nil || *agg.moodAvg != 5 {
			t.Errorf("moodAvg = %v, want 5", agg.moodAvg)
		}
		if agg.energyAvg == nil || *agg.energyAvg != 4 {
			t.Errorf("energyAvg = %v, want 4", agg.energyAvg)
		}
		if agg.stressAvg == nil || *agg.stressAvg != 3 {
			t.Errorf("stressAvg = %v, want 3", agg.stressAvg)
		}
		if agg.anxietyAvg == nil || *agg.anxietyAvg != 4 {
			t.Errorf("anxietyAvg = %v, want 4", agg.anxietyAvg)
		}
	})

	t.Run("missing data stays nil rather than zero", func(t *testing.T) {
		agg := aggregateDay(nil, nil)

		if agg.steps != nil {
			t.Errorf("steps = %v, want nil", *agg.steps)
		}
		if agg.sleepHours != nil {
			t.Errorf("sleepHours = %v, want nil", *agg.sleepHours)
		}
		if agg.moodAvg != nil {
			t.Errorf("moodAvg = %v, want nil", *agg.moodAvg)
		}
	})
}
