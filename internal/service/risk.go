package service

import (
	"math"

	"github.com/pulsewatch/pulsewatch/internal/domain"
)

const (
	// Z-score thresholds for per-metric deviation points
	ZScoreElevated = 1.0
	ZScoreHigh     = 2.0

	// Risk-factor score cutoffs
	RiskScoreAmber = 2
	RiskScoreRed   = 4

	// Mood is a bounded 1-10 scale, so extremes in either direction
	// count rather than a z-score.
	MoodLowExtreme  = 4.0
	MoodHighExtreme = 8.0

	// Stress and anxiety run 1-5; a daily average of 4+ counts.
	StressThreshold  = 4.0
	AnxietyThreshold = 4.0
)

// classify scores one day's aggregate against the user's baseline and
// maps the total to a risk level. Callers must only invoke it when a
// baseline exists; without one the day's risk stays unset.
func classify(agg dayAggregate, baseline *domain.BaselineProfile) (domain.RiskLevel, int) {
	score := 0

	score += deviationPoints(agg.sleepHours, baseline.SleepMean, baseline.SleepSD)
	score += deviationPoints(agg.steps, baseline.StepsMean, baseline.StepsSD)
	score += deviationPoints(agg.screenUnlocks, baseline.UnlocksMean, baseline.UnlocksSD)

	score += moodPoints(agg.moodAvg)

	if agg.stressAvg != nil && *agg.stressAvg >= StressThreshold {
		score++
	}
	if agg.anxietyAvg != nil && *agg.anxietyAvg >= AnxietyThreshold {
		score++
	}

	switch {
	case score >= RiskScoreRed:
		return domain.RiskRed, score
	case score >= RiskScoreAmber:
		return domain.RiskAmber, score
	default:
		return domain.RiskGreen, score
	}
}

// deviationPoints converts a day value's absolute z-score against the
// baseline into risk points. A zero standard deviation is treated as
// zero deviation rather than a division blowup.
func deviationPoints(value, mean, sd *float64) int {
	if value == nil || mean == nil || sd == nil || *sd == 0 {
		return 0
	}
	z := math.Abs(*value-*mean) / *sd
	switch {
	case z > ZScoreHigh:
		return 2
	case z > ZScoreElevated:
		return 1
	default:
		return 0
	}
}

// moodPoints scores the day's average mood. Both extremes of the 1-10
// scale are symptomatic: very low and very high each score 2, the
// mid-band scores 1.
func moodPoints(mood *float64) int {
	if mood == nil {
		return 0
	}
	m := *mood
	switch {
	case m <= MoodLowExtreme || m >= MoodHighExtreme:
		return 2
	case (m >= 5 && m <= 6) || m == 7:
		return 1
	default:
		return 0
	}
}
