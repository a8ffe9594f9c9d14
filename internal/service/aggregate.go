package service

import (
	"github.com/pulsewatch/pulsewatch/internal/domain"
)

// dayAggregate holds one calendar day's rolled-up values for a user.
// A nil field means no readings of that kind existed in the window.
type dayAggregate struct {
	sleepHours    *float64
	steps         *float64
	screenUnlocks *float64
	typingScore   *float64
	moodAvg       *float64
	energyAvg     *float64
	stressAvg     *float64
	anxietyAvg    *float64
}

// aggregateDay reduces a day's raw samples and mood entries to one
// scalar per metric. Same-type samples are averaged, except steps,
// which are summed: step readings are cumulative per-day counts while
// sleep and activity readings are instantaneous.
func aggregateDay(samples []domain.Sample, moods []domain.MoodEntry) dayAggregate {
	byType := make(map[domain.MetricType][]float64)
	for _, s := range samples {
		byType[s.MetricType] = append(byType[s.MetricType], s.MetricValue)
	}

	agg := dayAggregate{
		sleepHours:    meanOf(byType[domain.MetricSleepHours]),
		steps:         sumOf(byType[domain.MetricSteps]),
		screenUnlocks: meanOf(byType[domain.MetricScreenUnlocks]),
		typingScore:   meanOf(byType[domain.MetricActivityLevel]),
	}

	if len(moods) > 0 {
		var mood, energy, stress, anxiety float64
		for _, m := range moods {
			mood += float64(m.Mood)
			energy += float64(m.Energy)
			stress += float64(m.Stress)
			anxiety += float64(m.Anxiety)
		}
		n := float64(len(moods))
		agg.moodAvg = ptr(mood / n)
		agg.energyAvg = ptr(energy / n)
		agg.stressAvg = ptr(stress / n)
		agg.anxietyAvg = ptr(anxiety / n)
	}

	return agg
}

func meanOf(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return ptr(sum / float64(len(values)))
}

func sumOf(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return ptr(sum)
}

func ptr(v float64) *float64 {
	return &v
}
