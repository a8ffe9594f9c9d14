package sensor

import (
	"context"
	"hash/fnv"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/pulsewatch/pulsewatch/internal/domain"
)

// SimulatedClient generates plausible readings seeded by user and hour,
// so repeated fetches inside the same hour return the same values and
// the upsert path stays idempotent end to end.
type SimulatedClient struct{}

func NewSimulatedClient() *SimulatedClient {
	return &SimulatedClient{}
}

func seededRand(userID uuid.UUID, bucket time.Time) *rand.Rand {
	h := fnv.New64a()
	h.Write(userID[:])
	h.Write([]byte(bucket.UTC().Format("2006-01-02T15")))
	return rand.New(rand.NewSource(int64(h.Sum64())))
}

func (c *SimulatedClient) SleepReadings(ctx context.Context, userID uuid.UUID, now time.Time) ([]Reading, error) {
	// One overnight sleep reading in the last 24h, stamped at wake time.
	day := now.UTC().Truncate(24 * time.Hour)
	rng := seededRand(userID, day)

	wake := day.Add(time.Duration(6+rng.Intn(3)) * time.Hour)
	if wake.After(now) {
		wake = now
	}

	return []Reading{
		{
			MetricType: domain.MetricSleepHours,
			Value:      5.5 + rng.Float64()*3.5,
			Timestamp:  wake,
		},
		{
			MetricType: domain.MetricSleepQuality,
			Value:      float64(4 + rng.Intn(7)),
			Timestamp:  wake,
		},
	}, nil
}

func (c *SimulatedClient) StepReadings(ctx context.Context, userID uuid.UUID, now time.Time) ([]Reading, error) {
	// Hourly step buckets for today so far.
	day := now.UTC().Truncate(24 * time.Hour)
	var readings []Reading
	for ts := day.Add(7 * time.Hour); ts.Before(now); ts = ts.Add(time.Hour) {
		rng := seededRand(userID, ts)
		readings = append(readings, Reading{
			MetricType: domain.MetricSteps,
			Value:      float64(200 + rng.Intn(1200)),
			Timestamp:  ts,
		})
	}
	return readings, nil
}

func (c *SimulatedClient) ScreenReadings(ctx context.Context, userID uuid.UUID, now time.Time) ([]Reading, error) {
	// One unlock-count and one screen-minutes reading for the past hour.
	hour := now.UTC().Truncate(time.Hour)
	rng := seededRand(userID, hour)

	return []Reading{
		{
			MetricType: domain.MetricScreenUnlocks,
			Value:      float64(rng.Intn(15)),
			Timestamp:  hour,
		},
		{
			MetricType: domain.MetricScreenMinutes,
			Value:      float64(rng.Intn(45)),
			Timestamp:  hour,
		},
	}, nil
}
