// Package sensor abstracts the external device/sensor API the ingestion
// workers pull raw readings from. The simulated client stands in for a
// real device integration in local and test environments.
package sensor

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pulsewatch/pulsewatch/internal/domain"
)

// Reading is one raw metric reading returned by a sensor source.
type Reading struct {
	MetricType domain.MetricType
	Value      float64
	Timestamp  time.Time
}

// Client fetches recent readings per source. Each method covers that
// source's natural window: sleep looks back 24 hours, steps cover the
// current calendar day, screen activity covers the past hour.
type Client interface {
	SleepReadings(ctx context.Context, userID uuid.UUID, now time.Time) ([]Reading, error)
	StepReadings(ctx context.Context, userID uuid.UUID, now time.Time) ([]Reading, error)
	ScreenReadings(ctx context.Context, userID uuid.UUID, now time.Time) ([]Reading, error)
}
