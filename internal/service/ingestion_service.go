package service

import (
	"context"
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/pulsewatch/pulsewatch/internal/domain"
	"github.com/pulsewatch/pulsewatch/internal/repository"
	"github.com/pulsewatch/pulsewatch/internal/sensor"
	"golang.org/x/sync/errgroup"
)

const (
	// MaxUpsertRetries bounds retries after a failed sample upsert.
	MaxUpsertRetries = 3

	// RetryBaseInterval is the first backoff delay; subsequent attempts
	// double it (2s, 4s, 8s).
	RetryBaseInterval = 2 * time.Second
)

// IngestionService pulls raw readings from the sensor sources and
// upserts them as samples. One user's failure never aborts the batch;
// users that still fail after retries are reported in the result.
type IngestionService interface {
	// Sync processes all users, or just one when userID is non-nil.
	Sync(ctx context.Context, userID *uuid.UUID) (*domain.SyncResult, error)
}

type ingestionService struct {
	sensors    sensor.Client
	sampleRepo repository.SampleRepository
	userRepo   repository.UserRepository
	workers    int

	// retryInterval is RetryBaseInterval in production; tests shrink it.
	retryInterval time.Duration
}

// NewIngestionService creates a new IngestionService with a bounded
// worker pool of the given size.
func NewIngestionService(
	sensors sensor.Client,
	sampleRepo repository.SampleRepository,
	userRepo repository.UserRepository,
	workers int,
) IngestionService {
	if workers < 1 {
		workers = 1
	}
	return &ingestionService{
		sensors:       sensors,
		sampleRepo:    sampleRepo,
		userRepo:      userRepo,
		workers:       workers,
		retryInterval: RetryBaseInterval,
	}
}

func (s *ingestionService) Sync(ctx context.Context, userID *uuid.UUID) (*domain.SyncResult, error) {
	var ids []uuid.UUID
	if userID != nil {
		ids = []uuid.UUID{*userID}
	} else {
		var err error
		ids, err = s.userRepo.ListIDs(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
		}
	}

	result := &domain.SyncResult{FailedUsers: []uuid.UUID{}}
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for _, id := range ids {
		id := id
		g.Go(func() error {
			count, err := s.syncUser(gctx, id)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				log.Printf("ingestion: user %s failed after retries: %v", id, err)
				result.FailedUsers = append(result.FailedUsers, id)
				return nil
			}
			result.SyncedCount += count
			return nil
		})
	}
	// Workers swallow per-user errors, so Wait only fails on context
	// cancellation of the whole run.
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return result, nil
}

// syncUser fetches each source's recent window, normalizes the readings
// into samples, and upserts them with retry. Returns the number of
// samples written.
func (s *ingestionService) syncUser(ctx context.Context, userID uuid.UUID) (int, error) {
	now := time.Now().UTC()

	fetches := []func(context.Context, uuid.UUID, time.Time) ([]sensor.Reading, error){
		s.sensors.SleepReadings,
		s.sensors.StepReadings,
		s.sensors.ScreenReadings,
	}

	var samples []domain.Sample
	for _, fetch := range fetches {
		readings, err := fetch(ctx, userID, now)
		if err != nil {
			return 0, fmt.Errorf("sensor fetch failed: %w", err)
		}
		samples = append(samples, mapReadings(userID, readings)...)
	}

	if len(samples) == 0 {
		return 0, nil
	}

	if err := s.upsertWithRetry(ctx, samples); err != nil {
		return 0, err
	}
	return len(samples), nil
}

// mapReadings converts raw readings to samples, dropping values that
// violate the sample invariants (non-finite, or negative counts).
func mapReadings(userID uuid.UUID, readings []sensor.Reading) []domain.Sample {
	samples := make([]domain.Sample, 0, len(readings))
	for _, r := range readings {
		if math.IsNaN(r.Value) || math.IsInf(r.Value, 0) {
			continue
		}
		if r.MetricType.Countlike() && r.Value < 0 {
			continue
		}
		samples = append(samples, domain.Sample{
			UserID:      userID,
			MetricType:  r.MetricType,
			MetricValue: r.Value,
			Timestamp:   r.Timestamp.UTC(),
		})
	}
	return samples
}

func (s *ingestionService) upsertWithRetry(ctx context.Context, samples []domain.Sample) error {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = s.retryInterval
	bo.RandomizationFactor = 0
	bo.Multiplier = 2
	bo.MaxElapsedTime = 0

	op := func() error {
		return s.sampleRepo.Upsert(ctx, samples)
	}
	return backoff.Retry(op, backoff.WithContext(backoff.WithMaxRetries(bo, MaxUpsertRetries), ctx))
}
