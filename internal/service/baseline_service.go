package service

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/pulsewatch/pulsewatch/internal/domain"
	"github.com/pulsewatch/pulsewatch/internal/repository"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

const (
	// BaselineWindowDays is the trailing sample window a baseline is
	// learned from.
	BaselineWindowDays = 14

	// MinBaselineDays is the minimum distinct days of history a metric
	// family needs before its mean/sd pair is computed.
	MinBaselineDays = 7
)

// SDDenominatorOffset selects population vs sample standard deviation:
// 0 divides by the day count N (population SD), 1 would divide by N-1.
// Population SD is the preserved behavior; it biases toward smaller
// spread estimates with short histories.
const SDDenominatorOffset = 0

// BaselineService learns each user's personal mean/sd profile from a
// trailing window of per-day averages. A baseline is computed once per
// user; a scheduled recalculation path is an external concern.
type BaselineService interface {
	// Compute processes all users, or just one when userID is non-nil.
	Compute(ctx context.Context, userID *uuid.UUID) (*domain.BaselineResult, error)
}

type baselineService struct {
	sampleRepo   repository.SampleRepository
	baselineRepo repository.BaselineRepository
	userRepo     repository.UserRepository
}

// NewBaselineService creates a new BaselineService.
func NewBaselineService(
	sampleRepo repository.SampleRepository,
	baselineRepo repository.BaselineRepository,
	userRepo repository.UserRepository,
) BaselineService {
	return &baselineService{
		sampleRepo:   sampleRepo,
		baselineRepo: baselineRepo,
		userRepo:     userRepo,
	}
}

func (s *baselineService) Compute(ctx context.Context, userID *uuid.UUID) (*domain.BaselineResult, error) {
	tracer := otel.Tracer("pulsewatch-api/baseline")
	ctx, span := tracer.Start(ctx, "BaselineService.Compute")
	defer span.End()

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

	result := &domain.BaselineResult{}
	for _, id := range ids {
		computed, err := s.computeUser(ctx, id)
		if err != nil {
			// Too little history is a normal skip; real errors are
			// logged and also treated as a skip for this run.
			log.Printf("baseline: user %s failed: %v", id, err)
			result.SkippedCount++
			continue
		}
		if computed {
			result.ComputedCount++
		} else {
			result.SkippedCount++
		}
	}

	span.SetAttributes(
		attribute.Int("baseline.computed_count", result.ComputedCount),
		attribute.Int("baseline.skipped_count", result.SkippedCount),
	)
	return result, nil
}

// computeUser builds the baseline for one user. Returns false when the
// user already has a baseline or lacks enough history in every metric
// family; the next scheduled run picks them up once data accrues.
func (s *baselineService) computeUser(ctx context.Context, userID uuid.UUID) (bool, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return false, err
	}
	if user.BaselineReady {
		return false, nil
	}

	now := time.Now().UTC()
	from := now.AddDate(0, 0, -BaselineWindowDays)

	samples, err := s.sampleRepo.ListRange(ctx, userID, from, now)
	if err != nil {
		return false, err
	}

	dailyMeans := groupDailyMeans(samples)

	profile := &domain.BaselineProfile{UserID: userID}
	qualified := false
	for group, days := range dailyMeans {
		if len(days) < MinBaselineDays {
			continue
		}
		mean, sd := populationStats(days)
		switch group {
		case domain.BaselineGroupSleep:
			profile.SleepMean, profile.SleepSD = ptr(mean), ptr(sd)
		case domain.BaselineGroupSteps:
			profile.StepsMean, profile.StepsSD = ptr(mean), ptr(sd)
		case domain.BaselineGroupUnlocks:
			profile.UnlocksMean, profile.UnlocksSD = ptr(mean), ptr(sd)
		}
		qualified = true
	}

	if !qualified {
		log.Printf("baseline: user %s has under %d days of history in every metric, skipping", userID, MinBaselineDays)
		return false, nil
	}

	if err := s.baselineRepo.Upsert(ctx, profile); err != nil {
		return false, err
	}
	if err := s.userRepo.SetBaselineReady(ctx, userID, true); err != nil {
		return false, err
	}
	return true, nil
}

// groupDailyMeans buckets samples by metric family and date, reducing
// each family/date bucket to its within-day mean. The returned slices
// hold one value per distinct day.
func groupDailyMeans(samples []domain.Sample) map[domain.BaselineGroup][]float64 {
	byGroupDate := make(map[domain.BaselineGroup]map[string][]float64)
	for _, s := range samples {
		group := s.MetricType.Group()
		if group == domain.BaselineGroupNone {
			continue
		}
		date := s.Timestamp.UTC().Format("2006-01-02")
		if byGroupDate[group] == nil {
			byGroupDate[group] = make(map[string][]float64)
		}
		byGroupDate[group][date] = append(byGroupDate[group][date], s.MetricValue)
	}

	dailyMeans := make(map[domain.BaselineGroup][]float64, len(byGroupDate))
	for group, dates := range byGroupDate {
		for _, values := range dates {
			if m := meanOf(values); m != nil {
				dailyMeans[group] = append(dailyMeans[group], *m)
			}
		}
	}
	return dailyMeans
}

// populationStats computes mean and population standard deviation
// (see SDDenominatorOffset).
func populationStats(values []float64) (float64, float64) {
	if len(values) == 0 {
		return 0, 0
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))

	sumSquares := 0.0
	for _, v := range values {
		diff := v - mean
		sumSquares += diff * diff
	}
	sd := math.Sqrt(sumSquares / float64(len(values)-SDDenominatorOffset))

	return mean, sd
}
