package service

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pulsewatch/pulsewatch/internal/domain"
	"github.com/pulsewatch/pulsewatch/internal/repository"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

// AggregationService rolls one calendar date's samples and mood entries
// into a DailySummary per user and classifies each day's risk against
// the user's baseline. Re-running a date replaces the rows it wrote the
// first time, so backfills and corrections are safe.
type AggregationService interface {
	AggregateDate(ctx context.Context, date time.Time) ([]domain.UserRisk, error)
}

type aggregationService struct {
	sampleRepo   repository.SampleRepository
	moodRepo     repository.MoodRepository
	summaryRepo  repository.SummaryRepository
	baselineRepo repository.BaselineRepository
	userRepo     repository.UserRepository
	notifier     NotificationService
	workers      int
}

// NewAggregationService creates a new AggregationService.
func NewAggregationService(
	sampleRepo repository.SampleRepository,
	moodRepo repository.MoodRepository,
	summaryRepo repository.SummaryRepository,
	baselineRepo repository.BaselineRepository,
	userRepo repository.UserRepository,
	notifier NotificationService,
	workers int,
) AggregationService {
	if workers < 1 {
		workers = 1
	}
	return &aggregationService{
		sampleRepo:   sampleRepo,
		moodRepo:     moodRepo,
		summaryRepo:  summaryRepo,
		baselineRepo: baselineRepo,
		userRepo:     userRepo,
		notifier:     notifier,
		workers:      workers,
	}
}

func (s *aggregationService) AggregateDate(ctx context.Context, date time.Time) ([]domain.UserRisk, error) {
	tracer := otel.Tracer("pulsewatch-api/aggregation")
	ctx, span := tracer.Start(ctx, "AggregationService.AggregateDate",
		trace.WithAttributes(
			attribute.String("aggregation.date", date.UTC().Format("2006-01-02")),
		),
	)
	defer span.End()

	ids, err := s.userRepo.ListIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	// The day window is [00:00:00, 23:59:59] UTC, inclusive.
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24*time.Hour - time.Second)

	results := make([]domain.UserRisk, 0, len(ids))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for _, id := range ids {
		id := id
		g.Go(func() error {
			risk, err := s.aggregateUser(gctx, id, dayStart, dayEnd)
			if err != nil {
				// Per-user failures are logged and skipped; the batch
				// always attempts every user.
				log.Printf("aggregation: user %s failed for %s: %v", id, dayStart.Format("2006-01-02"), err)
				return nil
			}
			mu.Lock()
			results = append(results, domain.UserRisk{UserID: id, RiskLevel: risk})
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].UserID.String() < results[j].UserID.String()
	})

	span.SetAttributes(attribute.Int("aggregation.processed_count", len(results)))
	return results, nil
}

// aggregateUser recomputes and replaces one user's summary row for the
// window, then hands any amber/red outcome to the notification gate.
func (s *aggregationService) aggregateUser(ctx context.Context, userID uuid.UUID, dayStart, dayEnd time.Time) (*domain.RiskLevel, error) {
	samples, err := s.sampleRepo.ListRange(ctx, userID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	moods, err := s.moodRepo.ListRange(ctx, userID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	agg := aggregateDay(samples, moods)

	baseline, err := s.baselineRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Risk stays unset until the user has a baseline to deviate from.
	var risk *domain.RiskLevel
	if baseline != nil {
		level, _ := classify(agg, baseline)
		risk = &level
	}

	summary := &domain.DailySummary{
		UserID:        userID,
		Date:          dayStart,
		SleepHours:    agg.sleepHours,
		Steps:         agg.steps,
		ScreenUnlocks: agg.screenUnlocks,
		TypingScore:   agg.typingScore,
		MoodAvg:       agg.moodAvg,
		EnergyAvg:     agg.energyAvg,
		StressAvg:     agg.stressAvg,
		AnxietyAvg:    agg.anxietyAvg,
		RiskLevel:     risk,
	}
	if err := s.summaryRepo.Upsert(ctx, summary); err != nil {
		return nil, err
	}

	if risk != nil && *risk != domain.RiskGreen {
		// The summary write is authoritative; gate errors are reported
		// by the gate itself and never roll anything back.
		if err := s.notifier.OnRiskComputed(ctx, userID, *risk); err != nil {
			log.Printf("aggregation: notification gate failed for user %s: %v", userID, err)
		}
	}

	return risk, nil
}
