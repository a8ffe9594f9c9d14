package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pulsewatch/pulsewatch/internal/domain"
	"github.com/pulsewatch/pulsewatch/internal/llm"
	"github.com/pulsewatch/pulsewatch/internal/repository"
)

// InsightsWindowDays is how many trailing daily summaries feed the
// insights narrative.
const InsightsWindowDays = 14

// InsightsService generates a narrative over a user's recent summaries.
type InsightsService interface {
	Generate(ctx context.Context, userID uuid.UUID) (*domain.InsightsResponse, error)
}

type insightsService struct {
	llmClient    llm.InsightsLLM
	summaryRepo  repository.SummaryRepository
	baselineRepo repository.BaselineRepository
	userRepo     repository.UserRepository
}

// NewInsightsService creates a new InsightsService.
func NewInsightsService(
	llmClient llm.InsightsLLM,
	summaryRepo repository.SummaryRepository,
	baselineRepo repository.BaselineRepository,
	userRepo repository.UserRepository,
) InsightsService {
	return &insightsService{
		llmClient:    llmClient,
		summaryRepo:  summaryRepo,
		baselineRepo: baselineRepo,
		userRepo:     userRepo,
	}
}

func (s *insightsService) Generate(ctx context.Context, userID uuid.UUID) (*domain.InsightsResponse, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	summaries, err := s.summaryRepo.ListRecent(ctx, userID, InsightsWindowDays)
	if err != nil {
		return nil, err
	}

	baseline, err := s.baselineRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	insightsCtx := &domain.InsightsContext{
		Summaries:  make([]domain.SummaryResponse, len(summaries)),
		WindowDays: InsightsWindowDays,
	}
	for i, summary := range summaries {
		insightsCtx.Summaries[i] = summary.ToResponse()
	}
	if baseline != nil {
		resp := baseline.ToResponse()
		insightsCtx.Baseline = &resp
	}

	llmOutput, err := s.llmClient.GenerateInsights(ctx, insightsCtx)
	if err != nil {
		return nil, err
	}

	return &domain.InsightsResponse{
		Insights: *llmOutput,
		Context:  *insightsCtx,
	}, nil
}
