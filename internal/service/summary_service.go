package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pulsewatch/pulsewatch/internal/domain"
	"github.com/pulsewatch/pulsewatch/internal/repository"
	"github.com/pulsewatch/pulsewatch/pkg/pagination"
)

// SummaryService is the read path over daily summaries for the
// presentation layer.
type SummaryService interface {
	List(ctx context.Context, userID uuid.UUID, filter domain.SummaryFilter) (*domain.SummaryListResponse, error)
	GetBaseline(ctx context.Context, userID uuid.UUID) (*domain.BaselineProfile, error)
}

type summaryService struct {
	summaryRepo  repository.SummaryRepository
	baselineRepo repository.BaselineRepository
	userRepo     repository.UserRepository
}

func NewSummaryService(
	summaryRepo repository.SummaryRepository,
	baselineRepo repository.BaselineRepository,
	userRepo repository.UserRepository,
) SummaryService {
	return &summaryService{
		summaryRepo:  summaryRepo,
		baselineRepo: baselineRepo,
		userRepo:     userRepo,
	}
}

func (s *summaryService) List(ctx context.Context, userID uuid.UUID, filter domain.SummaryFilter) (*domain.SummaryListResponse, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	summaries, err := s.summaryRepo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(summaries) > limit

	if hasMore {
		summaries = summaries[:limit]
	}

	response := &domain.SummaryListResponse{
		Data: make([]domain.SummaryResponse, len(summaries)),
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}

	for i, summary := range summaries {
		response.Data[i] = summary.ToResponse()
	}

	if hasMore && len(summaries) > 0 {
		last := summaries[len(summaries)-1]
		cursor := &pagination.Cursor{
			ID:   last.ID,
			Date: last.Date,
		}
		response.Pagination.NextCursor = cursor.Encode()
	}

	return response, nil
}

func (s *summaryService) GetBaseline(ctx context.Context, userID uuid.UUID) (*domain.BaselineProfile, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	baseline, err := s.baselineRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if baseline == nil {
		return nil, domain.ErrNotFound
	}
	return baseline, nil
}
