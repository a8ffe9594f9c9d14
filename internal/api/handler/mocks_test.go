package handler

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pulsewatch/pulsewatch/internal/domain"
)

// MockUserService is a mock implementation of UserService
type MockUserService struct {
	createFunc       func(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error)
	getByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	updateSnoozeFunc func(ctx context.Context, id uuid.UUID, req *domain.UpdateSnoozeRequest) (*domain.User, error)
}

func (m *MockUserService) Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return &domain.User{ID: uuid.New(), Timezone: req.Timezone, CreatedAt: time.Now()}, nil
}

func (m *MockUserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *MockUserService) UpdateSnooze(ctx context.Context, id uuid.UUID, req *domain.UpdateSnoozeRequest) (*domain.User, error) {
	if m.updateSnoozeFunc != nil {
		return m.updateSnoozeFunc(ctx, id, req)
	}
	return &domain.User{ID: id, Timezone: "UTC", AlertSnoozeUntil: req.SnoozeUntil}, nil
}

// MockIngestionService is a mock implementation of IngestionService
type MockIngestionService struct {
	syncFunc func(ctx context.Context, userID *uuid.UUID) (*domain.SyncResult, error)
}

func (m *MockIngestionService) Sync(ctx context.Context, userID *uuid.UUID) (*domain.SyncResult, error) {
	if m.syncFunc != nil {
		return m.syncFunc(ctx, userID)
	}
	return &domain.SyncResult{FailedUsers: []uuid.UUID{}}, nil
}

// MockAggregationService is a mock implementation of AggregationService
type MockAggregationService struct {
	aggregateFunc func(ctx context.Context, date time.Time) ([]domain.UserRisk, error)
}

func (m *MockAggregationService) AggregateDate(ctx context.Context, date time.Time) ([]domain.UserRisk, error) {
	if m.aggregateFunc != nil {
		return m.aggregateFunc(ctx, date)
	}
	return []domain.UserRisk{}, nil
}

// MockBaselineService is a mock implementation of BaselineService
type MockBaselineService struct {
	computeFunc func(ctx context.Context, userID *uuid.UUID) (*domain.BaselineResult, error)
}

func (m *MockBaselineService) Compute(ctx context.Context, userID *uuid.UUID) (*domain.BaselineResult, error) {
	if m.computeFunc != nil {
		return m.computeFunc(ctx, userID)
	}
	return &domain.BaselineResult{}, nil
}

// MockSummaryService is a mock implementation of SummaryService
type MockSummaryService struct {
	listFunc        func(ctx context.Context, userID uuid.UUID, filter domain.SummaryFilter) (*domain.SummaryListResponse, error)
	getBaselineFunc func(ctx context.Context, userID uuid.UUID) (*domain.BaselineProfile, error)
}

func (m *MockSummaryService) List(ctx context.Context, userID uuid.UUID, filter domain.SummaryFilter) (*domain.SummaryListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, filter)
	}
	return &domain.SummaryListResponse{Data: []domain.SummaryResponse{}}, nil
}

func (m *MockSummaryService) GetBaseline(ctx context.Context, userID uuid.UUID) (*domain.BaselineProfile, error) {
	if m.getBaselineFunc != nil {
		return m.getBaselineFunc(ctx, userID)
	}
	return nil, domain.ErrNotFound
}

// MockInsightsService is a mock implementation of InsightsService
type MockInsightsService struct {
	generateFunc func(ctx context.Context, userID uuid.UUID) (*domain.InsightsResponse, error)
}

func (m *MockInsightsService) Generate(ctx context.Context, userID uuid.UUID) (*domain.InsightsResponse, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, userID)
	}
	return &domain.InsightsResponse{}, nil
}
