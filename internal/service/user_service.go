package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pulsewatch/pulsewatch/internal/domain"
	"github.com/pulsewatch/pulsewatch/internal/repository"
)

type UserService interface {
	Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	// UpdateSnooze is the settings surface's write path for the alert
	// snooze window; a nil snooze_until clears it.
	UpdateSnooze(ctx context.Context, id uuid.UUID, req *domain.UpdateSnoozeRequest) (*domain.User, error)
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error) {
	user := &domain.User{
		Timezone: req.Timezone,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *userService) UpdateSnooze(ctx context.Context, id uuid.UUID, req *domain.UpdateSnoozeRequest) (*domain.User, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateSnooze(ctx, id, req.SnoozeUntil); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}
