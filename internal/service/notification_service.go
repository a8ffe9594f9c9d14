package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/pulsewatch/pulsewatch/internal/domain"
	"github.com/pulsewatch/pulsewatch/internal/notify"
	"github.com/pulsewatch/pulsewatch/internal/repository"
)

// NotificationService gates caution alerts on the user's snooze state.
// Per user the gate is a two-state machine: Active dispatches, Snoozed
// suppresses until the stored expiry passes. Expiry is lazy: the flag
// is cleared the next time a risk event is evaluated, not by a timer.
type NotificationService interface {
	// OnRiskComputed reacts to a freshly written risk level. Green
	// never notifies. Returns an error only for store failures;
	// dispatch failures are logged and swallowed.
	OnRiskComputed(ctx context.Context, userID uuid.UUID, risk domain.RiskLevel) error
}

type notificationService struct {
	userRepo   repository.UserRepository
	dispatcher notify.Dispatcher

	// now is time.Now in production; tests pin it.
	now func() time.Time
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(userRepo repository.UserRepository, dispatcher notify.Dispatcher) NotificationService {
	return &notificationService{
		userRepo:   userRepo,
		dispatcher: dispatcher,
		now:        time.Now,
	}
}

func (s *notificationService) OnRiskComputed(ctx context.Context, userID uuid.UUID, risk domain.RiskLevel) error {
	if risk == domain.RiskGreen {
		return nil
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	now := s.now().UTC()
	if user.AlertSnoozeUntil != nil {
		if user.AlertSnoozeUntil.After(now) {
			log.Printf("notification: user %s is snoozed until %s, suppressing %s alert",
				userID, user.AlertSnoozeUntil.Format(time.RFC3339), risk)
			return nil
		}
		// Snooze expired: clear it and fall through to dispatch.
		if err := s.userRepo.UpdateSnooze(ctx, userID, nil); err != nil {
			return err
		}
	}

	if err := s.dispatcher.Send(ctx, userID, cautionMessage(risk)); err != nil {
		// Best-effort: the summary row stays authoritative either way.
		log.Printf("notification: dispatch failed for user %s: %v", userID, err)
	}
	return nil
}

func cautionMessage(risk domain.RiskLevel) string {
	switch risk {
	case domain.RiskRed:
		return "Your recent patterns look quite different from your usual baseline. It may be worth checking in with yourself today."
	default:
		return fmt.Sprintf("Some of today's patterns differ from your usual baseline (%s).", risk)
	}
}
