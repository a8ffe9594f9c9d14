// Package notify delivers caution alerts to the external notification
// channel. Dispatch is best-effort: the gate logs failures and moves on.
package notify

import (
	"context"
	"log"

	"github.com/google/uuid"
)

// Dispatcher sends a caution notification to a user.
type Dispatcher interface {
	Send(ctx context.Context, userID uuid.UUID, message string) error
}

// LogDispatcher writes notifications to the process log. Used when no
// webhook is configured.
type LogDispatcher struct{}

func NewLogDispatcher() *LogDispatcher {
	return &LogDispatcher{}
}

func (d *LogDispatcher) Send(ctx context.Context, userID uuid.UUID, message string) error {
	log.Printf("notification for user %s: %s", userID, message)
	return nil
}
