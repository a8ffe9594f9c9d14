package domain

import (
	"time"

	"github.com/google/uuid"
)

// IngestJobRequest is the trigger payload for an ingestion run.
// @Description Optional user_id scopes the run to one user; otherwise all users are synced.
type IngestJobRequest struct {
	UserID *uuid.UUID `json:"user_id,omitempty"`
}

// AggregateJobRequest is the trigger payload for a daily aggregation run.
// @Description The calendar date to aggregate, in YYYY-MM-DD form (UTC).
type AggregateJobRequest struct {
	Date string `json:"date" validate:"required,dateonly" example:"2024-01-15"`
}

// BaselineJobRequest is the trigger payload for a baseline computation run.
// @Description Optional user_id scopes the run to one user; otherwise all eligible users are processed.
type BaselineJobRequest struct {
	UserID *uuid.UUID `json:"user_id,omitempty"`
}

// SyncResult summarizes one ingestion run.
type SyncResult struct {
	SyncedCount int
	FailedUsers []uuid.UUID
}

// UserRisk pairs a user with the risk level computed for one date.
type UserRisk struct {
	UserID    uuid.UUID  `json:"user_id"`
	RiskLevel *RiskLevel `json:"risk_level"`
}

// BaselineResult summarizes one baseline computation run.
type BaselineResult struct {
	ComputedCount int
	SkippedCount  int
}

// IngestJobResponse is returned by the ingestion trigger endpoint.
// @Description Per-run ingestion counts; failed_users lists users skipped after retry exhaustion.
type IngestJobResponse struct {
	Success     bool        `json:"success"`
	Message     string      `json:"message"`
	SyncedCount int         `json:"synced_count"`
	FailedUsers []uuid.UUID `json:"failed_users"`
	Timestamp   time.Time   `json:"timestamp"`
}

// AggregateJobResponse is returned by the aggregation trigger endpoint.
// @Description Per-run aggregation counts and the per-user risk results.
type AggregateJobResponse struct {
	Success        bool       `json:"success"`
	Message        string     `json:"message"`
	ProcessedCount int        `json:"processed_count"`
	Results        []UserRisk `json:"results"`
	Timestamp      time.Time  `json:"timestamp"`
}

// BaselineJobResponse is returned by the baseline trigger endpoint.
// @Description Counts of users whose baseline was computed vs. skipped for insufficient history.
type BaselineJobResponse struct {
	Success       bool      `json:"success"`
	Message       string    `json:"message"`
	ComputedCount int       `json:"computed_count"`
	SkippedCount  int       `json:"skipped_count"`
	Timestamp     time.Time `json:"timestamp"`
}

// JobFailureResponse is returned when a whole run fails (store unreachable).
// @Description Fatal run failure; the external scheduler is expected to retry the run.
type JobFailureResponse struct {
	Success   bool      `json:"success"`
	Error     string    `json:"error"`
	Timestamp time.Time `json:"timestamp"`
}
