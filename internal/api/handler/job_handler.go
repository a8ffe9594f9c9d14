package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/pulsewatch/pulsewatch/internal/api/validation"
	"github.com/pulsewatch/pulsewatch/internal/domain"
	"github.com/pulsewatch/pulsewatch/internal/service"
	"github.com/pulsewatch/pulsewatch/pkg/problem"
)

// JobHandler exposes the batch pipeline stages to the external
// scheduler. Each endpoint runs one stage synchronously and reports
// its counts; a store-level failure fails the whole invocation and the
// scheduler retries the run.
type JobHandler struct {
	ingestion   service.IngestionService
	aggregation service.AggregationService
	baseline    service.BaselineService
}

func NewJobHandler(
	ingestion service.IngestionService,
	aggregation service.AggregationService,
	baseline service.BaselineService,
) *JobHandler {
	return &JobHandler{
		ingestion:   ingestion,
		aggregation: aggregation,
		baseline:    baseline,
	}
}

// Ingest handles POST /v1/jobs/ingest
// @Summary Run sensor ingestion
// @Description Pull recent readings from the sensor sources and upsert them as samples. Scope to one user with user_id, otherwise all users are synced. Users that fail after retries appear in failed_users without failing the run.
// @Tags jobs
// @Accept json
// @Produce json
// @Param request body domain.IngestJobRequest false "Optional scope"
// @Success 200 {object} domain.IngestJobResponse
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 500 {object} domain.JobFailureResponse "Sample store unreachable"
// @Router /jobs/ingest [post]
func (h *JobHandler) Ingest(w http.ResponseWriter, r *http.Request) {
	var req domain.IngestJobRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			problem.BadRequest("Invalid JSON body").Write(w)
			return
		}
	}

	result, err := h.ingestion.Sync(r.Context(), req.UserID)
	if err != nil {
		writeJobFailure(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domain.IngestJobResponse{
		Success:     true,
		Message:     fmt.Sprintf("synced %d samples, %d users failed", result.SyncedCount, len(result.FailedUsers)),
		SyncedCount: result.SyncedCount,
		FailedUsers: result.FailedUsers,
		Timestamp:   time.Now().UTC(),
	})
}

// Aggregate handles POST /v1/jobs/aggregate
// @Summary Run daily aggregation
// @Description Roll up one calendar date's samples and mood entries into a DailySummary per user and classify each day's risk. Safe to re-run: rows are replaced, not accumulated.
// @Tags jobs
// @Accept json
// @Produce json
// @Param request body domain.AggregateJobRequest true "Date to aggregate"
// @Success 200 {object} domain.AggregateJobResponse
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 422 {object} problem.Problem "Invalid date"
// @Failure 500 {object} domain.JobFailureResponse "Sample store unreachable"
// @Router /jobs/aggregate [post]
func (h *JobHandler) Aggregate(w http.ResponseWriter, r *http.Request) {
	var req domain.AggregateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		problem.BadRequest("Invalid date format").Write(w)
		return
	}

	results, err := h.aggregation.AggregateDate(r.Context(), date)
	if err != nil {
		writeJobFailure(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domain.AggregateJobResponse{
		Success:        true,
		Message:        fmt.Sprintf("aggregated %d users for %s", len(results), req.Date),
		ProcessedCount: len(results),
		Results:        results,
		Timestamp:      time.Now().UTC(),
	})
}

// Baseline handles POST /v1/jobs/baseline
// @Summary Run baseline computation
// @Description Learn baselines for users with enough history who do not have one yet. Scope to one user with user_id. Users with under 7 days of history in every metric are skipped, not failed.
// @Tags jobs
// @Accept json
// @Produce json
// @Param request body domain.BaselineJobRequest false "Optional scope"
// @Success 200 {object} domain.BaselineJobResponse
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 500 {object} domain.JobFailureResponse "Sample store unreachable"
// @Router /jobs/baseline [post]
func (h *JobHandler) Baseline(w http.ResponseWriter, r *http.Request) {
	var req domain.BaselineJobRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			problem.BadRequest("Invalid JSON body").Write(w)
			return
		}
	}

	result, err := h.baseline.Compute(r.Context(), req.UserID)
	if err != nil {
		writeJobFailure(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domain.BaselineJobResponse{
		Success:       true,
		Message:       fmt.Sprintf("computed %d baselines, skipped %d users", result.ComputedCount, result.SkippedCount),
		ComputedCount: result.ComputedCount,
		SkippedCount:  result.SkippedCount,
		Timestamp:     time.Now().UTC(),
	})
}

func writeJobFailure(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusInternalServerError, domain.JobFailureResponse{
		Success:   false,
		Error:     err.Error(),
		Timestamp: time.Now().UTC(),
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
