package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pulsewatch/pulsewatch/internal/domain"
)

func TestInsightsService_Generate(t *testing.T) {
	userID := uuid.New()
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("unknown user returns not found", func(t *testing.T) {
		svc := NewInsightsService(NewMockInsightsLLM(), NewMockSummaryRepository(), NewMockBaselineRepository(), NewMockUserRepository())

		_, err := svc.Generate(context.Background(), userID)
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("Generate() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("recent summaries and baseline reach the LLM", func(t *testing.T) {
		userRepo := NewMockUserRepository()
		userRepo.users[userID] = &domain.User{ID: userID, Timezone: "UTC"}
		summaryRepo := NewMockSummaryRepository()
		for i := 0; i < 3; i++ {
			summaryRepo.listResult = append(summaryRepo.listResult, summaryOn(userID, day.AddDate(0, 0, -i)))
		}
		baselineRepo := NewMockBaselineRepository()
		baselineRepo.profiles[userID] = baselineFor(t, 7, 1, 8000, 1500, 60, 10)
		llmClient := NewMockInsightsLLM()
		llmClient.output = &domain.LLMInsightsOutput{Summary: "Steady fortnight."}

		svc := NewInsightsService(llmClient, summaryRepo, baselineRepo, userRepo)
		resp, err := svc.Generate(context.Background(), userID)
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		if resp.Insights.Summary != "Steady fortnight." {
			t.Errorf("Summary = %q, want LLM output", resp.Insights.Summary)
		}
		if llmClient.lastContext == nil {
			t.Fatal("LLM was not called")
		}
		if len(llmClient.lastContext.Summaries) != 3 {
			t.Errorf("LLM saw %d summaries, want 3", len(llmClient.lastContext.Summaries))
		}
		if llmClient.lastContext.Baseline == nil {
			t.Error("LLM context is missing the baseline")
		}
		if llmClient.lastContext.WindowDays != InsightsWindowDays {
			t.Errorf("WindowDays = %d, want %d", llmClient.lastContext.WindowDays, InsightsWindowDays)
		}
	})

	t.Run("no baseline is passed through as absent", func(t *testing.T) {
		userRepo := NewMockUserRepository()
		userRepo.users[userID] = &domain.User{ID: userID, Timezone: "UTC"}
		llmClient := NewMockInsightsLLM()
		llmClient.output = &domain.LLMInsightsOutput{Summary: "Early days."}

		svc := NewInsightsService(llmClient, NewMockSummaryRepository(), NewMockBaselineRepository(), userRepo)
		if _, err := svc.Generate(context.Background(), userID); err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		if llmClient.lastContext.Baseline != nil {
			t.Error("LLM context has a baseline, want none")
		}
	})

	t.Run("LLM errors propagate", func(t *testing.T) {
		userRepo := NewMockUserRepository()
		userRepo.users[userID] = &domain.User{ID: userID, Timezone: "UTC"}
		llmClient := NewMockInsightsLLM()
		llmClient.err = errors.New("rate limited")

		svc := NewInsightsService(llmClient, NewMockSummaryRepository(), NewMockBaselineRepository(), userRepo)
		if _, err := svc.Generate(context.Background(), userID); err == nil {
			t.Error("Generate() error = nil, want LLM error")
		}
	})
}
