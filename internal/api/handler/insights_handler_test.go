package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/pulsewatch/pulsewatch/internal/domain"
	"github.com/pulsewatch/pulsewatch/internal/llm"
)

func TestInsightsHandler_GetInsights(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name           string
		userID         string
		mockService    *MockInsightsService
		wantStatusCode int
		check          func(t *testing.T, body []byte)
	}{
		{
			name:   "insights are returned",
			userID: userID.String(),
			mockService: &MockInsightsService{
				generateFunc: func(ctx context.Context, id uuid.UUID) (*domain.InsightsResponse, error) {
					return &domain.InsightsResponse{
						Insights: domain.LLMInsightsOutput{
							Summary:      "Sleep has been steady over the past two weeks.",
							Observations: []string{"Step counts dipped on weekends."},
							Guidance:     []string{"A short walk after lunch could smooth out the dip."},
						},
					}, nil
				},
			},
			wantStatusCode: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var resp domain.InsightsResponse
				if err := json.Unmarshal(body, &resp); err != nil {
					t.Fatalf("response did not decode: %v", err)
				}
				if resp.Insights.Summary == "" {
					t.Error("summary is empty")
				}
			},
		},
		{
			name:   "unknown user",
			userID: uuid.New().String(),
			mockService: &MockInsightsService{
				generateFunc: func(ctx context.Context, id uuid.UUID) (*domain.InsightsResponse, error) {
					return nil, domain.ErrNotFound
				},
			},
			wantStatusCode: http.StatusNotFound,
		},
		{
			name:   "LLM not configured",
			userID: userID.String(),
			mockService: &MockInsightsService{
				generateFunc: func(ctx context.Context, id uuid.UUID) (*domain.InsightsResponse, error) {
					return nil, llm.ErrOpenAIUnavailable
				},
			},
			wantStatusCode: http.StatusServiceUnavailable,
		},
		{
			name:   "LLM request failure",
			userID: userID.String(),
			mockService: &MockInsightsService{
				generateFunc: func(ctx context.Context, id uuid.UUID) (*domain.InsightsResponse, error) {
					return nil, llm.ErrOpenAIRequest
				},
			},
			wantStatusCode: http.StatusBadGateway,
		},
		{
			name:           "invalid UUID",
			userID:         "not-a-uuid",
			mockService:    &MockInsightsService{},
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewInsightsHandler(tt.mockService)

			req := requestWithUserID(http.MethodGet, "/v1/users/"+tt.userID+"/insights", tt.userID, nil)
			rec := httptest.NewRecorder()

			handler.GetInsights(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("GetInsights() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
			if tt.check != nil {
				tt.check(t, rec.Body.Bytes())
			}
		})
	}
}
