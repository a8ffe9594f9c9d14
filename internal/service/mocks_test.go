package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pulsewatch/pulsewatch/internal/domain"
	"github.com/pulsewatch/pulsewatch/internal/sensor"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	users      map[uuid.UUID]*domain.User
	err        error
	listIDsErr error

	snoozeUpdates map[uuid.UUID]*time.Time
	readyUpdates  map[uuid.UUID]bool
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users:         make(map[uuid.UUID]*domain.User),
		snoozeUpdates: make(map[uuid.UUID]*time.Time),
		readyUpdates:  make(map[uuid.UUID]bool),
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.users[user.ID]; ok {
		return domain.ErrConflict
	}
	user.CreatedAt = time.Now()
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (m *MockUserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.users[id]
	return ok, nil
}

func (m *MockUserRepository) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	if m.listIDsErr != nil {
		return nil, m.listIDsErr
	}
	if m.err != nil {
		return nil, m.err
	}
	ids := make([]uuid.UUID, 0, len(m.users))
	for id := range m.users {
		ids = append(ids, id)
	}
	return ids, nil
}

func (m *MockUserRepository) SetBaselineReady(ctx context.Context, id uuid.UUID, ready bool) error {
	if m.err != nil {
		return m.err
	}
	user, ok := m.users[id]
	if !ok {
		return domain.ErrNotFound
	}
	user.BaselineReady = ready
	m.readyUpdates[id] = ready
	return nil
}

func (m *MockUserRepository) UpdateSnooze(ctx context.Context, id uuid.UUID, until *time.Time) error {
	if m.err != nil {
		return m.err
	}
	user, ok := m.users[id]
	if !ok {
		return domain.ErrNotFound
	}
	user.AlertSnoozeUntil = until
	m.snoozeUpdates[id] = until
	return nil
}

// MockSampleRepository is a mock implementation of SampleRepository.
// Guarded by a mutex because the ingestion workers call it concurrently.
type MockSampleRepository struct {
	mu      sync.Mutex
	samples []domain.Sample
	err     error

	// failUserID makes every Upsert containing that user's samples fail.
	failUserID *uuid.UUID
	// listFailUserID makes ListRange fail for that user only.
	listFailUserID *uuid.UUID
	// failFirst makes the first n Upsert calls fail, then succeed.
	failFirst   int
	upsertCalls int
}

func NewMockSampleRepository() *MockSampleRepository {
	return &MockSampleRepository{}
}

func (m *MockSampleRepository) Upsert(ctx context.Context, samples []domain.Sample) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.upsertCalls++
	if m.err != nil {
		return m.err
	}
	if m.failUserID != nil {
		for _, s := range samples {
			if s.UserID == *m.failUserID {
				return domain.ErrStoreUnavailable
			}
		}
	}
	if m.upsertCalls <= m.failFirst {
		return domain.ErrStoreUnavailable
	}
	for _, s := range samples {
		m.samples = upsertSample(m.samples, s)
	}
	return nil
}

func upsertSample(existing []domain.Sample, s domain.Sample) []domain.Sample {
	for i, e := range existing {
		if e.UserID == s.UserID && e.MetricType == s.MetricType && e.Timestamp.Equal(s.Timestamp) {
			existing[i].MetricValue = s.MetricValue
			return existing
		}
	}
	return append(existing, s)
}

func (m *MockSampleRepository) ListRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.Sample, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	if m.listFailUserID != nil && userID == *m.listFailUserID {
		return nil, domain.ErrStoreUnavailable
	}
	var result []domain.Sample
	for _, s := range m.samples {
		if s.UserID != userID {
			continue
		}
		if s.Timestamp.Before(from) || s.Timestamp.After(to) {
			continue
		}
		result = append(result, s)
	}
	return result, nil
}

// MockMoodRepository is a mock implementation of MoodRepository
type MockMoodRepository struct {
	entries []domain.MoodEntry
	err     error
}

func NewMockMoodRepository() *MockMoodRepository {
	return &MockMoodRepository{}
}

func (m *MockMoodRepository) Create(ctx context.Context, entry *domain.MoodEntry) error {
	if m.err != nil {
		return m.err
	}
	m.entries = append(m.entries, *entry)
	return nil
}

func (m *MockMoodRepository) ListRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.MoodEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.MoodEntry
	for _, e := range m.entries {
		if e.UserID != userID {
			continue
		}
		if e.CreatedAt.Before(from) || e.CreatedAt.After(to) {
			continue
		}
		result = append(result, e)
	}
	return result, nil
}

// MockSummaryRepository is a mock implementation of SummaryRepository.
// Guarded by a mutex because the aggregation workers call it concurrently.
type MockSummaryRepository struct {
	mu          sync.Mutex
	summaries   map[string]*domain.DailySummary
	listResult  []domain.DailySummary
	err         error
	upsertCalls int
}

func NewMockSummaryRepository() *MockSummaryRepository {
	return &MockSummaryRepository{
		summaries: make(map[string]*domain.DailySummary),
	}
}

func summaryKey(userID uuid.UUID, date time.Time) string {
	return userID.String() + ":" + date.UTC().Format("2006-01-02")
}

func (m *MockSummaryRepository) Upsert(ctx context.Context, summary *domain.DailySummary) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.upsertCalls++
	if m.err != nil {
		return m.err
	}
	if summary.ID == uuid.Nil {
		summary.ID = uuid.New()
	}
	key := summaryKey(summary.UserID, summary.Date)
	if existing, ok := m.summaries[key]; ok {
		summary.ID = existing.ID
	}
	m.summaries[key] = summary
	return nil
}

func (m *MockSummaryRepository) GetByUserDate(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.DailySummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	summary, ok := m.summaries[summaryKey(userID, date)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return summary, nil
}

func (m *MockSummaryRepository) List(ctx context.Context, userID uuid.UUID, filter domain.SummaryFilter) ([]domain.DailySummary, error) {
	if m.err != nil {
		return nil, m.err
	}
	result := make([]domain.DailySummary, len(m.listResult))
	copy(result, m.listResult)
	return result, nil
}

func (m *MockSummaryRepository) ListRecent(ctx context.Context, userID uuid.UUID, n int) ([]domain.DailySummary, error) {
	if m.err != nil {
		return nil, m.err
	}
	result := make([]domain.DailySummary, len(m.listResult))
	copy(result, m.listResult)
	if len(result) > n {
		result = result[:n]
	}
	return result, nil
}

// MockBaselineRepository is a mock implementation of BaselineRepository
type MockBaselineRepository struct {
	profiles map[uuid.UUID]*domain.BaselineProfile
	err      error
}

func NewMockBaselineRepository() *MockBaselineRepository {
	return &MockBaselineRepository{
		profiles: make(map[uuid.UUID]*domain.BaselineProfile),
	}
}

func (m *MockBaselineRepository) GetByUser(ctx context.Context, userID uuid.UUID) (*domain.BaselineProfile, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.profiles[userID], nil
}

func (m *MockBaselineRepository) Upsert(ctx context.Context, profile *domain.BaselineProfile) error {
	if m.err != nil {
		return m.err
	}
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	m.profiles[profile.UserID] = profile
	return nil
}

// MockSensorClient is a mock implementation of sensor.Client
type MockSensorClient struct {
	sleep  []sensor.Reading
	steps  []sensor.Reading
	screen []sensor.Reading
	err    error

	// failUserID makes every fetch for that user fail.
	failUserID *uuid.UUID
}

func NewMockSensorClient() *MockSensorClient {
	return &MockSensorClient{}
}

func (m *MockSensorClient) fetch(userID uuid.UUID, readings []sensor.Reading) ([]sensor.Reading, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.failUserID != nil && userID == *m.failUserID {
		return nil, domain.ErrStoreUnavailable
	}
	return readings, nil
}

func (m *MockSensorClient) SleepReadings(ctx context.Context, userID uuid.UUID, now time.Time) ([]sensor.Reading, error) {
	return m.fetch(userID, m.sleep)
}

func (m *MockSensorClient) StepReadings(ctx context.Context, userID uuid.UUID, now time.Time) ([]sensor.Reading, error) {
	return m.fetch(userID, m.steps)
}

func (m *MockSensorClient) ScreenReadings(ctx context.Context, userID uuid.UUID, now time.Time) ([]sensor.Reading, error) {
	return m.fetch(userID, m.screen)
}

// MockDispatcher is a mock implementation of notify.Dispatcher
type MockDispatcher struct {
	mu   sync.Mutex
	sent []sentAlert
	err  error
}

type sentAlert struct {
	userID  uuid.UUID
	message string
}

func NewMockDispatcher() *MockDispatcher {
	return &MockDispatcher{}
}

func (m *MockDispatcher) Send(ctx context.Context, userID uuid.UUID, message string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentAlert{userID: userID, message: message})
	return nil
}

// MockInsightsLLM is a mock implementation of llm.InsightsLLM
type MockInsightsLLM struct {
	output      *domain.LLMInsightsOutput
	err         error
	lastContext *domain.InsightsContext
}

func NewMockInsightsLLM() *MockInsightsLLM {
	return &MockInsightsLLM{}
}

func (m *MockInsightsLLM) GenerateInsights(ctx context.Context, insightsCtx *domain.InsightsContext) (*domain.LLMInsightsOutput, error) {
	m.lastContext = insightsCtx
	if m.err != nil {
		return nil, m.err
	}
	return m.output, nil
}
