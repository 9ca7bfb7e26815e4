package care

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/geoquest/GeoQuest_Go/internal/domain"
	"github.com/geoquest/GeoQuest_Go/internal/repository"
)

// MockCareRepository is a mock implementation of repository.Care
type MockCareRepository struct {
	mock.Mock
}

func (m *MockCareRepository) GetPlantByID(ctx context.Context, plantID string) (*domain.Plant, error) {
	args := m.Called(ctx, plantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Plant), args.Error(1)
}

func (m *MockCareRepository) ListRecentCareLogs(ctx context.Context, plantID string, limit int) ([]domain.CareLog, error) {
	args := m.Called(ctx, plantID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CareLog), args.Error(1)
}

func (m *MockCareRepository) BeginTx(ctx context.Context) (repository.CareTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.CareTx), args.Error(1)
}

// MockCareTx is a mock implementation of repository.CareTx
type MockCareTx struct {
	mock.Mock
}

func (m *MockCareTx) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockCareTx) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockCareTx) UpdatePlantHealth(ctx context.Context, plantID string, healthScore int) error {
	return m.Called(ctx, plantID, healthScore).Error(0)
}

func (m *MockCareTx) GetCareTaskForUpdate(ctx context.Context, taskID, plantID string) (*domain.CareTask, error) {
	args := m.Called(ctx, taskID, plantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CareTask), args.Error(1)
}

func (m *MockCareTx) UpdateCareTaskSchedule(ctx context.Context, taskID string, completedAt, nextDueAt time.Time) error {
	return m.Called(ctx, taskID, completedAt, nextDueAt).Error(0)
}

func (m *MockCareTx) InsertCareLog(ctx context.Context, log *domain.CareLog) error {
	args := m.Called(ctx, log)
	if args.Error(0) == nil {
		log.ID = "log-1"
	}
	return args.Error(0)
}

func (m *MockCareTx) IncrementUserXP(ctx context.Context, userID string, amount int) (int64, error) {
	args := m.Called(ctx, userID, amount)
	return args.Get(0).(int64), args.Error(1)
}

// MockEnvironmentProvider is a mock implementation of EnvironmentProvider
type MockEnvironmentProvider struct {
	mock.Mock
}

func (m *MockEnvironmentProvider) Summary(ctx context.Context, latitude, longitude float64) (string, error) {
	args := m.Called(ctx, latitude, longitude)
	return args.String(0), args.Error(1)
}

// MockMediaArchiver is a mock implementation of MediaArchiver
type MockMediaArchiver struct {
	mock.Mock
}

func (m *MockMediaArchiver) Store(ctx context.Context, data []byte, fileName, folder string) (string, error) {
	args := m.Called(ctx, data, fileName, folder)
	return args.String(0), args.Error(1)
}

// MockPerceptionAdapter is a mock implementation of PerceptionAdapter
type MockPerceptionAdapter struct {
	mock.Mock
}

func (m *MockPerceptionAdapter) Assess(ctx context.Context, image []byte, mimeType, prompt string) (*domain.HealthAssessment, error) {
	args := m.Called(ctx, image, mimeType, prompt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HealthAssessment), args.Error(1)
}

// MockNotifier is a mock implementation of Notifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) NotifyCareVerified(ctx context.Context, plant domain.Plant, result domain.CareVerificationResult) error {
	return m.Called(ctx, plant, result).Error(0)
}

// environmentFunc adapts a function to EnvironmentProvider
type environmentFunc func(ctx context.Context, latitude, longitude float64) (string, error)

func (f environmentFunc) Summary(ctx context.Context, latitude, longitude float64) (string, error) {
	return f(ctx, latitude, longitude)
}

// perceptionFunc adapts a function to PerceptionAdapter
type perceptionFunc func(ctx context.Context, image []byte, mimeType, prompt string) (*domain.HealthAssessment, error)

func (f perceptionFunc) Assess(ctx context.Context, image []byte, mimeType, prompt string) (*domain.HealthAssessment, error) {
	return f(ctx, image, mimeType, prompt)
}
