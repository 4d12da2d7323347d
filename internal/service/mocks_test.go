package service

import (
	"context"
	"time"

	"umatter/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockQuestionRepository ---
type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) GetAllQuestions(ctx context.Context) ([]domain.Question, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Question), args.Error(1)
}

func (m *MockQuestionRepository) GetQuestionsByCategory(ctx context.Context, category domain.Category) ([]domain.Question, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Question), args.Error(1)
}

func (m *MockQuestionRepository) SaveQuestion(ctx context.Context, question *domain.Question) error {
	args := m.Called(ctx, question)
	return args.Error(0)
}

// --- MockResultRepository ---
type MockResultRepository struct {
	mock.Mock
}

func (m *MockResultRepository) UserExists(ctx context.Context, userID string) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockResultRepository) UpsertAnswer(ctx context.Context, userID string, questionID int64, answer domain.AnswerValue) error {
	args := m.Called(ctx, userID, questionID, answer)
	return args.Error(0)
}

func (m *MockResultRepository) CreateScore(ctx context.Context, userID string, record domain.SeverityRecord) error {
	args := m.Called(ctx, userID, record)
	return args.Error(0)
}

func (m *MockResultRepository) UpsertDominantTrauma(ctx context.Context, userID string, dominant domain.DominantTrauma) error {
	args := m.Called(ctx, userID, dominant)
	return args.Error(0)
}

func (m *MockResultRepository) GetDominantTrauma(ctx context.Context, userID string) (*domain.DominantTrauma, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DominantTrauma), args.Error(1)
}

// --- MockMoodRepository ---
type MockMoodRepository struct {
	mock.Mock
}

func (m *MockMoodRepository) SaveMoodLog(ctx context.Context, log *domain.MoodLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockMoodRepository) GetMoodLogsSince(ctx context.Context, userID string, since time.Time) ([]domain.MoodLog, error) {
	args := m.Called(ctx, userID, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MoodLog), args.Error(1)
}

func (m *MockMoodRepository) SaveAlert(ctx context.Context, alert *domain.Alert) error {
	args := m.Called(ctx, alert)
	return args.Error(0)
}

func (m *MockMoodRepository) GetUnresolvedAlerts(ctx context.Context, userID string) ([]domain.Alert, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Alert), args.Error(1)
}

// --- MockRecoveryRepository ---
type MockRecoveryRepository struct {
	mock.Mock
}

func (m *MockRecoveryRepository) GetActiveProgramByCategory(ctx context.Context, category domain.Category) (*domain.RecoveryProgram, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecoveryProgram), args.Error(1)
}

func (m *MockRecoveryRepository) GetStepsByProgram(ctx context.Context, programID string) ([]domain.RecoveryStep, error) {
	args := m.Called(ctx, programID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RecoveryStep), args.Error(1)
}

func (m *MockRecoveryRepository) GetStepByID(ctx context.Context, stepID string) (*domain.RecoveryStep, error) {
	args := m.Called(ctx, stepID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecoveryStep), args.Error(1)
}

func (m *MockRecoveryRepository) GetProgress(ctx context.Context, userID, programID string) ([]domain.StepProgress, error) {
	args := m.Called(ctx, userID, programID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StepProgress), args.Error(1)
}

func (m *MockRecoveryRepository) UpsertProgress(ctx context.Context, progress *domain.StepProgress) error {
	args := m.Called(ctx, progress)
	return args.Error(0)
}

// --- MockContentRepository ---
type MockContentRepository struct {
	mock.Mock
}

func (m *MockContentRepository) GetActiveSchemes(ctx context.Context, category *domain.Category) ([]domain.GovtScheme, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GovtScheme), args.Error(1)
}

func (m *MockContentRepository) GetHeritageContent(ctx context.Context, category domain.Category) ([]domain.HeritageContent, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HeritageContent), args.Error(1)
}

func (m *MockContentRepository) GetModernContent(ctx context.Context, category domain.Category) ([]domain.ModernContent, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ModernContent), args.Error(1)
}

// --- MockCache ---
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
