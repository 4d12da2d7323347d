package service

import (
	"context"
	"testing"
	"time"

	"umatter/internal/domain"
	"umatter/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func moodLogs(scores ...int) []domain.MoodLog {
	logs := make([]domain.MoodLog, 0, len(scores))
	now := time.Now()
	for i, score := range scores {
		logs = append(logs, domain.MoodLog{
			ID:        "log",
			UserID:    testUserID,
			Score:     score,
			CreatedAt: now.Add(-time.Duration(i) * 24 * time.Hour),
		})
	}
	return logs
}

func TestLogMood(t *testing.T) {
	repo := new(MockMoodRepository)
	repo.On("SaveMoodLog", mock.Anything, mock.Anything).Return(nil).Once()
	repo.On("GetMoodLogsSince", mock.Anything, testUserID, mock.Anything).
		Return(moodLogs(4), nil).Once()

	svc := NewMoodService(repo)
	resp, err := svc.LogMood(context.Background(), &dto.MoodLogRequest{
		UserID: testUserID,
		Score:  4,
		Note:   "good day",
	})

	require.NoError(t, err)
	assert.Equal(t, 4, resp.Score)
	assert.Equal(t, "good day", resp.Note)
	repo.AssertNotCalled(t, "SaveAlert", mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
}

func TestLogMood_InvalidScore(t *testing.T) {
	svc := NewMoodService(new(MockMoodRepository))

	_, err := svc.LogMood(context.Background(), &dto.MoodLogRequest{
		UserID: testUserID,
		Score:  9,
	})

	require.Error(t, err)
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeValidation, domainErr.Code)
}

func TestLogMood_RaisesLowMoodAlert(t *testing.T) {
	repo := new(MockMoodRepository)
	repo.On("SaveMoodLog", mock.Anything, mock.Anything).Return(nil).Once()
	// 5 logs in the window averaging 1.8, below the 2.5 threshold
	repo.On("GetMoodLogsSince", mock.Anything, testUserID, mock.Anything).
		Return(moodLogs(2, 2, 2, 2, 1), nil).Once()
	repo.On("SaveAlert", mock.Anything, mock.MatchedBy(func(alert *domain.Alert) bool {
		return alert.Type == domain.AlertLowMood && alert.Severity == domain.AlertWarning
	})).Return(nil).Once()

	svc := NewMoodService(repo)
	_, err := svc.LogMood(context.Background(), &dto.MoodLogRequest{UserID: testUserID, Score: 1})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestLogMood_TooFewLogsForAlert(t *testing.T) {
	repo := new(MockMoodRepository)
	repo.On("SaveMoodLog", mock.Anything, mock.Anything).Return(nil).Once()
	// Low average but only 4 logs in the window
	repo.On("GetMoodLogsSince", mock.Anything, testUserID, mock.Anything).
		Return(moodLogs(1, 1, 1, 1), nil).Once()

	svc := NewMoodService(repo)
	_, err := svc.LogMood(context.Background(), &dto.MoodLogRequest{UserID: testUserID, Score: 1})

	require.NoError(t, err)
	repo.AssertNotCalled(t, "SaveAlert", mock.Anything, mock.Anything)
}

func TestLogMood_AverageAtThresholdNoAlert(t *testing.T) {
	repo := new(MockMoodRepository)
	repo.On("SaveMoodLog", mock.Anything, mock.Anything).Return(nil).Once()
	// Average exactly 2.5 does not trigger
	repo.On("GetMoodLogsSince", mock.Anything, testUserID, mock.Anything).
		Return(moodLogs(2, 2, 3, 3, 2, 3), nil).Once()

	svc := NewMoodService(repo)
	_, err := svc.LogMood(context.Background(), &dto.MoodLogRequest{UserID: testUserID, Score: 3})

	require.NoError(t, err)
	repo.AssertNotCalled(t, "SaveAlert", mock.Anything, mock.Anything)
}

func TestGetHistory(t *testing.T) {
	repo := new(MockMoodRepository)
	repo.On("GetMoodLogsSince", mock.Anything, testUserID, mock.Anything).
		Return(moodLogs(3, 2, 4), nil).Once()

	svc := NewMoodService(repo)
	resp, err := svc.GetHistory(context.Background(), testUserID, 7)

	require.NoError(t, err)
	assert.Len(t, resp.Logs, 3)
	assert.Equal(t, 3, resp.Logs[0].Score)
}

func TestGetAlerts(t *testing.T) {
	repo := new(MockMoodRepository)
	repo.On("GetUnresolvedAlerts", mock.Anything, testUserID).Return([]domain.Alert{
		{
			ID:          "alert-1",
			UserID:      testUserID,
			Type:        domain.AlertLowMood,
			Severity:    domain.AlertWarning,
			Message:     "Low mood detected",
			TriggeredAt: time.Now(),
		},
	}, nil).Once()

	svc := NewMoodService(repo)
	resp, err := svc.GetAlerts(context.Background(), testUserID)

	require.NoError(t, err)
	assert.Len(t, resp.Alerts, 1)
	assert.Equal(t, "low_mood", resp.Alerts[0].AlertType)
}
