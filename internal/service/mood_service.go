package service

import (
	"context"
	"time"

	"umatter/internal/domain"
	"umatter/internal/dto"
	"umatter/internal/logger"

	"go.uber.org/zap"
)

const (
	// Low mood alert rule: at least 5 logs in the last 7 days averaging
	// below 2.5 on the 1-5 scale.
	lowMoodWindowDays = 7
	lowMoodMinLogs    = 5
	lowMoodThreshold  = 2.5
)

// MoodService records daily mood entries and raises alerts on persistent
// low mood.
type MoodService interface {
	// LogMood stores a mood entry and evaluates the low mood alert rule.
	LogMood(ctx context.Context, req *dto.MoodLogRequest) (*dto.MoodLogResponse, error)

	// GetHistory returns the user's mood logs of the last N days, newest first.
	GetHistory(ctx context.Context, userID string, days int) (*dto.MoodHistoryResponse, error)

	// GetAlerts returns the user's unresolved alerts, newest first.
	GetAlerts(ctx context.Context, userID string) (*dto.AlertListResponse, error)
}

type moodServiceImpl struct {
	repo domain.MoodRepository
}

// NewMoodService creates a new mood service.
func NewMoodService(repo domain.MoodRepository) MoodService {
	return &moodServiceImpl{repo: repo}
}

// LogMood implements MoodService
func (s *moodServiceImpl) LogMood(ctx context.Context, req *dto.MoodLogRequest) (*dto.MoodLogResponse, error) {
	log := &domain.MoodLog{
		UserID: req.UserID,
		Score:  req.Score,
		Note:   req.Note,
	}
	if err := log.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.SaveMoodLog(ctx, log); err != nil {
		return nil, domain.NewInternalError("failed to save mood log", err)
	}

	// Alerting is best-effort: a failed check never fails the log request.
	s.checkLowMood(ctx, req.UserID)

	return &dto.MoodLogResponse{
		ID:        log.ID,
		Score:     log.Score,
		Note:      log.Note,
		CreatedAt: log.CreatedAt.Format(time.RFC3339),
	}, nil
}

// checkLowMood raises a low mood alert when the user's recent logs are both
// frequent enough to be meaningful and persistently low.
func (s *moodServiceImpl) checkLowMood(ctx context.Context, userID string) {
	since := time.Now().AddDate(0, 0, -lowMoodWindowDays)
	logs, err := s.repo.GetMoodLogsSince(ctx, userID, since)
	if err != nil {
		logger.Get().Warn("Failed to load mood logs for alert check",
			zap.Error(err), zap.String("userID", userID))
		return
	}
	if len(logs) < lowMoodMinLogs {
		return
	}

	var sum float64
	for _, log := range logs {
		sum += float64(log.Score)
	}
	average := sum / float64(len(logs))
	if average >= lowMoodThreshold {
		return
	}

	alert := &domain.Alert{
		UserID:   userID,
		Type:     domain.AlertLowMood,
		Severity: domain.AlertWarning,
		Message:  "Your mood has been consistently low over the past week. Consider reaching out to someone you trust or a professional.",
	}
	if err := s.repo.SaveAlert(ctx, alert); err != nil {
		logger.Get().Error("Failed to save low mood alert",
			zap.Error(err), zap.String("userID", userID))
		return
	}
	logger.Get().Info("Raised low mood alert",
		zap.String("userID", userID), zap.Float64("average", average), zap.Int("logs", len(logs)))
}

// GetHistory implements MoodService
func (s *moodServiceImpl) GetHistory(ctx context.Context, userID string, days int) (*dto.MoodHistoryResponse, error) {
	since := time.Now().AddDate(0, 0, -days)
	logs, err := s.repo.GetMoodLogsSince(ctx, userID, since)
	if err != nil {
		return nil, domain.NewInternalError("failed to load mood history", err)
	}

	items := make([]dto.MoodLogResponse, 0, len(logs))
	for _, log := range logs {
		items = append(items, dto.MoodLogResponse{
			ID:        log.ID,
			Score:     log.Score,
			Note:      log.Note,
			CreatedAt: log.CreatedAt.Format(time.RFC3339),
		})
	}
	return &dto.MoodHistoryResponse{Logs: items}, nil
}

// GetAlerts implements MoodService
func (s *moodServiceImpl) GetAlerts(ctx context.Context, userID string) (*dto.AlertListResponse, error) {
	alerts, err := s.repo.GetUnresolvedAlerts(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load alerts", err)
	}

	items := make([]dto.AlertResponse, 0, len(alerts))
	for _, alert := range alerts {
		items = append(items, dto.AlertResponse{
			ID:          alert.ID,
			AlertType:   string(alert.Type),
			Severity:    string(alert.Severity),
			Message:     alert.Message,
			TriggeredAt: alert.TriggeredAt.Format(time.RFC3339),
		})
	}
	return &dto.AlertListResponse{Alerts: items}, nil
}
