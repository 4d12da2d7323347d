package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"umatter/internal/domain"
	"umatter/internal/repository/models"
	"umatter/internal/util"

	"github.com/jmoiron/sqlx"
)

// MoodDatabaseAdapter implements domain.MoodRepository using sqlx.DB
type MoodDatabaseAdapter struct {
	db *sqlx.DB
}

// NewMoodDatabaseAdapter creates a new instance of MoodDatabaseAdapter
func NewMoodDatabaseAdapter(db *sqlx.DB) domain.MoodRepository {
	return &MoodDatabaseAdapter{db: db}
}

// SaveMoodLog implements domain.MoodRepository
func (a *MoodDatabaseAdapter) SaveMoodLog(ctx context.Context, log *domain.MoodLog) error {
	if log == nil {
		return fmt.Errorf("cannot save nil mood log")
	}
	model := toModelMoodLog(log)
	model.ID = util.NewULID()
	model.CreatedAt = time.Now()

	query := `INSERT INTO mood_logs (
		id, user_id, score, note, created_at
	) VALUES (
		:1, :2, :3, :4, :5
	)`

	_, err := a.db.ExecContext(ctx, query,
		model.ID,
		model.UserID,
		model.Score,
		model.Note,
		model.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save mood log: %w", err)
	}

	log.ID = model.ID
	log.CreatedAt = model.CreatedAt
	return nil
}

// GetMoodLogsSince implements domain.MoodRepository
func (a *MoodDatabaseAdapter) GetMoodLogsSince(ctx context.Context, userID string, since time.Time) ([]domain.MoodLog, error) {
	var modelLogs []models.MoodLog
	query := `SELECT
		id "id",
		user_id "user_id",
		score "score",
		note "note",
		created_at "created_at"
	FROM mood_logs
	WHERE user_id = :1
	AND created_at >= :2
	ORDER BY created_at DESC`

	err := a.db.SelectContext(ctx, &modelLogs, query, userID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to get mood logs for user %s: %w", userID, err)
	}

	logs := make([]domain.MoodLog, 0, len(modelLogs))
	for i := range modelLogs {
		logs = append(logs, *toDomainMoodLog(&modelLogs[i]))
	}
	return logs, nil
}

// SaveAlert implements domain.MoodRepository
func (a *MoodDatabaseAdapter) SaveAlert(ctx context.Context, alert *domain.Alert) error {
	if alert == nil {
		return fmt.Errorf("cannot save nil alert")
	}
	model := toModelAlert(alert)
	model.ID = util.NewULID()
	if model.TriggeredAt.IsZero() {
		model.TriggeredAt = time.Now()
	}

	query := `INSERT INTO alerts (
		id, user_id, alert_type, severity, message, triggered_at, resolved
	) VALUES (
		:1, :2, :3, :4, :5, :6, :7
	)`

	_, err := a.db.ExecContext(ctx, query,
		model.ID,
		model.UserID,
		model.AlertType,
		model.Severity,
		model.Message,
		model.TriggeredAt,
		model.Resolved,
	)
	if err != nil {
		return fmt.Errorf("failed to save alert: %w", err)
	}

	alert.ID = model.ID
	alert.TriggeredAt = model.TriggeredAt
	return nil
}

// GetUnresolvedAlerts implements domain.MoodRepository
func (a *MoodDatabaseAdapter) GetUnresolvedAlerts(ctx context.Context, userID string) ([]domain.Alert, error) {
	var modelAlerts []models.Alert
	query := `SELECT
		id "id",
		user_id "user_id",
		alert_type "alert_type",
		severity "severity",
		message "message",
		triggered_at "triggered_at",
		resolved "resolved",
		resolved_at "resolved_at"
	FROM alerts
	WHERE user_id = :1
	AND resolved = 0
	ORDER BY triggered_at DESC`

	err := a.db.SelectContext(ctx, &modelAlerts, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get unresolved alerts for user %s: %w", userID, err)
	}

	alerts := make([]domain.Alert, 0, len(modelAlerts))
	for i := range modelAlerts {
		alerts = append(alerts, *toDomainAlert(&modelAlerts[i]))
	}
	return alerts, nil
}

// Helper functions for model conversion
func toDomainMoodLog(m *models.MoodLog) *domain.MoodLog {
	return &domain.MoodLog{
		ID:        m.ID,
		UserID:    m.UserID,
		Score:     m.Score,
		Note:      m.Note.String,
		CreatedAt: m.CreatedAt,
	}
}

func toModelMoodLog(d *domain.MoodLog) *models.MoodLog {
	note := sql.NullString{}
	if d.Note != "" {
		note = sql.NullString{String: d.Note, Valid: true}
	}
	return &models.MoodLog{
		ID:        d.ID,
		UserID:    d.UserID,
		Score:     d.Score,
		Note:      note,
		CreatedAt: d.CreatedAt,
	}
}

func toDomainAlert(m *models.Alert) *domain.Alert {
	alert := &domain.Alert{
		ID:          m.ID,
		UserID:      m.UserID,
		Type:        domain.AlertType(m.AlertType),
		Severity:    domain.AlertSeverity(m.Severity),
		Message:     m.Message,
		TriggeredAt: m.TriggeredAt,
		Resolved:    m.Resolved != 0,
	}
	if m.ResolvedAt.Valid {
		t := m.ResolvedAt.Time
		alert.ResolvedAt = &t
	}
	return alert
}

func toModelAlert(d *domain.Alert) *models.Alert {
	resolved := 0
	if d.Resolved {
		resolved = 1
	}
	model := &models.Alert{
		ID:          d.ID,
		UserID:      d.UserID,
		AlertType:   string(d.Type),
		Severity:    string(d.Severity),
		Message:     d.Message,
		TriggeredAt: d.TriggeredAt,
		Resolved:    resolved,
	}
	if d.ResolvedAt != nil {
		model.ResolvedAt = sql.NullTime{Time: *d.ResolvedAt, Valid: true}
	}
	return model
}
