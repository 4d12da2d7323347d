package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"umatter/internal/domain"
	"umatter/internal/repository/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestToDomainMoodLog(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	model := &models.MoodLog{
		ID:        "log-1",
		UserID:    "user-1",
		Score:     2,
		Note:      sql.NullString{String: "rough day", Valid: true},
		CreatedAt: now,
	}

	log := toDomainMoodLog(model)
	assert.Equal(t, "log-1", log.ID)
	assert.Equal(t, 2, log.Score)
	assert.Equal(t, "rough day", log.Note)
	assert.True(t, now.Equal(log.CreatedAt))

	model.Note = sql.NullString{}
	assert.Equal(t, "", toDomainMoodLog(model).Note)
}

func TestToModelMoodLog(t *testing.T) {
	log := &domain.MoodLog{UserID: "user-1", Score: 4, Note: "better"}

	model := toModelMoodLog(log)
	assert.Equal(t, 4, model.Score)
	assert.True(t, model.Note.Valid)
	assert.Equal(t, "better", model.Note.String)

	log.Note = ""
	assert.False(t, toModelMoodLog(log).Note.Valid)
}

func TestSaveMoodLog(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewMoodDatabaseAdapter(db)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO mood_logs`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	log := &domain.MoodLog{UserID: "user-1", Score: 3, Note: "ok"}
	err := repo.SaveMoodLog(context.Background(), log)

	assert.NoError(t, err)
	assert.NotEmpty(t, log.ID)
	assert.False(t, log.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetMoodLogsSince(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewMoodDatabaseAdapter(db)
	defer db.Close()

	now := time.Now()
	since := now.AddDate(0, 0, -7)
	rows := sqlmock.NewRows([]string{"id", "user_id", "score", "note", "created_at"}).
		AddRow("log-2", "user-1", 2, nil, now).
		AddRow("log-1", "user-1", 1, "bad night", now.Add(-24*time.Hour))

	mock.ExpectQuery(`SELECT(.|\n)*FROM mood_logs(.|\n)*WHERE user_id = :1(.|\n)*AND created_at >= :2`).
		WithArgs("user-1", since).
		WillReturnRows(rows)

	logs, err := repo.GetMoodLogsSince(context.Background(), "user-1", since)

	assert.NoError(t, err)
	assert.Len(t, logs, 2)
	assert.Equal(t, "log-2", logs[0].ID)
	assert.Equal(t, "bad night", logs[1].Note)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveAlert(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewMoodDatabaseAdapter(db)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO alerts`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	alert := &domain.Alert{
		UserID:   "user-1",
		Type:     domain.AlertLowMood,
		Severity: domain.AlertWarning,
		Message:  "Your mood has been low for several days.",
	}
	err := repo.SaveAlert(context.Background(), alert)

	assert.NoError(t, err)
	assert.NotEmpty(t, alert.ID)
	assert.False(t, alert.TriggeredAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUnresolvedAlerts(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewMoodDatabaseAdapter(db)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "user_id", "alert_type", "severity", "message",
		"triggered_at", "resolved", "resolved_at",
	}).AddRow("alert-1", "user-1", "low_mood", "warning", "Low mood detected", now, 0, nil)

	mock.ExpectQuery(`SELECT(.|\n)*FROM alerts(.|\n)*WHERE user_id = :1(.|\n)*AND resolved = 0`).
		WithArgs("user-1").
		WillReturnRows(rows)

	alerts, err := repo.GetUnresolvedAlerts(context.Background(), "user-1")

	assert.NoError(t, err)
	assert.Len(t, alerts, 1)
	assert.Equal(t, domain.AlertLowMood, alerts[0].Type)
	assert.Equal(t, domain.AlertWarning, alerts[0].Severity)
	assert.False(t, alerts[0].Resolved)
	assert.Nil(t, alerts[0].ResolvedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}
