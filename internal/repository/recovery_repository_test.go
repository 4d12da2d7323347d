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

func programRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "category", "title", "description", "duration_days",
		"difficulty", "is_active", "created_at", "deleted_at",
	})
}

func stepRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "program_id", "day_number", "activity_type", "title",
		"content", "resources", "duration_minutes",
	})
}

func progressRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "user_id", "step_id", "status", "completed_at",
		"notes", "created_at", "updated_at",
	})
}

func TestGetActiveProgramByCategory(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewRecoveryDatabaseAdapter(db)
	defer db.Close()

	now := time.Now()
	rows := programRows().
		AddRow("prog-1", "family", "Family Healing", "A 21 day program", 21, "beginner", 1, now, nil)

	mock.ExpectQuery(`SELECT(.|\n)*FROM recovery_programs(.|\n)*WHERE category = :1(.|\n)*AND is_active = 1`).
		WithArgs("family").
		WillReturnRows(rows)

	program, err := repo.GetActiveProgramByCategory(context.Background(), domain.CategoryFamily)

	assert.NoError(t, err)
	assert.NotNil(t, program)
	assert.Equal(t, "prog-1", program.ID)
	assert.Equal(t, domain.CategoryFamily, program.Category)
	assert.Equal(t, domain.DifficultyBeginner, program.Difficulty)
	assert.True(t, program.IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetActiveProgramByCategory_NotFound(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewRecoveryDatabaseAdapter(db)
	defer db.Close()

	mock.ExpectQuery(`SELECT(.|\n)*FROM recovery_programs`).
		WithArgs("career").
		WillReturnError(sql.ErrNoRows)

	program, err := repo.GetActiveProgramByCategory(context.Background(), domain.CategoryCareer)

	assert.NoError(t, err)
	assert.Nil(t, program)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetStepsByProgram(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewRecoveryDatabaseAdapter(db)
	defer db.Close()

	rows := stepRows().
		AddRow("step-1", "prog-1", 1, "meditation", "Morning calm", "Sit quietly for ten minutes", nil, 10).
		AddRow("step-2", "prog-1", 2, "journaling", "Write it down", "Describe one difficult moment", "Journal prompts", 15)

	mock.ExpectQuery(`SELECT(.|\n)*FROM recovery_steps(.|\n)*WHERE program_id = :1(.|\n)*ORDER BY day_number ASC`).
		WithArgs("prog-1").
		WillReturnRows(rows)

	steps, err := repo.GetStepsByProgram(context.Background(), "prog-1")

	assert.NoError(t, err)
	assert.Len(t, steps, 2)
	assert.Equal(t, 1, steps[0].DayNumber)
	assert.Empty(t, steps[0].Resources)
	assert.Equal(t, "Journal prompts", steps[1].Resources)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetStepByID_NotFound(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewRecoveryDatabaseAdapter(db)
	defer db.Close()

	mock.ExpectQuery(`SELECT(.|\n)*FROM recovery_steps(.|\n)*WHERE id = :1`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	step, err := repo.GetStepByID(context.Background(), "missing")

	assert.NoError(t, err)
	assert.Nil(t, step)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetProgress(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewRecoveryDatabaseAdapter(db)
	defer db.Close()

	now := time.Now()
	rows := progressRows().
		AddRow("pg-1", "user-1", "step-1", "completed", now, "Felt good", now, now).
		AddRow("pg-2", "user-1", "step-2", "in_progress", nil, nil, now, now)

	mock.ExpectQuery(`SELECT(.|\n)*FROM step_progress sp(.|\n)*JOIN recovery_steps rs ON rs.id = sp.step_id(.|\n)*WHERE sp.user_id = :1(.|\n)*AND rs.program_id = :2`).
		WithArgs("user-1", "prog-1").
		WillReturnRows(rows)

	progress, err := repo.GetProgress(context.Background(), "user-1", "prog-1")

	assert.NoError(t, err)
	assert.Len(t, progress, 2)
	assert.Equal(t, domain.ProgressCompleted, progress[0].Status)
	assert.NotNil(t, progress[0].CompletedAt)
	assert.Equal(t, "Felt good", progress[0].Notes)
	assert.Nil(t, progress[1].CompletedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertProgress(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewRecoveryDatabaseAdapter(db)
	defer db.Close()

	mock.ExpectExec(`MERGE INTO step_progress`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	now := time.Now()
	err := repo.UpsertProgress(context.Background(), &domain.StepProgress{
		UserID:      "user-1",
		StepID:      "step-1",
		Status:      domain.ProgressCompleted,
		CompletedAt: &now,
		Notes:       "Done before breakfast",
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertProgress_Nil(t *testing.T) {
	db, _ := setupTestDB(t)
	repo := NewRecoveryDatabaseAdapter(db)
	defer db.Close()

	err := repo.UpsertProgress(context.Background(), nil)
	assert.Error(t, err)
}

func TestToDomainProgress(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	model := &models.StepProgress{
		ID:          "pg-1",
		UserID:      "user-1",
		StepID:      "step-1",
		Status:      "completed",
		CompletedAt: sql.NullTime{Time: now, Valid: true},
		Notes:       sql.NullString{String: "note", Valid: true},
		CreatedAt:   now,
	}

	progress := toDomainProgress(model)
	assert.Equal(t, domain.ProgressCompleted, progress.Status)
	assert.NotNil(t, progress.CompletedAt)
	assert.True(t, now.Equal(*progress.CompletedAt))
	assert.Equal(t, "note", progress.Notes)
}
