package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"umatter/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestUserExists(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewResultDatabaseAdapter(db)
	defer db.Close()

	userID := "01HQZX3V8N4M2K9J7F5D3B1A0C"

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users WHERE id = :1 AND deleted_at IS NULL`).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := repo.UserExists(context.Background(), userID)

	assert.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserExists_Unknown(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewResultDatabaseAdapter(db)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users`).
		WithArgs("missing-user").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	exists, err := repo.UserExists(context.Background(), "missing-user")

	assert.NoError(t, err)
	assert.False(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertAnswer(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewResultDatabaseAdapter(db)
	defer db.Close()

	mock.ExpectExec(`MERGE INTO user_answers`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpsertAnswer(context.Background(), "user-1", 5, domain.AnswerC)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateScore(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewResultDatabaseAdapter(db)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO trauma_scores`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	record := domain.SeverityRecord{
		Category:        domain.CategoryFamily,
		ScorePercentage: 58.33,
		Level:           domain.SeverityHigh,
	}
	err := repo.CreateScore(context.Background(), "user-1", record)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertDominantTrauma(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewResultDatabaseAdapter(db)
	defer db.Close()

	mock.ExpectExec(`MERGE INTO dominant_traumas`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	secondary := domain.CategoryCareer
	err := repo.UpsertDominantTrauma(context.Background(), "user-1", domain.DominantTrauma{
		Primary:    domain.CategoryFinancial,
		Secondary:  &secondary,
		Confidence: 0.62,
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDominantTrauma(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewResultDatabaseAdapter(db)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "user_id", "primary_category", "secondary_category",
		"confidence", "created_at", "updated_at",
	}).AddRow("dt-1", "user-1", "family", "love", 0.71, now, now)

	mock.ExpectQuery(`SELECT(.|\n)*FROM dominant_traumas(.|\n)*WHERE user_id = :1`).
		WithArgs("user-1").
		WillReturnRows(rows)

	dominant, err := repo.GetDominantTrauma(context.Background(), "user-1")

	assert.NoError(t, err)
	assert.NotNil(t, dominant)
	assert.Equal(t, domain.CategoryFamily, dominant.Primary)
	assert.NotNil(t, dominant.Secondary)
	assert.Equal(t, domain.CategoryLove, *dominant.Secondary)
	assert.InDelta(t, 0.71, dominant.Confidence, 1e-9)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDominantTrauma_NotFound(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewResultDatabaseAdapter(db)
	defer db.Close()

	mock.ExpectQuery(`SELECT(.|\n)*FROM dominant_traumas`).
		WithArgs("user-without-assessment").
		WillReturnError(sql.ErrNoRows)

	dominant, err := repo.GetDominantTrauma(context.Background(), "user-without-assessment")

	assert.NoError(t, err)
	assert.Nil(t, dominant)
	assert.NoError(t, mock.ExpectationsWereMet())
}
