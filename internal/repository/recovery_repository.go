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

// RecoveryDatabaseAdapter implements domain.RecoveryRepository using sqlx.DB
type RecoveryDatabaseAdapter struct {
	db *sqlx.DB
}

// NewRecoveryDatabaseAdapter creates a new instance of RecoveryDatabaseAdapter
func NewRecoveryDatabaseAdapter(db *sqlx.DB) domain.RecoveryRepository {
	return &RecoveryDatabaseAdapter{db: db}
}

// GetActiveProgramByCategory implements domain.RecoveryRepository
func (a *RecoveryDatabaseAdapter) GetActiveProgramByCategory(ctx context.Context, category domain.Category) (*domain.RecoveryProgram, error) {
	var model models.RecoveryProgram
	query := `SELECT
		id "id",
		category "category",
		title "title",
		description "description",
		duration_days "duration_days",
		difficulty "difficulty",
		is_active "is_active",
		created_at "created_at",
		deleted_at "deleted_at"
	FROM recovery_programs
	WHERE category = :1
	AND is_active = 1
	AND deleted_at IS NULL
	FETCH FIRST 1 ROWS ONLY`

	err := a.db.GetContext(ctx, &model, query, string(category))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active program for category %s: %w", category, err)
	}
	return toDomainProgram(&model), nil
}

// GetStepsByProgram implements domain.RecoveryRepository
func (a *RecoveryDatabaseAdapter) GetStepsByProgram(ctx context.Context, programID string) ([]domain.RecoveryStep, error) {
	var modelSteps []models.RecoveryStep
	query := `SELECT
		id "id",
		program_id "program_id",
		day_number "day_number",
		activity_type "activity_type",
		title "title",
		content "content",
		resources "resources",
		duration_minutes "duration_minutes"
	FROM recovery_steps
	WHERE program_id = :1
	ORDER BY day_number ASC`

	err := a.db.SelectContext(ctx, &modelSteps, query, programID)
	if err != nil {
		return nil, fmt.Errorf("failed to get steps for program %s: %w", programID, err)
	}

	steps := make([]domain.RecoveryStep, 0, len(modelSteps))
	for i := range modelSteps {
		steps = append(steps, *toDomainStep(&modelSteps[i]))
	}
	return steps, nil
}

// GetStepByID implements domain.RecoveryRepository
func (a *RecoveryDatabaseAdapter) GetStepByID(ctx context.Context, stepID string) (*domain.RecoveryStep, error) {
	var model models.RecoveryStep
	query := `SELECT
		id "id",
		program_id "program_id",
		day_number "day_number",
		activity_type "activity_type",
		title "title",
		content "content",
		resources "resources",
		duration_minutes "duration_minutes"
	FROM recovery_steps
	WHERE id = :1`

	err := a.db.GetContext(ctx, &model, query, stepID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get step %s: %w", stepID, err)
	}
	return toDomainStep(&model), nil
}

// GetProgress implements domain.RecoveryRepository
func (a *RecoveryDatabaseAdapter) GetProgress(ctx context.Context, userID, programID string) ([]domain.StepProgress, error) {
	var modelProgress []models.StepProgress
	query := `SELECT
		sp.id "id",
		sp.user_id "user_id",
		sp.step_id "step_id",
		sp.status "status",
		sp.completed_at "completed_at",
		sp.notes "notes",
		sp.created_at "created_at",
		sp.updated_at "updated_at"
	FROM step_progress sp
	JOIN recovery_steps rs ON rs.id = sp.step_id
	WHERE sp.user_id = :1
	AND rs.program_id = :2
	ORDER BY rs.day_number ASC`

	err := a.db.SelectContext(ctx, &modelProgress, query, userID, programID)
	if err != nil {
		return nil, fmt.Errorf("failed to get progress for user %s program %s: %w", userID, programID, err)
	}

	progress := make([]domain.StepProgress, 0, len(modelProgress))
	for i := range modelProgress {
		progress = append(progress, *toDomainProgress(&modelProgress[i]))
	}
	return progress, nil
}

// UpsertProgress implements domain.RecoveryRepository
func (a *RecoveryDatabaseAdapter) UpsertProgress(ctx context.Context, progress *domain.StepProgress) error {
	if progress == nil {
		return fmt.Errorf("cannot upsert nil progress")
	}
	now := time.Now()
	completedAt := sql.NullTime{}
	if progress.CompletedAt != nil {
		completedAt = sql.NullTime{Time: *progress.CompletedAt, Valid: true}
	}
	notes := sql.NullString{}
	if progress.Notes != "" {
		notes = sql.NullString{String: progress.Notes, Valid: true}
	}

	query := `MERGE INTO step_progress sp
	USING (SELECT :1 AS user_id, :2 AS step_id FROM dual) src
	ON (sp.user_id = src.user_id AND sp.step_id = src.step_id)
	WHEN MATCHED THEN
		UPDATE SET sp.status = :3, sp.completed_at = :4, sp.notes = :5, sp.updated_at = :6
	WHEN NOT MATCHED THEN
		INSERT (id, user_id, step_id, status, completed_at, notes, created_at, updated_at)
		VALUES (:7, :8, :9, :10, :11, :12, :13, :14)`

	_, err := a.db.ExecContext(ctx, query,
		progress.UserID, progress.StepID,
		string(progress.Status), completedAt, notes, now,
		util.NewULID(), progress.UserID, progress.StepID, string(progress.Status), completedAt, notes, now, now,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert progress for user %s step %s: %w", progress.UserID, progress.StepID, err)
	}
	return nil
}

// Helper functions for model conversion
func toDomainProgram(m *models.RecoveryProgram) *domain.RecoveryProgram {
	return &domain.RecoveryProgram{
		ID:           m.ID,
		Category:     domain.Category(m.Category),
		Title:        m.Title,
		Description:  m.Description,
		DurationDays: m.DurationDays,
		Difficulty:   domain.DifficultyLevel(m.Difficulty),
		IsActive:     m.IsActive != 0,
		CreatedAt:    m.CreatedAt,
	}
}

func toDomainStep(m *models.RecoveryStep) *domain.RecoveryStep {
	return &domain.RecoveryStep{
		ID:              m.ID,
		ProgramID:       m.ProgramID,
		DayNumber:       m.DayNumber,
		ActivityType:    m.ActivityType,
		Title:           m.Title,
		Content:         m.Content,
		Resources:       m.Resources.String,
		DurationMinutes: m.DurationMinutes,
	}
}

func toDomainProgress(m *models.StepProgress) *domain.StepProgress {
	progress := &domain.StepProgress{
		ID:        m.ID,
		UserID:    m.UserID,
		StepID:    m.StepID,
		Status:    domain.ProgressStatus(m.Status),
		Notes:     m.Notes.String,
		CreatedAt: m.CreatedAt,
	}
	if m.CompletedAt.Valid {
		t := m.CompletedAt.Time
		progress.CompletedAt = &t
	}
	return progress
}
