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

// ResultDatabaseAdapter implements domain.ResultRepository using sqlx.DB
type ResultDatabaseAdapter struct {
	db *sqlx.DB
}

// NewResultDatabaseAdapter creates a new instance of ResultDatabaseAdapter
func NewResultDatabaseAdapter(db *sqlx.DB) domain.ResultRepository {
	return &ResultDatabaseAdapter{db: db}
}

// UserExists implements domain.ResultRepository
func (a *ResultDatabaseAdapter) UserExists(ctx context.Context, userID string) (bool, error) {
	var count int
	query := `SELECT COUNT(*) FROM users WHERE id = :1 AND deleted_at IS NULL`

	err := a.db.GetContext(ctx, &count, query, userID)
	if err != nil {
		return false, fmt.Errorf("failed to check user %s: %w", userID, err)
	}
	return count > 0, nil
}

// UpsertAnswer implements domain.ResultRepository
func (a *ResultDatabaseAdapter) UpsertAnswer(ctx context.Context, userID string, questionID int64, answer domain.AnswerValue) error {
	now := time.Now()
	query := `MERGE INTO user_answers ua
	USING (SELECT :1 AS user_id, :2 AS question_id FROM dual) src
	ON (ua.user_id = src.user_id AND ua.question_id = src.question_id)
	WHEN MATCHED THEN
		UPDATE SET ua.answer = :3, ua.updated_at = :4
	WHEN NOT MATCHED THEN
		INSERT (id, user_id, question_id, answer, created_at, updated_at)
		VALUES (:5, :6, :7, :8, :9, :10)`

	_, err := a.db.ExecContext(ctx, query,
		userID, questionID,
		string(answer), now,
		util.NewULID(), userID, questionID, string(answer), now, now,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert answer for user %s question %d: %w", userID, questionID, err)
	}
	return nil
}

// CreateScore implements domain.ResultRepository
func (a *ResultDatabaseAdapter) CreateScore(ctx context.Context, userID string, record domain.SeverityRecord) error {
	model := models.TraumaScore{
		ID:              util.NewULID(),
		UserID:          userID,
		Category:        string(record.Category),
		ScorePercentage: record.ScorePercentage,
		SeverityLevel:   string(record.Level),
		CreatedAt:       time.Now(),
	}

	query := `INSERT INTO trauma_scores (
		id, user_id, category, score_percentage, severity_level, created_at
	) VALUES (
		:1, :2, :3, :4, :5, :6
	)`

	_, err := a.db.ExecContext(ctx, query,
		model.ID,
		model.UserID,
		model.Category,
		model.ScorePercentage,
		model.SeverityLevel,
		model.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create score for user %s: %w", userID, err)
	}
	return nil
}

// UpsertDominantTrauma implements domain.ResultRepository
func (a *ResultDatabaseAdapter) UpsertDominantTrauma(ctx context.Context, userID string, dominant domain.DominantTrauma) error {
	now := time.Now()
	secondary := sql.NullString{}
	if dominant.Secondary != nil {
		secondary = sql.NullString{String: string(*dominant.Secondary), Valid: true}
	}

	query := `MERGE INTO dominant_traumas dt
	USING (SELECT :1 AS user_id FROM dual) src
	ON (dt.user_id = src.user_id)
	WHEN MATCHED THEN
		UPDATE SET dt.primary_category = :2, dt.secondary_category = :3,
			dt.confidence = :4, dt.updated_at = :5
	WHEN NOT MATCHED THEN
		INSERT (id, user_id, primary_category, secondary_category, confidence, created_at, updated_at)
		VALUES (:6, :7, :8, :9, :10, :11, :12)`

	_, err := a.db.ExecContext(ctx, query,
		userID,
		string(dominant.Primary), secondary, dominant.Confidence, now,
		util.NewULID(), userID, string(dominant.Primary), secondary, dominant.Confidence, now, now,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert dominant trauma for user %s: %w", userID, err)
	}
	return nil
}

// GetDominantTrauma implements domain.ResultRepository
func (a *ResultDatabaseAdapter) GetDominantTrauma(ctx context.Context, userID string) (*domain.DominantTrauma, error) {
	var model models.DominantTrauma
	query := `SELECT
		id "id",
		user_id "user_id",
		primary_category "primary_category",
		secondary_category "secondary_category",
		confidence "confidence",
		created_at "created_at",
		updated_at "updated_at"
	FROM dominant_traumas
	WHERE user_id = :1`

	err := a.db.GetContext(ctx, &model, query, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get dominant trauma for user %s: %w", userID, err)
	}

	dominant := &domain.DominantTrauma{
		Primary:    domain.Category(model.PrimaryCategory),
		Confidence: model.Confidence,
	}
	if model.SecondaryCategory.Valid {
		secondary := domain.Category(model.SecondaryCategory.String)
		dominant.Secondary = &secondary
	}
	return dominant, nil
}
