package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"umatter/internal/domain"
	"umatter/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

const stringDelimiter = "|||"

// QuestionDatabaseAdapter implements domain.QuestionRepository using sqlx.DB
type QuestionDatabaseAdapter struct {
	db *sqlx.DB
}

// NewQuestionDatabaseAdapter creates a new instance of QuestionDatabaseAdapter
func NewQuestionDatabaseAdapter(db *sqlx.DB) domain.QuestionRepository {
	return &QuestionDatabaseAdapter{db: db}
}

const questionColumns = `
		id "id",
		category "category",
		text "text",
		options "options",
		order_num "order_num",
		weight "weight",
		is_critical "is_critical",
		created_at "created_at",
		updated_at "updated_at",
		deleted_at "deleted_at"`

// GetAllQuestions implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) GetAllQuestions(ctx context.Context) ([]domain.Question, error) {
	var modelQuestions []models.Question
	query := `SELECT ` + questionColumns + `
	FROM questions
	WHERE deleted_at IS NULL
	ORDER BY category ASC, order_num ASC`

	err := a.db.SelectContext(ctx, &modelQuestions, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get all questions: %w", err)
	}

	questions := make([]domain.Question, 0, len(modelQuestions))
	for i := range modelQuestions {
		q, err := toDomainQuestion(&modelQuestions[i])
		if err != nil {
			return nil, err
		}
		questions = append(questions, *q)
	}
	return questions, nil
}

// GetQuestionsByCategory implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) GetQuestionsByCategory(ctx context.Context, category domain.Category) ([]domain.Question, error) {
	var modelQuestions []models.Question
	query := `SELECT ` + questionColumns + `
	FROM questions
	WHERE category = :1
	AND deleted_at IS NULL
	ORDER BY order_num ASC`

	err := a.db.SelectContext(ctx, &modelQuestions, query, string(category))
	if err != nil {
		return nil, fmt.Errorf("failed to get questions for category %s: %w", category, err)
	}

	questions := make([]domain.Question, 0, len(modelQuestions))
	for i := range modelQuestions {
		q, err := toDomainQuestion(&modelQuestions[i])
		if err != nil {
			return nil, err
		}
		questions = append(questions, *q)
	}
	return questions, nil
}

// SaveQuestion implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) SaveQuestion(ctx context.Context, question *domain.Question) error {
	modelQuestion := toModelQuestion(question)
	if modelQuestion == nil {
		return fmt.Errorf("cannot save nil question")
	}
	now := time.Now()
	modelQuestion.CreatedAt = now
	modelQuestion.UpdatedAt = now

	query := `INSERT INTO questions (
		id, category, text, options, order_num,
		weight, is_critical, created_at, updated_at
	) VALUES (
		:1, :2, :3, :4, :5, :6, :7, :8, :9
	)`

	_, err := a.db.ExecContext(ctx, query,
		modelQuestion.ID,
		modelQuestion.Category,
		modelQuestion.Text,
		modelQuestion.Options,
		modelQuestion.OrderNum,
		modelQuestion.Weight,
		modelQuestion.IsCritical,
		modelQuestion.CreatedAt,
		modelQuestion.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save question: %w", err)
	}

	question.CreatedAt = modelQuestion.CreatedAt
	return nil
}

// Helper functions for model conversion
func toDomainQuestion(m *models.Question) (*domain.Question, error) {
	if m == nil {
		return nil, fmt.Errorf("cannot convert nil model.Question to domain.Question")
	}
	return &domain.Question{
		ID:         m.ID,
		Category:   domain.Category(m.Category),
		Text:       m.Text,
		Options:    strings.Split(m.Options, stringDelimiter),
		Order:      m.OrderNum,
		Weight:     m.Weight,
		IsCritical: m.IsCritical != 0,
		CreatedAt:  m.CreatedAt,
	}, nil
}

func toModelQuestion(d *domain.Question) *models.Question {
	if d == nil {
		return nil
	}
	isCritical := 0
	if d.IsCritical {
		isCritical = 1
	}
	return &models.Question{
		ID:         d.ID,
		Category:   string(d.Category),
		Text:       d.Text,
		Options:    strings.Join(d.Options, stringDelimiter),
		OrderNum:   d.Order,
		Weight:     d.Weight,
		IsCritical: isCritical,
		CreatedAt:  d.CreatedAt,
	}
}
