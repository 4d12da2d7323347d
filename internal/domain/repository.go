package domain

import (
	"context"
	"time"
)

// QuestionRepository defines the interface for question catalog persistence.
// An empty store is not an error: callers fall back to the bundled catalog.
type QuestionRepository interface {
	// GetAllQuestions returns all questions ordered by category and display order.
	GetAllQuestions(ctx context.Context) ([]Question, error)

	// GetQuestionsByCategory returns all questions in one category, ordered
	// by display order.
	GetQuestionsByCategory(ctx context.Context, category Category) ([]Question, error)

	// SaveQuestion persists a new question (seeding only).
	SaveQuestion(ctx context.Context, question *Question) error
}

// ResultRepository persists the side-effect records of an evaluation.
// All writes are best-effort from the orchestrator's point of view: a failed
// write never invalidates the computed result.
type ResultRepository interface {
	// UserExists reports whether the user id resolves to a known user.
	UserExists(ctx context.Context, userID string) (bool, error)

	// UpsertAnswer records a user's answer to a question, overwriting any
	// previous answer to the same question.
	UpsertAnswer(ctx context.Context, userID string, questionID int64, answer AnswerValue) error

	// CreateScore appends a severity record for one category.
	CreateScore(ctx context.Context, userID string, record SeverityRecord) error

	// UpsertDominantTrauma stores the user's current dominant trauma,
	// replacing any previous record.
	UpsertDominantTrauma(ctx context.Context, userID string, dominant DominantTrauma) error

	// GetDominantTrauma returns the user's stored dominant trauma, or nil if
	// the user has not completed an assessment.
	GetDominantTrauma(ctx context.Context, userID string) (*DominantTrauma, error)
}

// MoodRepository persists mood logs and alerts.
type MoodRepository interface {
	// SaveMoodLog persists a new mood log entry.
	SaveMoodLog(ctx context.Context, log *MoodLog) error

	// GetMoodLogsSince returns the user's mood logs created at or after the
	// given time, newest first.
	GetMoodLogsSince(ctx context.Context, userID string, since time.Time) ([]MoodLog, error)

	// SaveAlert persists a new alert.
	SaveAlert(ctx context.Context, alert *Alert) error

	// GetUnresolvedAlerts returns the user's unresolved alerts, newest first.
	GetUnresolvedAlerts(ctx context.Context, userID string) ([]Alert, error)
}

// RecoveryRepository persists recovery programs, steps and user progress.
type RecoveryRepository interface {
	// GetActiveProgramByCategory returns the active program for a category,
	// or nil when none exists.
	GetActiveProgramByCategory(ctx context.Context, category Category) (*RecoveryProgram, error)

	// GetStepsByProgram returns a program's steps ordered by day number.
	GetStepsByProgram(ctx context.Context, programID string) ([]RecoveryStep, error)

	// GetStepByID returns one step, or nil when it does not exist.
	GetStepByID(ctx context.Context, stepID string) (*RecoveryStep, error)

	// GetProgress returns the user's progress records for a program's steps.
	GetProgress(ctx context.Context, userID, programID string) ([]StepProgress, error)

	// UpsertProgress stores the user's progress on one step, replacing any
	// previous record for the same step.
	UpsertProgress(ctx context.Context, progress *StepProgress) error
}

// ContentRepository serves reference content: government schemes, heritage
// wisdom and modern solutions.
type ContentRepository interface {
	// GetActiveSchemes returns active schemes, optionally filtered by category.
	GetActiveSchemes(ctx context.Context, category *Category) ([]GovtScheme, error)

	// GetHeritageContent returns heritage content for a category.
	GetHeritageContent(ctx context.Context, category Category) ([]HeritageContent, error)

	// GetModernContent returns modern solutions for a category.
	GetModernContent(ctx context.Context, category Category) ([]ModernContent, error)
}
