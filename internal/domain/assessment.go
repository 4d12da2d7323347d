package domain

import "time"

// Question is a single assessment question. Questions are immutable reference
// data, seeded once and never mutated by end users.
type Question struct {
	ID         int64
	Category   Category
	Text       string
	Options    []string // ordered A..D option labels
	Order      int      // display order within the category
	Weight     float64  // importance weight, 0.1 to 3.0
	IsCritical bool
	CreatedAt  time.Time
}

// Validate validates the question.
func (q *Question) Validate() error {
	if q.ID <= 0 {
		return NewValidationError("id must be positive")
	}
	if !q.Category.IsValid() {
		return NewInvalidCategoryError(string(q.Category))
	}
	if q.Text == "" {
		return NewValidationError("text is required")
	}
	if len(q.Options) != 4 {
		return NewValidationError("exactly four options are required")
	}
	if q.Weight < 0.1 || q.Weight > 3.0 {
		return NewValidationError("weight must be between 0.1 and 3.0")
	}
	return nil
}

// Response is one submitted answer, referencing a catalog question by id.
type Response struct {
	QuestionID int64
	Answer     AnswerValue
}

// SeverityLevel is the discrete severity band derived from a category average.
type SeverityLevel string

const (
	SeverityLow      SeverityLevel = "low"
	SeverityModerate SeverityLevel = "moderate"
	SeverityHigh     SeverityLevel = "high"
	SeveritySevere   SeverityLevel = "severe"
)

// SeverityRecord is a classified category average. Immutable once computed.
type SeverityRecord struct {
	Category        Category
	ScorePercentage float64 // 0..100
	Level           SeverityLevel
}

// DominantTrauma identifies the primary and optional secondary trauma for an
// evaluation, with the model's confidence in the primary.
type DominantTrauma struct {
	Primary    Category
	Secondary  *Category
	Confidence float64 // 0..1, the primary's predicted probability
}

// EvaluationResult is the full outcome of one assessment evaluation.
type EvaluationResult struct {
	Averages   map[Category]float64
	Prediction map[Category]float64
	Severities []SeverityRecord
	Dominant   DominantTrauma
}
