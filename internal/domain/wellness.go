package domain

import "time"

// MoodLog is one daily mood entry on a 1 (very bad) to 5 (very good) scale.
type MoodLog struct {
	ID        string // ULID
	UserID    string
	Score     int
	Note      string
	CreatedAt time.Time
}

// Validate validates the mood log.
func (m *MoodLog) Validate() error {
	if m.UserID == "" {
		return NewValidationError("user id is required")
	}
	if m.Score < 1 || m.Score > 5 {
		return NewValidationError("mood score must be between 1 and 5")
	}
	return nil
}

// AlertType classifies why an alert was raised.
type AlertType string

const (
	AlertLowMood   AlertType = "low_mood"
	AlertCrisis    AlertType = "crisis"
	AlertMilestone AlertType = "milestone"
	AlertReminder  AlertType = "reminder"
)

// AlertSeverity grades an alert.
type AlertSeverity string

const (
	AlertInfo     AlertSeverity = "info"
	AlertWarning  AlertSeverity = "warning"
	AlertCritical AlertSeverity = "critical"
)

// Alert is a raised user alert, e.g. persistent low mood.
type Alert struct {
	ID          string // ULID
	UserID      string
	Type        AlertType
	Severity    AlertSeverity
	Message     string
	TriggeredAt time.Time
	Resolved    bool
	ResolvedAt  *time.Time
}

// DifficultyLevel grades a recovery program.
type DifficultyLevel string

const (
	DifficultyBeginner     DifficultyLevel = "beginner"
	DifficultyIntermediate DifficultyLevel = "intermediate"
	DifficultyAdvanced     DifficultyLevel = "advanced"
)

// RecoveryProgram is a template program attached to one trauma category.
type RecoveryProgram struct {
	ID           string // ULID
	Category     Category
	Title        string
	Description  string
	DurationDays int
	Difficulty   DifficultyLevel
	IsActive     bool
	CreatedAt    time.Time
}

// RecoveryStep is one activity within a recovery program.
type RecoveryStep struct {
	ID              string // ULID
	ProgramID       string
	DayNumber       int
	ActivityType    string // meditation, exercise, journaling, breathing, therapy, reading, practice
	Title           string
	Content         string
	Resources       string
	DurationMinutes int
}

// ProgressStatus tracks a user's state on a recovery step.
type ProgressStatus string

const (
	ProgressNotStarted ProgressStatus = "not_started"
	ProgressInProgress ProgressStatus = "in_progress"
	ProgressCompleted  ProgressStatus = "completed"
	ProgressSkipped    ProgressStatus = "skipped"
)

// IsValid reports whether s is a known progress status.
func (s ProgressStatus) IsValid() bool {
	switch s {
	case ProgressNotStarted, ProgressInProgress, ProgressCompleted, ProgressSkipped:
		return true
	}
	return false
}

// StepProgress records a user's progress on one recovery step.
type StepProgress struct {
	ID          string // ULID
	UserID      string
	StepID      string
	Status      ProgressStatus
	CompletedAt *time.Time
	Notes       string
	CreatedAt   time.Time
}

// GovtScheme is a government support program, optionally tied to a category.
type GovtScheme struct {
	ID          string // ULID
	Category    *Category
	Name        string
	Description string
	Eligibility string
	Link        string
	State       string // specific state or "National"
	IsActive    bool
}

// HeritageContent is traditional wisdom attached to one trauma category.
type HeritageContent struct {
	ID                string // ULID
	Category          Category
	Title             string
	HistoricalContext string
	Practice          string
	RelevanceToday    string
	Source            string
}

// ModernContent is a contemporary solution attached to one trauma category.
type ModernContent struct {
	ID              string // ULID
	Category        Category
	Title           string
	Solution        string
	TherapyType     string // cbt, mindfulness, emdr, dbt, psychotherapy, group_therapy
	ScientificBasis string
	Resources       string
}
