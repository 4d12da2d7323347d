package models

import (
	"database/sql"
	"time"
)

// MoodLog is the row model for the mood_logs table.
type MoodLog struct {
	ID        string         `db:"id"`
	UserID    string         `db:"user_id"`
	Score     int            `db:"score"`
	Note      sql.NullString `db:"note"`
	CreatedAt time.Time      `db:"created_at"`
}

func (MoodLog) TableName() string {
	return "mood_logs"
}

// Alert is the row model for the alerts table.
type Alert struct {
	ID          string       `db:"id"`
	UserID      string       `db:"user_id"`
	AlertType   string       `db:"alert_type"`
	Severity    string       `db:"severity"`
	Message     string       `db:"message"`
	TriggeredAt time.Time    `db:"triggered_at"`
	Resolved    int          `db:"resolved"`
	ResolvedAt  sql.NullTime `db:"resolved_at"`
}

func (Alert) TableName() string {
	return "alerts"
}

// RecoveryProgram is the row model for the recovery_programs table.
type RecoveryProgram struct {
	ID           string       `db:"id"`
	Category     string       `db:"category"`
	Title        string       `db:"title"`
	Description  string       `db:"description"`
	DurationDays int          `db:"duration_days"`
	Difficulty   string       `db:"difficulty"`
	IsActive     int          `db:"is_active"`
	CreatedAt    time.Time    `db:"created_at"`
	DeletedAt    sql.NullTime `db:"deleted_at"`
}

func (RecoveryProgram) TableName() string {
	return "recovery_programs"
}

// RecoveryStep is the row model for the recovery_steps table.
type RecoveryStep struct {
	ID              string         `db:"id"`
	ProgramID       string         `db:"program_id"`
	DayNumber       int            `db:"day_number"`
	ActivityType    string         `db:"activity_type"`
	Title           string         `db:"title"`
	Content         string         `db:"content"`
	Resources       sql.NullString `db:"resources"`
	DurationMinutes int            `db:"duration_minutes"`
}

func (RecoveryStep) TableName() string {
	return "recovery_steps"
}

// StepProgress is the row model for the step_progress table. One row per
// (user, step) pair.
type StepProgress struct {
	ID          string         `db:"id"`
	UserID      string         `db:"user_id"`
	StepID      string         `db:"step_id"`
	Status      string         `db:"status"`
	CompletedAt sql.NullTime   `db:"completed_at"`
	Notes       sql.NullString `db:"notes"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

func (StepProgress) TableName() string {
	return "step_progress"
}

// GovtScheme is the row model for the govt_schemes table.
type GovtScheme struct {
	ID          string         `db:"id"`
	Category    sql.NullString `db:"category"`
	Name        string         `db:"name"`
	Description string         `db:"description"`
	Eligibility sql.NullString `db:"eligibility"`
	Link        sql.NullString `db:"link"`
	State       string         `db:"state"`
	IsActive    int            `db:"is_active"`
}

func (GovtScheme) TableName() string {
	return "govt_schemes"
}

// HeritageContent is the row model for the heritage_content table.
type HeritageContent struct {
	ID                string         `db:"id"`
	Category          string         `db:"category"`
	Title             string         `db:"title"`
	HistoricalContext string         `db:"historical_context"`
	Practice          string         `db:"practice"`
	RelevanceToday    sql.NullString `db:"relevance_today"`
	Source            sql.NullString `db:"source"`
}

func (HeritageContent) TableName() string {
	return "heritage_content"
}

// ModernContent is the row model for the modern_content table.
type ModernContent struct {
	ID              string         `db:"id"`
	Category        string         `db:"category"`
	Title           string         `db:"title"`
	Solution        string         `db:"solution"`
	TherapyType     string         `db:"therapy_type"`
	ScientificBasis sql.NullString `db:"scientific_basis"`
	Resources       sql.NullString `db:"resources"`
}

func (ModernContent) TableName() string {
	return "modern_content"
}
