package dto

// MoodLogRequest represents a mood log submission.
// @Description Daily mood entry, 1 (very bad) to 5 (very good)
type MoodLogRequest struct {
	UserID string `json:"user_id"`
	Score  int    `json:"mood_score"`
	Note   string `json:"note,omitempty"`
}

// MoodLogResponse represents a stored mood log entry.
type MoodLogResponse struct {
	ID        string `json:"id"`
	Score     int    `json:"mood_score"`
	Note      string `json:"note,omitempty"`
	CreatedAt string `json:"created_at"`
}

// MoodHistoryResponse wraps a user's recent mood logs.
type MoodHistoryResponse struct {
	Logs []MoodLogResponse `json:"mood_logs"`
}

// AlertResponse represents an unresolved alert.
type AlertResponse struct {
	ID          string `json:"id"`
	AlertType   string `json:"alert_type"`
	Severity    string `json:"severity"`
	Message     string `json:"message"`
	TriggeredAt string `json:"triggered_at"`
}

// AlertListResponse wraps a user's unresolved alerts.
type AlertListResponse struct {
	Alerts []AlertResponse `json:"alerts"`
}

// StepProgressResponse is the user's progress on one recovery step.
type StepProgressResponse struct {
	Status      string `json:"status"`
	CompletedAt string `json:"completed_at,omitempty"`
}

// RecoveryStepResponse is one activity within a recovery plan.
type RecoveryStepResponse struct {
	ID              string               `json:"id"`
	DayNumber       int                  `json:"day_number"`
	ActivityType    string               `json:"activity_type"`
	Title           string               `json:"title"`
	Content         string               `json:"content"`
	Resources       string               `json:"resources,omitempty"`
	DurationMinutes int                  `json:"estimated_duration_minutes"`
	Progress        StepProgressResponse `json:"progress"`
}

// RecoveryProgramResponse describes the program of a recovery plan.
type RecoveryProgramResponse struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	DurationDays int    `json:"duration_days"`
	Difficulty   string `json:"difficulty_level"`
	Category     string `json:"trauma_type"`
}

// RecoveryPlanResponse is a personalized recovery plan.
type RecoveryPlanResponse struct {
	Program RecoveryProgramResponse `json:"program"`
	Steps   []RecoveryStepResponse  `json:"steps"`
}

// UpdateProgressRequest updates a user's progress on a recovery step.
type UpdateProgressRequest struct {
	UserID string `json:"user_id"`
	StepID string `json:"step_id"`
	Status string `json:"status"`
	Notes  string `json:"notes,omitempty"`
}

// SchemeResponse represents one government support scheme.
type SchemeResponse struct {
	ID          string `json:"id"`
	Name        string `json:"scheme_name"`
	Description string `json:"description"`
	Eligibility string `json:"eligibility"`
	Link        string `json:"link"`
	State       string `json:"state,omitempty"`
	Category    string `json:"trauma_type,omitempty"`
}

// SchemeListResponse wraps active government schemes.
type SchemeListResponse struct {
	Schemes []SchemeResponse `json:"schemes"`
}

// HeritageContentResponse is one heritage wisdom entry.
type HeritageContentResponse struct {
	ID                string `json:"id"`
	Title             string `json:"title"`
	HistoricalContext string `json:"historical_context"`
	Practice          string `json:"practice"`
	RelevanceToday    string `json:"relevance_today"`
	Source            string `json:"source,omitempty"`
}

// ModernContentResponse is one modern solution entry.
type ModernContentResponse struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Solution        string `json:"modern_solution"`
	TherapyType     string `json:"therapy_type,omitempty"`
	ScientificBasis string `json:"scientific_basis"`
	Resources       string `json:"resources,omitempty"`
}
