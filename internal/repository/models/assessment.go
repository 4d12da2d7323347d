package models

import (
	"database/sql"
	"time"
)

// Question is the row model for the questions table. Option labels are
// stored as a single delimited column on Oracle.
type Question struct {
	ID         int64        `db:"id"`
	Category   string       `db:"category"`
	Text       string       `db:"text"`
	Options    string       `db:"options"`
	OrderNum   int          `db:"order_num"`
	Weight     float64      `db:"weight"`
	IsCritical int          `db:"is_critical"`
	CreatedAt  time.Time    `db:"created_at"`
	UpdatedAt  time.Time    `db:"updated_at"`
	DeletedAt  sql.NullTime `db:"deleted_at"`
}

func (Question) TableName() string {
	return "questions"
}

// UserAnswer is the row model for the user_answers table. One row per
// (user, question) pair; re-evaluations overwrite in place.
type UserAnswer struct {
	ID         string    `db:"id"`
	UserID     string    `db:"user_id"`
	QuestionID int64     `db:"question_id"`
	Answer     string    `db:"answer"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

func (UserAnswer) TableName() string {
	return "user_answers"
}

// TraumaScore is the row model for the trauma_scores table.
type TraumaScore struct {
	ID              string    `db:"id"`
	UserID          string    `db:"user_id"`
	Category        string    `db:"category"`
	ScorePercentage float64   `db:"score_percentage"`
	SeverityLevel   string    `db:"severity_level"`
	CreatedAt       time.Time `db:"created_at"`
}

func (TraumaScore) TableName() string {
	return "trauma_scores"
}

// DominantTrauma is the row model for the dominant_traumas table. One row
// per user, replaced on each completed evaluation.
type DominantTrauma struct {
	ID                string         `db:"id"`
	UserID            string         `db:"user_id"`
	PrimaryCategory   string         `db:"primary_category"`
	SecondaryCategory sql.NullString `db:"secondary_category"`
	Confidence        float64        `db:"confidence"`
	CreatedAt         time.Time      `db:"created_at"`
	UpdatedAt         time.Time      `db:"updated_at"`
}

func (DominantTrauma) TableName() string {
	return "dominant_traumas"
}
