package model

import (
	"time"

	"github.com/google/uuid"
)

type InterviewMode string

const (
	ModeSubjective InterviewMode = "subjective"
	ModeVoice      InterviewMode = "voice"
)

type SessionStatus string

const (
	StatusInProgress SessionStatus = "in_progress"
	StatusCompleted  SessionStatus = "completed"
	StatusAbandoned  SessionStatus = "abandoned"
)

type Session struct {
	SessionID       uuid.UUID          `json:"session_id" db:"session_id"`
	UserID          uuid.UUID          `json:"user_id" db:"user_id"`
	Mode            InterviewMode      `json:"mode" db:"mode"`
	Company         string             `json:"company" db:"company"`
	Role            string             `json:"role" db:"role"`
	Status          SessionStatus      `json:"status" db:"status"`
	TotalQuestions  int                `json:"total_questions" db:"total_questions"`
	CurrentQuestion int                `json:"current_question" db:"current_question"`
	OverallScore    *float64           `json:"overall_score" db:"overall_score"`
	CategoryScores  map[string]float64 `json:"category_scores" db:"category_scores"`
	Strengths       []string           `json:"strengths" db:"strengths"`
	Weaknesses      []string           `json:"weaknesses" db:"weaknesses"`
	Recommendations []string           `json:"recommendations" db:"recommendations"`
	ShareToken      *string            `json:"share_token" db:"share_token"`
	CompletedAt     *time.Time         `json:"completed_at" db:"completed_at"`
	CreatedAt       time.Time          `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at" db:"updated_at"`
}

type CreateSessionReq struct {
	Mode           InterviewMode `json:"mode" binding:"required,oneof=subjective voice"`
	Company        string        `json:"company" binding:"required"`
	Role           string        `json:"role" binding:"required"`
	TotalQuestions int           `json:"total_questions" binding:"omitempty,min=1,max=50"`
}

type RecentSessionsQuery struct {
	Limit int `form:"limit,default=5" binding:"omitempty,min=1,max=50"`
}

// DetailedResult pairs a question with the answer given to it, if any.
type DetailedResult struct {
	Question Question `json:"question"`
	Answer   *Answer  `json:"answer"`
}

type SessionResults struct {
	Session         Session            `json:"session"`
	DetailedResults []DetailedResult   `json:"detailed_results"`
	OverallScore    float64            `json:"overall_score"`
	CategoryScores  map[string]float64 `json:"category_scores"`
	Strengths       []string           `json:"strengths"`
	Weaknesses      []string           `json:"weaknesses"`
	Recommendations []string           `json:"recommendations"`
	Summary         SessionSummary     `json:"summary"`
}

type SessionSummary struct {
	TotalQuestions    int                `json:"total_questions"`
	AnsweredQuestions int                `json:"answered_questions"`
	OverallScore      *float64           `json:"overall_score"`
	CategoryScores    map[string]float64 `json:"category_scores"`
	Strengths         []string           `json:"strengths"`
	Weaknesses        []string           `json:"weaknesses"`
	Recommendations   []string           `json:"recommendations"`
}

type SharedSession struct {
	Session         Session            `json:"session"`
	CandidateName   string             `json:"candidate_name"`
	OverallScore    float64            `json:"overall_score"`
	CategoryScores  map[string]float64 `json:"category_scores"`
	Strengths       []string           `json:"strengths"`
	Weaknesses      []string           `json:"weaknesses"`
	Recommendations []string           `json:"recommendations"`
}
