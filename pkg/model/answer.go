package model

import (
	"time"

	"github.com/google/uuid"
)

type AnswerType string

const (
	AnswerSubjective AnswerType = "subjective"
	AnswerVoice      AnswerType = "voice"
)

type Answer struct {
	AnswerID          uuid.UUID          `json:"answer_id" db:"answer_id"`
	QuestionID        uuid.UUID          `json:"question_id" db:"question_id"`
	SessionID         uuid.UUID          `json:"session_id" db:"session_id"`
	UserID            uuid.UUID          `json:"user_id" db:"user_id"`
	AnswerType        AnswerType         `json:"answer_type" db:"answer_type"`
	SubjectiveAnswer  *string            `json:"subjective_answer" db:"subjective_answer"`
	VoiceTranscript   *string            `json:"voice_transcript" db:"voice_transcript"`
	AudioFileURL      *string            `json:"audio_file_url" db:"audio_file_url"`
	MCQAnswer         *string            `json:"mcq_answer,omitempty" db:"mcq_answer"`
	IsCorrect         *bool              `json:"is_correct,omitempty" db:"is_correct"`
	Score             *float64           `json:"score" db:"score"`
	Feedback          *string            `json:"feedback" db:"feedback"`
	CorrectedAnswer   *string            `json:"corrected_answer" db:"corrected_answer"`
	MissingPoints     *string            `json:"missing_points" db:"missing_points"`
	TimeSpent         *int               `json:"time_spent" db:"time_spent"`
	EvaluationDetails map[string]float64 `json:"evaluation_details" db:"evaluation_details"`
	CreatedAt         time.Time          `json:"created_at" db:"created_at"`
}

// Text returns whichever answer body was submitted, preferring typed text.
func (a *Answer) Text() string {
	if a.SubjectiveAnswer != nil && *a.SubjectiveAnswer != "" {
		return *a.SubjectiveAnswer
	}
	if a.VoiceTranscript != nil {
		return *a.VoiceTranscript
	}
	return ""
}

type SubmitAnswerReq struct {
	QuestionID       uuid.UUID  `json:"question_id" binding:"required"`
	AnswerType       AnswerType `json:"answer_type" binding:"required,oneof=subjective voice"`
	SubjectiveAnswer *string    `json:"subjective_answer"`
	VoiceTranscript  *string    `json:"voice_transcript"`
	AudioFileURL     *string    `json:"audio_file_url"`
	TimeSpent        *int       `json:"time_spent" binding:"omitempty,min=0"`
}

// Text returns the submitted answer body, preferring typed text over transcript.
func (r *SubmitAnswerReq) Text() string {
	if r.SubjectiveAnswer != nil && *r.SubjectiveAnswer != "" {
		return *r.SubjectiveAnswer
	}
	if r.VoiceTranscript != nil {
		return *r.VoiceTranscript
	}
	return ""
}

type Progress struct {
	Current   int  `json:"current"`
	Total     int  `json:"total"`
	Completed bool `json:"completed"`
}

type SubmitAnswerRes struct {
	Evaluation    EvaluationRes      `json:"evaluation"`
	NextQuestion  *NextQuestion      `json:"next_question"`
	Progress      Progress           `json:"progress"`
	CurrentScores map[string]float64 `json:"current_scores"`
}

type EvaluationRes struct {
	Score             float64            `json:"score"`
	Feedback          string             `json:"feedback"`
	CorrectedAnswer   string             `json:"corrected_answer"`
	MissingPoints     string             `json:"missing_points"`
	EvaluationDetails map[string]float64 `json:"evaluation_details"`
}
