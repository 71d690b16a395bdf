package model

import (
	"time"

	"github.com/google/uuid"
)

type Category string

const (
	CategoryTechnical       Category = "technical"
	CategoryBehavioral      Category = "behavioral"
	CategorySystemDesign    Category = "system_design"
	CategoryDomainKnowledge Category = "domain_knowledge"
	CategoryCommunication   Category = "communication"
)

// DefaultCategories is the category mix every generated session draws from.
func DefaultCategories() []Category {
	return []Category{
		CategoryTechnical,
		CategoryBehavioral,
		CategorySystemDesign,
		CategoryDomainKnowledge,
		CategoryCommunication,
	}
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

type Question struct {
	QuestionID     uuid.UUID  `json:"question_id" db:"question_id"`
	SessionID      uuid.UUID  `json:"session_id" db:"session_id"`
	QuestionNumber int        `json:"question_number" db:"question_number"`
	Category       Category   `json:"category" db:"category"`
	QuestionText   string     `json:"question_text" db:"question_text"`
	Options        []string   `json:"options,omitempty" db:"options"`
	CorrectAnswer  *string    `json:"-" db:"correct_answer"`
	Explanation    *string    `json:"explanation,omitempty" db:"explanation"`
	Difficulty     Difficulty `json:"difficulty" db:"difficulty"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
}

// NextQuestion is the trimmed-down view returned after an answer submission.
type NextQuestion struct {
	QuestionID   uuid.UUID  `json:"question_id"`
	QuestionText string     `json:"question_text"`
	Category     Category   `json:"category"`
	Difficulty   Difficulty `json:"difficulty"`
	Options      []string   `json:"options,omitempty"`
}
