package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/srinivas0721/InterviewBot/pkg/model"
)

const questionColumns = `
question_id, session_id, question_number, category, question_text,
options, correct_answer, explanation, difficulty, created_at`

func scanQuestion(row pgx.Row) (model.Question, error) {
	var q model.Question
	err := row.Scan(
		&q.QuestionID, &q.SessionID, &q.QuestionNumber, &q.Category, &q.QuestionText,
		&q.Options, &q.CorrectAnswer, &q.Explanation, &q.Difficulty, &q.CreatedAt,
	)
	return q, err
}

// CreateQuestions batch-inserts a session's generated questions.
func (r *Repository) CreateQuestions(ctx context.Context, questions []model.Question) error {
	if len(questions) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	const q = `
INSERT INTO questions (
	question_id, session_id, question_number, category, question_text,
	options, correct_answer, explanation, difficulty, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now())
`
	for i := range questions {
		if questions[i].QuestionID == uuid.Nil {
			questions[i].QuestionID = uuid.New()
		}
		qs := questions[i]
		batch.Queue(q,
			qs.QuestionID, qs.SessionID, qs.QuestionNumber, qs.Category, qs.QuestionText,
			qs.Options, qs.CorrectAnswer, qs.Explanation, qs.Difficulty,
		)
	}

	br := r.db.SendBatch(ctx, batch)
	defer br.Close()

	for i := 0; i < len(questions); i++ {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("batch insert question %d: %w", i, err)
		}
	}
	return nil
}

func (r *Repository) GetQuestionByID(ctx context.Context, questionID uuid.UUID) (*model.Question, error) {
	q := `SELECT ` + questionColumns + ` FROM questions WHERE question_id = $1`
	qs, err := scanQuestion(r.db.QueryRow(ctx, q, questionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("question not found: %w", err)
		}
		return nil, fmt.Errorf("scan question: %w", err)
	}
	return &qs, nil
}

func (r *Repository) ListQuestionsBySession(ctx context.Context, sessionID uuid.UUID) ([]model.Question, error) {
	q := `SELECT ` + questionColumns + `
FROM questions WHERE session_id = $1 ORDER BY question_number ASC`
	rows, err := r.db.Query(ctx, q, sessionID)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}
	defer rows.Close()

	var out []model.Question
	for rows.Next() {
		qs, err := scanQuestion(rows)
		if err != nil {
			return nil, fmt.Errorf("scan question row: %w", err)
		}
		out = append(out, qs)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("rows error: %w", rows.Err())
	}
	return out, nil
}

func (r *Repository) CountQuestions(ctx context.Context, sessionID uuid.UUID) (int, error) {
	var count int
	const q = `SELECT COUNT(*) FROM questions WHERE session_id = $1`
	if err := r.db.QueryRow(ctx, q, sessionID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count questions: %w", err)
	}
	return count, nil
}

// NextQuestion returns the first question numbered above afterNumber, or nil
// when the session has none left.
func (r *Repository) NextQuestion(ctx context.Context, sessionID uuid.UUID, afterNumber int) (*model.Question, error) {
	q := `SELECT ` + questionColumns + `
FROM questions
WHERE session_id = $1 AND question_number > $2
ORDER BY question_number ASC
LIMIT 1`
	qs, err := scanQuestion(r.db.QueryRow(ctx, q, sessionID, afterNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan next question: %w", err)
	}
	return &qs, nil
}
