package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/srinivas0721/InterviewBot/pkg/model"
)

const answerColumns = `
answer_id, question_id, session_id, user_id, answer_type, subjective_answer,
mcq_answer, voice_transcript, audio_file_url, is_correct, score, feedback,
corrected_answer, missing_points, time_spent, evaluation_details, created_at`

func scanAnswer(row pgx.Row) (model.Answer, error) {
	var a model.Answer
	err := row.Scan(
		&a.AnswerID, &a.QuestionID, &a.SessionID, &a.UserID, &a.AnswerType, &a.SubjectiveAnswer,
		&a.MCQAnswer, &a.VoiceTranscript, &a.AudioFileURL, &a.IsCorrect, &a.Score, &a.Feedback,
		&a.CorrectedAnswer, &a.MissingPoints, &a.TimeSpent, &a.EvaluationDetails, &a.CreatedAt,
	)
	return a, err
}

// CreateAnswer stores a submitted answer together with its evaluation.
func (r *Repository) CreateAnswer(ctx context.Context, a *model.Answer) error {
	a.AnswerID = uuid.New()
	const q = `
INSERT INTO answers (
	answer_id, question_id, session_id, user_id, answer_type, subjective_answer,
	mcq_answer, voice_transcript, audio_file_url, is_correct, score, feedback,
	corrected_answer, missing_points, time_spent, evaluation_details, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, now())
`
	_, err := r.db.Exec(ctx, q,
		a.AnswerID, a.QuestionID, a.SessionID, a.UserID, a.AnswerType, a.SubjectiveAnswer,
		a.MCQAnswer, a.VoiceTranscript, a.AudioFileURL, a.IsCorrect, a.Score, a.Feedback,
		a.CorrectedAnswer, a.MissingPoints, a.TimeSpent, a.EvaluationDetails,
	)
	if err != nil {
		return fmt.Errorf("insert answer: %w", err)
	}
	return nil
}

func (r *Repository) ListAnswersBySession(ctx context.Context, sessionID uuid.UUID) ([]model.Answer, error) {
	q := `SELECT ` + answerColumns + `
FROM answers WHERE session_id = $1 ORDER BY created_at ASC`
	rows, err := r.db.Query(ctx, q, sessionID)
	if err != nil {
		return nil, fmt.Errorf("query answers: %w", err)
	}
	defer rows.Close()

	var out []model.Answer
	for rows.Next() {
		a, err := scanAnswer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan answer row: %w", err)
		}
		out = append(out, a)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("rows error: %w", rows.Err())
	}
	return out, nil
}

func (r *Repository) CountAnswers(ctx context.Context, sessionID uuid.UUID) (int, error) {
	var count int
	const q = `SELECT COUNT(*) FROM answers WHERE session_id = $1`
	if err := r.db.QueryRow(ctx, q, sessionID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count answers: %w", err)
	}
	return count, nil
}

// SumTimeSpent totals the time_spent recorded on a user's answers across all
// sessions, in whatever unit the client reported.
func (r *Repository) SumTimeSpent(ctx context.Context, userID uuid.UUID) (int, error) {
	var total int
	const q = `SELECT COALESCE(SUM(time_spent), 0) FROM answers WHERE user_id = $1`
	if err := r.db.QueryRow(ctx, q, userID).Scan(&total); err != nil {
		return 0, fmt.Errorf("sum time spent: %w", err)
	}
	return total, nil
}
