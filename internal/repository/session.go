package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/srinivas0721/InterviewBot/pkg/model"
)

const sessionColumns = `
session_id, user_id, mode, company, role, status, total_questions,
current_question, overall_score, category_scores, strengths, weaknesses,
recommendations, share_token, completed_at, created_at, updated_at`

func scanSession(row pgx.Row) (model.Session, error) {
	var s model.Session
	err := row.Scan(
		&s.SessionID, &s.UserID, &s.Mode, &s.Company, &s.Role, &s.Status, &s.TotalQuestions,
		&s.CurrentQuestion, &s.OverallScore, &s.CategoryScores, &s.Strengths, &s.Weaknesses,
		&s.Recommendations, &s.ShareToken, &s.CompletedAt, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

// CreateSession inserts a new in-progress session and fills in the generated id.
func (r *Repository) CreateSession(ctx context.Context, s *model.Session) error {
	s.SessionID = uuid.New()
	const q = `
INSERT INTO interview_sessions (
	session_id, user_id, mode, company, role, status, total_questions,
	current_question, category_scores, strengths, weaknesses, recommendations,
	created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, 0, '{}', '[]', '[]', '[]', now(), now())
`
	_, err := r.db.Exec(ctx, q,
		s.SessionID, s.UserID, s.Mode, s.Company, s.Role, s.Status, s.TotalQuestions,
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

// GetUserSession returns a session only if it belongs to the given user.
func (r *Repository) GetUserSession(ctx context.Context, sessionID, userID uuid.UUID) (*model.Session, error) {
	q := `SELECT ` + sessionColumns + ` FROM interview_sessions WHERE session_id = $1 AND user_id = $2`
	s, err := scanSession(r.db.QueryRow(ctx, q, sessionID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("session not found: %w", err)
		}
		return nil, fmt.Errorf("scan session: %w", err)
	}
	return &s, nil
}

func (r *Repository) GetSessionByShareToken(ctx context.Context, token string) (*model.Session, error) {
	q := `SELECT ` + sessionColumns + `
FROM interview_sessions WHERE share_token = $1 AND status = 'completed'`
	s, err := scanSession(r.db.QueryRow(ctx, q, token))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("shared session not found: %w", err)
		}
		return nil, fmt.Errorf("scan shared session: %w", err)
	}
	return &s, nil
}

func (r *Repository) ListSessionsByUser(ctx context.Context, userID uuid.UUID) ([]model.Session, error) {
	q := `SELECT ` + sessionColumns + `
FROM interview_sessions WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var out []model.Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("scan session row: %w", err)
		}
		out = append(out, s)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("rows error: %w", rows.Err())
	}
	return out, nil
}

// ListRecentCompleted returns the most recently finished sessions for a user.
func (r *Repository) ListRecentCompleted(ctx context.Context, userID uuid.UUID, limit int) ([]model.Session, error) {
	q := `SELECT ` + sessionColumns + `
FROM interview_sessions
WHERE user_id = $1 AND status = 'completed'
ORDER BY completed_at DESC
LIMIT $2`
	rows, err := r.db.Query(ctx, q, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent sessions: %w", err)
	}
	defer rows.Close()

	out := make([]model.Session, 0, limit)
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("scan session row: %w", err)
		}
		out = append(out, s)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("rows error: %w", rows.Err())
	}
	return out, nil
}

// UpdateSession applies a partial update limited to a column whitelist.
func (r *Repository) UpdateSession(ctx context.Context, sessionID uuid.UUID, updates map[string]interface{}) error {
	validCols := map[string]bool{
		"status": true, "current_question": true, "overall_score": true,
		"category_scores": true, "strengths": true, "weaknesses": true,
		"recommendations": true, "share_token": true, "completed_at": true,
	}

	query := "UPDATE interview_sessions SET updated_at = now()"
	args := []interface{}{}

	for col, val := range updates {
		if !validCols[col] {
			continue
		}
		query += fmt.Sprintf(", %s = $%d", col, len(args)+1)
		args = append(args, val)
	}

	query += fmt.Sprintf(" WHERE session_id = $%d", len(args)+1)
	args = append(args, sessionID)

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("session not found")
	}
	return nil
}

// DeleteSession removes a session with its questions and answers.
func (r *Repository) DeleteSession(ctx context.Context, sessionID uuid.UUID) error {
	return r.execTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM answers WHERE session_id = $1`, sessionID); err != nil {
			return fmt.Errorf("delete answers: %w", err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM questions WHERE session_id = $1`, sessionID); err != nil {
			return fmt.Errorf("delete questions: %w", err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM interview_sessions WHERE session_id = $1`, sessionID); err != nil {
			return fmt.Errorf("delete session: %w", err)
		}
		return nil
	})
}
