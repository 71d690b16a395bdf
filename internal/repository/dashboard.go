package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/srinivas0721/InterviewBot/pkg/model"
)

// ListCompletedSessions returns every finished session for a user, oldest first,
// which is the order the dashboard trend math expects.
func (r *Repository) ListCompletedSessions(ctx context.Context, userID uuid.UUID) ([]model.Session, error) {
	q := `SELECT ` + sessionColumns + `
FROM interview_sessions
WHERE user_id = $1 AND status = 'completed'
ORDER BY created_at ASC`
	rows, err := r.db.Query(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("query completed sessions: %w", err)
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

// ListCompletedSince returns finished sessions created at or after the cutoff.
func (r *Repository) ListCompletedSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]model.Session, error) {
	q := `SELECT ` + sessionColumns + `
FROM interview_sessions
WHERE user_id = $1 AND status = 'completed' AND created_at >= $2
ORDER BY created_at ASC`
	rows, err := r.db.Query(ctx, q, userID, since)
	if err != nil {
		return nil, fmt.Errorf("query sessions since: %w", err)
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
