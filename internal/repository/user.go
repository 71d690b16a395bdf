package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/srinivas0721/InterviewBot/pkg/model"
)

// ErrDuplicateEmail and ErrDuplicateUsername surface unique violations so
// handlers can answer with something better than a bare 500.
var (
	ErrDuplicateEmail    = errors.New("email already exists")
	ErrDuplicateUsername = errors.New("username already taken")
)

const userColumns = `
user_id, username, email, password_hash, first_name, last_name,
profile_image_url, experience_level, target_companies, target_roles,
created_at, updated_at`

func scanUser(row pgx.Row) (model.User, error) {
	var u model.User
	err := row.Scan(
		&u.UserID, &u.Username, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName,
		&u.ProfileImageURL, &u.ExperienceLevel, &u.TargetCompanies, &u.TargetRoles,
		&u.CreatedAt, &u.UpdatedAt,
	)
	return u, err
}

// CreateUser inserts a new user and fills in the generated id.
func (r *Repository) CreateUser(ctx context.Context, u *model.User) error {
	u.UserID = uuid.New()
	const q = `
INSERT INTO users (
	user_id, username, email, password_hash, first_name, last_name,
	profile_image_url, experience_level, target_companies, target_roles,
	created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now(), now())
`
	_, err := r.db.Exec(ctx, q,
		u.UserID, u.Username, u.Email, u.PasswordHash, u.FirstName, u.LastName,
		u.ProfileImageURL, u.ExperienceLevel, u.TargetCompanies, u.TargetRoles,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		// PostgreSQL unique_violation code is "23505"
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if strings.Contains(pgErr.ConstraintName, "username") {
				return ErrDuplicateUsername
			}
			return ErrDuplicateEmail
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *Repository) GetUserByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	q := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`
	u, err := scanUser(r.db.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, fmt.Errorf("user not found: %w", err)
		}
		return model.User{}, fmt.Errorf("scan user by id: %w", err)
	}
	return u, nil
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	q := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	u, err := scanUser(r.db.QueryRow(ctx, q, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, fmt.Errorf("user not found: %w", err)
		}
		return model.User{}, fmt.Errorf("scan user by email: %w", err)
	}
	return u, nil
}

func (r *Repository) UpdateUserProfile(ctx context.Context, id uuid.UUID, req model.UpdateProfileReq) error {
	const q = `
UPDATE users
SET experience_level = $2, target_companies = $3, target_roles = $4, updated_at = now()
WHERE user_id = $1
`
	tag, err := r.db.Exec(ctx, q, id, req.ExperienceLevel, req.TargetCompanies, req.TargetRoles)
	if err != nil {
		return fmt.Errorf("update user profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user not found")
	}
	return nil
}

// DeleteUser removes a user and every row that hangs off them.
func (r *Repository) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return r.execTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM answers WHERE user_id = $1`, id); err != nil {
			return fmt.Errorf("delete answers: %w", err)
		}
		if _, err := tx.Exec(ctx, `
DELETE FROM questions WHERE session_id IN (SELECT session_id FROM interview_sessions WHERE user_id = $1)`, id); err != nil {
			return fmt.Errorf("delete questions: %w", err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM interview_sessions WHERE user_id = $1`, id); err != nil {
			return fmt.Errorf("delete sessions: %w", err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM users WHERE user_id = $1`, id); err != nil {
			return fmt.Errorf("delete user: %w", err)
		}
		return nil
	})
}
