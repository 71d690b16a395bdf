package model

import (
	"time"

	"github.com/google/uuid"
)

type ExperienceLevel string

const (
	ExperienceFresher  ExperienceLevel = "fresher"
	ExperienceMidLevel ExperienceLevel = "mid-level"
	ExperienceSenior   ExperienceLevel = "senior"
)

type User struct {
	UserID          uuid.UUID        `json:"user_id" db:"user_id"`
	Username        string           `json:"username" db:"username"`
	Email           string           `json:"email" db:"email"`
	PasswordHash    string           `json:"-" db:"password_hash"`
	FirstName       *string          `json:"first_name" db:"first_name"`
	LastName        *string          `json:"last_name" db:"last_name"`
	ProfileImageURL *string          `json:"profile_image_url" db:"profile_image_url"`
	ExperienceLevel *ExperienceLevel `json:"experience_level" db:"experience_level"`
	TargetCompanies []string         `json:"target_companies" db:"target_companies"`
	TargetRoles     []string         `json:"target_roles" db:"target_roles"`
	CreatedAt       time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at" db:"updated_at"`
}

type SignUpReq struct {
	Username        string           `json:"username" binding:"required,min=3"`
	Email           string           `json:"email" binding:"required,email"`
	Password        string           `json:"password" binding:"required,min=6"`
	FirstName       *string          `json:"first_name"`
	LastName        *string          `json:"last_name"`
	ExperienceLevel *ExperienceLevel `json:"experience_level" binding:"omitempty,oneof=fresher mid-level senior"`
	TargetCompanies []string         `json:"target_companies"`
	TargetRoles     []string         `json:"target_roles"`
}

type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type UpdateProfileReq struct {
	ExperienceLevel ExperienceLevel `json:"experience_level" binding:"required,oneof=fresher mid-level senior"`
	TargetCompanies []string        `json:"target_companies"`
	TargetRoles     []string        `json:"target_roles"`
}

type UserRes struct {
	UserID          uuid.UUID        `json:"user_id"`
	Username        string           `json:"username"`
	Email           string           `json:"email"`
	FirstName       *string          `json:"first_name"`
	LastName        *string          `json:"last_name"`
	ProfileImageURL *string          `json:"profile_image_url"`
	ExperienceLevel *ExperienceLevel `json:"experience_level"`
	TargetCompanies []string         `json:"target_companies"`
	TargetRoles     []string         `json:"target_roles"`
	CreatedAt       time.Time        `json:"created_at"`
}

func (u *User) Res() UserRes {
	return UserRes{
		UserID:          u.UserID,
		Username:        u.Username,
		Email:           u.Email,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		ProfileImageURL: u.ProfileImageURL,
		ExperienceLevel: u.ExperienceLevel,
		TargetCompanies: u.TargetCompanies,
		TargetRoles:     u.TargetRoles,
		CreatedAt:       u.CreatedAt,
	}
}

type AuthRes struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
	User        UserRes   `json:"user"`
}
