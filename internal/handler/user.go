package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/srinivas0721/InterviewBot/internal/repository"
	"github.com/srinivas0721/InterviewBot/pkg"
	"github.com/srinivas0721/InterviewBot/pkg/model"
	"github.com/srinivas0721/InterviewBot/pkg/response"
)

// SignUp registers a new user and returns an access token so the client is
// logged in immediately.
func (h *Handler) SignUp(c *gin.Context) {
	var req model.SignUpReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	pwHash, err := pkg.HashPassword(req.Password)
	if err != nil {
		h.Logger.Error("failed to hash password", zap.Error(err))
		response.InternalError(c, "internal error")
		return
	}

	user := &model.User{
		Username:        req.Username,
		Email:           req.Email,
		PasswordHash:    pwHash,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		ExperienceLevel: req.ExperienceLevel,
		TargetCompanies: req.TargetCompanies,
		TargetRoles:     req.TargetRoles,
	}

	if err := h.Repo.CreateUser(ctx, user); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateEmail):
			response.Conflict(c, "email already registered")
		case errors.Is(err, repository.ErrDuplicateUsername):
			response.Conflict(c, "username already taken")
		default:
			h.Logger.Error("user create failed", zap.Error(err))
			response.InternalError(c, "could not create user")
		}
		return
	}

	token, claims, err := h.TokenMaker.GenerateToken(user.UserID, user.Email, h.AccessTokenTTL)
	if err != nil {
		h.Logger.Error("token generation failed", zap.Error(err))
		response.InternalError(c, "could not generate token")
		return
	}

	response.Created(c, model.AuthRes{
		AccessToken: token,
		ExpiresAt:   claims.RegisteredClaims.ExpiresAt.Time,
		User:        user.Res(),
	})
}

// Login verifies credentials and returns an access token.
func (h *Handler) Login(c *gin.Context) {
	var req model.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	user, err := h.Repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		response.Unauthorized(c, "invalid email or password")
		return
	}
	if err := pkg.ComparePassword(user.PasswordHash, req.Password); err != nil {
		response.Unauthorized(c, "invalid email or password")
		return
	}

	token, claims, err := h.TokenMaker.GenerateToken(user.UserID, user.Email, h.AccessTokenTTL)
	if err != nil {
		h.Logger.Error("token generation failed", zap.Error(err))
		response.InternalError(c, "could not generate token")
		return
	}

	response.OK(c, model.AuthRes{
		AccessToken: token,
		ExpiresAt:   claims.RegisteredClaims.ExpiresAt.Time,
		User:        user.Res(),
	})
}

// Me returns the current user's profile.
func (h *Handler) Me(c *gin.Context) {
	claims := h.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "unauthorized")
		return
	}

	user, err := h.Repo.GetUserByID(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Unauthorized(c, "unauthorized")
		return
	}

	response.OK(c, user.Res())
}

// Logout acknowledges the logout. Access tokens are stateless, so the client
// simply discards the token.
func (h *Handler) Logout(c *gin.Context) {
	response.Message(c, "logged out successfully")
}

// UpdateProfile replaces the user's interview preferences.
func (h *Handler) UpdateProfile(c *gin.Context) {
	claims := h.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "unauthorized")
		return
	}

	var req model.UpdateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	if err := h.Repo.UpdateUserProfile(ctx, claims.UserID, req); err != nil {
		h.Logger.Error("profile update failed", zap.Error(err))
		response.InternalError(c, "could not update profile")
		return
	}

	user, err := h.Repo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		response.InternalError(c, "could not load profile")
		return
	}

	response.OK(c, gin.H{"user": user.Res()})
}

// DeleteAccount removes the user and every session, question and answer they
// own.
func (h *Handler) DeleteAccount(c *gin.Context) {
	claims := h.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "unauthorized")
		return
	}

	ctx := c.Request.Context()
	if err := h.Repo.DeleteUser(ctx, claims.UserID); err != nil {
		h.Logger.Error("account deletion failed", zap.Error(err))
		response.InternalError(c, "could not delete account")
		return
	}

	h.Cache.InvalidateDashboard(ctx, claims.UserID)
	response.Message(c, "account deleted successfully")
}
