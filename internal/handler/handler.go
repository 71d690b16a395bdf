package handler

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/srinivas0721/InterviewBot/internal/ai"
	"github.com/srinivas0721/InterviewBot/internal/auth"
	"github.com/srinivas0721/InterviewBot/internal/cache"
	"github.com/srinivas0721/InterviewBot/internal/interview"
	"github.com/srinivas0721/InterviewBot/pkg/model"
)

// ClaimsKey is the gin context key the auth middleware stores claims under.
const ClaimsKey = "claims"

// Store is the persistence surface the handlers depend on. Satisfied by
// *repository.Repository; tests substitute an in-memory fake.
type Store interface {
	CreateUser(ctx context.Context, u *model.User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (model.User, error)
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
	UpdateUserProfile(ctx context.Context, id uuid.UUID, req model.UpdateProfileReq) error
	DeleteUser(ctx context.Context, id uuid.UUID) error

	CreateSession(ctx context.Context, s *model.Session) error
	GetUserSession(ctx context.Context, sessionID, userID uuid.UUID) (*model.Session, error)
	GetSessionByShareToken(ctx context.Context, token string) (*model.Session, error)
	ListSessionsByUser(ctx context.Context, userID uuid.UUID) ([]model.Session, error)
	ListRecentCompleted(ctx context.Context, userID uuid.UUID, limit int) ([]model.Session, error)
	ListCompletedSessions(ctx context.Context, userID uuid.UUID) ([]model.Session, error)
	ListCompletedSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]model.Session, error)
	UpdateSession(ctx context.Context, sessionID uuid.UUID, updates map[string]interface{}) error
	DeleteSession(ctx context.Context, sessionID uuid.UUID) error

	CreateQuestions(ctx context.Context, questions []model.Question) error
	GetQuestionByID(ctx context.Context, questionID uuid.UUID) (*model.Question, error)
	ListQuestionsBySession(ctx context.Context, sessionID uuid.UUID) ([]model.Question, error)
	CountQuestions(ctx context.Context, sessionID uuid.UUID) (int, error)
	NextQuestion(ctx context.Context, sessionID uuid.UUID, afterNumber int) (*model.Question, error)

	CreateAnswer(ctx context.Context, a *model.Answer) error
	ListAnswersBySession(ctx context.Context, sessionID uuid.UUID) ([]model.Answer, error)
	CountAnswers(ctx context.Context, sessionID uuid.UUID) (int, error)
	SumTimeSpent(ctx context.Context, userID uuid.UUID) (int, error)
}

type Handler struct {
	Logger         *zap.Logger
	Repo           Store
	Engine         *interview.Engine
	AI             *ai.Client
	Cache          *cache.Cache
	TokenMaker     *auth.JWTMaker
	AccessTokenTTL time.Duration
	ShareBaseURL   string
}

// GetClaimsFromContext retrieves the verified token claims placed in the
// context by the auth middleware. Returns nil on unauthenticated requests.
func (h *Handler) GetClaimsFromContext(c *gin.Context) *auth.UserClaims {
	val, exists := c.Get(ClaimsKey)
	if !exists {
		return nil
	}
	claims, ok := val.(*auth.UserClaims)
	if !ok {
		return nil
	}
	return claims
}
