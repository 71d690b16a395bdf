package interview

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/srinivas0721/InterviewBot/pkg/model"
)

// Store is the slice of the persistence layer the engine needs to finalize a
// session. Satisfied by *repository.Repository.
type Store interface {
	ListQuestionsBySession(ctx context.Context, sessionID uuid.UUID) ([]model.Question, error)
	ListAnswersBySession(ctx context.Context, sessionID uuid.UUID) ([]model.Answer, error)
	UpdateSession(ctx context.Context, sessionID uuid.UUID, updates map[string]interface{}) error
	GetUserSession(ctx context.Context, sessionID, userID uuid.UUID) (*model.Session, error)
}

// Advisor produces improvement recommendations from a finished scorecard.
// Implemented by the AI client; the engine falls back to canned advice when
// the advisor fails.
type Advisor interface {
	GenerateRecommendations(ctx context.Context, overall float64, categoryScores map[string]float64, strengths, weaknesses []string) ([]string, error)
}

// Engine drives the session lifecycle: it aggregates answer scores into the
// final scorecard and persists the completed session.
type Engine struct {
	repo    Store
	advisor Advisor
	logger  *zap.Logger
}

func NewEngine(repo Store, advisor Advisor, logger *zap.Logger) *Engine {
	return &Engine{repo: repo, advisor: advisor, logger: logger}
}

func fallbackRecommendations() []string {
	return []string{
		"Focus on explaining technical concepts with specific examples",
		"Practice structuring answers with clear problem-solution approach",
		"Study the specific technologies mentioned in your target roles",
		"Improve confidence by practicing similar interview questions",
	}
}

// Finalize computes the scorecard for a session, gathers recommendations and
// marks the session completed. It is idempotent: finalizing an already
// completed session recomputes the same result from the stored answers.
func (e *Engine) Finalize(ctx context.Context, session *model.Session) (*model.Session, error) {
	questions, err := e.repo.ListQuestionsBySession(ctx, session.SessionID)
	if err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}
	answers, err := e.repo.ListAnswersBySession(ctx, session.SessionID)
	if err != nil {
		return nil, fmt.Errorf("load answers: %w", err)
	}

	card := BuildScorecard(questions, answers)

	recommendations := []string{"Complete the interview to receive proper feedback"}
	if len(answers) > 0 {
		recommendations, err = e.advisor.GenerateRecommendations(ctx, card.Overall, card.CategoryScores, card.Strengths, card.Weaknesses)
		if err != nil || len(recommendations) == 0 {
			e.logger.Warn("recommendation generation failed, using fallback",
				zap.String("session_id", session.SessionID.String()),
				zap.Error(err))
			recommendations = fallbackRecommendations()
		}
	}

	now := time.Now().UTC()
	err = e.repo.UpdateSession(ctx, session.SessionID, map[string]interface{}{
		"status":          model.StatusCompleted,
		"completed_at":    now,
		"overall_score":   card.Overall,
		"category_scores": card.CategoryScores,
		"strengths":       card.Strengths,
		"weaknesses":      card.Weaknesses,
		"recommendations": recommendations,
	})
	if err != nil {
		return nil, fmt.Errorf("persist scorecard: %w", err)
	}

	updated, err := e.repo.GetUserSession(ctx, session.SessionID, session.UserID)
	if err != nil {
		return nil, fmt.Errorf("reload session: %w", err)
	}

	e.logger.Info("session finalized",
		zap.String("session_id", session.SessionID.String()),
		zap.Float64("overall_score", card.Overall),
		zap.Int("answers", len(answers)))

	return updated, nil
}
