package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/srinivas0721/InterviewBot/internal/ai"
	"github.com/srinivas0721/InterviewBot/internal/interview"
	"github.com/srinivas0721/InterviewBot/pkg/model"
	"github.com/srinivas0721/InterviewBot/pkg/response"
)

const defaultTotalQuestions = 5

// sessionFromPath loads the session named in the :id path parameter, scoped
// to the authenticated user. Writes the error response itself and returns
// nil when the request cannot proceed.
func (h *Handler) sessionFromPath(c *gin.Context) *model.Session {
	claims := h.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "unauthorized")
		return nil
	}

	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid session id")
		return nil
	}

	session, err := h.Repo.GetUserSession(c.Request.Context(), sessionID, claims.UserID)
	if err != nil {
		response.NotFound(c, "session not found")
		return nil
	}
	return session
}

// CreateSession starts a new interview: it stores the session, generates the
// question set from the user's profile and stores the questions.
func (h *Handler) CreateSession(c *gin.Context) {
	claims := h.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "unauthorized")
		return
	}

	var req model.CreateSessionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if req.TotalQuestions == 0 {
		req.TotalQuestions = defaultTotalQuestions
	}

	ctx := c.Request.Context()
	user, err := h.Repo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		response.Unauthorized(c, "unauthorized")
		return
	}

	session := &model.Session{
		UserID:         claims.UserID,
		Mode:           req.Mode,
		Company:        req.Company,
		Role:           req.Role,
		Status:         model.StatusInProgress,
		TotalQuestions: req.TotalQuestions,
	}
	if err := h.Repo.CreateSession(ctx, session); err != nil {
		h.Logger.Error("session create failed", zap.Error(err))
		response.InternalError(c, "could not create session")
		return
	}

	experienceLevel := model.ExperienceMidLevel
	if user.ExperienceLevel != nil {
		experienceLevel = *user.ExperienceLevel
	}

	generated := h.AI.GenerateQuestions(ctx, ai.QuestionRequest{
		Company:         req.Company,
		Role:            req.Role,
		ExperienceLevel: experienceLevel,
		Categories:      model.DefaultCategories(),
		TotalQuestions:  req.TotalQuestions,
		TargetCompanies: user.TargetCompanies,
		TargetRoles:     user.TargetRoles,
	})

	questions := make([]model.Question, len(generated))
	for i, q := range generated {
		questions[i] = model.Question{
			SessionID:      session.SessionID,
			QuestionNumber: i + 1,
			Category:       q.Category,
			QuestionText:   q.QuestionText,
			Options:        q.Options,
			Difficulty:     q.Difficulty,
		}
		if q.CorrectAnswer != "" {
			correct := q.CorrectAnswer
			questions[i].CorrectAnswer = &correct
		}
		if q.Explanation != "" {
			explanation := q.Explanation
			questions[i].Explanation = &explanation
		}
	}

	if err := h.Repo.CreateQuestions(ctx, questions); err != nil {
		h.Logger.Error("question store failed",
			zap.String("session_id", session.SessionID.String()),
			zap.Error(err))
		response.InternalError(c, "could not store questions")
		return
	}

	h.Logger.Info("interview session created",
		zap.String("session_id", session.SessionID.String()),
		zap.String("company", req.Company),
		zap.String("role", req.Role),
		zap.Int("questions", len(questions)))

	response.Created(c, gin.H{"session": session})
}

// ListSessions returns every session owned by the user, newest first.
func (h *Handler) ListSessions(c *gin.Context) {
	claims := h.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "unauthorized")
		return
	}

	sessions, err := h.Repo.ListSessionsByUser(c.Request.Context(), claims.UserID)
	if err != nil {
		h.Logger.Error("session list failed", zap.Error(err))
		response.InternalError(c, "could not list sessions")
		return
	}

	response.OKWithMeta(c, gin.H{"sessions": sessions}, &response.Meta{Total: len(sessions)})
}

// RecentSessions returns the most recently completed sessions.
func (h *Handler) RecentSessions(c *gin.Context) {
	claims := h.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "unauthorized")
		return
	}

	var q model.RecentSessionsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}

	sessions, err := h.Repo.ListRecentCompleted(c.Request.Context(), claims.UserID, q.Limit)
	if err != nil {
		h.Logger.Error("recent session list failed", zap.Error(err))
		response.InternalError(c, "could not list sessions")
		return
	}

	response.OK(c, gin.H{"sessions": sessions})
}

// GetSession returns one session.
func (h *Handler) GetSession(c *gin.Context) {
	session := h.sessionFromPath(c)
	if session == nil {
		return
	}
	response.OK(c, session)
}

// GetSessionQuestions returns the session's questions in asking order.
func (h *Handler) GetSessionQuestions(c *gin.Context) {
	session := h.sessionFromPath(c)
	if session == nil {
		return
	}

	questions, err := h.Repo.ListQuestionsBySession(c.Request.Context(), session.SessionID)
	if err != nil {
		h.Logger.Error("question list failed", zap.Error(err))
		response.InternalError(c, "could not load questions")
		return
	}

	response.OK(c, gin.H{"questions": questions})
}

// GetSessionResults returns the full results view: the session, every
// question paired with its answer, and the aggregated summary.
func (h *Handler) GetSessionResults(c *gin.Context) {
	session := h.sessionFromPath(c)
	if session == nil {
		return
	}

	results, err := h.buildSessionResults(c, session)
	if err != nil {
		h.Logger.Error("results build failed", zap.Error(err))
		response.InternalError(c, "could not load results")
		return
	}

	response.OK(c, results)
}

// GetDetailedAnswers returns just the question/answer pairs of the results
// view.
func (h *Handler) GetDetailedAnswers(c *gin.Context) {
	session := h.sessionFromPath(c)
	if session == nil {
		return
	}

	results, err := h.buildSessionResults(c, session)
	if err != nil {
		h.Logger.Error("results build failed", zap.Error(err))
		response.InternalError(c, "could not load results")
		return
	}

	response.OK(c, gin.H{"detailed_results": results.DetailedResults})
}

func (h *Handler) buildSessionResults(c *gin.Context, session *model.Session) (*model.SessionResults, error) {
	ctx := c.Request.Context()

	questions, err := h.Repo.ListQuestionsBySession(ctx, session.SessionID)
	if err != nil {
		return nil, err
	}
	answers, err := h.Repo.ListAnswersBySession(ctx, session.SessionID)
	if err != nil {
		return nil, err
	}

	answerByQuestion := make(map[uuid.UUID]model.Answer, len(answers))
	for _, a := range answers {
		answerByQuestion[a.QuestionID] = a
	}

	detailed := make([]model.DetailedResult, len(questions))
	for i, q := range questions {
		detailed[i] = model.DetailedResult{Question: q}
		if a, ok := answerByQuestion[q.QuestionID]; ok {
			answer := a
			detailed[i].Answer = &answer
		}
	}

	overall := 0.0
	if session.OverallScore != nil {
		overall = *session.OverallScore
	}
	categoryScores := session.CategoryScores
	if categoryScores == nil {
		categoryScores = map[string]float64{}
	}

	return &model.SessionResults{
		Session:         *session,
		DetailedResults: detailed,
		OverallScore:    overall,
		CategoryScores:  categoryScores,
		Strengths:       session.Strengths,
		Weaknesses:      session.Weaknesses,
		Recommendations: session.Recommendations,
		Summary: model.SessionSummary{
			TotalQuestions:    len(questions),
			AnsweredQuestions: len(answers),
			OverallScore:      session.OverallScore,
			CategoryScores:    session.CategoryScores,
			Strengths:         session.Strengths,
			Weaknesses:        session.Weaknesses,
			Recommendations:   session.Recommendations,
		},
	}, nil
}

// CompleteSession finalizes a session explicitly, recomputing the scorecard
// from stored answers.
func (h *Handler) CompleteSession(c *gin.Context) {
	session := h.sessionFromPath(c)
	if session == nil {
		return
	}

	ctx := c.Request.Context()
	if _, err := h.Engine.Finalize(ctx, session); err != nil {
		h.Logger.Error("session finalize failed",
			zap.String("session_id", session.SessionID.String()),
			zap.Error(err))
		response.InternalError(c, "could not complete session")
		return
	}

	h.Cache.InvalidateDashboard(ctx, session.UserID)

	response.OK(c, gin.H{
		"message":    "Interview completed successfully",
		"session_id": session.SessionID,
		"status":     model.StatusCompleted,
	})
}

// GetReport renders the session's HTML report as a data URL for download.
// Only completed sessions have a report.
func (h *Handler) GetReport(c *gin.Context) {
	session := h.sessionFromPath(c)
	if session == nil {
		return
	}
	if session.Status != model.StatusCompleted {
		response.BadRequest(c, "session not completed yet")
		return
	}

	ctx := c.Request.Context()
	questions, err := h.Repo.ListQuestionsBySession(ctx, session.SessionID)
	if err != nil {
		response.InternalError(c, "could not load questions")
		return
	}
	answers, err := h.Repo.ListAnswersBySession(ctx, session.SessionID)
	if err != nil {
		response.InternalError(c, "could not load answers")
		return
	}

	html, err := interview.RenderReport(session, questions, answers)
	if err != nil {
		h.Logger.Error("report render failed", zap.Error(err))
		response.InternalError(c, "could not generate report")
		return
	}

	response.OK(c, gin.H{"report_url": interview.ReportDataURL(html)})
}

// DeleteSession removes a session with all of its questions and answers.
func (h *Handler) DeleteSession(c *gin.Context) {
	session := h.sessionFromPath(c)
	if session == nil {
		return
	}

	ctx := c.Request.Context()
	if err := h.Repo.DeleteSession(ctx, session.SessionID); err != nil {
		h.Logger.Error("session delete failed", zap.Error(err))
		response.InternalError(c, "could not delete session")
		return
	}

	h.Cache.InvalidateDashboard(ctx, session.UserID)
	response.Message(c, "Session deleted successfully")
}

// TerminateSession discards an in-progress session. Completed sessions are
// kept for history and must go through DeleteSession instead.
func (h *Handler) TerminateSession(c *gin.Context) {
	h.discardInProgress(c, "Session terminated successfully")
}

// AbandonSession discards an in-progress session the user walked away from.
func (h *Handler) AbandonSession(c *gin.Context) {
	h.discardInProgress(c, "Session abandoned successfully")
}

func (h *Handler) discardInProgress(c *gin.Context, message string) {
	session := h.sessionFromPath(c)
	if session == nil {
		return
	}
	if session.Status != model.StatusInProgress {
		response.BadRequest(c, "session is not in progress")
		return
	}

	ctx := c.Request.Context()
	if err := h.Repo.DeleteSession(ctx, session.SessionID); err != nil {
		h.Logger.Error("session discard failed", zap.Error(err))
		response.InternalError(c, "could not discard session")
		return
	}

	h.Cache.InvalidateDashboard(ctx, session.UserID)
	response.Message(c, message)
}
