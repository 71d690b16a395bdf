package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/srinivas0721/InterviewBot/internal/ai"
	"github.com/srinivas0721/InterviewBot/internal/interview"
	"github.com/srinivas0721/InterviewBot/pkg/model"
	"github.com/srinivas0721/InterviewBot/pkg/response"
)

// SubmitAnswer evaluates and stores one answer, advances the session's
// progress and finalizes the session when the last question is answered.
func (h *Handler) SubmitAnswer(c *gin.Context) {
	session := h.sessionFromPath(c)
	if session == nil {
		return
	}

	var req model.SubmitAnswerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	question, err := h.Repo.GetQuestionByID(ctx, req.QuestionID)
	if err != nil || question.SessionID != session.SessionID {
		response.NotFound(c, "question not found")
		return
	}

	answerText := req.Text()
	eval := h.AI.EvaluateAnswer(ctx, ai.EvaluationRequest{
		QuestionText: question.QuestionText,
		Category:     question.Category,
		AnswerText:   answerText,
	})

	if answerText != "" && interview.SanitizeEvaluation(answerText, eval) {
		h.Logger.Info("gibberish answer detected, score overridden",
			zap.String("session_id", session.SessionID.String()),
			zap.String("question_id", question.QuestionID.String()))
	}

	score := eval.Score
	feedback := eval.Feedback
	corrected := eval.CorrectedAnswer
	missing := eval.MissingPoints
	answer := &model.Answer{
		QuestionID:        question.QuestionID,
		SessionID:         session.SessionID,
		UserID:            session.UserID,
		AnswerType:        req.AnswerType,
		SubjectiveAnswer:  req.SubjectiveAnswer,
		VoiceTranscript:   req.VoiceTranscript,
		AudioFileURL:      req.AudioFileURL,
		TimeSpent:         req.TimeSpent,
		Score:             &score,
		Feedback:          &feedback,
		CorrectedAnswer:   &corrected,
		MissingPoints:     &missing,
		EvaluationDetails: eval.EvaluationDetails,
	}
	if err := h.Repo.CreateAnswer(ctx, answer); err != nil {
		h.Logger.Error("answer store failed", zap.Error(err))
		response.InternalError(c, "could not store answer")
		return
	}

	total, err := h.Repo.CountQuestions(ctx, session.SessionID)
	if err != nil {
		response.InternalError(c, "could not load progress")
		return
	}
	answered, err := h.Repo.CountAnswers(ctx, session.SessionID)
	if err != nil {
		response.InternalError(c, "could not load progress")
		return
	}

	if err := h.Repo.UpdateSession(ctx, session.SessionID, map[string]interface{}{
		"current_question": answered,
	}); err != nil {
		h.Logger.Error("progress update failed", zap.Error(err))
	}

	progress := interview.Progress(answered, total)

	currentScores := map[string]float64{}
	if progress.Completed {
		finalized, err := h.Engine.Finalize(ctx, session)
		if err != nil {
			h.Logger.Error("auto-finalize failed",
				zap.String("session_id", session.SessionID.String()),
				zap.Error(err))
		} else if finalized.CategoryScores != nil {
			currentScores = finalized.CategoryScores
		}
		h.Cache.InvalidateDashboard(ctx, session.UserID)
	}

	var next *model.NextQuestion
	if !progress.Completed {
		q, err := h.Repo.NextQuestion(ctx, session.SessionID, answered)
		if err != nil {
			h.Logger.Error("next question lookup failed", zap.Error(err))
		} else if q != nil {
			next = &model.NextQuestion{
				QuestionID:   q.QuestionID,
				QuestionText: q.QuestionText,
				Category:     q.Category,
				Difficulty:   q.Difficulty,
				Options:      q.Options,
			}
		}
	}

	response.OK(c, model.SubmitAnswerRes{
		Evaluation:    *eval,
		NextQuestion:  next,
		Progress:      progress,
		CurrentScores: currentScores,
	})
}
