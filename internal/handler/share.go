package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/srinivas0721/InterviewBot/pkg"
	"github.com/srinivas0721/InterviewBot/pkg/model"
	"github.com/srinivas0721/InterviewBot/pkg/response"
)

// CreateShareLink generates (or reuses) the session's share token and
// returns the public URL. Only completed sessions can be shared.
func (h *Handler) CreateShareLink(c *gin.Context) {
	session := h.sessionFromPath(c)
	if session == nil {
		return
	}
	if session.Status != model.StatusCompleted {
		response.BadRequest(c, "session not completed yet")
		return
	}

	ctx := c.Request.Context()
	token := ""
	if session.ShareToken != nil && *session.ShareToken != "" {
		token = *session.ShareToken
	} else {
		var err error
		token, err = pkg.NewShareToken()
		if err != nil {
			h.Logger.Error("share token generation failed", zap.Error(err))
			response.InternalError(c, "could not create share link")
			return
		}
		if err := h.Repo.UpdateSession(ctx, session.SessionID, map[string]interface{}{
			"share_token": token,
		}); err != nil {
			h.Logger.Error("share token store failed", zap.Error(err))
			response.InternalError(c, "could not create share link")
			return
		}
	}

	response.OK(c, gin.H{
		"share_url":   fmt.Sprintf("%s/share/%s", h.ShareBaseURL, token),
		"share_token": token,
		"message":     "Share link created successfully",
	})
}

// RemoveShareLink revokes the session's share token.
func (h *Handler) RemoveShareLink(c *gin.Context) {
	session := h.sessionFromPath(c)
	if session == nil {
		return
	}

	ctx := c.Request.Context()
	if session.ShareToken != nil {
		h.Cache.DeleteShareSession(ctx, *session.ShareToken)
	}

	if err := h.Repo.UpdateSession(ctx, session.SessionID, map[string]interface{}{
		"share_token": nil,
	}); err != nil {
		h.Logger.Error("share token removal failed", zap.Error(err))
		response.InternalError(c, "could not remove share link")
		return
	}

	response.Message(c, "Share link removed successfully")
}

// GetSharedSession is the public, unauthenticated view of a shared result.
// The candidate's identity is not exposed.
func (h *Handler) GetSharedSession(c *gin.Context) {
	token := c.Param("token")
	if token == "" {
		response.NotFound(c, "shared interview not found")
		return
	}

	ctx := c.Request.Context()
	if cached, ok := h.Cache.GetShareSession(ctx, token); ok {
		response.OK(c, cached)
		return
	}

	session, err := h.Repo.GetSessionByShareToken(ctx, token)
	if err != nil {
		response.NotFound(c, "shared interview not found")
		return
	}

	overall := 0.0
	if session.OverallScore != nil {
		overall = *session.OverallScore
	}
	categoryScores := session.CategoryScores
	if categoryScores == nil {
		categoryScores = map[string]float64{}
	}

	scrubbed := *session
	scrubbed.UserID = uuid.Nil

	shared := model.SharedSession{
		Session:         scrubbed,
		CandidateName:   "Anonymous",
		OverallScore:    overall,
		CategoryScores:  categoryScores,
		Strengths:       session.Strengths,
		Weaknesses:      session.Weaknesses,
		Recommendations: session.Recommendations,
	}
	h.Cache.SetShareSession(ctx, token, &shared)
	response.OK(c, shared)
}
