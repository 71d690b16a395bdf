package handler

import (
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/srinivas0721/InterviewBot/pkg"
	"github.com/srinivas0721/InterviewBot/pkg/model"
	"github.com/srinivas0721/InterviewBot/pkg/response"
)

// chartColors is the palette the frontend charts cycle through.
var chartColors = []string{"#8B5CF6", "#10B981", "#F59E0B", "#EF4444", "#06B6D4"}

const trendWindow = 90 * 24 * time.Hour

// GetDashboardStats returns the aggregated dashboard view. Results are
// cached per user and invalidated whenever a session finishes or is deleted.
func (h *Handler) GetDashboardStats(c *gin.Context) {
	claims := h.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "unauthorized")
		return
	}

	ctx := c.Request.Context()
	if stats, ok := h.Cache.GetDashboardStats(ctx, claims.UserID); ok {
		response.OK(c, stats)
		return
	}

	completed, err := h.Repo.ListCompletedSessions(ctx, claims.UserID)
	if err != nil {
		h.Logger.Error("dashboard stats failed", zap.Error(err))
		response.InternalError(c, "could not load stats")
		return
	}

	var scoreSum float64
	var scored int
	for _, s := range completed {
		if s.OverallScore != nil {
			scoreSum += *s.OverallScore
			scored++
		}
	}
	averageScore := 0.0
	if scored > 0 {
		averageScore = pkg.Round1(scoreSum / float64(scored))
	}

	totalMinutes, err := h.Repo.SumTimeSpent(ctx, claims.UserID)
	if err != nil {
		h.Logger.Error("time aggregation failed", zap.Error(err))
		response.InternalError(c, "could not load stats")
		return
	}

	categoryAverages := buildCategoryAverages(completed)

	improvementAreas := 0
	for _, cat := range categoryAverages {
		if cat.Score < 7.0 {
			improvementAreas++
		}
	}

	sessions, err := h.Repo.ListSessionsByUser(ctx, claims.UserID)
	if err != nil {
		h.Logger.Error("recent session list failed", zap.Error(err))
		response.InternalError(c, "could not load stats")
		return
	}
	if len(sessions) > 5 {
		sessions = sessions[:5]
	}

	recent := make([]model.RecentSession, len(sessions))
	for i, s := range sessions {
		score := 0.0
		if s.OverallScore != nil {
			score = *s.OverallScore
		}
		recommendations := s.Recommendations
		if len(recommendations) > 3 {
			recommendations = recommendations[:3]
		}
		recent[i] = model.RecentSession{
			SessionID:       s.SessionID.String(),
			Company:         s.Company,
			Role:            s.Role,
			Mode:            string(s.Mode),
			Score:           score,
			Date:            s.CreatedAt.Format("2006-01-02"),
			Recommendations: recommendations,
		}
	}

	stats := &model.DashboardStats{
		SessionsCompleted: len(completed),
		AverageScore:      averageScore,
		ImprovementAreas:  improvementAreas,
		TotalTime:         pkg.FormatMinutes(totalMinutes),
		CategoryAverages:  categoryAverages,
		RecentSessions:    recent,
	}

	h.Cache.SetDashboardStats(ctx, claims.UserID, stats)
	response.OK(c, stats)
}

// buildCategoryAverages averages per-category scores across sessions.
// Categories are sorted by name so each keeps the same palette color across
// requests.
func buildCategoryAverages(sessions []model.Session) []model.CategoryAverage {
	var order []string
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, s := range sessions {
		for cat, score := range s.CategoryScores {
			if counts[cat] == 0 {
				order = append(order, cat)
			}
			sums[cat] += score
			counts[cat]++
		}
	}
	sort.Strings(order)

	averages := make([]model.CategoryAverage, len(order))
	for i, cat := range order {
		averages[i] = model.CategoryAverage{
			Name:  pkg.CategoryLabel(cat),
			Score: pkg.Round1(sums[cat] / float64(counts[cat])),
			Color: chartColors[i%len(chartColors)],
		}
	}
	return averages
}

// GetPerformanceTrend returns completed session scores over the last 90
// days, oldest first.
func (h *Handler) GetPerformanceTrend(c *gin.Context) {
	claims := h.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "unauthorized")
		return
	}

	since := time.Now().UTC().Add(-trendWindow)
	sessions, err := h.Repo.ListCompletedSince(c.Request.Context(), claims.UserID, since)
	if err != nil {
		h.Logger.Error("performance trend failed", zap.Error(err))
		response.InternalError(c, "could not load trend")
		return
	}

	trend := make([]model.TrendPoint, len(sessions))
	for i, s := range sessions {
		score := 0.0
		if s.OverallScore != nil {
			score = *s.OverallScore
		}
		trend[i] = model.TrendPoint{
			Date:    s.CreatedAt.Format("2006-01-02"),
			Score:   score,
			Company: s.Company,
			Role:    s.Role,
		}
	}

	response.OK(c, gin.H{"trend": trend})
}

// GetCategoryBreakdown returns per-category statistics across all completed
// sessions, best performing category first.
func (h *Handler) GetCategoryBreakdown(c *gin.Context) {
	claims := h.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "unauthorized")
		return
	}

	sessions, err := h.Repo.ListCompletedSessions(c.Request.Context(), claims.UserID)
	if err != nil {
		h.Logger.Error("category breakdown failed", zap.Error(err))
		response.InternalError(c, "could not load breakdown")
		return
	}

	// session order is oldest first, so the score slices track progression
	scoresByCategory := make(map[string][]float64)
	var order []string
	for _, s := range sessions {
		for cat, score := range s.CategoryScores {
			if _, seen := scoresByCategory[cat]; !seen {
				order = append(order, cat)
			}
			scoresByCategory[cat] = append(scoresByCategory[cat], score)
		}
	}

	breakdown := make([]model.CategoryBreakdown, len(order))
	for i, cat := range order {
		scores := scoresByCategory[cat]
		sum, best, worst := scores[0], scores[0], scores[0]
		for _, score := range scores[1:] {
			sum += score
			if score > best {
				best = score
			}
			if score < worst {
				worst = score
			}
		}

		trend := "stable"
		if len(scores) > 1 && scores[len(scores)-1] > scores[0] {
			trend = "improving"
		}

		breakdown[i] = model.CategoryBreakdown{
			Category: pkg.CategoryLabel(cat),
			Average:  pkg.Round1(sum / float64(len(scores))),
			Best:     pkg.Round1(best),
			Worst:    pkg.Round1(worst),
			Sessions: len(scores),
			Trend:    trend,
		}
	}

	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].Average > breakdown[j].Average
	})

	response.OK(c, gin.H{"categories": breakdown})
}
