package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func (app *application) routes() http.Handler {
	if app.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())

	// access log via zap
	r.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()
		app.Logger.Sugar().Infow("http",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start))
	})

	r.Use(app.CORSMiddleware())
	r.Use(app.RateLimitMiddleware())

	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", app.Handler.Health)
		v1.POST("/signup", app.Handler.SignUp)
		v1.POST("/login", app.Handler.Login)
		v1.GET("/share/:token", app.Handler.GetSharedSession)
	}

	protected := v1.Group("/")
	protected.Use(app.AuthMiddleware())
	{
		protected.GET("/me", app.Handler.Me)
		protected.POST("/logout", app.Handler.Logout)
		protected.PUT("/profile", app.Handler.UpdateProfile)
		protected.DELETE("/account", app.Handler.DeleteAccount)

		// interview lifecycle
		protected.POST("/interviews", app.Handler.CreateSession)
		protected.GET("/interviews", app.Handler.ListSessions)
		protected.GET("/interviews/recent", app.Handler.RecentSessions)
		protected.GET("/interviews/:id", app.Handler.GetSession)
		protected.GET("/interviews/:id/questions", app.Handler.GetSessionQuestions)
		protected.POST("/interviews/:id/answers", app.Handler.SubmitAnswer)
		protected.POST("/interviews/:id/complete", app.Handler.CompleteSession)
		protected.GET("/interviews/:id/results", app.Handler.GetSessionResults)
		protected.GET("/interviews/:id/detailed-answers", app.Handler.GetDetailedAnswers)
		protected.GET("/interviews/:id/report", app.Handler.GetReport)
		protected.DELETE("/interviews/:id", app.Handler.DeleteSession)
		protected.DELETE("/interviews/:id/terminate", app.Handler.TerminateSession)
		protected.PATCH("/interviews/:id/abandon", app.Handler.AbandonSession)
		protected.POST("/interviews/:id/share", app.Handler.CreateShareLink)
		protected.DELETE("/interviews/:id/share", app.Handler.RemoveShareLink)

		// dashboard analytics
		protected.GET("/dashboard/stats", app.Handler.GetDashboardStats)
		protected.GET("/dashboard/performance-trend", app.Handler.GetPerformanceTrend)
		protected.GET("/dashboard/category-breakdown", app.Handler.GetCategoryBreakdown)
	}

	return r
}
