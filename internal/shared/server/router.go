package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"geowiz-backend/internal/achievements"
	"geowiz-backend/internal/answers"
	"geowiz-backend/internal/leaderboard"
	"geowiz-backend/internal/learning"
	"geowiz-backend/internal/questions"
	"geowiz-backend/internal/sessions"
	"geowiz-backend/internal/shared/config"
	"geowiz-backend/internal/shared/metrics"
	"geowiz-backend/internal/shared/server/middleware"
	"geowiz-backend/internal/shared/server/respond"
	"geowiz-backend/internal/users"
)

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config              config.Config
	QuestionsHandler    *questions.Handler
	SessionsHandler     *sessions.Handler
	AnswersHandler      *answers.Handler
	LearningHandler     *learning.Handler
	LeaderboardHandler  *leaderboard.Handler
	AchievementsHandler *achievements.Handler
	UsersHandler        *users.Handler
}

// NewRouter constructs the Gin engine with middleware and routes
// registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.RateLimit(rateLimitConfig()),
		middleware.Auth(deps.Config.Env),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	api.GET("/metrics", metrics.Handler())

	deps.QuestionsHandler.RegisterRoutes(api)
	deps.SessionsHandler.RegisterRoutes(api)
	deps.AnswersHandler.RegisterRoutes(api)
	deps.LearningHandler.RegisterRoutes(api)
	deps.LeaderboardHandler.RegisterRoutes(api)
	deps.AchievementsHandler.RegisterRoutes(api)
	deps.UsersHandler.RegisterRoutes(api)

	return r
}

// rateLimitConfig gives answer submission a tighter bucket than reads so
// one client cannot spam grading.
func rateLimitConfig() middleware.RateLimitConfig {
	return middleware.RateLimitConfig{
		DefaultGroup: "DEFAULT",
		GroupFor: func(c *gin.Context) string {
			if c.Request.Method == http.MethodPost && c.FullPath() == "/api/v1/answers" {
				return "ANSWERS"
			}
			if c.Request.Method == http.MethodGet {
				return "READS"
			}
			return "DEFAULT"
		},
		Rules: map[string]middleware.RateLimitRule{
			"DEFAULT": {Rate: 5, Burst: 10},
			"READS":   {Rate: 20, Burst: 40},
			"ANSWERS": {Rate: 3, Burst: 6},
		},
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
