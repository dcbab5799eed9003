package app

import (
	"career_path_backend/internal/config"
	"career_path_backend/internal/middleware"

	"career_path_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)
	a.registerUserRoutes(router, c, repos, cfg)
	a.registerAdminRoutes(router, c, repos, cfg)
}

// Public routes: no token required, though the catalog routes pick up an
// identity when one is presented.
func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.Check)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)

		public.GET("/tests", middleware.TryAuthMiddleware(a.Config), c.test.List)
		public.GET("/tests/categories", c.test.Categories)
		public.GET("/tests/stats", c.test.Stats)
		public.GET("/tests/:id", middleware.TryAuthMiddleware(a.Config), c.test.Get)

		public.GET("/results/shared/:id", c.result.SharedResult)
		public.GET("/results/leaderboard/:testId", c.result.Leaderboard)
		public.GET("/results/analytics/category/:category", c.result.CategoryAnalytics)
	}
}

func (a *App) registerUserRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		authGroup.GET("/auth/me", c.auth.Me)
		authGroup.POST("/auth/change-password", c.auth.ChangePassword)

		authGroup.POST("/tests/:id/submit", c.result.Submit)

		authGroup.GET("/results/compare/:testId", c.result.Compare)
		authGroup.POST("/results/:id/feedback", c.result.Feedback)

		authGroup.GET("/users/results", c.result.MyResults)
		authGroup.GET("/users/results/:id", c.result.MyResult)
		authGroup.DELETE("/users/results/:id", c.result.Delete)
		authGroup.POST("/users/results/:id/share", c.result.Share)
		authGroup.GET("/users/stats", c.result.Stats)

		authGroup.GET("/users/profile", c.user.GetProfile)
		authGroup.PUT("/users/profile", c.user.UpdateProfile)
		authGroup.POST("/users/avatar/upload", c.user.UploadAvatar)

		authGroup.GET("/users/learning-plan", c.plan.Get)
		authGroup.POST("/users/learning-plan/generate", c.plan.Generate)
		authGroup.PUT("/users/learning-plan", c.plan.Update)
	}
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	// Catalog and analytics management share the public path prefix but
	// sit behind the admin gate; authentication always runs first, so a
	// missing token is a 401 and a non-admin token a 403.
	manage := router.Group("/api")
	manage.Use(
		middleware.AuthMiddleware(cfg),
		middleware.AdminMiddleware(cfg),
		middleware.ActivityMiddleware(repos.user),
	)
	{
		manage.POST("/tests", c.test.Create)
		manage.PUT("/tests/:id", c.test.Update)
		manage.DELETE("/tests/:id", c.test.Delete)
		manage.GET("/tests/:id/results", c.test.Results)

		manage.GET("/analytics/overview", c.analytics.Overview)
		manage.GET("/analytics/tests", c.analytics.Tests)
		manage.GET("/analytics/users", c.analytics.Users)
		manage.GET("/analytics/performance", c.analytics.Performance)
		manage.GET("/analytics/export", c.analytics.Export)
	}

	admin := router.Group("/api/admin")
	admin.Use(
		middleware.AuthMiddleware(cfg),
		middleware.AdminMiddleware(cfg),
		middleware.ActivityMiddleware(repos.user),
	)
	{
		admin.GET("/users", c.user.List)
		admin.GET("/users/:id", c.user.Get)
		admin.PUT("/users/:id", c.user.Update)
		admin.DELETE("/users/:id", c.user.Delete)
		admin.POST("/users/:id/reset-password", c.user.ResetPassword)
		admin.POST("/users/:id/disable", c.user.SetDisabled)
	}
}
