package app

import (
	"mathquest_backend/internal/config"
	"mathquest_backend/internal/middleware"
	"mathquest_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	api.Use(middleware.DemoIdentity(cfg))
	{
		api.GET("/health", c.health.HealthCheck)

		api.GET("/lessons", c.lesson.List)
		api.GET("/lessons/:id", c.lesson.Detail)
		api.POST("/lessons/:id/submit", c.lesson.SubmitAnswers)

		api.GET("/users/profile", c.user.GetProfile)
	}
}
