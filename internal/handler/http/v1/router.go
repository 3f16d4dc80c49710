package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers every API v1 route
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	functions := api.Group("/functions")
	{
		functions.POST("/register-access-code", WebhookSignatureMiddleware(h.cfg, h.logger), h.registerAccessCode)
		functions.POST("/send-notification", APIKeyAuthMiddleware(h.cfg, h.logger), h.sendNotification)
	}

	sessions := api.Group("/sessions", APIKeyAuthMiddleware(h.cfg, h.logger))
	{
		sessions.POST("", h.startSession)
		sessions.GET("/:id", h.getSession)
		sessions.DELETE("/:id", h.endSession)
		sessions.POST("/:id/points", h.addFix)
		sessions.GET("/:id/stream", h.streamSession)
	}

	users := api.Group("/users/:id", APIKeyAuthMiddleware(h.cfg, h.logger))
	{
		users.GET("/profile", h.getProfile)
		users.GET("/streak", h.getStreak)
		users.GET("/steps", h.getWeeklySteps)
		users.PUT("/steps", h.recordSteps)
		users.GET("/leaderboard", h.getLeaderboard)
		users.POST("/logout", h.logout)
	}

	api.GET("/system/health", h.healthCheck)
}
