package rest

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler) {
	// Health check endpoint (no version prefix)
	router.GET("/health", handler.HealthCheck)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/state", handler.GetState)
		v1.GET("/enabled", handler.GetEnabled)

		v1.POST("/notifications/enable", handler.EnableNotifications)
		v1.POST("/notifications/disable", handler.DisableNotifications)
		v1.POST("/notifications/fetch", handler.FetchNotifications)
		v1.POST("/notifications/mark-as-read", handler.MarkNotificationsAsRead)

		v1.POST("/accounts/update", handler.UpdateAccounts)
		v1.POST("/accounts/delete", handler.DeleteAccounts)
		v1.POST("/accounts/presence", handler.CheckAccountsPresence)

		// Deprecated alongside the underlying group check.
		v1.GET("/triggers/presence-by-group", handler.CheckTriggersPresenceByGroup)

		v1.PUT("/features/announcements", handler.SetFeatureAnnouncementsEnabled)
		v1.POST("/features/seen", handler.SetFeatureSeen)
	}
}
