package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1.
// Все маршруты, кроме health-check, требуют bearer-токен.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup, authMW gin.HandlerFunc) {
	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)

	// Маршруты профиля, опекунов и безопасных зон
	users := api.Group("/users", authMW)
	{
		users.GET("/profile", h.getProfile)
		users.PUT("/profile", h.updateProfile)
		users.PUT("/fcm-token", h.updateFCMToken)
		users.POST("/guardians", h.addGuardian)
		users.DELETE("/guardians/:id", h.removeGuardian)
		users.POST("/safe-zones", h.addSafeZone)
		users.DELETE("/safe-zones/:id", h.removeSafeZone)
	}

	// Маршруты чтения инцидентов
	incidents := api.Group("/incidents", authMW)
	{
		incidents.GET("/user", h.listOwnIncidents)
		incidents.GET("/guardian", h.listGuardedIncidents)
		incidents.GET("/:id", h.getIncident)
		incidents.GET("/:id/location-history", h.getLocationHistory)
		incidents.POST("/:id/notes", h.addNote)
	}
}
