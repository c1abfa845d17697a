package eventstatus

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, handler *StatusHandler, secured gin.HandlerFunc) {
	statusGroup := r.Group("api/v1/events/:id/status", secured)
	{
		statusGroup.GET("", handler.GetStatus)
		statusGroup.PUT("", handler.SetStatus)
		statusGroup.DELETE("", handler.DeleteStatus)
	}
}
