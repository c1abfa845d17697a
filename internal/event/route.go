package event

import (
	"github.com/gin-gonic/gin"
)

// Browsing the catalog is public; mutations are behind auth.
func RegisterRoutes(r *gin.Engine, handler *EventHandler, secured gin.HandlerFunc) {
	eventGroup := r.Group("api/v1/events")
	{
		eventGroup.GET("", handler.GetEvents)
		eventGroup.GET("/:id", handler.GetEventByID)

		eventGroup.POST("", secured, handler.CreateEvent)
		eventGroup.PATCH("/:id", secured, handler.UpdateEvent)
		eventGroup.DELETE("/:id", secured, handler.DeleteEvent)
		eventGroup.POST("/:id/updates", secured, handler.CreateEventUpdate)
	}
}
