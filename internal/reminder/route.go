package reminder

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, handler *ReminderHandler, secured gin.HandlerFunc) {
	reminderGroup := r.Group("api/v1/reminders", secured)
	{
		reminderGroup.GET("", handler.ListReminders)
		reminderGroup.POST("", handler.CreateReminder)
		reminderGroup.PATCH("/:id", handler.UpdateReminder)
		reminderGroup.PATCH("/:id/status", handler.UpdateReminderStatus)
		reminderGroup.DELETE("/:id", handler.DeleteReminder)
		reminderGroup.POST("/:id/trigger", handler.TriggerReminder)
	}
}
