package reminder

import (
	"context"
	"errors"
	"net/http"

	"ticketcue/helper"
	"ticketcue/pkg/constants"

	"github.com/gin-gonic/gin"
)

type ReminderHandler struct {
	reminderService ReminderService
}

func NewReminderHandler(reminderService ReminderService) *ReminderHandler {
	return &ReminderHandler{
		reminderService: reminderService,
	}
}

func (h *ReminderHandler) ListReminders(c *gin.Context) {

	reminders, err := h.reminderService.ListReminders(c, c.GetString(constants.UserID))
	if err != nil {
		helper.SendServiceError(c, err)
		return
	}

	helper.SendSuccess(c, http.StatusOK, "success", reminders)
}

func (h *ReminderHandler) CreateReminder(c *gin.Context) {

	var req CreateReminderRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		helper.SendError(c, http.StatusBadRequest, err, helper.ErrInvalidRequest)
		return
	}

	reminder, created, err := h.reminderService.CreateReminder(c, c.GetString(constants.UserID), &req)
	if err != nil {
		helper.SendServiceError(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}

	helper.SendSuccess(c, status, "success", reminder)
}

func (h *ReminderHandler) UpdateReminder(c *gin.Context) {

	var req UpdateReminderRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		helper.SendError(c, http.StatusBadRequest, err, helper.ErrInvalidRequest)
		return
	}

	reminder, err := h.reminderService.UpdateReminder(c, c.GetString(constants.UserID), c.Param("id"), &req)
	if err != nil {
		helper.SendServiceError(c, err)
		return
	}

	helper.SendSuccess(c, http.StatusOK, "success", reminder)
}

func (h *ReminderHandler) UpdateReminderStatus(c *gin.Context) {

	var req UpdateReminderStatusRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		helper.SendError(c, http.StatusBadRequest, err, helper.ErrInvalidRequest)
		return
	}

	if req.Status == "" {
		helper.SendError(c, http.StatusBadRequest, errors.New("status is required"), helper.ErrInvalidRequest)
		return
	}

	reminder, err := h.reminderService.UpdateReminderStatus(c, c.GetString(constants.UserID), c.Param("id"), req.Status)
	if err != nil {
		helper.SendServiceError(c, err)
		return
	}

	helper.SendSuccess(c, http.StatusOK, "success", reminder)
}

func (h *ReminderHandler) DeleteReminder(c *gin.Context) {

	if err := h.reminderService.DeleteReminder(c, c.GetString(constants.UserID), c.Param("id")); err != nil {
		helper.SendServiceError(c, err)
		return
	}

	helper.SendSuccess(c, http.StatusOK, "success", nil)
}

func (h *ReminderHandler) TriggerReminder(c *gin.Context) {

	token, exists := c.Get(constants.Token)
	if !exists {
		helper.SendError(c, http.StatusBadRequest, errors.New("token not found"), helper.ErrInvalidRequest)
		return
	}

	ctx := context.WithValue(c, constants.TokenKey, token)

	if err := h.reminderService.TriggerReminder(ctx, c.GetString(constants.UserID), c.Param("id")); err != nil {
		helper.SendServiceError(c, err)
		return
	}

	helper.SendSuccess(c, http.StatusOK, "success", nil)
}
