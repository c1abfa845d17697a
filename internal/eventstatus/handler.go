package eventstatus

import (
	"net/http"

	"ticketcue/helper"
	"ticketcue/pkg/constants"

	"github.com/gin-gonic/gin"
)

type StatusHandler struct {
	statusService StatusService
}

func NewStatusHandler(statusService StatusService) *StatusHandler {
	return &StatusHandler{
		statusService: statusService,
	}
}

type setStatusRequest struct {
	TicketsSecured bool `json:"ticketsSecured"`
}

func (h *StatusHandler) GetStatus(c *gin.Context) {

	status, err := h.statusService.GetStatus(c, c.GetString(constants.UserID), c.Param("id"))
	if err != nil {
		helper.SendServiceError(c, err)
		return
	}

	helper.SendSuccess(c, http.StatusOK, "success", status)
}

func (h *StatusHandler) SetStatus(c *gin.Context) {

	var req setStatusRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		helper.SendError(c, http.StatusBadRequest, err, helper.ErrInvalidRequest)
		return
	}

	status, err := h.statusService.SetTicketsSecured(c, c.GetString(constants.UserID), c.Param("id"), req.TicketsSecured)
	if err != nil {
		helper.SendServiceError(c, err)
		return
	}

	helper.SendSuccess(c, http.StatusOK, "success", status)
}

func (h *StatusHandler) DeleteStatus(c *gin.Context) {

	if err := h.statusService.DeleteStatus(c, c.GetString(constants.UserID), c.Param("id")); err != nil {
		helper.SendServiceError(c, err)
		return
	}

	helper.SendSuccess(c, http.StatusOK, "success", nil)
}
