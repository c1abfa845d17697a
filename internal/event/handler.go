package event

import (
	"net/http"

	"ticketcue/helper"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	eventService EventService
}

func NewEventHandler(eventService EventService) *EventHandler {
	return &EventHandler{
		eventService: eventService,
	}
}

func (h *EventHandler) CreateEvent(c *gin.Context) {

	var req CreateEventRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		helper.SendError(c, http.StatusBadRequest, err, helper.ErrInvalidRequest)
		return
	}

	ev, err := h.eventService.CreateEvent(c, &req)
	if err != nil {
		helper.SendServiceError(c, err)
		return
	}

	helper.SendSuccess(c, http.StatusCreated, "success", ev)
}

func (h *EventHandler) GetEvents(c *gin.Context) {

	var query ListEventsQuery

	if err := c.ShouldBindQuery(&query); err != nil {
		helper.SendError(c, http.StatusBadRequest, err, helper.ErrInvalidRequest)
		return
	}

	page, err := h.eventService.GetEvents(c, &query)
	if err != nil {
		helper.SendServiceError(c, err)
		return
	}

	helper.SendSuccess(c, http.StatusOK, "success", page)
}

func (h *EventHandler) GetEventByID(c *gin.Context) {

	ev, err := h.eventService.GetEventByID(c, c.Param("id"))
	if err != nil {
		helper.SendServiceError(c, err)
		return
	}

	helper.SendSuccess(c, http.StatusOK, "success", ev)
}

func (h *EventHandler) UpdateEvent(c *gin.Context) {

	var req UpdateEventRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		helper.SendError(c, http.StatusBadRequest, err, helper.ErrInvalidRequest)
		return
	}

	ev, err := h.eventService.UpdateEvent(c, &req, c.Param("id"))
	if err != nil {
		helper.SendServiceError(c, err)
		return
	}

	helper.SendSuccess(c, http.StatusOK, "success", ev)
}

func (h *EventHandler) DeleteEvent(c *gin.Context) {

	if err := h.eventService.DeleteEvent(c, c.Param("id")); err != nil {
		helper.SendServiceError(c, err)
		return
	}

	helper.SendSuccess(c, http.StatusOK, "success", nil)
}

func (h *EventHandler) CreateEventUpdate(c *gin.Context) {

	var req CreateEventUpdateRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		helper.SendError(c, http.StatusBadRequest, err, helper.ErrInvalidRequest)
		return
	}

	update, err := h.eventService.CreateEventUpdate(c, c.Param("id"), &req)
	if err != nil {
		helper.SendServiceError(c, err)
		return
	}

	helper.SendSuccess(c, http.StatusCreated, "success", update)
}
