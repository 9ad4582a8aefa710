package handlers

import (
	"errors"
	"net/http"

	"ai_manager_backend/internal/services"
	"ai_manager_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// EventHandler holds the event service.
type EventHandler struct {
	eventService services.EventService
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(es services.EventService) *EventHandler {
	return &EventHandler{eventService: es}
}

func (h *EventHandler) GetEvents(c *gin.Context) {
	events, err := h.eventService.ListEvents(c.Request.Context())
	if err != nil {
		utils.LogError(err, "GetEvents: Error from eventService.ListEvents")
		respondInternal(c, "Failed to fetch events")
		return
	}
	utils.RespondWithData(c, http.StatusOK, events, gin.H{"count": len(events)})
}

func (h *EventHandler) GetEventByID(c *gin.Context) {
	id := c.Param("id")
	event, err := h.eventService.GetEvent(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrEventNotFound) {
			respondNotFound(c, "Event not found", err)
			return
		}
		utils.LogError(err, "GetEventByID: Error from eventService.GetEvent for ID "+id)
		respondInternal(c, "Failed to fetch event")
		return
	}
	utils.RespondWithData(c, http.StatusOK, event)
}

func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req services.CreateEventRequest
	if !bindJSON(c, &req, "CreateEvent") {
		return
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), req)
	if err != nil {
		utils.LogError(err, "CreateEvent: Error from eventService.CreateEvent")
		respondInternal(c, "Failed to create event")
		return
	}
	utils.RespondWithData(c, http.StatusCreated, event, gin.H{"message": "Event created successfully"})
}

func (h *EventHandler) UpdateEvent(c *gin.Context) {
	id := c.Param("id")
	var req services.UpdateEventRequest
	if !bindJSON(c, &req, "UpdateEvent") {
		return
	}

	event, err := h.eventService.UpdateEvent(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEventNotFound):
			respondNotFound(c, "Event not found", err)
		case errors.Is(err, services.ErrInvalidEventStatus):
			respondValidation(c, err)
		default:
			utils.LogError(err, "UpdateEvent: Error from eventService.UpdateEvent for ID "+id)
			respondInternal(c, "Failed to update event")
		}
		return
	}
	utils.RespondWithData(c, http.StatusOK, event, gin.H{"message": "Event updated successfully"})
}

func (h *EventHandler) DeleteEvent(c *gin.Context) {
	id := c.Param("id")
	event, err := h.eventService.DeleteEvent(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrEventNotFound) {
			respondNotFound(c, "Event not found", err)
			return
		}
		utils.LogError(err, "DeleteEvent: Error from eventService.DeleteEvent for ID "+id)
		respondInternal(c, "Failed to delete event")
		return
	}
	utils.RespondWithData(c, http.StatusOK, event, gin.H{"message": "Event deleted successfully"})
}

// GetUpcomingEvents handles GET /api/events/filter/upcoming.
func (h *EventHandler) GetUpcomingEvents(c *gin.Context) {
	events, err := h.eventService.UpcomingEvents(c.Request.Context())
	if err != nil {
		utils.LogError(err, "GetUpcomingEvents: Error from eventService.UpcomingEvents")
		respondInternal(c, "Failed to fetch upcoming events")
		return
	}
	utils.RespondWithData(c, http.StatusOK, events, gin.H{"count": len(events)})
}

// GetEventsByCategory handles GET /api/events/category/:category.
func (h *EventHandler) GetEventsByCategory(c *gin.Context) {
	category := c.Param("category")
	events, err := h.eventService.EventsByCategory(c.Request.Context(), category)
	if err != nil {
		utils.LogError(err, "GetEventsByCategory: Error from eventService.EventsByCategory for "+category)
		respondInternal(c, "Failed to fetch events by category")
		return
	}
	utils.RespondWithData(c, http.StatusOK, events, gin.H{"count": len(events)})
}

// UpdateEventStatus handles PUT /api/events/:id/status.
func (h *EventHandler) UpdateEventStatus(c *gin.Context) {
	id := c.Param("id")
	var req statusRequest
	if !bindJSON(c, &req, "UpdateEventStatus") {
		return
	}

	event, err := h.eventService.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEventNotFound):
			respondNotFound(c, "Event not found", err)
		case errors.Is(err, services.ErrInvalidEventStatus):
			respondValidation(c, err)
		default:
			utils.LogError(err, "UpdateEventStatus: Error from eventService.UpdateStatus for ID "+id)
			respondInternal(c, "Failed to update event status")
		}
		return
	}
	utils.RespondWithData(c, http.StatusOK, event, gin.H{"message": "Event status updated successfully"})
}
