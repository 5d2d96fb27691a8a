package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "wealthdesk/internal/errors"
	"wealthdesk/internal/models"
	"wealthdesk/internal/services"
)

// EventHandler handles cash-flow event requests nested under a client.
type EventHandler struct {
	eventService services.EventServicer
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(eventService services.EventServicer) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// CreateEventRequest represents the request payload for creating an event.
type CreateEventRequest struct {
	Type        string     `json:"type" binding:"required,min=1,max=100"`
	Value       float64    `json:"value" binding:"required"`
	Frequency   string     `json:"frequency" binding:"required,event_frequency"`
	Description string     `json:"description" binding:"max=500"`
	StartDate   time.Time  `json:"start_date" binding:"required"`
	EndDate     *time.Time `json:"end_date"`
}

// UpdateEventRequest represents the request payload for updating an event.
// ClearEndDate removes the stored end date, e.g. when an event becomes
// open-ended or switches to single frequency.
type UpdateEventRequest struct {
	Type         *string    `json:"type" binding:"omitempty,min=1,max=100"`
	Value        *float64   `json:"value"`
	Frequency    *string    `json:"frequency" binding:"omitempty,event_frequency"`
	Description  *string    `json:"description" binding:"omitempty,max=500"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	ClearEndDate bool       `json:"clear_end_date"`
}

// CreateEvent handles recording a cash-flow event
// @Summary     Create an event
// @Description Record a cash-flow event for a client
// @Tags        events
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       clientId path string true "Client ID"
// @Param       request body CreateEventRequest true "Event details"
// @Success     201 {object} models.Event "Event created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Client not found"
// @Router      /clients/{clientId}/events [post]
func (h *EventHandler) CreateEvent(c *gin.Context) {
	clientID, err := parseUUIDParam(c, "clientId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	event, err := h.eventService.CreateEvent(clientID, services.EventInput{
		Type:        req.Type,
		Value:       req.Value,
		Frequency:   models.EventFrequency(req.Frequency),
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"event": event})
}

// GetEvents handles listing a client's events
// @Summary     List events
// @Description Get all events of a client ordered by start date
// @Tags        events
// @Produce     json
// @Security    BearerAuth
// @Param       clientId path string true "Client ID"
// @Success     200 {array} models.Event "Events"
// @Failure     404 {object} ErrorResponse "Client not found"
// @Router      /clients/{clientId}/events [get]
func (h *EventHandler) GetEvents(c *gin.Context) {
	clientID, err := parseUUIDParam(c, "clientId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	events, err := h.eventService.GetEvents(clientID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": events})
}

// UpdateEvent handles updating an event
// @Summary     Update an event
// @Description Partially update an owned event
// @Tags        events
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       clientId path string true "Client ID"
// @Param       eventId path string true "Event ID"
// @Param       request body UpdateEventRequest true "Fields to update"
// @Success     200 {object} models.Event "Updated event"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     403 {object} ErrorResponse "Event belongs to another client"
// @Failure     404 {object} ErrorResponse "Event not found"
// @Router      /clients/{clientId}/events/{eventId} [put]
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	clientID, err := parseUUIDParam(c, "clientId")
	if err != nil {
		respondWithError(c, err)
		return
	}
	eventID, err := parseUUIDParam(c, "eventId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	update := services.EventUpdate{
		Type:         req.Type,
		Value:        req.Value,
		Description:  req.Description,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		ClearEndDate: req.ClearEndDate,
	}
	if req.Frequency != nil {
		frequency := models.EventFrequency(*req.Frequency)
		update.Frequency = &frequency
	}

	event, err := h.eventService.UpdateEvent(clientID, eventID, update)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"event": event})
}

// DeleteEvent handles removing an event
// @Summary     Delete an event
// @Description Delete an owned event
// @Tags        events
// @Produce     json
// @Security    BearerAuth
// @Param       clientId path string true "Client ID"
// @Param       eventId path string true "Event ID"
// @Success     204 "Deleted"
// @Failure     403 {object} ErrorResponse "Event belongs to another client"
// @Failure     404 {object} ErrorResponse "Event not found"
// @Router      /clients/{clientId}/events/{eventId} [delete]
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	clientID, err := parseUUIDParam(c, "clientId")
	if err != nil {
		respondWithError(c, err)
		return
	}
	eventID, err := parseUUIDParam(c, "eventId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.eventService.DeleteEvent(clientID, eventID); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
