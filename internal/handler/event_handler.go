package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campuslabs/campus-events-api/internal/models"
	"github.com/campuslabs/campus-events-api/internal/service"
	appErrors "github.com/campuslabs/campus-events-api/pkg/errors"
	"github.com/campuslabs/campus-events-api/pkg/response"
)

type eventLifecycle interface {
	CreateDirect(ctx context.Context, req service.ProposeEventRequest) (*models.Event, error)
	ListApproved(ctx context.Context) ([]models.Event, error)
	Delete(ctx context.Context, id int64) error
}

// EventHandler exposes the public event listing and direct administration.
type EventHandler struct {
	events eventLifecycle
}

// NewEventHandler constructs EventHandler.
func NewEventHandler(events eventLifecycle) *EventHandler {
	return &EventHandler{events: events}
}

// Create godoc
// @Summary Create an event directly with Approved status
// @Tags Events
// @Accept json
// @Produce json
// @Param payload body service.ProposeEventRequest true "Event payload"
// @Success 201 {object} response.Envelope
// @Router /events [post]
func (h *EventHandler) Create(c *gin.Context) {
	var req service.ProposeEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	event, err := h.events.CreateDirect(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, event)
}

// List godoc
// @Summary List approved events
// @Tags Events
// @Produce json
// @Success 200 {object} response.Envelope
// @Success 204
// @Router /events [get]
func (h *EventHandler) List(c *gin.Context) {
	events, err := h.events.ListApproved(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if len(events) == 0 {
		response.NoContent(c)
		return
	}
	response.JSON(c, http.StatusOK, events)
}

// Delete godoc
// @Summary Delete an event
// @Tags Events
// @Param id path int true "Event ID"
// @Success 204
// @Router /events/{id} [delete]
func (h *EventHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.events.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
