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

type adminOperations interface {
	ProvisionFaculty(ctx context.Context, req service.ProvisionFacultyRequest) (*models.User, error)
	ForceEditEvent(ctx context.Context, id int64, req service.EditEventRequest) (*models.Event, error)
	SetEventRemark(ctx context.Context, id int64, remark string) (*models.Event, error)
}

// remarkPayload carries admin feedback for an event.
type remarkPayload struct {
	Remark string `json:"remark"`
}

// AdminHandler exposes privileged mutations.
type AdminHandler struct {
	admin adminOperations
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(admin adminOperations) *AdminHandler {
	return &AdminHandler{admin: admin}
}

// AddFaculty godoc
// @Summary Provision a faculty account
// @Tags Admin
// @Accept json
// @Produce json
// @Param payload body service.ProvisionFacultyRequest true "Faculty details"
// @Success 201 {object} response.Envelope
// @Router /admin/add-faculty [post]
func (h *AdminHandler) AddFaculty(c *gin.Context) {
	var req service.ProvisionFacultyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	user, err := h.admin.ProvisionFaculty(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, user)
}

// ModifyEvent godoc
// @Summary Overwrite an event's fields
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path int true "Event ID"
// @Param payload body service.EditEventRequest true "Event fields"
// @Success 200 {object} response.Envelope
// @Router /admin/modify-event/{id} [put]
func (h *AdminHandler) ModifyEvent(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req service.EditEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	event, err := h.admin.ForceEditEvent(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, event)
}

// SetRemark godoc
// @Summary Set admin feedback on an event
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path int true "Event ID"
// @Param payload body remarkPayload true "Remark"
// @Success 200 {object} response.Envelope
// @Router /admin/events/{id}/remark [patch]
func (h *AdminHandler) SetRemark(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req remarkPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	event, err := h.admin.SetEventRemark(c.Request.Context(), id, req.Remark)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, event)
}
