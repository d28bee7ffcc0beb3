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

type proposalLifecycle interface {
	Propose(ctx context.Context, req service.ProposeEventRequest) (*models.Event, error)
	ListAllProposals(ctx context.Context) ([]models.Event, error)
	ListForFaculty(ctx context.Context, facultyID int64) ([]models.Event, error)
	GetByID(ctx context.Context, id int64) (*models.Event, error)
	Transition(ctx context.Context, id int64, target models.EventStatus) (*models.Event, error)
}

// ProposalHandler exposes the proposal and approval workflow.
type ProposalHandler struct {
	events proposalLifecycle
}

// NewProposalHandler constructs ProposalHandler.
func NewProposalHandler(events proposalLifecycle) *ProposalHandler {
	return &ProposalHandler{events: events}
}

// Request godoc
// @Summary Submit a faculty event proposal
// @Tags Proposals
// @Accept json
// @Produce json
// @Param payload body service.ProposeEventRequest true "Proposal payload"
// @Success 201 {object} response.Envelope
// @Router /event-proposal/request-event [post]
func (h *ProposalHandler) Request(c *gin.Context) {
	var req service.ProposeEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	event, err := h.events.Propose(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, event)
}

// ListAll godoc
// @Summary List all proposals for admin review
// @Tags Proposals
// @Produce json
// @Success 200 {object} response.Envelope
// @Success 204
// @Router /event-proposal/all-requested-events [get]
func (h *ProposalHandler) ListAll(c *gin.Context) {
	events, err := h.events.ListAllProposals(c.Request.Context())
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

// ListByFaculty godoc
// @Summary List a faculty member's proposals
// @Tags Proposals
// @Produce json
// @Param facultyId path int true "Faculty ID"
// @Success 200 {object} response.Envelope
// @Success 204
// @Router /event-proposal/by-faculty/{facultyId} [get]
func (h *ProposalHandler) ListByFaculty(c *gin.Context) {
	facultyID, err := pathID(c, "facultyId")
	if err != nil {
		response.Error(c, err)
		return
	}
	events, err := h.events.ListForFaculty(c.Request.Context(), facultyID)
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

// GetByID godoc
// @Summary Fetch a single proposal
// @Tags Proposals
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} response.Envelope
// @Router /event-proposal/{id} [get]
func (h *ProposalHandler) GetByID(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	event, err := h.events.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, event)
}

// Approve godoc
// @Summary Approve a proposal
// @Tags Proposals
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} response.Envelope
// @Router /event-proposal/approve-event/{id} [post]
func (h *ProposalHandler) Approve(c *gin.Context) {
	h.transition(c, models.EventStatusApproved)
}

// Reject godoc
// @Summary Reject a proposal
// @Tags Proposals
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} response.Envelope
// @Router /event-proposal/reject-event/{id} [post]
func (h *ProposalHandler) Reject(c *gin.Context) {
	h.transition(c, models.EventStatusRejected)
}

func (h *ProposalHandler) transition(c *gin.Context, target models.EventStatus) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	event, err := h.events.Transition(c.Request.Context(), id, target)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, event)
}
