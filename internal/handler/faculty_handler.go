package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campuslabs/campus-events-api/internal/models"
	"github.com/campuslabs/campus-events-api/internal/service"
	"github.com/campuslabs/campus-events-api/pkg/response"
)

type rosterReader interface {
	ListByEvent(ctx context.Context, eventID int64) ([]models.Registration, error)
}

type rosterExporter interface {
	EventRoster(ctx context.Context, eventID int64, format string) (*service.RosterExport, error)
}

// FacultyHandler exposes faculty-facing roster views.
type FacultyHandler struct {
	registrations rosterReader
	exports       rosterExporter
}

// NewFacultyHandler constructs FacultyHandler.
func NewFacultyHandler(registrations rosterReader, exports rosterExporter) *FacultyHandler {
	return &FacultyHandler{registrations: registrations, exports: exports}
}

// RosterByEvent godoc
// @Summary List registrations for an event
// @Tags Faculty
// @Produce json
// @Param eventId path int true "Event ID"
// @Success 200 {object} response.Envelope
// @Success 204
// @Router /faculty/all-registrations/{eventId} [get]
func (h *FacultyHandler) RosterByEvent(c *gin.Context) {
	eventID, err := pathID(c, "eventId")
	if err != nil {
		response.Error(c, err)
		return
	}
	regs, err := h.registrations.ListByEvent(c.Request.Context(), eventID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if len(regs) == 0 {
		response.NoContent(c)
		return
	}
	response.JSON(c, http.StatusOK, regs)
}

// ExportRoster godoc
// @Summary Download an event roster as CSV or PDF
// @Tags Faculty
// @Produce text/csv
// @Produce application/pdf
// @Param eventId path int true "Event ID"
// @Param format query string false "csv or pdf" default(csv)
// @Success 200
// @Router /faculty/roster/{eventId}/export [get]
func (h *FacultyHandler) ExportRoster(c *gin.Context) {
	eventID, err := pathID(c, "eventId")
	if err != nil {
		response.Error(c, err)
		return
	}
	roster, err := h.exports.EventRoster(c.Request.Context(), eventID, c.DefaultQuery("format", service.ExportFormatCSV))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+roster.Filename+`"`)
	c.Data(http.StatusOK, roster.ContentType, roster.Content)
}
