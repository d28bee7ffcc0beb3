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

type registrationManager interface {
	Register(ctx context.Context, req service.RegisterRequest) (*models.Registration, error)
	ListAll(ctx context.Context) ([]models.Registration, error)
	ListByFaculty(ctx context.Context, facultyID int64) ([]models.Registration, error)
	ListByStudent(ctx context.Context, studentID int64) ([]models.Registration, error)
	FindByStudentAndEvent(ctx context.Context, studentID, eventID int64) (*models.Registration, error)
	Delete(ctx context.Context, id int64) error
}

// StudentHandler exposes student-facing registration endpoints.
type StudentHandler struct {
	registrations registrationManager
}

// NewStudentHandler constructs StudentHandler.
func NewStudentHandler(registrations registrationManager) *StudentHandler {
	return &StudentHandler{registrations: registrations}
}

// Register godoc
// @Summary Register a student for an event
// @Tags Students
// @Accept json
// @Produce json
// @Param payload body service.RegisterRequest true "Registration payload"
// @Success 201 {object} response.Envelope
// @Router /students/register-student [post]
func (h *StudentHandler) Register(c *gin.Context) {
	var req service.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	reg, err := h.registrations.Register(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, reg)
}

// ListAll godoc
// @Summary List every registration
// @Tags Students
// @Produce json
// @Success 200 {object} response.Envelope
// @Success 204
// @Router /students/all-registered-students [get]
func (h *StudentHandler) ListAll(c *gin.Context) {
	regs, err := h.registrations.ListAll(c.Request.Context())
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

// ListByFaculty godoc
// @Summary List registrations owned by a faculty member
// @Tags Students
// @Produce json
// @Param facultyId path int true "Faculty ID"
// @Success 200 {object} response.Envelope
// @Success 204
// @Router /students/get-students-by-faculty-id/{facultyId} [get]
func (h *StudentHandler) ListByFaculty(c *gin.Context) {
	facultyID, err := pathID(c, "facultyId")
	if err != nil {
		response.Error(c, err)
		return
	}
	regs, err := h.registrations.ListByFaculty(c.Request.Context(), facultyID)
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

// CheckRegistration godoc
// @Summary Check whether a student registered for an event
// @Tags Students
// @Produce json
// @Param studentId path int true "Student ID"
// @Param eventId path int true "Event ID"
// @Success 200 {object} response.Envelope
// @Router /students/check-registration/{studentId}/{eventId} [get]
func (h *StudentHandler) CheckRegistration(c *gin.Context) {
	studentID, err := pathID(c, "studentId")
	if err != nil {
		response.Error(c, err)
		return
	}
	eventID, err := pathID(c, "eventId")
	if err != nil {
		response.Error(c, err)
		return
	}
	reg, err := h.registrations.FindByStudentAndEvent(c.Request.Context(), studentID, eventID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, reg)
}

// ListByStudent godoc
// @Summary List everything a student registered for
// @Tags Students
// @Produce json
// @Param studentId path int true "Student ID"
// @Success 200 {object} response.Envelope
// @Success 204
// @Router /students/all-events-registered-by-student/{studentId} [get]
func (h *StudentHandler) ListByStudent(c *gin.Context) {
	studentID, err := pathID(c, "studentId")
	if err != nil {
		response.Error(c, err)
		return
	}
	regs, err := h.registrations.ListByStudent(c.Request.Context(), studentID)
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

// DeleteRegistration godoc
// @Summary Remove a registration
// @Tags Students
// @Param id path int true "Registration ID"
// @Success 204
// @Router /students/registrations/{id} [delete]
func (h *StudentHandler) DeleteRegistration(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.registrations.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
