package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuslabs/campus-events-api/internal/models"
	"github.com/campuslabs/campus-events-api/internal/service"
	appErrors "github.com/campuslabs/campus-events-api/pkg/errors"
)

type fakeRosterBackend struct {
	regs map[int64][]models.Registration
}

func (f *fakeRosterBackend) ListByEvent(ctx context.Context, eventID int64) ([]models.Registration, error) {
	return f.regs[eventID], nil
}

func (f *fakeRosterBackend) EventRoster(ctx context.Context, eventID int64, format string) (*service.RosterExport, error) {
	if _, ok := f.regs[eventID]; !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "event not found")
	}
	if format != service.ExportFormatCSV && format != service.ExportFormatPDF {
		return nil, appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf")
	}
	return &service.RosterExport{
		Content:     []byte("Registration ID,Student ID\n"),
		ContentType: "text/csv",
		Filename:    "roster-event-1.csv",
	}, nil
}

func buildFacultyRouter(backend *fakeRosterBackend) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewFacultyHandler(backend, backend)
	router := gin.New()
	group := router.Group("/api/faculty")
	group.GET("/all-registrations/:eventId", h.RosterByEvent)
	group.GET("/roster/:eventId/export", h.ExportRoster)
	return router
}

func TestFacultyRosterByEvent(t *testing.T) {
	backend := &fakeRosterBackend{regs: map[int64][]models.Registration{
		1: {{ID: 1, StudentID: 10, StudentName: "Asha", EventID: 1, FacultyID: 7, Status: models.RegistrationStatusRegistered}},
		2: {},
	}}
	router := buildFacultyRouter(backend)

	req, _ := http.NewRequest(http.MethodGet, "/api/faculty/all-registrations/1", nil)
	resp := performRequest(router, req)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"studentName":"Asha"`)

	req, _ = http.NewRequest(http.MethodGet, "/api/faculty/all-registrations/2", nil)
	resp = performRequest(router, req)
	require.Equal(t, http.StatusNoContent, resp.Code)
}

func TestFacultyExportRosterAttachment(t *testing.T) {
	backend := &fakeRosterBackend{regs: map[int64][]models.Registration{1: {}}}
	router := buildFacultyRouter(backend)

	req, _ := http.NewRequest(http.MethodGet, "/api/faculty/roster/1/export", nil)
	resp := performRequest(router, req)

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "text/csv", resp.Header().Get("Content-Type"))
	assert.Contains(t, resp.Header().Get("Content-Disposition"), "roster-event-1.csv")
}

func TestFacultyExportRosterUnknownFormat(t *testing.T) {
	backend := &fakeRosterBackend{regs: map[int64][]models.Registration{1: {}}}
	router := buildFacultyRouter(backend)

	req, _ := http.NewRequest(http.MethodGet, "/api/faculty/roster/1/export?format=xlsx", nil)
	resp := performRequest(router, req)

	require.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestFacultyExportRosterMissingEvent(t *testing.T) {
	backend := &fakeRosterBackend{regs: map[int64][]models.Registration{}}
	router := buildFacultyRouter(backend)

	req, _ := http.NewRequest(http.MethodGet, "/api/faculty/roster/9/export", nil)
	resp := performRequest(router, req)

	require.Equal(t, http.StatusNotFound, resp.Code)
}
