package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuslabs/campus-events-api/internal/models"
	"github.com/campuslabs/campus-events-api/internal/service"
	appErrors "github.com/campuslabs/campus-events-api/pkg/errors"
)

func performRequest(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

type fakeProposalLifecycle struct {
	proposals   []models.Event
	proposeErr  error
	transitions []models.EventStatus
}

func (f *fakeProposalLifecycle) Propose(ctx context.Context, req service.ProposeEventRequest) (*models.Event, error) {
	if f.proposeErr != nil {
		return nil, f.proposeErr
	}
	event := models.Event{
		ID: int64(len(f.proposals) + 1), FacultyID: req.FacultyID, Title: req.Title,
		Venue: req.Venue, Date: req.Date, Description: req.Description,
		Status: models.EventStatusPending,
	}
	f.proposals = append(f.proposals, event)
	return &event, nil
}

func (f *fakeProposalLifecycle) ListAllProposals(ctx context.Context) ([]models.Event, error) {
	return f.proposals, nil
}

func (f *fakeProposalLifecycle) ListForFaculty(ctx context.Context, facultyID int64) ([]models.Event, error) {
	var out []models.Event
	for _, e := range f.proposals {
		if e.FacultyID == facultyID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeProposalLifecycle) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	for _, e := range f.proposals {
		if e.ID == id {
			return &e, nil
		}
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, "event not found")
}

func (f *fakeProposalLifecycle) Transition(ctx context.Context, id int64, target models.EventStatus) (*models.Event, error) {
	f.transitions = append(f.transitions, target)
	event, err := f.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	event.Status = target
	return event, nil
}

func buildProposalRouter(svc *fakeProposalLifecycle) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewProposalHandler(svc)
	router := gin.New()
	group := router.Group("/api/event-proposal")
	group.POST("/request-event", h.Request)
	group.GET("/all-requested-events", h.ListAll)
	group.GET("/by-faculty/:facultyId", h.ListByFaculty)
	group.GET("/:id", h.GetByID)
	group.POST("/approve-event/:id", h.Approve)
	group.POST("/reject-event/:id", h.Reject)
	return router
}

func TestProposalRequestCreated(t *testing.T) {
	svc := &fakeProposalLifecycle{}
	router := buildProposalRouter(svc)

	payload := `{"facultyId":7,"title":"Tech Fest","venue":"Main Hall","date":"2025-03-01"}`
	req, _ := http.NewRequest(http.MethodPost, "/api/event-proposal/request-event", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := performRequest(router, req)

	require.Equal(t, http.StatusCreated, resp.Code)
	assert.Contains(t, resp.Body.String(), `"status":"Pending"`)
	assert.Contains(t, resp.Body.String(), `"date":"2025-03-01"`)
}

func TestProposalRequestMalformedBody(t *testing.T) {
	router := buildProposalRouter(&fakeProposalLifecycle{})

	req, _ := http.NewRequest(http.MethodPost, "/api/event-proposal/request-event", bytes.NewBufferString(`{not json`))
	req.Header.Set("Content-Type", "application/json")
	resp := performRequest(router, req)

	require.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), appErrors.ErrValidation.Code)
}

func TestProposalListAllEmptyIsNoContent(t *testing.T) {
	router := buildProposalRouter(&fakeProposalLifecycle{})

	req, _ := http.NewRequest(http.MethodGet, "/api/event-proposal/all-requested-events", nil)
	resp := performRequest(router, req)

	require.Equal(t, http.StatusNoContent, resp.Code)
	assert.Empty(t, resp.Body.String())
}

func TestProposalGetByIDMissingIs404(t *testing.T) {
	router := buildProposalRouter(&fakeProposalLifecycle{})

	req, _ := http.NewRequest(http.MethodGet, "/api/event-proposal/42", nil)
	resp := performRequest(router, req)

	require.Equal(t, http.StatusNotFound, resp.Code)
	assert.Contains(t, resp.Body.String(), appErrors.ErrNotFound.Code)
}

func TestProposalApproveAndReject(t *testing.T) {
	svc := &fakeProposalLifecycle{proposals: []models.Event{
		{ID: 1, FacultyID: 7, Title: "Tech Fest", Status: models.EventStatusPending},
	}}
	router := buildProposalRouter(svc)

	req, _ := http.NewRequest(http.MethodPost, "/api/event-proposal/approve-event/1", nil)
	resp := performRequest(router, req)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"status":"Approved"`)

	req, _ = http.NewRequest(http.MethodPost, "/api/event-proposal/reject-event/1", nil)
	resp = performRequest(router, req)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"status":"Rejected"`)

	assert.Equal(t, []models.EventStatus{models.EventStatusApproved, models.EventStatusRejected}, svc.transitions)
}

func TestProposalApproveBadIDParam(t *testing.T) {
	router := buildProposalRouter(&fakeProposalLifecycle{})

	req, _ := http.NewRequest(http.MethodPost, "/api/event-proposal/approve-event/abc", nil)
	resp := performRequest(router, req)

	require.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "invalid id")
}
