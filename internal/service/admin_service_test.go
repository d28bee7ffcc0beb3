package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuslabs/campus-events-api/internal/models"
	appErrors "github.com/campuslabs/campus-events-api/pkg/errors"
)

func TestProvisionFacultyForcesRole(t *testing.T) {
	store := newMockUserStore()
	svc := NewAdminService(store, nil, nil, nil, nil)

	user, err := svc.ProvisionFaculty(context.Background(), ProvisionFacultyRequest{
		Email: "rao@campus.edu", Password: "secret", Name: "Dr. Rao",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleFaculty, user.Role)
	assert.NotZero(t, user.ID)
}

func TestProvisionFacultyDuplicatePairConflicts(t *testing.T) {
	store := newMockUserStore(models.User{
		Email: "rao@campus.edu", Password: "secret", Name: "Dr. Rao", Role: models.RoleFaculty,
	})
	svc := NewAdminService(store, nil, nil, nil, nil)

	_, err := svc.ProvisionFaculty(context.Background(), ProvisionFacultyRequest{
		Email: "rao@campus.edu", Password: "secret", Name: "Dr. Rao",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErrors.FromError(err).Code)
}

func TestProvisionFacultyRejectsBadEmail(t *testing.T) {
	svc := NewAdminService(newMockUserStore(), nil, nil, nil, nil)

	_, err := svc.ProvisionFaculty(context.Background(), ProvisionFacultyRequest{
		Email: "not-an-email", Password: "secret", Name: "Dr. Rao",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestProvisionFacultyBcryptCredentialsAreVerifiable(t *testing.T) {
	store := newMockUserStore()
	svc := NewAdminService(store, nil, BcryptVerifier{}, nil, nil)

	user, err := svc.ProvisionFaculty(context.Background(), ProvisionFacultyRequest{
		Email: "rao@campus.edu", Password: "secret", Name: "Dr. Rao",
	})
	require.NoError(t, err)
	assert.NotEqual(t, "secret", user.Password)

	auth := NewAuthService(store, BcryptVerifier{}, nil, nil, testAuthConfig)
	resp, err := auth.Login(context.Background(), LoginRequest{
		Email: "rao@campus.edu", Password: "secret", Role: models.RoleFaculty,
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID, resp.User.ID)
}

func TestForceEditEventDelegates(t *testing.T) {
	events := newMockEventRepo()
	eventSvc := NewEventService(events, &mockUserReader{}, nil, nil, nil)
	svc := NewAdminService(newMockUserStore(), eventSvc, nil, nil, nil)

	created, err := eventSvc.Propose(context.Background(), ProposeEventRequest{
		FacultyID: 7, Title: "Tech Fest", Date: testDate(t, "2025-03-01"),
	})
	require.NoError(t, err)

	updated, err := svc.ForceEditEvent(context.Background(), created.ID, EditEventRequest{
		FacultyID: 7, Title: "Tech Fest Final", Date: testDate(t, "2025-03-05"),
		Status: models.EventStatusApproved,
	})
	require.NoError(t, err)
	assert.Equal(t, "Tech Fest Final", updated.Title)
	assert.Equal(t, models.EventStatusApproved, updated.Status)

	remarked, err := svc.SetEventRemark(context.Background(), created.ID, "venue confirmed")
	require.NoError(t, err)
	assert.Equal(t, "venue confirmed", remarked.Remark)
}
