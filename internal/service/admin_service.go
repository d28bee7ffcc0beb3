package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campuslabs/campus-events-api/internal/models"
	appErrors "github.com/campuslabs/campus-events-api/pkg/errors"
)

type adminUserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmailAndPassword(ctx context.Context, email, password string) (*models.User, error)
}

type eventEditor interface {
	Edit(ctx context.Context, id int64, req EditEventRequest) (*models.Event, error)
	SetRemark(ctx context.Context, id int64, remark string) (*models.Event, error)
}

// ProvisionFacultyRequest creates a faculty account.
type ProvisionFacultyRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name" validate:"required"`
}

// AdminService layers privileged mutations over the event lifecycle.
type AdminService struct {
	users     adminUserRepository
	events    eventEditor
	verifier  CredentialVerifier
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAdminService constructs AdminService. The verifier must match the one
// used by the login path so provisioned credentials remain verifiable.
func NewAdminService(users adminUserRepository, events eventEditor, verifier CredentialVerifier, validate *validator.Validate, logger *zap.Logger) *AdminService {
	if verifier == nil {
		verifier = PlaintextVerifier{}
	}
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AdminService{users: users, events: events, verifier: verifier, validator: validate, logger: logger}
}

// ProvisionFaculty creates a user with role forced to faculty. An existing
// user with the same email and password pair is a conflict.
func (s *AdminService) ProvisionFaculty(ctx context.Context, req ProvisionFacultyRequest) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid faculty payload")
	}
	if _, err := s.users.FindByEmailAndPassword(ctx, req.Email, req.Password); err == nil {
		return nil, appErrors.Clone(appErrors.ErrConflict, "user already exists")
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check existing user")
	}
	stored, err := s.verifier.Hash(req.Password)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to prepare credentials")
	}
	user := &models.User{
		Email:    req.Email,
		Password: stored,
		Name:     req.Name,
		Role:     models.RoleFaculty,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create faculty user")
	}
	return user, nil
}

// ForceEditEvent applies a full overwrite through the lifecycle manager. The
// elevated privilege lives in the routing, not here.
func (s *AdminService) ForceEditEvent(ctx context.Context, id int64, req EditEventRequest) (*models.Event, error) {
	return s.events.Edit(ctx, id, req)
}

// SetEventRemark records admin feedback on an event.
func (s *AdminService) SetEventRemark(ctx context.Context, id int64, remark string) (*models.Event, error) {
	return s.events.SetRemark(ctx, id, remark)
}
