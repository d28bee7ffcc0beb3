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

type registrationRepository interface {
	Create(ctx context.Context, reg *models.Registration) error
	FindByID(ctx context.Context, id int64) (*models.Registration, error)
	FindByStudentAndEvent(ctx context.Context, studentID, eventID int64) (*models.Registration, error)
	ListAll(ctx context.Context) ([]models.Registration, error)
	ListByFaculty(ctx context.Context, facultyID int64) ([]models.Registration, error)
	ListByEvent(ctx context.Context, eventID int64) ([]models.Registration, error)
	ListByStudent(ctx context.Context, studentID int64) ([]models.Registration, error)
	Delete(ctx context.Context, id int64) error
}

type eventReader interface {
	FindByID(ctx context.Context, id int64) (*models.Event, error)
}

// RegisterRequest enrolls a student into an event.
type RegisterRequest struct {
	StudentID int64 `json:"studentId" validate:"required"`
	EventID   int64 `json:"eventId" validate:"required"`
}

// RegistrationService owns student enrollment into events.
type RegistrationService struct {
	repo          registrationRepository
	users         userReader
	events        eventReader
	enforceUnique bool
	validator     *validator.Validate
	logger        *zap.Logger
}

// NewRegistrationService constructs RegistrationService.
func NewRegistrationService(repo registrationRepository, users userReader, events eventReader, validate *validator.Validate, logger *zap.Logger) *RegistrationService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RegistrationService{repo: repo, users: users, events: events, validator: validate, logger: logger}
}

// WithUniqueEnforcement turns the advisory duplicate check into a write-time
// constraint. Off by default: the shipped behaviour admits duplicate
// (student, event) registrations.
func (s *RegistrationService) WithUniqueEnforcement(enabled bool) *RegistrationService {
	s.enforceUnique = enabled
	return s
}

// Register enrolls a student. The student lookup is a hard requirement, as is
// the event lookup: a registration must never carry a faculty identifier
// derived from a missing event. Student name and faculty ownership are
// denormalized onto the record at write time.
func (s *RegistrationService) Register(ctx context.Context, req RegisterRequest) (*models.Registration, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid registration payload")
	}
	studentName, err := resolveDisplayName(ctx, s.users, req.StudentID, resolveFailMissing)
	if err != nil {
		var appErr *appErrors.Error
		if errors.As(err, &appErr) && appErr.Code == appErrors.ErrNotFound.Code {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, err
	}
	event, err := s.events.FindByID(ctx, req.EventID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "event not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load event")
	}
	if s.enforceUnique {
		if _, err := s.repo.FindByStudentAndEvent(ctx, req.StudentID, req.EventID); err == nil {
			return nil, appErrors.Clone(appErrors.ErrConflict, "student already registered for event")
		} else if !errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check existing registration")
		}
	}
	reg := &models.Registration{
		StudentID:   req.StudentID,
		StudentName: studentName,
		EventID:     req.EventID,
		FacultyID:   event.FacultyID,
		Status:      models.RegistrationStatusRegistered,
		Date:        models.Today(),
	}
	if err := s.repo.Create(ctx, reg); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create registration")
	}
	return reg, nil
}

// ListAll returns every registration.
func (s *RegistrationService) ListAll(ctx context.Context) ([]models.Registration, error) {
	regs, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list registrations")
	}
	return regs, nil
}

// ListByFaculty returns registrations whose derived faculty matches.
func (s *RegistrationService) ListByFaculty(ctx context.Context, facultyID int64) ([]models.Registration, error) {
	regs, err := s.repo.ListByFaculty(ctx, facultyID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list registrations by faculty")
	}
	return regs, nil
}

// ListByEvent returns the roster for an event.
func (s *RegistrationService) ListByEvent(ctx context.Context, eventID int64) ([]models.Registration, error) {
	regs, err := s.repo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list registrations by event")
	}
	return regs, nil
}

// ListByStudent returns everything a student has registered for.
func (s *RegistrationService) ListByStudent(ctx context.Context, studentID int64) ([]models.Registration, error) {
	regs, err := s.repo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list registrations by student")
	}
	return regs, nil
}

// FindByStudentAndEvent is the advisory existence check used by clients
// before registering. It is not enforced at write time unless the uniqueness
// flag is on.
func (s *RegistrationService) FindByStudentAndEvent(ctx context.Context, studentID, eventID int64) (*models.Registration, error) {
	reg, err := s.repo.FindByStudentAndEvent(ctx, studentID, eventID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "registration not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check registration")
	}
	return reg, nil
}

// Delete resolves the registration and removes it.
func (s *RegistrationService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "registration not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load registration")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete registration")
	}
	return nil
}
