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

const approvedEventsCacheKey = "events:approved"

type eventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	FindByID(ctx context.Context, id int64) (*models.Event, error)
	ListByStatus(ctx context.Context, status models.EventStatus) ([]models.Event, error)
	ListByFaculty(ctx context.Context, facultyID int64) ([]models.Event, error)
	ListByFacultyAndStatus(ctx context.Context, facultyID int64, status models.EventStatus) ([]models.Event, error)
	ListAll(ctx context.Context) ([]models.Event, error)
	Update(ctx context.Context, event *models.Event) error
	UpdateRemark(ctx context.Context, id int64, remark string) (bool, error)
	Delete(ctx context.Context, id int64) error
	DeleteByIDAndStatus(ctx context.Context, id int64, status models.EventStatus) (bool, error)
}

// rejectionNotifier receives identifiers of events that entered Rejected.
type rejectionNotifier interface {
	EnqueueEvent(id int64) error
}

// ProposeEventRequest is a faculty event proposal. Any status supplied by the
// caller is ignored; proposals always start Pending. Only the date is
// mandatory; a proposal without a title or faculty still persists.
type ProposeEventRequest struct {
	FacultyID   int64       `json:"facultyId"`
	Title       string      `json:"title"`
	Venue       string      `json:"venue"`
	Date        models.Date `json:"date" validate:"required"`
	Description string      `json:"description"`
}

// EditEventRequest overwrites an event's title, date, description, status,
// remark, faculty identifier and faculty display name. Absent fields are
// written as their zero values, not merged. Venue is not editable and keeps
// its stored value.
type EditEventRequest struct {
	FacultyID   int64              `json:"facultyId"`
	Title       string             `json:"title"`
	Date        models.Date        `json:"date" validate:"required"`
	Description string             `json:"description"`
	Status      models.EventStatus `json:"status"`
	Remark      string             `json:"remark"`
	FacultyName string             `json:"facultyName"`
}

// EventService owns the proposal, approval and listing workflow.
type EventService struct {
	repo                eventRepository
	users               userReader
	cache               *CacheService
	purge               rejectionNotifier
	scopedPendingFilter bool
	validator           *validator.Validate
	logger              *zap.Logger
}

// NewEventService constructs EventService. cache and purge may be nil.
func NewEventService(repo eventRepository, users userReader, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *EventService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EventService{repo: repo, users: users, cache: cache, validator: validate, logger: logger}
}

// WithScopedPendingFilter narrows ListForFaculty to Pending events only.
// Off by default: the shipped endpoint filters by faculty alone despite its
// pending-only name.
func (s *EventService) WithScopedPendingFilter(enabled bool) *EventService {
	s.scopedPendingFilter = enabled
	return s
}

// WithRejectionNotifier registers a sink for rejected event identifiers.
func (s *EventService) WithRejectionNotifier(n rejectionNotifier) *EventService {
	s.purge = n
	return s
}

// Propose stores a faculty proposal with status forced to Pending. The
// faculty display name is resolved best-effort: a missing user leaves the
// name blank rather than failing the proposal.
func (s *EventService) Propose(ctx context.Context, req ProposeEventRequest) (*models.Event, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid proposal payload")
	}
	name, err := resolveDisplayName(ctx, s.users, req.FacultyID, resolveSkipMissing)
	if err != nil {
		return nil, err
	}
	event := &models.Event{
		FacultyID:   req.FacultyID,
		Title:       req.Title,
		Venue:       req.Venue,
		Date:        req.Date,
		Description: req.Description,
		Status:      models.EventStatusPending,
		FacultyName: name,
	}
	if err := s.repo.Create(ctx, event); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create proposal")
	}
	return event, nil
}

// CreateDirect stores an event with status forced to Approved. This is the
// admin-facing direct creation path that bypasses the proposal workflow.
func (s *EventService) CreateDirect(ctx context.Context, req ProposeEventRequest) (*models.Event, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid event payload")
	}
	name, err := resolveDisplayName(ctx, s.users, req.FacultyID, resolveSkipMissing)
	if err != nil {
		return nil, err
	}
	event := &models.Event{
		FacultyID:   req.FacultyID,
		Title:       req.Title,
		Venue:       req.Venue,
		Date:        req.Date,
		Description: req.Description,
		Status:      models.EventStatusApproved,
		FacultyName: name,
	}
	if err := s.repo.Create(ctx, event); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create event")
	}
	s.invalidateApproved(ctx)
	return event, nil
}

// ListApproved returns all events carrying the canonical Approved status.
// Zero matches yield an empty slice, never an error.
func (s *EventService) ListApproved(ctx context.Context) ([]models.Event, error) {
	var cached []models.Event
	if hit, err := s.cache.Get(ctx, approvedEventsCacheKey, &cached); err == nil && hit {
		return cached, nil
	}
	events, err := s.repo.ListByStatus(ctx, models.EventStatusApproved)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list approved events")
	}
	if s.cache.Enabled() {
		s.cache.Set(ctx, approvedEventsCacheKey, events)
	}
	return events, nil
}

// ListForFaculty returns a faculty member's events. The shipped behaviour
// ignores status despite the endpoint's pending-only name; the scoped filter
// flag applies the documented fix.
func (s *EventService) ListForFaculty(ctx context.Context, facultyID int64) ([]models.Event, error) {
	var (
		events []models.Event
		err    error
	)
	if s.scopedPendingFilter {
		events, err = s.repo.ListByFacultyAndStatus(ctx, facultyID, models.EventStatusPending)
	} else {
		events, err = s.repo.ListByFaculty(ctx, facultyID)
	}
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list faculty events")
	}
	return events, nil
}

// ListAllProposals returns every event regardless of status for the admin
// review screen.
func (s *EventService) ListAllProposals(ctx context.Context) ([]models.Event, error) {
	events, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list proposals")
	}
	return events, nil
}

// GetByID returns the event or a not-found error.
func (s *EventService) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "event not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load event")
	}
	return event, nil
}

// Transition moves an event to Approved or Rejected. There is no
// transition-order guard: an already-Approved event may be moved again. The
// faculty display name is re-resolved from the current directory state.
func (s *EventService) Transition(ctx context.Context, id int64, target models.EventStatus) (*models.Event, error) {
	if target != models.EventStatusApproved && target != models.EventStatusRejected {
		return nil, appErrors.Clone(appErrors.ErrValidation, "target status must be Approved or Rejected")
	}
	event, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	event.Status = target
	name, err := resolveDisplayName(ctx, s.users, event.FacultyID, resolveSkipMissing)
	if err != nil {
		return nil, err
	}
	event.FacultyName = name
	if err := s.repo.Update(ctx, event); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to transition event")
	}
	s.invalidateApproved(ctx)
	if target == models.EventStatusRejected && s.purge != nil {
		if err := s.purge.EnqueueEvent(event.ID); err != nil {
			s.logger.Warn("failed to enqueue rejected event for purge", zap.Int64("event_id", event.ID), zap.Error(err))
		}
	}
	return event, nil
}

// Edit overwrites the event's fields from the caller-supplied record. The
// stored venue is left untouched.
func (s *EventService) Edit(ctx context.Context, id int64, req EditEventRequest) (*models.Event, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid event payload")
	}
	event, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	event.FacultyID = req.FacultyID
	event.Title = req.Title
	event.Date = req.Date
	event.Description = req.Description
	event.Status = req.Status
	event.Remark = req.Remark
	event.FacultyName = req.FacultyName
	if err := s.repo.Update(ctx, event); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update event")
	}
	s.invalidateApproved(ctx)
	return event, nil
}

// SetRemark updates only the remark in a single statement and returns the
// refreshed record.
func (s *EventService) SetRemark(ctx context.Context, id int64, remark string) (*models.Event, error) {
	touched, err := s.repo.UpdateRemark(ctx, id, remark)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update remark")
	}
	if !touched {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "event not found")
	}
	s.invalidateApproved(ctx)
	return s.GetByID(ctx, id)
}

// Delete removes the event unconditionally.
func (s *EventService) Delete(ctx context.Context, id int64) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete event")
	}
	s.invalidateApproved(ctx)
	return nil
}

// DeleteIfRejected removes the event only when it is Rejected, reporting
// whether a row was removed. Reached only by the purge worker; no HTTP route
// maps here.
func (s *EventService) DeleteIfRejected(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.repo.DeleteByIDAndStatus(ctx, id, models.EventStatusRejected)
	if err != nil {
		return false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to purge event")
	}
	if deleted {
		s.invalidateApproved(ctx)
	}
	return deleted, nil
}

func (s *EventService) invalidateApproved(ctx context.Context) {
	if s.cache.Enabled() {
		s.cache.Invalidate(ctx, approvedEventsCacheKey)
	}
}
