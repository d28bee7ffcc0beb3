package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/campuslabs/campus-events-api/internal/models"
)

const registrationColumns = `id, student_id, student_name, event_id, faculty_id, status, date`

// RegistrationRepository handles persistence of registrations.
type RegistrationRepository struct {
	db *sqlx.DB
}

// NewRegistrationRepository constructs the repository.
func NewRegistrationRepository(db *sqlx.DB) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

// Create persists a new registration and assigns its generated identifier.
func (r *RegistrationRepository) Create(ctx context.Context, reg *models.Registration) error {
	const query = `INSERT INTO registrations (student_id, student_name, event_id, faculty_id, status, date)
        VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	if err := r.db.QueryRowxContext(ctx, query,
		reg.StudentID, reg.StudentName, reg.EventID, reg.FacultyID, reg.Status, reg.Date,
	).Scan(&reg.ID); err != nil {
		return fmt.Errorf("create registration: %w", err)
	}
	return nil
}

// FindByID returns a registration by identifier.
func (r *RegistrationRepository) FindByID(ctx context.Context, id int64) (*models.Registration, error) {
	query := fmt.Sprintf(`SELECT %s FROM registrations WHERE id = $1 LIMIT 1`, registrationColumns)
	var reg models.Registration
	if err := r.db.GetContext(ctx, &reg, query, id); err != nil {
		return nil, err
	}
	return &reg, nil
}

// FindByStudentAndEvent returns the first registration matching the pair.
// This is the only duplicate-detection primitive the system has.
func (r *RegistrationRepository) FindByStudentAndEvent(ctx context.Context, studentID, eventID int64) (*models.Registration, error) {
	query := fmt.Sprintf(`SELECT %s FROM registrations WHERE student_id = $1 AND event_id = $2 LIMIT 1`, registrationColumns)
	var reg models.Registration
	if err := r.db.GetContext(ctx, &reg, query, studentID, eventID); err != nil {
		return nil, err
	}
	return &reg, nil
}

// ListAll returns every registration in insertion order.
func (r *RegistrationRepository) ListAll(ctx context.Context) ([]models.Registration, error) {
	query := fmt.Sprintf(`SELECT %s FROM registrations ORDER BY id`, registrationColumns)
	var regs []models.Registration
	if err := r.db.SelectContext(ctx, &regs, query); err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	return regs, nil
}

// ListByFaculty returns registrations whose derived faculty matches.
func (r *RegistrationRepository) ListByFaculty(ctx context.Context, facultyID int64) ([]models.Registration, error) {
	query := fmt.Sprintf(`SELECT %s FROM registrations WHERE faculty_id = $1 ORDER BY id`, registrationColumns)
	var regs []models.Registration
	if err := r.db.SelectContext(ctx, &regs, query, facultyID); err != nil {
		return nil, fmt.Errorf("list registrations by faculty: %w", err)
	}
	return regs, nil
}

// ListByEvent returns the roster for one event.
func (r *RegistrationRepository) ListByEvent(ctx context.Context, eventID int64) ([]models.Registration, error) {
	query := fmt.Sprintf(`SELECT %s FROM registrations WHERE event_id = $1 ORDER BY id`, registrationColumns)
	var regs []models.Registration
	if err := r.db.SelectContext(ctx, &regs, query, eventID); err != nil {
		return nil, fmt.Errorf("list registrations by event: %w", err)
	}
	return regs, nil
}

// ListByStudent returns everything a student has registered for.
func (r *RegistrationRepository) ListByStudent(ctx context.Context, studentID int64) ([]models.Registration, error) {
	query := fmt.Sprintf(`SELECT %s FROM registrations WHERE student_id = $1 ORDER BY id`, registrationColumns)
	var regs []models.Registration
	if err := r.db.SelectContext(ctx, &regs, query, studentID); err != nil {
		return nil, fmt.Errorf("list registrations by student: %w", err)
	}
	return regs, nil
}

// Delete removes the registration unconditionally.
func (r *RegistrationRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM registrations WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete registration: %w", err)
	}
	return nil
}
