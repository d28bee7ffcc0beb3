package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/campuslabs/campus-events-api/internal/models"
)

const eventColumns = `id, faculty_id, title, venue, date, description, status, remark, faculty_name`

// EventRepository handles persistence of events.
type EventRepository struct {
	db *sqlx.DB
}

// NewEventRepository constructs the repository.
func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{db: db}
}

// Create persists a new event and assigns its generated identifier.
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	const query = `INSERT INTO events (faculty_id, title, venue, date, description, status, remark, faculty_name)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	if err := r.db.QueryRowxContext(ctx, query,
		event.FacultyID, event.Title, event.Venue, event.Date, event.Description,
		event.Status, event.Remark, event.FacultyName,
	).Scan(&event.ID); err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

// FindByID returns an event by identifier. sql.ErrNoRows passes through so
// callers can map it to a not-found result.
func (r *EventRepository) FindByID(ctx context.Context, id int64) (*models.Event, error) {
	query := fmt.Sprintf(`SELECT %s FROM events WHERE id = $1 LIMIT 1`, eventColumns)
	var event models.Event
	if err := r.db.GetContext(ctx, &event, query, id); err != nil {
		return nil, err
	}
	return &event, nil
}

// ListByStatus returns events carrying the given status in insertion order.
func (r *EventRepository) ListByStatus(ctx context.Context, status models.EventStatus) ([]models.Event, error) {
	query := fmt.Sprintf(`SELECT %s FROM events WHERE status = $1 ORDER BY id`, eventColumns)
	var events []models.Event
	if err := r.db.SelectContext(ctx, &events, query, status); err != nil {
		return nil, fmt.Errorf("list events by status: %w", err)
	}
	return events, nil
}

// ListByFaculty returns all events owned by a faculty member, any status.
func (r *EventRepository) ListByFaculty(ctx context.Context, facultyID int64) ([]models.Event, error) {
	query := fmt.Sprintf(`SELECT %s FROM events WHERE faculty_id = $1 ORDER BY id`, eventColumns)
	var events []models.Event
	if err := r.db.SelectContext(ctx, &events, query, facultyID); err != nil {
		return nil, fmt.Errorf("list events by faculty: %w", err)
	}
	return events, nil
}

// ListByFacultyAndStatus narrows the faculty listing to one status.
func (r *EventRepository) ListByFacultyAndStatus(ctx context.Context, facultyID int64, status models.EventStatus) ([]models.Event, error) {
	query := fmt.Sprintf(`SELECT %s FROM events WHERE faculty_id = $1 AND status = $2 ORDER BY id`, eventColumns)
	var events []models.Event
	if err := r.db.SelectContext(ctx, &events, query, facultyID, status); err != nil {
		return nil, fmt.Errorf("list events by faculty and status: %w", err)
	}
	return events, nil
}

// ListAll returns every event in insertion order.
func (r *EventRepository) ListAll(ctx context.Context) ([]models.Event, error) {
	query := fmt.Sprintf(`SELECT %s FROM events ORDER BY id`, eventColumns)
	var events []models.Event
	if err := r.db.SelectContext(ctx, &events, query); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

// Update overwrites every mutable column of the event.
func (r *EventRepository) Update(ctx context.Context, event *models.Event) error {
	const query = `UPDATE events SET faculty_id = $2, title = $3, venue = $4, date = $5,
        description = $6, status = $7, remark = $8, faculty_name = $9 WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query,
		event.ID, event.FacultyID, event.Title, event.Venue, event.Date,
		event.Description, event.Status, event.Remark, event.FacultyName,
	); err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	return nil
}

// UpdateRemark sets the remark in a single statement and reports whether a
// row was touched.
func (r *EventRepository) UpdateRemark(ctx context.Context, id int64, remark string) (bool, error) {
	const query = `UPDATE events SET remark = $2 WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id, remark)
	if err != nil {
		return false, fmt.Errorf("update event remark: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update event remark rows: %w", err)
	}
	return rows > 0, nil
}

// Delete removes the event unconditionally.
func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM events WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

// DeleteByIDAndStatus removes the event only when it carries the given
// status, reporting whether a row was removed.
func (r *EventRepository) DeleteByIDAndStatus(ctx context.Context, id int64, status models.EventStatus) (bool, error) {
	const query = `DELETE FROM events WHERE id = $1 AND status = $2`
	res, err := r.db.ExecContext(ctx, query, id, status)
	if err != nil {
		return false, fmt.Errorf("delete event by status: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete event by status rows: %w", err)
	}
	return rows > 0, nil
}
