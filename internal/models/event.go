package models

// EventStatus represents the lifecycle state of an event.
type EventStatus string

// Canonical event statuses. An earlier revision wrote lower-case "approved";
// rows carrying it must be folded to the canonical casing before deploying
// this revision.
const (
	EventStatusPending  EventStatus = "Pending"
	EventStatusApproved EventStatus = "Approved"
	EventStatusRejected EventStatus = "Rejected"
)

// Valid reports whether the status is one of the canonical values.
func (s EventStatus) Valid() bool {
	switch s {
	case EventStatusPending, EventStatusApproved, EventStatusRejected:
		return true
	}
	return false
}

// Event is a campus event record. FacultyName is denormalized from the users
// table at creation and transition time and is not kept live.
type Event struct {
	ID          int64       `db:"id" json:"id"`
	FacultyID   int64       `db:"faculty_id" json:"facultyId"`
	Title       string      `db:"title" json:"title"`
	Venue       string      `db:"venue" json:"venue"`
	Date        Date        `db:"date" json:"date"`
	Description string      `db:"description" json:"description"`
	Status      EventStatus `db:"status" json:"status"`
	Remark      string      `db:"remark" json:"remark"`
	FacultyName string      `db:"faculty_name" json:"facultyName"`
}
