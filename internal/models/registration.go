package models

// RegistrationStatus represents the state of a registration record.
type RegistrationStatus string

// The only status a registration carries today.
const RegistrationStatusRegistered RegistrationStatus = "Registered"

// Registration is a student's enrollment against an event. StudentName and
// FacultyID are denormalized at write time so faculty-scoped listings need no
// join at read time.
type Registration struct {
	ID          int64              `db:"id" json:"id"`
	StudentID   int64              `db:"student_id" json:"studentId"`
	StudentName string             `db:"student_name" json:"studentName"`
	EventID     int64              `db:"event_id" json:"eventId"`
	FacultyID   int64              `db:"faculty_id" json:"facultyId"`
	Status      RegistrationStatus `db:"status" json:"status"`
	Date        Date               `db:"date" json:"date"`
}
