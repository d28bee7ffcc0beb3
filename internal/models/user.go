package models

// UserRole represents the available account roles.
type UserRole string

const (
	RoleStudent UserRole = "student"
	RoleFaculty UserRole = "faculty"
	RoleAdmin   UserRole = "admin"
)

// User represents an application user stored in the users table.
// Password is stored and compared as provided; the verification scheme is
// governed by the configured credential verifier. The field stays on the wire
// because the legacy frontend round-trips it on login.
type User struct {
	ID       int64    `db:"id" json:"id"`
	Email    string   `db:"email" json:"email"`
	Password string   `db:"password" json:"password"`
	Name     string   `db:"name" json:"name"`
	Role     UserRole `db:"role" json:"role"`
}
