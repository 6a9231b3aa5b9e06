package entity

// UserRole is the role stored on a user record.
type UserRole string

const (
	RolePatient UserRole = "patient"
	RoleAdmin   UserRole = "admin"
)

// Valid reports whether r is a known role.
func (r UserRole) Valid() bool {
	return r == RolePatient || r == RoleAdmin
}
