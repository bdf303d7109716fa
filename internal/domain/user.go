package domain

import "time"

// Role tags a user record with its position in the restaurant. All roles
// share one record type; role-specific attributes are optional fields.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleWaiter   Role = "waiter"
	RoleKitchen  Role = "kitchen"
	RoleAdmin    Role = "admin"
)

// Valid reports whether the role is one of the known tags.
func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleWaiter, RoleKitchen, RoleAdmin:
		return true
	}
	return false
}

// Staff reports whether the role belongs to restaurant personnel.
func (r Role) Staff() bool {
	return r == RoleWaiter || r == RoleKitchen || r == RoleAdmin
}

// User is the single identity record for every role.
type User struct {
	ID            string
	Username      string
	Email         string
	EmailVerified bool
	PhoneNumber   *string
	PasswordHash  string
	Role          Role

	// Role-specific attributes; nil unless the role uses them.
	BirthDate *time.Time // waiters
	Station   *string    // kitchen staff
	TableID   *string    // customers currently seated

	CreatedAt time.Time
	UpdatedAt time.Time
}
