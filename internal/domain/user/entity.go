package user

import "errors"

type Role string

const (
	RoleOwner    Role = "owner"    // Business owner - approves payroll and bonuses
	RoleManager  Role = "manager"  // HR/admin staff - maintains records, generates payroll
	RoleEmployee Role = "employee" // Regular employee
)

// SystemCallerID identifies jobs that act without a human caller.
const SystemCallerID = "system"

// Caller is the authenticated identity an operation runs on behalf of.
type Caller struct {
	ID   string
	Role Role
}

// System returns the caller used by scheduled jobs.
func System() Caller {
	return Caller{ID: SystemCallerID, Role: RoleManager}
}

// IsAuthenticated reports whether the caller carries an identity.
func (c Caller) IsAuthenticated() bool {
	return c.ID != "" && c.Role != ""
}

// IsOwner checks if caller is the business owner
func (c Caller) IsOwner() bool {
	return c.Role == RoleOwner
}

// Can checks the caller's role against the permission table.
func (c Caller) Can(permission Permission) bool {
	return c.IsAuthenticated() && HasPermission(c.Role, permission)
}

// Authorize returns ErrUnauthenticated for an anonymous caller and
// ErrInsufficientPermissions when the role lacks permission.
func (c Caller) Authorize(permission Permission) error {
	if !c.IsAuthenticated() {
		return ErrUnauthenticated
	}
	if !HasPermission(c.Role, permission) {
		return ErrInsufficientPermissions
	}
	return nil
}

// AuthorizeOwner is Authorize for actions reserved to the owner; a
// non-owner gets ErrOwnerAccessRequired.
func (c Caller) AuthorizeOwner(permission Permission) error {
	err := c.Authorize(permission)
	if errors.Is(err, ErrInsufficientPermissions) {
		return ErrOwnerAccessRequired
	}
	return err
}
