package user

import "errors"

var (
	ErrUnauthenticated         = errors.New("authentication required")
	ErrOwnerAccessRequired     = errors.New("owner access required")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
)
