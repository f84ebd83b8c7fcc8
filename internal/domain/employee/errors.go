package employee

import "errors"

var (
	ErrEmployeeNotFound        = errors.New("employee not found")
	ErrNIKExists               = errors.New("NIK already registered")
	ErrEmployeeAlreadyInactive = errors.New("employee is already inactive")
)
