package bonus

import "errors"

var (
	ErrBonusNotFound        = errors.New("bonus not found")
	ErrBonusNotPending      = errors.New("bonus is no longer pending")
	ErrBonusAlreadyApproved = errors.New("bonus already approved")
)
