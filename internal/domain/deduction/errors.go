package deduction

import "errors"

var (
	ErrDeductionNotFound      = errors.New("deduction not found")
	ErrDeductionNotActive     = errors.New("deduction is not active")
	ErrDeductionAlreadyRepaid = errors.New("deduction already partially repaid, cannot delete")
)
