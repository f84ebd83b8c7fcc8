package payroll

import "errors"

var (
	ErrPeriodNotFound          = errors.New("payroll period not found")
	ErrPeriodAlreadyExists     = errors.New("payroll period with this name already exists")
	ErrInvalidStatusTransition = errors.New("payroll period status does not allow this action")
	ErrApprovalInProgress      = errors.New("payroll period approval already in progress")
)
