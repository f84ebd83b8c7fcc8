package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/konveksi/payroll-backend-go/internal/domain/allowance"
	"github.com/konveksi/payroll-backend-go/internal/domain/bonus"
	"github.com/konveksi/payroll-backend-go/internal/domain/deduction"
	"github.com/konveksi/payroll-backend-go/internal/domain/employee"
	"github.com/konveksi/payroll-backend-go/internal/domain/payroll"
	"github.com/konveksi/payroll-backend-go/internal/domain/user"
	"github.com/konveksi/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Authorization
	case errors.Is(err, user.ErrUnauthenticated):
		Unauthorized(w, "Authentication required")
	case errors.Is(err, user.ErrOwnerAccessRequired):
		Forbidden(w, CodeOwnerRequired, "Owner access required")
	case errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, CodeForbidden, "Insufficient permissions")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, CodeEmployeeNotFound, "Employee not found")
	case errors.Is(err, employee.ErrNIKExists):
		Conflict(w, CodeNIKExists, "NIK already registered")
	case errors.Is(err, employee.ErrEmployeeAlreadyInactive):
		Conflict(w, CodeEmployeeInactive, "Employee is already inactive")

	// Compensation domain errors
	case errors.Is(err, allowance.ErrAllowanceNotFound):
		NotFound(w, CodeAllowanceNotFound, "Allowance not found")
	case errors.Is(err, bonus.ErrBonusNotFound):
		NotFound(w, CodeBonusNotFound, "Bonus not found")
	case errors.Is(err, bonus.ErrBonusNotPending):
		Conflict(w, CodeBonusNotPending, "Bonus is no longer pending")
	case errors.Is(err, bonus.ErrBonusAlreadyApproved):
		Conflict(w, CodeBonusApproved, "Bonus already approved")
	case errors.Is(err, deduction.ErrDeductionNotFound):
		NotFound(w, CodeDeductionNotFound, "Deduction not found")
	case errors.Is(err, deduction.ErrDeductionNotActive):
		Conflict(w, CodeDeductionNotActive, "Deduction is not active")
	case errors.Is(err, deduction.ErrDeductionAlreadyRepaid):
		Conflict(w, CodeDeductionRepaid, "Deduction already partially repaid")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPeriodNotFound):
		NotFound(w, CodePeriodNotFound, "Payroll period not found")
	case errors.Is(err, payroll.ErrPeriodAlreadyExists):
		Conflict(w, CodePeriodExists, "Payroll period already exists")
	case errors.Is(err, payroll.ErrInvalidStatusTransition):
		Conflict(w, CodeInvalidTransition, "Payroll period status does not allow this action")
	case errors.Is(err, payroll.ErrApprovalInProgress):
		Conflict(w, CodeApprovalInProgress, "Payroll approval already in progress")

	// Default
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
