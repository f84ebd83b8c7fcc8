package attendance

import (
	"time"

	"github.com/konveksi/payroll-backend-go/internal/pkg/validator"
)

type RangeRequest struct {
	EmployeeID string
	StartDate  string
	EndDate    string

	start, end time.Time
}

func (r *RangeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	start, end, ok := validator.IsValidDateRange(r.StartDate, r.EndDate)
	if !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date and end_date must be YYYY-MM-DD with start_date <= end_date"})
	} else {
		r.start, r.end = start, end
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Range is valid after a successful Validate.
func (r *RangeRequest) Range() (time.Time, time.Time) {
	return r.start, r.end
}

type SummaryResponse struct {
	EmployeeID string `json:"employee_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Summary
}
