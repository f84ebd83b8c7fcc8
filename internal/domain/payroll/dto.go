package payroll

import (
	"time"

	"github.com/konveksi/payroll-backend-go/internal/pkg/validator"
)

type GeneratePayrollRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`

	start, end time.Time
}

func (r *GeneratePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	start, okStart := validator.IsValidDate(r.StartDate)
	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a date in YYYY-MM-DD format"})
	}
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be a date in YYYY-MM-DD format"})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not be before start_date"})
	}

	if len(errs) > 0 {
		return errs
	}
	r.start, r.end = start, end
	return nil
}

// Range is valid after a successful Validate.
func (r *GeneratePayrollRequest) Range() (time.Time, time.Time) {
	return r.start, r.end
}

type PeriodFilter struct {
	Status *PeriodStatus `json:"status,omitempty"`
	Page   int           `json:"page"`
	Limit  int           `json:"limit"`
}

// Normalize clamps paging to sane bounds.
func (f *PeriodFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}
}

func (f PeriodFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

type ListPeriodResponse struct {
	Data       []Period `json:"data"`
	TotalCount int64    `json:"total_count"`
	Page       int      `json:"page"`
	Limit      int      `json:"limit"`
}

type PeriodDetailResponse struct {
	Period  Period  `json:"period"`
	Entries []Entry `json:"entries"`
}

// AppliedDeduction is a committed installment.
type AppliedDeduction struct {
	EntryID     string `json:"entry_id"`
	EmployeeID  string `json:"employee_id"`
	DeductionID string `json:"deduction_id"`
	Amount      int64  `json:"amount"`
	Remaining   int64  `json:"remaining"`
	Status      string `json:"status"`
}

// SkippedDeduction is a breakdown line whose advance was no longer active
// at approval time; the caller reconciles it by hand.
type SkippedDeduction struct {
	EntryID     string `json:"entry_id"`
	EmployeeID  string `json:"employee_id"`
	DeductionID string `json:"deduction_id"`
	Type        string `json:"type"`
	Amount      int64  `json:"amount"`
	Reason      string `json:"reason"`
}

type ApprovalResult struct {
	Period  Period             `json:"period"`
	Applied []AppliedDeduction `json:"applied"`
	Skipped []SkippedDeduction `json:"skipped"`
}

type Totals struct {
	EmployeeCount int   `json:"employee_count"`
	BaseSalary    int64 `json:"total_base_salary"`
	Allowances    int64 `json:"total_allowances"`
	Overtime      int64 `json:"total_overtime"`
	Bonuses       int64 `json:"total_bonuses"`
	GrossSalary   int64 `json:"total_gross_salary"`
	Deductions    int64 `json:"total_deductions"`
	NetSalary     int64 `json:"total_net_salary"`
}

type SummaryResponse struct {
	Period    Period            `json:"period"`
	Totals    Totals            `json:"totals"`
	Formatted map[string]string `json:"formatted"` // rupiah strings keyed like Totals
}
