package employee

import (
	"time"

	"github.com/konveksi/payroll-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	NIK         string  `json:"nik"`
	Name        string  `json:"name"`
	Department  string  `json:"department"`
	Position    string  `json:"position"`
	DailyRate   int64   `json:"daily_rate"`
	JoinDate    string  `json:"join_date"`
	BankAccount *string `json:"bank_account,omitempty"`

	joinDate time.Time
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.NIK) {
		errs = append(errs, validator.ValidationError{Field: "nik", Message: "is required"})
	} else if !validator.IsValidBusinessCode(r.NIK) {
		errs = append(errs, validator.ValidationError{Field: "nik", Message: "may only contain letters, digits, '.', '-' and '/'"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if r.DailyRate < 0 {
		errs = append(errs, validator.ValidationError{Field: "daily_rate", Message: "must be non-negative"})
	}
	if date, ok := validator.IsValidDate(r.JoinDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "join_date", Message: "must be a date in YYYY-MM-DD format"})
	} else {
		r.joinDate = date
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ParsedJoinDate is valid after a successful Validate.
func (r *CreateEmployeeRequest) ParsedJoinDate() time.Time {
	return r.joinDate
}

type UpdateEmployeeRequest struct {
	ID          string  `json:"-"`
	Name        *string `json:"name,omitempty"`
	Department  *string `json:"department,omitempty"`
	Position    *string `json:"position,omitempty"`
	DailyRate   *int64  `json:"daily_rate,omitempty"`
	BankAccount *string `json:"bank_account,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "cannot be empty"})
	}
	if r.DailyRate != nil && *r.DailyRate < 0 {
		errs = append(errs, validator.ValidationError{Field: "daily_rate", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeFilter struct {
	Status *Status `json:"status,omitempty"`
	Search *string `json:"search,omitempty"` // name or NIK, case-insensitive
	Page   int     `json:"page"`
	Limit  int     `json:"limit"`
}

// Normalize clamps paging to sane bounds.
func (f *EmployeeFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}
}

func (f EmployeeFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

type ListEmployeeResponse struct {
	Data       []Employee `json:"data"`
	TotalCount int64      `json:"total_count"`
	Page       int        `json:"page"`
	Limit      int        `json:"limit"`
}
