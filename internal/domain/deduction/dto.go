package deduction

import "github.com/konveksi/payroll-backend-go/internal/pkg/validator"

type CreateDeductionRequest struct {
	EmployeeID           string  `json:"employee_id"`
	Type                 string  `json:"type"`
	TotalAmount          int64   `json:"total_amount"`
	InstallmentPerPeriod int64   `json:"installment_per_period"`
	Notes                *string `json:"notes,omitempty"`
}

func (r *CreateDeductionRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "must be a valid id"})
	}
	if r.TotalAmount <= 0 {
		errs = append(errs, validator.ValidationError{Field: "total_amount", Message: "must be greater than zero"})
	}
	if r.InstallmentPerPeriod <= 0 {
		errs = append(errs, validator.ValidationError{Field: "installment_per_period", Message: "must be greater than zero"})
	}

	if len(errs) > 0 {
		return errs
	}
	if validator.IsEmpty(r.Type) {
		r.Type = TypeKasbon
	}
	return nil
}

// UpdateDeductionRequest cannot touch the balance; only approval moves it.
type UpdateDeductionRequest struct {
	ID                   string  `json:"-"`
	InstallmentPerPeriod *int64  `json:"installment_per_period,omitempty"`
	Notes                *string `json:"notes,omitempty"`
}

func (r *UpdateDeductionRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.InstallmentPerPeriod != nil && *r.InstallmentPerPeriod <= 0 {
		errs = append(errs, validator.ValidationError{Field: "installment_per_period", Message: "must be greater than zero"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DeductionFilter struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	Status     *Status `json:"status,omitempty"`
}
