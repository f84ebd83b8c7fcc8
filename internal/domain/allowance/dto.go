package allowance

import "github.com/konveksi/payroll-backend-go/internal/pkg/validator"

type CreateAllowanceRequest struct {
	EmployeeID        string `json:"-"`
	Type              string `json:"type"`
	Amount            int64  `json:"amount"`
	CalculationMethod string `json:"calculation_method"`
	IsActive          *bool  `json:"is_active,omitempty"`
}

func (r *CreateAllowanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Type) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "is required"})
	}
	if r.Amount <= 0 {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be greater than zero"})
	}
	if !CalculationMethod(r.CalculationMethod).IsValid() {
		errs = append(errs, validator.ValidationError{Field: "calculation_method", Message: "must be 'per_day' or 'per_month'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateAllowanceRequest struct {
	ID                string  `json:"-"`
	Type              *string `json:"type,omitempty"`
	Amount            *int64  `json:"amount,omitempty"`
	CalculationMethod *string `json:"calculation_method,omitempty"`
	IsActive          *bool   `json:"is_active,omitempty"`
}

func (r *UpdateAllowanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Type != nil && validator.IsEmpty(*r.Type) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "cannot be empty"})
	}
	if r.Amount != nil && *r.Amount <= 0 {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be greater than zero"})
	}
	if r.CalculationMethod != nil && !CalculationMethod(*r.CalculationMethod).IsValid() {
		errs = append(errs, validator.ValidationError{Field: "calculation_method", Message: "must be 'per_day' or 'per_month'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
