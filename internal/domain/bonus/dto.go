package bonus

import "github.com/konveksi/payroll-backend-go/internal/pkg/validator"

type CreateBonusRequest struct {
	EmployeeID  string  `json:"employee_id"`
	Type        string  `json:"type"`
	Amount      int64   `json:"amount"`
	PeriodMonth int     `json:"period_month"`
	PeriodYear  int     `json:"period_year"`
	Reason      *string `json:"reason,omitempty"`
}

func (r *CreateBonusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "must be a valid id"})
	}
	if validator.IsEmpty(r.Type) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "is required"})
	}
	if r.Amount <= 0 {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be greater than zero"})
	}
	errs = append(errs, validatePeriod(r.PeriodMonth, r.PeriodYear)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateBonusRequest struct {
	ID          string  `json:"-"`
	Type        *string `json:"type,omitempty"`
	Amount      *int64  `json:"amount,omitempty"`
	PeriodMonth *int    `json:"period_month,omitempty"`
	PeriodYear  *int    `json:"period_year,omitempty"`
	Reason      *string `json:"reason,omitempty"`
}

func (r *UpdateBonusRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Type != nil && validator.IsEmpty(*r.Type) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "cannot be empty"})
	}
	if r.Amount != nil && *r.Amount <= 0 {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be greater than zero"})
	}
	if r.PeriodMonth != nil && (*r.PeriodMonth < 1 || *r.PeriodMonth > 12) {
		errs = append(errs, validator.ValidationError{Field: "period_month", Message: "must be between 1 and 12"})
	}
	if r.PeriodYear != nil && *r.PeriodYear < 2000 {
		errs = append(errs, validator.ValidationError{Field: "period_year", Message: "must be 2000 or later"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BonusFilter struct {
	EmployeeID  *string `json:"employee_id,omitempty"`
	PeriodMonth *int    `json:"period_month,omitempty"`
	PeriodYear  *int    `json:"period_year,omitempty"`
	Status      *Status `json:"status,omitempty"`
}

func validatePeriod(month, year int) validator.ValidationErrors {
	var errs validator.ValidationErrors
	if month < 1 || month > 12 {
		errs = append(errs, validator.ValidationError{Field: "period_month", Message: "must be between 1 and 12"})
	}
	if year < 2000 {
		errs = append(errs, validator.ValidationError{Field: "period_year", Message: "must be 2000 or later"})
	}
	return errs
}
