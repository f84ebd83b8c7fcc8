package allowance

import "time"

type Allowance struct {
	ID                string            `json:"id"`
	EmployeeID        string            `json:"employee_id"`
	Type              string            `json:"type"`
	Amount            int64             `json:"amount"`
	CalculationMethod CalculationMethod `json:"calculation_method"`
	IsActive          bool              `json:"is_active"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

type CalculationMethod string

const (
	MethodPerDay   CalculationMethod = "per_day"
	MethodPerMonth CalculationMethod = "per_month"
)

func (m CalculationMethod) IsValid() bool {
	return m == MethodPerDay || m == MethodPerMonth
}

// AmountFor returns the payable amount for a period with workDays paid days.
func (a Allowance) AmountFor(workDays int) int64 {
	if a.CalculationMethod == MethodPerDay {
		return a.Amount * int64(workDays)
	}
	return a.Amount
}
