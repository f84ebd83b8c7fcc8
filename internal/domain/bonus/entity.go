package bonus

import "time"

type Bonus struct {
	ID          string     `json:"id"`
	EmployeeID  string     `json:"employee_id"`
	Type        string     `json:"type"`
	Amount      int64      `json:"amount"`
	PeriodMonth int        `json:"period_month"`
	PeriodYear  int        `json:"period_year"`
	Reason      *string    `json:"reason,omitempty"`
	Status      Status     `json:"status"`
	CreatedBy   string     `json:"created_by"`
	ApprovedBy  *string    `json:"approved_by,omitempty"`
	ApprovedAt  *time.Time `json:"approved_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
)

// IsEditable reports whether the bonus may still be edited or deleted.
func (b Bonus) IsEditable() bool {
	return b.Status == StatusPending
}

// Payable reports whether the bonus belongs in gross salary for a payroll
// period starting in month/year.
func (b Bonus) Payable(month time.Month, year int) bool {
	return b.Status == StatusApproved && b.PeriodMonth == int(month) && b.PeriodYear == year
}
