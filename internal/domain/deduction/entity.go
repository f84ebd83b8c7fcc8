package deduction

import "time"

// Deduction is a salary advance (kasbon) repaid through per-period installments.
// Invariant: 0 <= RemainingAmount <= TotalAmount.
type Deduction struct {
	ID                   string    `json:"id"`
	EmployeeID           string    `json:"employee_id"`
	Type                 string    `json:"type"`
	TotalAmount          int64     `json:"total_amount"`
	RemainingAmount      int64     `json:"remaining_amount"`
	InstallmentPerPeriod int64     `json:"installment_per_period"`
	Status               Status    `json:"status"`
	Notes                *string   `json:"notes,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

type Status string

const (
	StatusActive  Status = "active"
	StatusPaidOff Status = "paid_off"
)

// TypeKasbon is the default deduction type.
const TypeKasbon = "kasbon"

// NextInstallment is the amount to withhold this period, capped at the
// remaining balance. Paid-off advances withhold nothing.
func (d Deduction) NextInstallment() int64 {
	if d.Status != StatusActive || d.RemainingAmount <= 0 {
		return 0
	}
	return min(d.InstallmentPerPeriod, d.RemainingAmount)
}

// ApplyInstallment commits a withheld amount against the balance. The
// balance is clamped at zero, and reaching zero marks the advance paid off.
func (d *Deduction) ApplyInstallment(amount int64) {
	if amount < 0 {
		amount = 0
	}
	remaining := d.RemainingAmount - amount
	if remaining <= 0 {
		d.RemainingAmount = 0
		d.Status = StatusPaidOff
		return
	}
	d.RemainingAmount = remaining
}

// IsUntouched reports whether no installment has been committed yet.
func (d Deduction) IsUntouched() bool {
	return d.RemainingAmount == d.TotalAmount
}
