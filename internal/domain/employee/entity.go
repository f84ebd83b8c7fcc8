package employee

import "time"

type Employee struct {
	ID          string    `json:"id"`
	NIK         string    `json:"nik"`
	Name        string    `json:"name"`
	Department  string    `json:"department"`
	Position    string    `json:"position"`
	DailyRate   int64     `json:"daily_rate"`
	JoinDate    time.Time `json:"join_date"`
	BankAccount *string   `json:"bank_account,omitempty"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// IsActive reports whether the employee takes part in payroll runs.
func (e Employee) IsActive() bool {
	return e.Status == StatusActive
}
