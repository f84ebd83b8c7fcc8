package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// PeriodStatus enum
type PeriodStatus string

const (
	PeriodStatusDraft           PeriodStatus = "draft"
	PeriodStatusPendingApproval PeriodStatus = "pending_approval"
	PeriodStatusApproved        PeriodStatus = "approved"
	PeriodStatusPaid            PeriodStatus = "paid"
)

// next holds the only forward move allowed from each status. Paid is
// reached outside this service.
var next = map[PeriodStatus]PeriodStatus{
	PeriodStatusDraft:           PeriodStatusPendingApproval,
	PeriodStatusPendingApproval: PeriodStatusApproved,
	PeriodStatusApproved:        PeriodStatusPaid,
}

// CanTransition reports whether from -> to is a legal status move.
func CanTransition(from, to PeriodStatus) bool {
	n, ok := next[from]
	return ok && n == to
}

// Period - one payroll run over a date range
type Period struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	StartDate   time.Time    `json:"start_date"`
	EndDate     time.Time    `json:"end_date"`
	PaymentDate time.Time    `json:"payment_date"`
	Status      PeriodStatus `json:"status"`
	CreatedBy   string       `json:"created_by"`
	ApprovedBy  *string      `json:"approved_by,omitempty"`
	ApprovedAt  *time.Time   `json:"approved_at,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// Entry - one employee's computed pay for a period
type Entry struct {
	ID              string `json:"id"`
	PeriodID        string `json:"period_id"`
	EmployeeID      string `json:"employee_id"`
	TotalWorkDays   int    `json:"total_work_days"`
	DailyRate       int64  `json:"daily_rate"`
	BaseSalary      int64  `json:"base_salary"`
	TotalAllowances int64  `json:"total_allowances"`
	TotalOvertime   int64  `json:"total_overtime"`
	TotalBonuses    int64  `json:"total_bonuses"`
	GrossSalary     int64  `json:"gross_salary"`
	TotalDeductions int64  `json:"total_deductions"`
	NetSalary       int64  `json:"net_salary"`

	AllowanceDetails map[string]int64 `json:"allowance_details"` // {"transport": 300000}
	OvertimeDetails  OvertimeDetails  `json:"overtime_details"`
	BonusDetails     []BonusLine      `json:"bonus_details"`
	DeductionDetails []DeductionLine  `json:"deduction_details"`

	CreatedAt time.Time `json:"created_at"`

	// Joined fields
	EmployeeName *string `json:"employee_name,omitempty"`
	EmployeeNIK  *string `json:"employee_nik,omitempty"`
}

type OvertimeDetails struct {
	WeekdayHours  decimal.Decimal `json:"weekday_hours"`
	WeekdayAmount int64           `json:"weekday_amount"`
	HolidayDays   int             `json:"holiday_days"`
	HolidayAmount int64           `json:"holiday_amount"`
}

type BonusLine struct {
	BonusID string `json:"bonus_id"`
	Type    string `json:"type"`
	Amount  int64  `json:"amount"`
}

// DeductionLine is the installment withheld from one advance. Remaining is
// the projected balance at generation time, not a committed value.
type DeductionLine struct {
	DeductionID string `json:"deduction_id"`
	Type        string `json:"type"`
	Amount      int64  `json:"amount"`
	Remaining   int64  `json:"remaining"`
}
