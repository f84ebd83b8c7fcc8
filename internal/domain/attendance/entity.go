package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Attendance is one day's record, written by the external attendance
// collection process and read-only here.
type Attendance struct {
	ID            string          `json:"id"`
	EmployeeID    string          `json:"employee_id"`
	Date          time.Time       `json:"date"`
	Status        Status          `json:"status"`
	DeficitHours  decimal.Decimal `json:"deficit_hours"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
}

type Status string

const (
	StatusPresent         Status = "present"
	StatusLate            Status = "late"
	StatusHolidayOvertime Status = "holiday_overtime"
	StatusAbsent          Status = "absent"
	StatusSick            Status = "sick"
	StatusLeave           Status = "leave"
	StatusPermission      Status = "permission"
)

// CountsAsWorkDay reports whether the status contributes a paid work day.
func (s Status) CountsAsWorkDay() bool {
	switch s {
	case StatusPresent, StatusLate, StatusHolidayOvertime:
		return true
	}
	return false
}
