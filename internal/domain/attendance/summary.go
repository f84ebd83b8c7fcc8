package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Summary is the payroll-relevant reduction of an employee's attendance.
type Summary struct {
	TotalWorkDays        int             `json:"total_work_days"`
	WeekdayOvertimeHours decimal.Decimal `json:"weekday_overtime_hours"`
	HolidayOvertimeDays  int             `json:"holiday_overtime_days"`
}

// Summarize counts work days over [start, end] (dates compared by calendar
// day). Absences never count; overtime hours come from present/late days
// only, holiday overtime is counted in days.
func Summarize(records []Attendance, start, end time.Time) Summary {
	summary := Summary{WeekdayOvertimeHours: decimal.Zero}
	from, to := truncateDay(start), truncateDay(end)

	for _, rec := range records {
		day := truncateDay(rec.Date)
		if day.Before(from) || day.After(to) {
			continue
		}
		if !rec.Status.CountsAsWorkDay() {
			continue
		}

		summary.TotalWorkDays++
		switch rec.Status {
		case StatusPresent, StatusLate:
			summary.WeekdayOvertimeHours = summary.WeekdayOvertimeHours.Add(rec.OvertimeHours)
		case StatusHolidayOvertime:
			summary.HolidayOvertimeDays++
		}
	}

	return summary
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
