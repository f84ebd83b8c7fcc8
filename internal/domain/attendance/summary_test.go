package attendance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func day(d int) time.Time {
	return time.Date(2025, time.March, d, 0, 0, 0, 0, time.UTC)
}

func rec(d int, status Status, overtime string) Attendance {
	return Attendance{Date: day(d), Status: status, OvertimeHours: decimal.RequireFromString(overtime)}
}

func TestSummarize_CountsOnlyWorkingStatuses(t *testing.T) {
	var records []Attendance
	for d := 1; d <= 20; d++ {
		records = append(records, rec(d, StatusPresent, "0"))
	}
	records = append(records,
		rec(21, StatusAbsent, "0"),
		rec(22, StatusAbsent, "0"),
		rec(23, StatusHolidayOvertime, "0"),
	)

	s := Summarize(records, day(1), day(31))

	assert.Equal(t, 21, s.TotalWorkDays)
	assert.Equal(t, 1, s.HolidayOvertimeDays)
	assert.True(t, s.WeekdayOvertimeHours.IsZero())
}

func TestSummarize_OvertimeFromPresentAndLateOnly(t *testing.T) {
	records := []Attendance{
		rec(3, StatusPresent, "2"),
		rec(4, StatusLate, "1.5"),
		rec(5, StatusHolidayOvertime, "8"),
		rec(6, StatusSick, "3"),
	}

	s := Summarize(records, day(1), day(31))

	assert.Equal(t, 3, s.TotalWorkDays)
	assert.True(t, decimal.RequireFromString("3.5").Equal(s.WeekdayOvertimeHours), s.WeekdayOvertimeHours.String())
	assert.Equal(t, 1, s.HolidayOvertimeDays)
}

func TestSummarize_RangeIsInclusive(t *testing.T) {
	records := []Attendance{
		rec(1, StatusPresent, "1"),
		rec(10, StatusPresent, "1"),
		rec(11, StatusPresent, "1"),
	}
	// a time-of-day on the end date must not exclude that day
	end := time.Date(2025, time.March, 10, 17, 30, 0, 0, time.UTC)

	s := Summarize(records, day(1), end)

	assert.Equal(t, 2, s.TotalWorkDays)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil, day(1), day(31))

	assert.Zero(t, s.TotalWorkDays)
	assert.Zero(t, s.HolidayOvertimeDays)
	assert.True(t, s.WeekdayOvertimeHours.IsZero())
}
