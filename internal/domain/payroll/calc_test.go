package payroll

import (
	"testing"
	"time"

	"github.com/konveksi/payroll-backend-go/internal/domain/allowance"
	"github.com/konveksi/payroll-backend-go/internal/domain/attendance"
	"github.com/konveksi/payroll-backend-go/internal/domain/bonus"
	"github.com/konveksi/payroll-backend-go/internal/domain/deduction"
	"github.com/konveksi/payroll-backend-go/internal/domain/employee"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestPeriodName(t *testing.T) {
	assert.Equal(t, "Januari 2025", PeriodName(date(2025, time.January, 1)))
	assert.Equal(t, "Maret 2025", PeriodName(date(2025, time.March, 15)))
	assert.Equal(t, "Desember 2024", PeriodName(date(2024, time.December, 31)))
}

func TestPaymentDate(t *testing.T) {
	cases := []struct {
		end  time.Time
		want time.Time
	}{
		{date(2025, time.January, 31), date(2025, time.February, 3)},
		{date(2024, time.December, 31), date(2025, time.January, 3)},
		// 3 Aug 2025 and 3 Nov 2024 fall on Sunday
		{date(2025, time.July, 31), date(2025, time.August, 2)},
		{date(2024, time.October, 31), date(2024, time.November, 2)},
		// a mid-month end still pays in the following month
		{date(2025, time.January, 15), date(2025, time.February, 3)},
	}
	for _, c := range cases {
		got := PaymentDate(c.end)
		assert.True(t, c.want.Equal(got), "end %s: want %s got %s", c.end.Format("2006-01-02"), c.want.Format("2006-01-02"), got.Format("2006-01-02"))
		assert.NotEqual(t, time.Sunday, got.Weekday())
	}
}

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(PeriodStatusDraft, PeriodStatusPendingApproval))
	assert.True(t, CanTransition(PeriodStatusPendingApproval, PeriodStatusApproved))
	assert.True(t, CanTransition(PeriodStatusApproved, PeriodStatusPaid))

	assert.False(t, CanTransition(PeriodStatusDraft, PeriodStatusApproved))
	assert.False(t, CanTransition(PeriodStatusApproved, PeriodStatusPendingApproval))
	assert.False(t, CanTransition(PeriodStatusPendingApproval, PeriodStatusDraft))
	assert.False(t, CanTransition(PeriodStatusPaid, PeriodStatusDraft))
}

func TestCalculateCompensation_Allowances(t *testing.T) {
	c := CalculateCompensation(CompensationInput{
		Attendance: attendance.Summary{TotalWorkDays: 21, WeekdayOvertimeHours: decimal.Zero},
		Allowances: []allowance.Allowance{
			{Type: "makan", Amount: 10000, CalculationMethod: allowance.MethodPerDay, IsActive: true},
			{Type: "jabatan", Amount: 300000, CalculationMethod: allowance.MethodPerMonth, IsActive: true},
			{Type: "lama", Amount: 999999, CalculationMethod: allowance.MethodPerMonth, IsActive: false},
		},
		PeriodStart: date(2025, time.March, 1),
	})

	assert.Equal(t, int64(510000), c.TotalAllowances)
	assert.Equal(t, int64(210000), c.AllowanceDetails["makan"])
	assert.Equal(t, int64(300000), c.AllowanceDetails["jabatan"])
	assert.NotContains(t, c.AllowanceDetails, "lama")
}

func TestCalculateCompensation_DuplicateAllowanceTypesSum(t *testing.T) {
	c := CalculateCompensation(CompensationInput{
		Attendance: attendance.Summary{TotalWorkDays: 10, WeekdayOvertimeHours: decimal.Zero},
		Allowances: []allowance.Allowance{
			{Type: "transport", Amount: 10000, CalculationMethod: allowance.MethodPerDay, IsActive: true},
			{Type: "transport", Amount: 50000, CalculationMethod: allowance.MethodPerMonth, IsActive: true},
		},
		PeriodStart: date(2025, time.March, 1),
	})

	assert.Equal(t, int64(150000), c.TotalAllowances)
	assert.Equal(t, int64(150000), c.AllowanceDetails["transport"])
}

func TestCalculateCompensation_Overtime(t *testing.T) {
	c := CalculateCompensation(CompensationInput{
		Attendance: attendance.Summary{
			TotalWorkDays:        22,
			WeekdayOvertimeHours: decimal.NewFromInt(5),
			HolidayOvertimeDays:  2,
		},
		PeriodStart: date(2025, time.March, 1),
	})

	assert.Equal(t, int64(50000), c.Overtime.WeekdayAmount)
	assert.Equal(t, int64(200000), c.Overtime.HolidayAmount)
	assert.Equal(t, int64(250000), c.TotalOvertime)
}

func TestCalculateCompensation_FractionalOvertimeHours(t *testing.T) {
	c := CalculateCompensation(CompensationInput{
		Attendance: attendance.Summary{WeekdayOvertimeHours: decimal.RequireFromString("2.5")},
	})

	assert.Equal(t, int64(25000), c.TotalOvertime)
}

func TestCalculateCompensation_BonusesRequireApprovalAndPeriod(t *testing.T) {
	c := CalculateCompensation(CompensationInput{
		Attendance: attendance.Summary{WeekdayOvertimeHours: decimal.Zero},
		Bonuses: []bonus.Bonus{
			{ID: "b1", Type: "target", Amount: 200000, PeriodMonth: 3, PeriodYear: 2025, Status: bonus.StatusApproved},
			{ID: "b2", Type: "target", Amount: 100000, PeriodMonth: 3, PeriodYear: 2025, Status: bonus.StatusPending},
			{ID: "b3", Type: "thr", Amount: 500000, PeriodMonth: 4, PeriodYear: 2025, Status: bonus.StatusApproved},
		},
		PeriodStart: date(2025, time.March, 1),
	})

	assert.Equal(t, int64(200000), c.TotalBonuses)
	assert.Equal(t, []BonusLine{{BonusID: "b1", Type: "target", Amount: 200000}}, c.BonusDetails)
}

func TestCalculateCompensation_ZeroFilled(t *testing.T) {
	c := CalculateCompensation(CompensationInput{DailyRate: 150000, Attendance: attendance.Summary{WeekdayOvertimeHours: decimal.Zero}})

	assert.Zero(t, c.GrossSalary)
	assert.NotNil(t, c.AllowanceDetails)
	assert.NotNil(t, c.BonusDetails)
}

func TestEstimateDeductions(t *testing.T) {
	est := EstimateDeductions([]deduction.Deduction{
		{ID: "d1", Type: "kasbon", RemainingAmount: 150000, InstallmentPerPeriod: 200000, Status: deduction.StatusActive},
		{ID: "d2", Type: "kasbon", RemainingAmount: 500000, InstallmentPerPeriod: 100000, Status: deduction.StatusActive},
		{ID: "d3", Type: "kasbon", RemainingAmount: 0, InstallmentPerPeriod: 100000, Status: deduction.StatusPaidOff},
	})

	assert.Equal(t, int64(250000), est.Total)
	assert.Equal(t, []DeductionLine{
		{DeductionID: "d1", Type: "kasbon", Amount: 150000, Remaining: 0},
		{DeductionID: "d2", Type: "kasbon", Amount: 100000, Remaining: 400000},
	}, est.Lines)
}

func TestNewEntry_Scenario(t *testing.T) {
	emp := employee.Employee{ID: "e1", NIK: "KNV-001", Name: "Siti", DailyRate: 150000, Status: employee.StatusActive}
	summary := attendance.Summary{TotalWorkDays: 20, WeekdayOvertimeHours: decimal.NewFromInt(3)}

	comp := CalculateCompensation(CompensationInput{
		DailyRate:  emp.DailyRate,
		Attendance: summary,
		Allowances: []allowance.Allowance{
			{Type: "transport", Amount: 15000, CalculationMethod: allowance.MethodPerDay, IsActive: true},
		},
		Bonuses: []bonus.Bonus{
			{ID: "b1", Type: "performance", Amount: 200000, PeriodMonth: 3, PeriodYear: 2025, Status: bonus.StatusApproved},
		},
		PeriodStart: date(2025, time.March, 1),
	})
	est := EstimateDeductions([]deduction.Deduction{
		{ID: "d1", Type: "kasbon", TotalAmount: 500000, RemainingAmount: 500000, InstallmentPerPeriod: 100000, Status: deduction.StatusActive},
	})

	entry := NewEntry(emp, summary, comp, est)

	assert.Equal(t, int64(3000000), entry.BaseSalary)
	assert.Equal(t, int64(300000), entry.TotalAllowances)
	assert.Equal(t, int64(30000), entry.TotalOvertime)
	assert.Equal(t, int64(200000), entry.TotalBonuses)
	assert.Equal(t, int64(3530000), entry.GrossSalary)
	assert.Equal(t, int64(100000), entry.TotalDeductions)
	assert.Equal(t, int64(3430000), entry.NetSalary)
	assert.Equal(t, int64(150000), entry.DailyRate)
	assert.Equal(t, 20, entry.TotalWorkDays)
	assert.Equal(t, int64(400000), entry.DeductionDetails[0].Remaining)

	// gross/net consistency
	assert.Equal(t, entry.BaseSalary+entry.TotalAllowances+entry.TotalOvertime+entry.TotalBonuses, entry.GrossSalary)
	assert.Equal(t, entry.GrossSalary-entry.TotalDeductions, entry.NetSalary)
}

func TestNewEntry_NetCanGoNegative(t *testing.T) {
	emp := employee.Employee{ID: "e1", NIK: "KNV-002", Name: "Budi", DailyRate: 150000, Status: employee.StatusActive}
	summary := attendance.Summary{WeekdayOvertimeHours: decimal.Zero}

	comp := CalculateCompensation(CompensationInput{
		DailyRate:   emp.DailyRate,
		Attendance:  summary,
		PeriodStart: date(2025, time.April, 1),
	})
	est := EstimateDeductions([]deduction.Deduction{
		{ID: "d1", Type: "kasbon", TotalAmount: 1000000, RemainingAmount: 1000000, InstallmentPerPeriod: 250000, Status: deduction.StatusActive},
	})

	entry := NewEntry(emp, summary, comp, est)

	assert.Equal(t, int64(0), entry.GrossSalary)
	assert.Equal(t, int64(250000), entry.TotalDeductions)
	assert.Equal(t, int64(-250000), entry.NetSalary)
	assert.Equal(t, entry.GrossSalary-entry.TotalDeductions, entry.NetSalary)
}
