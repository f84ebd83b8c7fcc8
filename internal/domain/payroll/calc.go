package payroll

import (
	"fmt"
	"time"

	"github.com/konveksi/payroll-backend-go/internal/domain/allowance"
	"github.com/konveksi/payroll-backend-go/internal/domain/attendance"
	"github.com/konveksi/payroll-backend-go/internal/domain/bonus"
	"github.com/konveksi/payroll-backend-go/internal/domain/deduction"
	"github.com/konveksi/payroll-backend-go/internal/domain/employee"
	"github.com/shopspring/decimal"
)

// Fixed overtime rates in rupiah; not configurable per employee.
const (
	WeekdayOvertimeHourlyRate int64 = 10000
	HolidayOvertimeDailyRate  int64 = 100000
)

var monthNamesID = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// PeriodName names a period after its start month, e.g. "Maret 2025".
func PeriodName(start time.Time) string {
	return fmt.Sprintf("%s %d", monthNamesID[start.Month()-1], start.Year())
}

// PaymentDate is the 3rd of the month after end, or the 2nd when the 3rd is
// a Sunday.
func PaymentDate(end time.Time) time.Time {
	pay := time.Date(end.Year(), end.Month()+1, 3, 0, 0, 0, 0, time.UTC)
	if pay.Weekday() == time.Sunday {
		pay = pay.AddDate(0, 0, -1)
	}
	return pay
}

type CompensationInput struct {
	DailyRate   int64
	Attendance  attendance.Summary
	Allowances  []allowance.Allowance
	Bonuses     []bonus.Bonus
	PeriodStart time.Time
}

type Compensation struct {
	BaseSalary       int64
	TotalAllowances  int64
	AllowanceDetails map[string]int64
	Overtime         OvertimeDetails
	TotalOvertime    int64
	TotalBonuses     int64
	BonusDetails     []BonusLine
	GrossSalary      int64
}

// CalculateCompensation computes gross pay. Inactive allowances and bonuses
// that are not approved for the period's start month are ignored. Allowances
// sharing a type are summed in the breakdown.
func CalculateCompensation(in CompensationInput) Compensation {
	workDays := in.Attendance.TotalWorkDays
	c := Compensation{
		BaseSalary:       in.DailyRate * int64(workDays),
		AllowanceDetails: make(map[string]int64),
		BonusDetails:     []BonusLine{},
	}

	for _, a := range in.Allowances {
		if !a.IsActive {
			continue
		}
		amount := a.AmountFor(workDays)
		c.TotalAllowances += amount
		c.AllowanceDetails[a.Type] += amount
	}

	c.Overtime = OvertimeDetails{
		WeekdayHours:  in.Attendance.WeekdayOvertimeHours,
		WeekdayAmount: in.Attendance.WeekdayOvertimeHours.Mul(decimal.NewFromInt(WeekdayOvertimeHourlyRate)).IntPart(),
		HolidayDays:   in.Attendance.HolidayOvertimeDays,
		HolidayAmount: int64(in.Attendance.HolidayOvertimeDays) * HolidayOvertimeDailyRate,
	}
	c.TotalOvertime = c.Overtime.WeekdayAmount + c.Overtime.HolidayAmount

	for _, b := range in.Bonuses {
		if !b.Payable(in.PeriodStart.Month(), in.PeriodStart.Year()) {
			continue
		}
		c.TotalBonuses += b.Amount
		c.BonusDetails = append(c.BonusDetails, BonusLine{BonusID: b.ID, Type: b.Type, Amount: b.Amount})
	}

	c.GrossSalary = c.BaseSalary + c.TotalAllowances + c.TotalOvertime + c.TotalBonuses
	return c
}

type DeductionEstimate struct {
	Total int64
	Lines []DeductionLine
}

// EstimateDeductions projects this period's installments without touching
// the stored balances. Each advance gets its own line.
func EstimateDeductions(deductions []deduction.Deduction) DeductionEstimate {
	est := DeductionEstimate{Lines: []DeductionLine{}}
	for _, d := range deductions {
		amount := d.NextInstallment()
		if amount == 0 {
			continue
		}
		est.Total += amount
		est.Lines = append(est.Lines, DeductionLine{
			DeductionID: d.ID,
			Type:        d.Type,
			Amount:      amount,
			Remaining:   d.RemainingAmount - amount,
		})
	}
	return est
}

// NewEntry assembles an entry; net = gross - deductions and is not floored
// at zero.
func NewEntry(emp employee.Employee, summary attendance.Summary, comp Compensation, est DeductionEstimate) Entry {
	return Entry{
		EmployeeID:       emp.ID,
		TotalWorkDays:    summary.TotalWorkDays,
		DailyRate:        emp.DailyRate,
		BaseSalary:       comp.BaseSalary,
		TotalAllowances:  comp.TotalAllowances,
		TotalOvertime:    comp.TotalOvertime,
		TotalBonuses:     comp.TotalBonuses,
		GrossSalary:      comp.GrossSalary,
		TotalDeductions:  est.Total,
		NetSalary:        comp.GrossSalary - est.Total,
		AllowanceDetails: comp.AllowanceDetails,
		OvertimeDetails:  comp.Overtime,
		BonusDetails:     comp.BonusDetails,
		DeductionDetails: est.Lines,
		EmployeeName:     &emp.Name,
		EmployeeNIK:      &emp.NIK,
	}
}
