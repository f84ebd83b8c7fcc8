package payroll

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/konveksi/payroll-backend-go/internal/domain/allowance"
	"github.com/konveksi/payroll-backend-go/internal/domain/attendance"
	"github.com/konveksi/payroll-backend-go/internal/domain/bonus"
	"github.com/konveksi/payroll-backend-go/internal/domain/deduction"
	"github.com/konveksi/payroll-backend-go/internal/domain/employee"
	"github.com/konveksi/payroll-backend-go/internal/domain/payroll"
	"github.com/konveksi/payroll-backend-go/internal/domain/user"
	"github.com/konveksi/payroll-backend-go/internal/pkg/lock"
	"github.com/konveksi/payroll-backend-go/internal/pkg/validator"
	"github.com/konveksi/payroll-backend-go/internal/service/servicetest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	owner    = user.Caller{ID: "owner-1", Role: user.RoleOwner}
	manager  = user.Caller{ID: "manager-1", Role: user.RoleManager}
	staff    = user.Caller{ID: "staff-1", Role: user.RoleEmployee}
	approved = time.Date(2025, time.April, 1, 9, 0, 0, 0, time.UTC)
)

type fixture struct {
	svc        *PayrollServiceImpl
	payroll    *servicetest.PayrollRepo
	deductions *servicetest.DeductionRepo
	locker     *lock.MemoryLocker
	tx         *servicetest.Transactor
}

const (
	empID       = "11111111-1111-1111-1111-111111111111"
	inactiveID  = "22222222-2222-2222-2222-222222222222"
	deductionID = "33333333-3333-3333-3333-333333333333"
)

func marchDay(d int) time.Time {
	return time.Date(2025, time.March, d, 0, 0, 0, 0, time.UTC)
}

// newFixture seeds the worked example: 20 work days at 150000, a per-day
// transport allowance of 15000, 3 weekday overtime hours, one approved bonus
// of 200000 and a 500000 kasbon repaid at 100000 per period.
func newFixture(extraDeductions ...deduction.Deduction) *fixture {
	employees := servicetest.NewEmployeeRepo(
		employee.Employee{ID: empID, NIK: "KNV-001", Name: "Siti", DailyRate: 150000, Status: employee.StatusActive},
		employee.Employee{ID: inactiveID, NIK: "KNV-002", Name: "Budi", DailyRate: 150000, Status: employee.StatusInactive},
	)

	records := []attendance.Attendance{}
	for d := 1; d <= 20; d++ {
		hours := decimal.Zero
		if d == 5 {
			hours = decimal.NewFromInt(3)
		}
		records = append(records, attendance.Attendance{
			EmployeeID: empID, Date: marchDay(d), Status: attendance.StatusPresent, OvertimeHours: hours,
		})
	}
	records = append(records,
		attendance.Attendance{EmployeeID: empID, Date: marchDay(21), Status: attendance.StatusAbsent, OvertimeHours: decimal.Zero},
		attendance.Attendance{EmployeeID: inactiveID, Date: marchDay(3), Status: attendance.StatusPresent, OvertimeHours: decimal.Zero},
	)

	allowances := servicetest.NewAllowanceRepo(
		allowance.Allowance{EmployeeID: empID, Type: "transport", Amount: 15000, CalculationMethod: allowance.MethodPerDay, IsActive: true},
	)
	bonuses := servicetest.NewBonusRepo(
		bonus.Bonus{EmployeeID: empID, Type: "performance", Amount: 200000, PeriodMonth: 3, PeriodYear: 2025, Status: bonus.StatusApproved},
		bonus.Bonus{EmployeeID: empID, Type: "target", Amount: 50000, PeriodMonth: 3, PeriodYear: 2025, Status: bonus.StatusPending},
	)
	deductions := servicetest.NewDeductionRepo(append([]deduction.Deduction{{
		ID: deductionID, EmployeeID: empID, Type: deduction.TypeKasbon,
		TotalAmount: 500000, RemainingAmount: 500000, InstallmentPerPeriod: 100000, Status: deduction.StatusActive,
	}}, extraDeductions...)...)

	payrollRepo := servicetest.NewPayrollRepo()
	tx := servicetest.NewTransactor(payrollRepo, deductions)
	locker := lock.NewMemoryLocker()

	svc := NewPayrollService(tx, payrollRepo, employees, &servicetest.AttendanceRepo{Records: records},
		allowances, bonuses, deductions, locker, time.Minute).(*PayrollServiceImpl)
	svc.now = func() time.Time { return approved }

	return &fixture{svc: svc, payroll: payrollRepo, deductions: deductions, locker: locker, tx: tx}
}

func march() payroll.GeneratePayrollRequest {
	return payroll.GeneratePayrollRequest{StartDate: "2025-03-01", EndDate: "2025-03-31"}
}

func (f *fixture) generateAndSubmit(t *testing.T) payroll.Period {
	t.Helper()
	ctx := context.Background()
	period, err := f.svc.GeneratePayroll(ctx, manager, march())
	require.NoError(t, err)
	_, err = f.svc.SubmitForApproval(ctx, manager, period.ID)
	require.NoError(t, err)
	return period
}

func TestGeneratePayroll_Scenario(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	period, err := f.svc.GeneratePayroll(ctx, manager, march())
	require.NoError(t, err)

	assert.Equal(t, "Maret 2025", period.Name)
	assert.Equal(t, payroll.PeriodStatusDraft, period.Status)
	assert.Equal(t, manager.ID, period.CreatedBy)
	assert.True(t, time.Date(2025, time.April, 3, 0, 0, 0, 0, time.UTC).Equal(period.PaymentDate))

	detail, err := f.svc.GetPeriod(ctx, manager, period.ID)
	require.NoError(t, err)
	require.Len(t, detail.Entries, 1, "inactive employees are not paid")

	e := detail.Entries[0]
	assert.Equal(t, empID, e.EmployeeID)
	assert.Equal(t, 20, e.TotalWorkDays)
	assert.Equal(t, int64(3000000), e.BaseSalary)
	assert.Equal(t, int64(300000), e.TotalAllowances)
	assert.Equal(t, int64(30000), e.TotalOvertime)
	assert.Equal(t, int64(200000), e.TotalBonuses, "pending bonuses are excluded")
	assert.Equal(t, int64(3530000), e.GrossSalary)
	assert.Equal(t, int64(100000), e.TotalDeductions)
	assert.Equal(t, int64(3430000), e.NetSalary)

	// generation only projects the balance
	d, err := f.deductions.GetByID(ctx, deductionID)
	require.NoError(t, err)
	assert.Equal(t, int64(500000), d.RemainingAmount)
}

func TestApprovePayroll_CommitsDeductions(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	period := f.generateAndSubmit(t)

	result, err := f.svc.ApprovePayroll(ctx, owner, period.ID)
	require.NoError(t, err)

	assert.Equal(t, payroll.PeriodStatusApproved, result.Period.Status)
	require.NotNil(t, result.Period.ApprovedBy)
	assert.Equal(t, owner.ID, *result.Period.ApprovedBy)
	require.NotNil(t, result.Period.ApprovedAt)
	assert.True(t, approved.Equal(*result.Period.ApprovedAt))

	require.Len(t, result.Applied, 1)
	assert.Empty(t, result.Skipped)
	assert.Equal(t, deductionID, result.Applied[0].DeductionID)
	assert.Equal(t, int64(400000), result.Applied[0].Remaining)
	assert.Equal(t, string(deduction.StatusActive), result.Applied[0].Status)

	d, err := f.deductions.GetByID(ctx, deductionID)
	require.NoError(t, err)
	assert.Equal(t, int64(400000), d.RemainingAmount)
	assert.Equal(t, deduction.StatusActive, d.Status)
}

func TestApprovePayroll_DistinctAdvancesOfSameType(t *testing.T) {
	second := deduction.Deduction{
		ID: "44444444-4444-4444-4444-444444444444", EmployeeID: empID, Type: deduction.TypeKasbon,
		TotalAmount: 150000, RemainingAmount: 150000, InstallmentPerPeriod: 200000, Status: deduction.StatusActive,
	}
	f := newFixture(second)
	ctx := context.Background()
	period := f.generateAndSubmit(t)

	result, err := f.svc.ApprovePayroll(ctx, owner, period.ID)
	require.NoError(t, err)
	require.Len(t, result.Applied, 2)

	first, err := f.deductions.GetByID(ctx, deductionID)
	require.NoError(t, err)
	assert.Equal(t, int64(400000), first.RemainingAmount)

	capped, err := f.deductions.GetByID(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), capped.RemainingAmount)
	assert.Equal(t, deduction.StatusPaidOff, capped.Status)
}

func TestApprovePayroll_ReportsSkippedLines(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	period := f.generateAndSubmit(t)

	f.deductions.Remove(deductionID)

	result, err := f.svc.ApprovePayroll(ctx, owner, period.ID)
	require.NoError(t, err)
	assert.Empty(t, result.Applied)
	require.Len(t, result.Skipped, 1)
	assert.Equal(t, deductionID, result.Skipped[0].DeductionID)
	assert.Equal(t, int64(100000), result.Skipped[0].Amount)
	assert.Equal(t, empID, result.Skipped[0].EmployeeID)
	assert.NotEmpty(t, result.Skipped[0].Reason)
}

func TestApprovePayroll_OwnerOnly(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	period := f.generateAndSubmit(t)

	_, err := f.svc.ApprovePayroll(ctx, manager, period.ID)
	assert.ErrorIs(t, err, user.ErrOwnerAccessRequired)

	_, err = f.svc.ApprovePayroll(ctx, user.Caller{}, period.ID)
	assert.ErrorIs(t, err, user.ErrUnauthenticated)

	got, err := f.payroll.GetPeriodByID(ctx, period.ID)
	require.NoError(t, err)
	assert.Equal(t, payroll.PeriodStatusPendingApproval, got.Status)

	d, err := f.deductions.GetByID(ctx, deductionID)
	require.NoError(t, err)
	assert.Equal(t, int64(500000), d.RemainingAmount)
}

func TestApprovePayroll_InProgress(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	period := f.generateAndSubmit(t)

	release, err := f.locker.Acquire(ctx, "payroll-approval:"+period.ID, time.Minute)
	require.NoError(t, err)

	_, err = f.svc.ApprovePayroll(ctx, owner, period.ID)
	assert.ErrorIs(t, err, payroll.ErrApprovalInProgress)

	require.NoError(t, release(ctx))
	_, err = f.svc.ApprovePayroll(ctx, owner, period.ID)
	assert.NoError(t, err)
}

func TestApprovePayroll_OnlyOnce(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	period := f.generateAndSubmit(t)

	_, err := f.svc.ApprovePayroll(ctx, owner, period.ID)
	require.NoError(t, err)

	_, err = f.svc.ApprovePayroll(ctx, owner, period.ID)
	assert.ErrorIs(t, err, payroll.ErrInvalidStatusTransition)

	d, err := f.deductions.GetByID(ctx, deductionID)
	require.NoError(t, err)
	assert.Equal(t, int64(400000), d.RemainingAmount, "a second approval must not withhold again")
}

func TestStatusTransitions(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	period, err := f.svc.GeneratePayroll(ctx, manager, march())
	require.NoError(t, err)

	_, err = f.svc.ApprovePayroll(ctx, owner, period.ID)
	assert.ErrorIs(t, err, payroll.ErrInvalidStatusTransition, "draft cannot be approved")

	submitted, err := f.svc.SubmitForApproval(ctx, manager, period.ID)
	require.NoError(t, err)
	assert.Equal(t, payroll.PeriodStatusPendingApproval, submitted.Status)

	_, err = f.svc.SubmitForApproval(ctx, manager, period.ID)
	assert.ErrorIs(t, err, payroll.ErrInvalidStatusTransition)

	_, err = f.svc.SubmitForApproval(ctx, manager, "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, payroll.ErrPeriodNotFound)
}

func TestGeneratePayroll_DuplicatePeriod(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.svc.GeneratePayroll(ctx, manager, march())
	require.NoError(t, err)
	periods, entries := f.payroll.Counts()

	_, err = f.svc.GeneratePayroll(ctx, owner, payroll.GeneratePayrollRequest{StartDate: "2025-03-05", EndDate: "2025-03-20"})
	assert.ErrorIs(t, err, payroll.ErrPeriodAlreadyExists)

	p2, e2 := f.payroll.Counts()
	assert.Equal(t, periods, p2)
	assert.Equal(t, entries, e2)
}

func TestGeneratePayroll_AtomicOnFailure(t *testing.T) {
	f := newFixture()
	f.payroll.CreateEntriesErr = errors.New("insert failed")

	_, err := f.svc.GeneratePayroll(context.Background(), manager, march())
	require.Error(t, err)

	periods, entries := f.payroll.Counts()
	assert.Zero(t, periods)
	assert.Zero(t, entries)
	assert.Equal(t, 1, f.tx.Calls)
}

func TestGeneratePayroll_Authorization(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.svc.GeneratePayroll(ctx, staff, march())
	assert.ErrorIs(t, err, user.ErrInsufficientPermissions)

	_, err = f.svc.GeneratePayroll(ctx, user.Caller{}, march())
	assert.ErrorIs(t, err, user.ErrUnauthenticated)

	_, err = f.svc.GeneratePayroll(ctx, user.System(), march())
	assert.NoError(t, err)
}

func TestGeneratePayroll_Validation(t *testing.T) {
	f := newFixture()

	_, err := f.svc.GeneratePayroll(context.Background(), manager,
		payroll.GeneratePayrollRequest{StartDate: "2025-03-31", EndDate: "2025-03-01"})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "end_date", verrs[0].Field)

	periods, _ := f.payroll.Counts()
	assert.Zero(t, periods)
}

func TestGetSummary(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	period, err := f.svc.GeneratePayroll(ctx, manager, march())
	require.NoError(t, err)

	summary, err := f.svc.GetSummary(ctx, owner, period.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Totals.EmployeeCount)
	assert.Equal(t, int64(3430000), summary.Totals.NetSalary)
	assert.Equal(t, "Rp 3.430.000", summary.Formatted["total_net_salary"])
	assert.Equal(t, "Rp 3.530.000", summary.Formatted["total_gross_salary"])

	_, err = f.svc.GetSummary(ctx, staff, period.ID)
	assert.ErrorIs(t, err, user.ErrInsufficientPermissions)
}

func TestListPeriods(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.svc.GeneratePayroll(ctx, manager, march())
	require.NoError(t, err)
	_, err = f.svc.GeneratePayroll(ctx, manager, payroll.GeneratePayrollRequest{StartDate: "2025-04-01", EndDate: "2025-04-30"})
	require.NoError(t, err)

	list, err := f.svc.ListPeriods(ctx, manager, payroll.PeriodFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), list.TotalCount)
	assert.Equal(t, 1, list.Page)
	assert.Equal(t, 20, list.Limit)
	require.Len(t, list.Data, 2)
	assert.Equal(t, "April 2025", list.Data[0].Name)
}
