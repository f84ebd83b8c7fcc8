package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/konveksi/payroll-backend-go/internal/domain/allowance"
	"github.com/konveksi/payroll-backend-go/internal/domain/attendance"
	"github.com/konveksi/payroll-backend-go/internal/domain/bonus"
	"github.com/konveksi/payroll-backend-go/internal/domain/deduction"
	"github.com/konveksi/payroll-backend-go/internal/domain/employee"
	"github.com/konveksi/payroll-backend-go/internal/domain/payroll"
	"github.com/konveksi/payroll-backend-go/internal/domain/user"
	"github.com/konveksi/payroll-backend-go/internal/pkg/currency"
	"github.com/konveksi/payroll-backend-go/internal/pkg/database"
	"github.com/konveksi/payroll-backend-go/internal/pkg/lock"
)

const skipReasonInactive = "deduction no longer active"

type PayrollServiceImpl struct {
	tx             database.Transactor
	payrollRepo    payroll.PayrollRepository
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	allowanceRepo  allowance.AllowanceRepository
	bonusRepo      bonus.BonusRepository
	deductionRepo  deduction.DeductionRepository
	locker         lock.Locker
	lockTTL        time.Duration
	now            func() time.Time
}

func NewPayrollService(
	tx database.Transactor,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	allowanceRepo allowance.AllowanceRepository,
	bonusRepo bonus.BonusRepository,
	deductionRepo deduction.DeductionRepository,
	locker lock.Locker,
	lockTTL time.Duration,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		tx:             tx,
		payrollRepo:    payrollRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		allowanceRepo:  allowanceRepo,
		bonusRepo:      bonusRepo,
		deductionRepo:  deductionRepo,
		locker:         locker,
		lockTTL:        lockTTL,
		now:            time.Now,
	}
}

// ========== GENERATION ==========

// GeneratePayroll computes every active employee's entry in memory, then
// persists the period and all entries in one transaction.
func (s *PayrollServiceImpl) GeneratePayroll(ctx context.Context, caller user.Caller, req payroll.GeneratePayrollRequest) (payroll.Period, error) {
	if err := caller.Authorize(user.PermissionPayrollGenerate); err != nil {
		return payroll.Period{}, err
	}
	if err := req.Validate(); err != nil {
		return payroll.Period{}, err
	}
	start, end := req.Range()
	name := payroll.PeriodName(start)

	exists, err := s.payrollRepo.ExistsPeriodByName(ctx, name)
	if err != nil {
		return payroll.Period{}, err
	}
	if exists {
		return payroll.Period{}, payroll.ErrPeriodAlreadyExists
	}

	employees, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		return payroll.Period{}, fmt.Errorf("failed to list active employees: %w", err)
	}

	entries := make([]payroll.Entry, 0, len(employees))
	for _, emp := range employees {
		entry, err := s.buildEntry(ctx, emp, start, end)
		if err != nil {
			return payroll.Period{}, fmt.Errorf("failed to compute payroll for employee %s: %w", emp.NIK, err)
		}
		entries = append(entries, entry)
	}

	var created payroll.Period
	err = s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		created, err = s.payrollRepo.CreatePeriod(txCtx, payroll.Period{
			Name:        name,
			StartDate:   start,
			EndDate:     end,
			PaymentDate: payroll.PaymentDate(end),
			Status:      payroll.PeriodStatusDraft,
			CreatedBy:   caller.ID,
		})
		if err != nil {
			return err
		}
		return s.payrollRepo.CreateEntries(txCtx, created.ID, entries)
	})
	if err != nil {
		return payroll.Period{}, err
	}

	var totalNet int64
	for _, e := range entries {
		totalNet += e.NetSalary
	}
	slog.Info("payroll period generated",
		"period_id", created.ID,
		"name", created.Name,
		"employees", len(entries),
		"total_net", totalNet,
		"created_by", caller.ID,
	)
	return created, nil
}

func (s *PayrollServiceImpl) buildEntry(ctx context.Context, emp employee.Employee, start, end time.Time) (payroll.Entry, error) {
	records, err := s.attendanceRepo.ListByEmployeeRange(ctx, emp.ID, start, end)
	if err != nil {
		return payroll.Entry{}, err
	}
	summary := attendance.Summarize(records, start, end)

	allowances, err := s.allowanceRepo.ListByEmployee(ctx, emp.ID, true)
	if err != nil {
		return payroll.Entry{}, err
	}

	bonuses, err := s.bonusRepo.ListByEmployeePeriod(ctx, emp.ID, int(start.Month()), start.Year())
	if err != nil {
		return payroll.Entry{}, err
	}

	deductions, err := s.deductionRepo.ListActiveByEmployee(ctx, emp.ID)
	if err != nil {
		return payroll.Entry{}, err
	}

	comp := payroll.CalculateCompensation(payroll.CompensationInput{
		DailyRate:   emp.DailyRate,
		Attendance:  summary,
		Allowances:  allowances,
		Bonuses:     bonuses,
		PeriodStart: start,
	})
	return payroll.NewEntry(emp, summary, comp, payroll.EstimateDeductions(deductions)), nil
}

// ========== STATUS TRANSITIONS ==========

func (s *PayrollServiceImpl) SubmitForApproval(ctx context.Context, caller user.Caller, periodID string) (payroll.Period, error) {
	if err := caller.Authorize(user.PermissionPayrollSubmit); err != nil {
		return payroll.Period{}, err
	}

	period, err := s.transition(ctx, periodID, payroll.PeriodStatusPendingApproval, nil, nil)
	if err != nil {
		return payroll.Period{}, err
	}

	slog.Info("payroll period submitted", "period_id", period.ID, "name", period.Name, "submitted_by", caller.ID)
	return period, nil
}

// ApprovePayroll approves a pending period and commits every deduction
// line of its entries against the live balances. Lines whose advance is no
// longer active are returned in Skipped instead of failing the approval.
func (s *PayrollServiceImpl) ApprovePayroll(ctx context.Context, caller user.Caller, periodID string) (payroll.ApprovalResult, error) {
	if err := caller.AuthorizeOwner(user.PermissionPayrollApprove); err != nil {
		return payroll.ApprovalResult{}, err
	}

	release, err := s.locker.Acquire(ctx, "payroll-approval:"+periodID, s.lockTTL)
	if errors.Is(err, lock.ErrLocked) {
		return payroll.ApprovalResult{}, payroll.ErrApprovalInProgress
	}
	if err != nil {
		return payroll.ApprovalResult{}, err
	}
	defer func() {
		if err := release(context.WithoutCancel(ctx)); err != nil {
			slog.Warn("failed to release approval lock", "period_id", periodID, "error", err)
		}
	}()

	approver := caller.ID
	approvedAt := s.now()

	var result payroll.ApprovalResult
	err = s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		period, err := s.transition(txCtx, periodID, payroll.PeriodStatusApproved, &approver, &approvedAt)
		if err != nil {
			return err
		}

		entries, err := s.payrollRepo.ListEntries(txCtx, periodID)
		if err != nil {
			return err
		}

		applied, skipped, err := s.commitDeductions(txCtx, entries)
		if err != nil {
			return err
		}

		result = payroll.ApprovalResult{Period: period, Applied: applied, Skipped: skipped}
		return nil
	})
	if err != nil {
		return payroll.ApprovalResult{}, err
	}

	for _, sk := range result.Skipped {
		slog.Warn("deduction line skipped on approval",
			"period_id", periodID,
			"entry_id", sk.EntryID,
			"employee_id", sk.EmployeeID,
			"deduction_id", sk.DeductionID,
			"amount", sk.Amount,
			"reason", sk.Reason,
		)
	}
	slog.Info("payroll period approved",
		"period_id", periodID,
		"approved_by", caller.ID,
		"applied", len(result.Applied),
		"skipped", len(result.Skipped),
	)
	return result, nil
}

// transition moves a period to `to` if its current status allows it. The
// repository update is conditional on the status read here.
func (s *PayrollServiceImpl) transition(ctx context.Context, periodID string, to payroll.PeriodStatus, approverID *string, approvedAt *time.Time) (payroll.Period, error) {
	current, err := s.payrollRepo.GetPeriodByID(ctx, periodID)
	if err != nil {
		return payroll.Period{}, err
	}
	if !payroll.CanTransition(current.Status, to) {
		return payroll.Period{}, payroll.ErrInvalidStatusTransition
	}
	return s.payrollRepo.UpdatePeriodStatus(ctx, periodID, current.Status, to, approverID, approvedAt)
}

func (s *PayrollServiceImpl) commitDeductions(ctx context.Context, entries []payroll.Entry) ([]payroll.AppliedDeduction, []payroll.SkippedDeduction, error) {
	applied := []payroll.AppliedDeduction{}
	skipped := []payroll.SkippedDeduction{}

	for _, entry := range entries {
		for _, line := range entry.DeductionDetails {
			d, err := s.deductionRepo.ApplyInstallment(ctx, line.DeductionID, line.Amount)
			if errors.Is(err, deduction.ErrDeductionNotFound) {
				skipped = append(skipped, payroll.SkippedDeduction{
					EntryID:     entry.ID,
					EmployeeID:  entry.EmployeeID,
					DeductionID: line.DeductionID,
					Type:        line.Type,
					Amount:      line.Amount,
					Reason:      skipReasonInactive,
				})
				continue
			}
			if err != nil {
				return nil, nil, err
			}

			slog.Debug("deduction installment applied",
				"deduction_id", d.ID, "amount", line.Amount, "remaining", d.RemainingAmount, "status", d.Status)
			applied = append(applied, payroll.AppliedDeduction{
				EntryID:     entry.ID,
				EmployeeID:  entry.EmployeeID,
				DeductionID: d.ID,
				Amount:      line.Amount,
				Remaining:   d.RemainingAmount,
				Status:      string(d.Status),
			})
		}
	}
	return applied, skipped, nil
}

// ========== QUERIES ==========

func (s *PayrollServiceImpl) ListPeriods(ctx context.Context, caller user.Caller, filter payroll.PeriodFilter) (payroll.ListPeriodResponse, error) {
	if err := caller.Authorize(user.PermissionPayrollView); err != nil {
		return payroll.ListPeriodResponse{}, err
	}
	filter.Normalize()

	periods, total, err := s.payrollRepo.ListPeriods(ctx, filter)
	if err != nil {
		return payroll.ListPeriodResponse{}, err
	}
	return payroll.ListPeriodResponse{
		Data:       periods,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (s *PayrollServiceImpl) GetPeriod(ctx context.Context, caller user.Caller, periodID string) (payroll.PeriodDetailResponse, error) {
	if err := caller.Authorize(user.PermissionPayrollView); err != nil {
		return payroll.PeriodDetailResponse{}, err
	}

	period, err := s.payrollRepo.GetPeriodByID(ctx, periodID)
	if err != nil {
		return payroll.PeriodDetailResponse{}, err
	}
	entries, err := s.payrollRepo.ListEntries(ctx, periodID)
	if err != nil {
		return payroll.PeriodDetailResponse{}, err
	}
	return payroll.PeriodDetailResponse{Period: period, Entries: entries}, nil
}

func (s *PayrollServiceImpl) GetSummary(ctx context.Context, caller user.Caller, periodID string) (payroll.SummaryResponse, error) {
	if err := caller.Authorize(user.PermissionPayrollView); err != nil {
		return payroll.SummaryResponse{}, err
	}

	period, err := s.payrollRepo.GetPeriodByID(ctx, periodID)
	if err != nil {
		return payroll.SummaryResponse{}, err
	}
	totals, err := s.payrollRepo.GetPeriodTotals(ctx, periodID)
	if err != nil {
		return payroll.SummaryResponse{}, err
	}

	return payroll.SummaryResponse{
		Period: period,
		Totals: totals,
		Formatted: map[string]string{
			"total_base_salary":  currency.FormatRupiah(totals.BaseSalary),
			"total_allowances":   currency.FormatRupiah(totals.Allowances),
			"total_overtime":     currency.FormatRupiah(totals.Overtime),
			"total_bonuses":      currency.FormatRupiah(totals.Bonuses),
			"total_gross_salary": currency.FormatRupiah(totals.GrossSalary),
			"total_deductions":   currency.FormatRupiah(totals.Deductions),
			"total_net_salary":   currency.FormatRupiah(totals.NetSalary),
		},
	}, nil
}
