package payroll

import (
	"context"

	"github.com/konveksi/payroll-backend-go/internal/domain/user"
)

type PayrollService interface {
	GeneratePayroll(ctx context.Context, caller user.Caller, req GeneratePayrollRequest) (Period, error)
	SubmitForApproval(ctx context.Context, caller user.Caller, periodID string) (Period, error)
	ApprovePayroll(ctx context.Context, caller user.Caller, periodID string) (ApprovalResult, error)
	ListPeriods(ctx context.Context, caller user.Caller, filter PeriodFilter) (ListPeriodResponse, error)
	GetPeriod(ctx context.Context, caller user.Caller, periodID string) (PeriodDetailResponse, error)
	GetSummary(ctx context.Context, caller user.Caller, periodID string) (SummaryResponse, error)
}
