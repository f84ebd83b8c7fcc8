package allowance

import (
	"context"

	"github.com/konveksi/payroll-backend-go/internal/domain/user"
)

type AllowanceService interface {
	Create(ctx context.Context, caller user.Caller, req CreateAllowanceRequest) (Allowance, error)
	ListByEmployee(ctx context.Context, caller user.Caller, employeeID string) ([]Allowance, error)
	Update(ctx context.Context, caller user.Caller, req UpdateAllowanceRequest) (Allowance, error)
	Delete(ctx context.Context, caller user.Caller, id string) error
}
