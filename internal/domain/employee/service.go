package employee

import (
	"context"

	"github.com/konveksi/payroll-backend-go/internal/domain/user"
)

type EmployeeService interface {
	Create(ctx context.Context, caller user.Caller, req CreateEmployeeRequest) (Employee, error)
	Get(ctx context.Context, caller user.Caller, id string) (Employee, error)
	List(ctx context.Context, caller user.Caller, filter EmployeeFilter) (ListEmployeeResponse, error)
	Update(ctx context.Context, caller user.Caller, req UpdateEmployeeRequest) (Employee, error)
	Deactivate(ctx context.Context, caller user.Caller, id string) error
}
