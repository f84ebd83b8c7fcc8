package allowance

import "context"

type AllowanceRepository interface {
	Create(ctx context.Context, a Allowance) (Allowance, error)
	GetByID(ctx context.Context, id string) (Allowance, error)
	ListByEmployee(ctx context.Context, employeeID string, activeOnly bool) ([]Allowance, error)
	Update(ctx context.Context, req UpdateAllowanceRequest) error
	Delete(ctx context.Context, id string) error
}
