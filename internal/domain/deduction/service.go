package deduction

import (
	"context"

	"github.com/konveksi/payroll-backend-go/internal/domain/user"
)

type DeductionService interface {
	Create(ctx context.Context, caller user.Caller, req CreateDeductionRequest) (Deduction, error)
	Get(ctx context.Context, caller user.Caller, id string) (Deduction, error)
	List(ctx context.Context, caller user.Caller, filter DeductionFilter) ([]Deduction, error)
	Update(ctx context.Context, caller user.Caller, req UpdateDeductionRequest) (Deduction, error)
	Delete(ctx context.Context, caller user.Caller, id string) error
}
