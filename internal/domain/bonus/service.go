package bonus

import (
	"context"

	"github.com/konveksi/payroll-backend-go/internal/domain/user"
)

type BonusService interface {
	Create(ctx context.Context, caller user.Caller, req CreateBonusRequest) (Bonus, error)
	List(ctx context.Context, caller user.Caller, filter BonusFilter) ([]Bonus, error)
	Update(ctx context.Context, caller user.Caller, req UpdateBonusRequest) (Bonus, error)
	Delete(ctx context.Context, caller user.Caller, id string) error
	Approve(ctx context.Context, caller user.Caller, id string) (Bonus, error)
}
