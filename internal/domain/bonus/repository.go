package bonus

import (
	"context"
	"time"
)

type BonusRepository interface {
	Create(ctx context.Context, b Bonus) (Bonus, error)
	GetByID(ctx context.Context, id string) (Bonus, error)
	List(ctx context.Context, filter BonusFilter) ([]Bonus, error)
	ListByEmployeePeriod(ctx context.Context, employeeID string, month, year int) ([]Bonus, error)
	// Update and Delete only touch rows still pending; ErrBonusNotPending otherwise.
	Update(ctx context.Context, req UpdateBonusRequest) error
	Delete(ctx context.Context, id string) error
	Approve(ctx context.Context, id, approverID string, approvedAt time.Time) error
}
