package deduction

import "context"

type DeductionRepository interface {
	Create(ctx context.Context, d Deduction) (Deduction, error)
	GetByID(ctx context.Context, id string) (Deduction, error)
	List(ctx context.Context, filter DeductionFilter) ([]Deduction, error)
	ListActiveByEmployee(ctx context.Context, employeeID string) ([]Deduction, error)
	Update(ctx context.Context, req UpdateDeductionRequest) error
	// Delete removes the deduction only while it is untouched.
	Delete(ctx context.Context, id string) error
	// ApplyInstallment locks the active deduction row, applies amount and
	// persists the new balance/status. ErrDeductionNotFound when no active
	// deduction with that id exists.
	ApplyInstallment(ctx context.Context, id string, amount int64) (Deduction, error)
}
