package payroll

import (
	"context"
	"time"
)

// PayrollRepository defines data access methods for payroll periods and entries.
type PayrollRepository interface {
	// Periods
	CreatePeriod(ctx context.Context, period Period) (Period, error)
	GetPeriodByID(ctx context.Context, id string) (Period, error)
	ExistsPeriodByName(ctx context.Context, name string) (bool, error)
	ListPeriods(ctx context.Context, filter PeriodFilter) ([]Period, int64, error)
	// UpdatePeriodStatus moves a period from -> to and fails with
	// ErrInvalidStatusTransition when the stored status is not from.
	UpdatePeriodStatus(ctx context.Context, id string, from, to PeriodStatus, approverID *string, approvedAt *time.Time) (Period, error)

	// Entries
	CreateEntries(ctx context.Context, periodID string, entries []Entry) error
	ListEntries(ctx context.Context, periodID string) ([]Entry, error)
	GetPeriodTotals(ctx context.Context, periodID string) (Totals, error)
}
