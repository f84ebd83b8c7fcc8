package servicetest

import (
	"context"
	"maps"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/konveksi/payroll-backend-go/internal/domain/payroll"
)

type PayrollRepo struct {
	mu      sync.Mutex
	periods map[string]payroll.Period
	entries map[string][]payroll.Entry

	// CreateEntriesErr, when set, is returned by CreateEntries.
	CreateEntriesErr error
}

func NewPayrollRepo() *PayrollRepo {
	return &PayrollRepo{
		periods: make(map[string]payroll.Period),
		entries: make(map[string][]payroll.Entry),
	}
}

func (r *PayrollRepo) snapshot() func() {
	r.mu.Lock()
	periods := maps.Clone(r.periods)
	entries := maps.Clone(r.entries)
	r.mu.Unlock()
	return func() {
		r.mu.Lock()
		r.periods = periods
		r.entries = entries
		r.mu.Unlock()
	}
}

// Counts reports stored periods and entries.
func (r *PayrollRepo) Counts() (periods, entries int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, es := range r.entries {
		entries += len(es)
	}
	return len(r.periods), entries
}

func (r *PayrollRepo) CreatePeriod(_ context.Context, p payroll.Period) (payroll.Period, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.periods {
		if existing.Name == p.Name {
			return payroll.Period{}, payroll.ErrPeriodAlreadyExists
		}
	}
	p.ID = uuid.NewString()
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	r.periods[p.ID] = p
	return p, nil
}

func (r *PayrollRepo) GetPeriodByID(_ context.Context, id string) (payroll.Period, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.periods[id]
	if !ok {
		return payroll.Period{}, payroll.ErrPeriodNotFound
	}
	return p, nil
}

func (r *PayrollRepo) ExistsPeriodByName(_ context.Context, name string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.periods {
		if p.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *PayrollRepo) ListPeriods(_ context.Context, filter payroll.PeriodFilter) ([]payroll.Period, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []payroll.Period{}
	for _, p := range r.periods {
		if filter.Status != nil && p.Status != *filter.Status {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.After(out[j].StartDate) })

	total := int64(len(out))
	from := min(filter.Offset(), len(out))
	to := min(from+filter.Limit, len(out))
	return out[from:to], total, nil
}

func (r *PayrollRepo) UpdatePeriodStatus(_ context.Context, id string, from, to payroll.PeriodStatus, approverID *string, approvedAt *time.Time) (payroll.Period, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.periods[id]
	if !ok {
		return payroll.Period{}, payroll.ErrPeriodNotFound
	}
	if p.Status != from {
		return payroll.Period{}, payroll.ErrInvalidStatusTransition
	}
	p.Status = to
	if approverID != nil {
		p.ApprovedBy = approverID
	}
	if approvedAt != nil {
		p.ApprovedAt = approvedAt
	}
	p.UpdatedAt = time.Now()
	r.periods[id] = p
	return p, nil
}

func (r *PayrollRepo) CreateEntries(_ context.Context, periodID string, entries []payroll.Entry) error {
	if r.CreateEntriesErr != nil {
		return r.CreateEntriesErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := make([]payroll.Entry, 0, len(entries))
	for _, e := range entries {
		e.ID = uuid.NewString()
		e.PeriodID = periodID
		e.CreatedAt = time.Now()
		stored = append(stored, e)
	}
	r.entries[periodID] = stored
	return nil
}

func (r *PayrollRepo) ListEntries(_ context.Context, periodID string) ([]payroll.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]payroll.Entry{}, r.entries[periodID]...), nil
}

func (r *PayrollRepo) GetPeriodTotals(_ context.Context, periodID string) (payroll.Totals, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var t payroll.Totals
	for _, e := range r.entries[periodID] {
		t.EmployeeCount++
		t.BaseSalary += e.BaseSalary
		t.Allowances += e.TotalAllowances
		t.Overtime += e.TotalOvertime
		t.Bonuses += e.TotalBonuses
		t.GrossSalary += e.GrossSalary
		t.Deductions += e.TotalDeductions
		t.NetSalary += e.NetSalary
	}
	return t, nil
}

var _ payroll.PayrollRepository = (*PayrollRepo)(nil)
