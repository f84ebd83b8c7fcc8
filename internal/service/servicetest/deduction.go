package servicetest

import (
	"context"
	"maps"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/konveksi/payroll-backend-go/internal/domain/deduction"
)

type DeductionRepo struct {
	mu   sync.Mutex
	rows map[string]deduction.Deduction
}

func NewDeductionRepo(seed ...deduction.Deduction) *DeductionRepo {
	r := &DeductionRepo{rows: make(map[string]deduction.Deduction)}
	for _, d := range seed {
		if d.ID == "" {
			d.ID = uuid.NewString()
		}
		r.rows[d.ID] = d
	}
	return r
}

func (r *DeductionRepo) snapshot() func() {
	r.mu.Lock()
	saved := maps.Clone(r.rows)
	r.mu.Unlock()
	return func() {
		r.mu.Lock()
		r.rows = saved
		r.mu.Unlock()
	}
}

// Remove deletes a row regardless of its state, to simulate out-of-band changes.
func (r *DeductionRepo) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rows, id)
}

func (r *DeductionRepo) Create(_ context.Context, d deduction.Deduction) (deduction.Deduction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d.ID = uuid.NewString()
	d.CreatedAt = time.Now()
	d.UpdatedAt = d.CreatedAt
	r.rows[d.ID] = d
	return d, nil
}

func (r *DeductionRepo) GetByID(_ context.Context, id string) (deduction.Deduction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.rows[id]
	if !ok {
		return deduction.Deduction{}, deduction.ErrDeductionNotFound
	}
	return d, nil
}

func (r *DeductionRepo) List(_ context.Context, filter deduction.DeductionFilter) ([]deduction.Deduction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []deduction.Deduction{}
	for _, d := range r.rows {
		if filter.EmployeeID != nil && d.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.Status != nil && d.Status != *filter.Status {
			continue
		}
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *DeductionRepo) ListActiveByEmployee(ctx context.Context, employeeID string) ([]deduction.Deduction, error) {
	status := deduction.StatusActive
	return r.List(ctx, deduction.DeductionFilter{EmployeeID: &employeeID, Status: &status})
}

func (r *DeductionRepo) Update(_ context.Context, req deduction.UpdateDeductionRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.rows[req.ID]
	if !ok {
		return deduction.ErrDeductionNotFound
	}
	if req.InstallmentPerPeriod != nil {
		d.InstallmentPerPeriod = *req.InstallmentPerPeriod
	}
	if req.Notes != nil {
		d.Notes = req.Notes
	}
	r.rows[d.ID] = d
	return nil
}

func (r *DeductionRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.rows[id]
	if !ok {
		return deduction.ErrDeductionNotFound
	}
	if !d.IsUntouched() {
		return deduction.ErrDeductionAlreadyRepaid
	}
	delete(r.rows, id)
	return nil
}

func (r *DeductionRepo) ApplyInstallment(_ context.Context, id string, amount int64) (deduction.Deduction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.rows[id]
	if !ok || d.Status != deduction.StatusActive {
		return deduction.Deduction{}, deduction.ErrDeductionNotFound
	}
	d.ApplyInstallment(amount)
	r.rows[id] = d
	return d, nil
}

var _ deduction.DeductionRepository = (*DeductionRepo)(nil)
