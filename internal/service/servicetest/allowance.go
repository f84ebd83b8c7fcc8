package servicetest

import (
	"context"
	"maps"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/konveksi/payroll-backend-go/internal/domain/allowance"
)

type AllowanceRepo struct {
	mu   sync.Mutex
	rows map[string]allowance.Allowance
}

func NewAllowanceRepo(seed ...allowance.Allowance) *AllowanceRepo {
	r := &AllowanceRepo{rows: make(map[string]allowance.Allowance)}
	for _, a := range seed {
		if a.ID == "" {
			a.ID = uuid.NewString()
		}
		r.rows[a.ID] = a
	}
	return r
}

func (r *AllowanceRepo) snapshot() func() {
	r.mu.Lock()
	saved := maps.Clone(r.rows)
	r.mu.Unlock()
	return func() {
		r.mu.Lock()
		r.rows = saved
		r.mu.Unlock()
	}
}

func (r *AllowanceRepo) Create(_ context.Context, a allowance.Allowance) (allowance.Allowance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a.ID = uuid.NewString()
	a.CreatedAt = time.Now()
	a.UpdatedAt = a.CreatedAt
	r.rows[a.ID] = a
	return a, nil
}

func (r *AllowanceRepo) GetByID(_ context.Context, id string) (allowance.Allowance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.rows[id]
	if !ok {
		return allowance.Allowance{}, allowance.ErrAllowanceNotFound
	}
	return a, nil
}

func (r *AllowanceRepo) ListByEmployee(_ context.Context, employeeID string, activeOnly bool) ([]allowance.Allowance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []allowance.Allowance{}
	for _, a := range r.rows {
		if a.EmployeeID != employeeID || (activeOnly && !a.IsActive) {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Type < out[j].Type })
	return out, nil
}

func (r *AllowanceRepo) Update(_ context.Context, req allowance.UpdateAllowanceRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.rows[req.ID]
	if !ok {
		return allowance.ErrAllowanceNotFound
	}
	if req.Type != nil {
		a.Type = *req.Type
	}
	if req.Amount != nil {
		a.Amount = *req.Amount
	}
	if req.CalculationMethod != nil {
		a.CalculationMethod = allowance.CalculationMethod(*req.CalculationMethod)
	}
	if req.IsActive != nil {
		a.IsActive = *req.IsActive
	}
	r.rows[a.ID] = a
	return nil
}

func (r *AllowanceRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return allowance.ErrAllowanceNotFound
	}
	delete(r.rows, id)
	return nil
}

var _ allowance.AllowanceRepository = (*AllowanceRepo)(nil)
