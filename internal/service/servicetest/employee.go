package servicetest

import (
	"context"
	"maps"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/konveksi/payroll-backend-go/internal/domain/employee"
)

type EmployeeRepo struct {
	mu   sync.Mutex
	rows map[string]employee.Employee
}

func NewEmployeeRepo(seed ...employee.Employee) *EmployeeRepo {
	r := &EmployeeRepo{rows: make(map[string]employee.Employee)}
	for _, e := range seed {
		if e.ID == "" {
			e.ID = uuid.NewString()
		}
		r.rows[e.ID] = e
	}
	return r
}

func (r *EmployeeRepo) snapshot() func() {
	r.mu.Lock()
	saved := maps.Clone(r.rows)
	r.mu.Unlock()
	return func() {
		r.mu.Lock()
		r.rows = saved
		r.mu.Unlock()
	}
}

func (r *EmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.rows[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (r *EmployeeRepo) ExistsByNIK(_ context.Context, nik string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.rows {
		if e.NIK == nik {
			return true, nil
		}
	}
	return false, nil
}

func (r *EmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	if exists, _ := r.ExistsByNIK(ctx, e.NIK); exists {
		return employee.Employee{}, employee.ErrNIKExists
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	e.ID = uuid.NewString()
	e.CreatedAt = time.Now()
	e.UpdatedAt = e.CreatedAt
	r.rows[e.ID] = e
	return e, nil
}

func (r *EmployeeRepo) Update(_ context.Context, req employee.UpdateEmployeeRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.rows[req.ID]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	if req.Name != nil {
		e.Name = *req.Name
	}
	if req.Department != nil {
		e.Department = *req.Department
	}
	if req.Position != nil {
		e.Position = *req.Position
	}
	if req.DailyRate != nil {
		e.DailyRate = *req.DailyRate
	}
	if req.BankAccount != nil {
		e.BankAccount = req.BankAccount
	}
	r.rows[e.ID] = e
	return nil
}

func (r *EmployeeRepo) UpdateStatus(_ context.Context, id string, status employee.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.rows[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	e.Status = status
	r.rows[id] = e
	return nil
}

func (r *EmployeeRepo) List(_ context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	matched := []employee.Employee{}
	for _, e := range r.rows {
		if filter.Status != nil && e.Status != *filter.Status {
			continue
		}
		if filter.Search != nil {
			q := strings.ToLower(*filter.Search)
			if !strings.Contains(strings.ToLower(e.Name), q) && !strings.Contains(strings.ToLower(e.NIK), q) {
				continue
			}
		}
		matched = append(matched, e)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Name < matched[j].Name })

	total := int64(len(matched))
	from := min(filter.Offset(), len(matched))
	to := min(from+filter.Limit, len(matched))
	return matched[from:to], total, nil
}

func (r *EmployeeRepo) ListActive(_ context.Context) ([]employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	active := []employee.Employee{}
	for _, e := range r.rows {
		if e.IsActive() {
			active = append(active, e)
		}
	}
	sort.Slice(active, func(i, j int) bool { return active[i].NIK < active[j].NIK })
	return active, nil
}

var _ employee.EmployeeRepository = (*EmployeeRepo)(nil)
