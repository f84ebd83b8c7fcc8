package servicetest

import (
	"context"
	"maps"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/konveksi/payroll-backend-go/internal/domain/bonus"
)

type BonusRepo struct {
	mu   sync.Mutex
	rows map[string]bonus.Bonus
}

func NewBonusRepo(seed ...bonus.Bonus) *BonusRepo {
	r := &BonusRepo{rows: make(map[string]bonus.Bonus)}
	for _, b := range seed {
		if b.ID == "" {
			b.ID = uuid.NewString()
		}
		r.rows[b.ID] = b
	}
	return r
}

func (r *BonusRepo) snapshot() func() {
	r.mu.Lock()
	saved := maps.Clone(r.rows)
	r.mu.Unlock()
	return func() {
		r.mu.Lock()
		r.rows = saved
		r.mu.Unlock()
	}
}

func (r *BonusRepo) Create(_ context.Context, b bonus.Bonus) (bonus.Bonus, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b.ID = uuid.NewString()
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	r.rows[b.ID] = b
	return b, nil
}

func (r *BonusRepo) GetByID(_ context.Context, id string) (bonus.Bonus, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.rows[id]
	if !ok {
		return bonus.Bonus{}, bonus.ErrBonusNotFound
	}
	return b, nil
}

func (r *BonusRepo) List(_ context.Context, filter bonus.BonusFilter) ([]bonus.Bonus, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []bonus.Bonus{}
	for _, b := range r.rows {
		if filter.EmployeeID != nil && b.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.PeriodMonth != nil && b.PeriodMonth != *filter.PeriodMonth {
			continue
		}
		if filter.PeriodYear != nil && b.PeriodYear != *filter.PeriodYear {
			continue
		}
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *BonusRepo) ListByEmployeePeriod(ctx context.Context, employeeID string, month, year int) ([]bonus.Bonus, error) {
	return r.List(ctx, bonus.BonusFilter{EmployeeID: &employeeID, PeriodMonth: &month, PeriodYear: &year})
}

func (r *BonusRepo) Update(_ context.Context, req bonus.UpdateBonusRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.rows[req.ID]
	if !ok {
		return bonus.ErrBonusNotFound
	}
	if !b.IsEditable() {
		return bonus.ErrBonusNotPending
	}
	if req.Type != nil {
		b.Type = *req.Type
	}
	if req.Amount != nil {
		b.Amount = *req.Amount
	}
	if req.PeriodMonth != nil {
		b.PeriodMonth = *req.PeriodMonth
	}
	if req.PeriodYear != nil {
		b.PeriodYear = *req.PeriodYear
	}
	if req.Reason != nil {
		b.Reason = req.Reason
	}
	r.rows[b.ID] = b
	return nil
}

func (r *BonusRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.rows[id]
	if !ok {
		return bonus.ErrBonusNotFound
	}
	if !b.IsEditable() {
		return bonus.ErrBonusNotPending
	}
	delete(r.rows, id)
	return nil
}

func (r *BonusRepo) Approve(_ context.Context, id, approverID string, approvedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.rows[id]
	if !ok {
		return bonus.ErrBonusNotFound
	}
	if b.Status != bonus.StatusPending {
		return bonus.ErrBonusAlreadyApproved
	}
	b.Status = bonus.StatusApproved
	b.ApprovedBy = &approverID
	b.ApprovedAt = &approvedAt
	r.rows[id] = b
	return nil
}

var _ bonus.BonusRepository = (*BonusRepo)(nil)
