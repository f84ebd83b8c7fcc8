package bonus

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/konveksi/payroll-backend-go/internal/domain/bonus"
	"github.com/konveksi/payroll-backend-go/internal/domain/employee"
	"github.com/konveksi/payroll-backend-go/internal/domain/user"
)

type BonusServiceImpl struct {
	bonusRepo    bonus.BonusRepository
	employeeRepo employee.EmployeeRepository
	now          func() time.Time
}

func NewBonusService(bonusRepo bonus.BonusRepository, employeeRepo employee.EmployeeRepository) bonus.BonusService {
	return &BonusServiceImpl{
		bonusRepo:    bonusRepo,
		employeeRepo: employeeRepo,
		now:          time.Now,
	}
}

// Create records a bonus as pending; it only reaches payroll once approved.
func (s *BonusServiceImpl) Create(ctx context.Context, caller user.Caller, req bonus.CreateBonusRequest) (bonus.Bonus, error) {
	if err := caller.Authorize(user.PermissionCompensationManage); err != nil {
		return bonus.Bonus{}, err
	}
	if err := req.Validate(); err != nil {
		return bonus.Bonus{}, err
	}
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return bonus.Bonus{}, err
	}

	created, err := s.bonusRepo.Create(ctx, bonus.Bonus{
		EmployeeID:  req.EmployeeID,
		Type:        strings.TrimSpace(req.Type),
		Amount:      req.Amount,
		PeriodMonth: req.PeriodMonth,
		PeriodYear:  req.PeriodYear,
		Reason:      req.Reason,
		Status:      bonus.StatusPending,
		CreatedBy:   caller.ID,
	})
	if err != nil {
		return bonus.Bonus{}, err
	}

	slog.Info("bonus created",
		"bonus_id", created.ID,
		"employee_id", created.EmployeeID,
		"amount", created.Amount,
		"period", time.Month(created.PeriodMonth).String(),
		"year", created.PeriodYear,
	)
	return created, nil
}

func (s *BonusServiceImpl) List(ctx context.Context, caller user.Caller, filter bonus.BonusFilter) ([]bonus.Bonus, error) {
	if err := caller.Authorize(user.PermissionCompensationView); err != nil {
		return nil, err
	}
	return s.bonusRepo.List(ctx, filter)
}

func (s *BonusServiceImpl) Update(ctx context.Context, caller user.Caller, req bonus.UpdateBonusRequest) (bonus.Bonus, error) {
	if err := caller.Authorize(user.PermissionCompensationManage); err != nil {
		return bonus.Bonus{}, err
	}
	if err := req.Validate(); err != nil {
		return bonus.Bonus{}, err
	}

	current, err := s.bonusRepo.GetByID(ctx, req.ID)
	if err != nil {
		return bonus.Bonus{}, err
	}
	if !current.IsEditable() {
		return bonus.Bonus{}, bonus.ErrBonusNotPending
	}

	if err := s.bonusRepo.Update(ctx, req); err != nil {
		return bonus.Bonus{}, err
	}
	return s.bonusRepo.GetByID(ctx, req.ID)
}

func (s *BonusServiceImpl) Delete(ctx context.Context, caller user.Caller, id string) error {
	if err := caller.Authorize(user.PermissionCompensationManage); err != nil {
		return err
	}
	if err := s.bonusRepo.Delete(ctx, id); err != nil {
		return err
	}
	slog.Info("bonus deleted", "bonus_id", id, "deleted_by", caller.ID)
	return nil
}

// Approve is owner-only; an approved bonus can no longer be edited.
func (s *BonusServiceImpl) Approve(ctx context.Context, caller user.Caller, id string) (bonus.Bonus, error) {
	if err := caller.AuthorizeOwner(user.PermissionBonusApprove); err != nil {
		return bonus.Bonus{}, err
	}

	if err := s.bonusRepo.Approve(ctx, id, caller.ID, s.now()); err != nil {
		return bonus.Bonus{}, err
	}

	approved, err := s.bonusRepo.GetByID(ctx, id)
	if err != nil {
		return bonus.Bonus{}, err
	}
	slog.Info("bonus approved", "bonus_id", id, "amount", approved.Amount, "approved_by", caller.ID)
	return approved, nil
}
