package deduction

import (
	"context"
	"log/slog"
	"strings"

	"github.com/konveksi/payroll-backend-go/internal/domain/deduction"
	"github.com/konveksi/payroll-backend-go/internal/domain/employee"
	"github.com/konveksi/payroll-backend-go/internal/domain/user"
)

type DeductionServiceImpl struct {
	deductionRepo deduction.DeductionRepository
	employeeRepo  employee.EmployeeRepository
}

func NewDeductionService(deductionRepo deduction.DeductionRepository, employeeRepo employee.EmployeeRepository) deduction.DeductionService {
	return &DeductionServiceImpl{
		deductionRepo: deductionRepo,
		employeeRepo:  employeeRepo,
	}
}

// Create opens a kasbon with the full amount outstanding.
func (s *DeductionServiceImpl) Create(ctx context.Context, caller user.Caller, req deduction.CreateDeductionRequest) (deduction.Deduction, error) {
	if err := caller.Authorize(user.PermissionCompensationManage); err != nil {
		return deduction.Deduction{}, err
	}
	if err := req.Validate(); err != nil {
		return deduction.Deduction{}, err
	}
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return deduction.Deduction{}, err
	}

	created, err := s.deductionRepo.Create(ctx, deduction.Deduction{
		EmployeeID:           req.EmployeeID,
		Type:                 strings.TrimSpace(req.Type),
		TotalAmount:          req.TotalAmount,
		RemainingAmount:      req.TotalAmount,
		InstallmentPerPeriod: req.InstallmentPerPeriod,
		Status:               deduction.StatusActive,
		Notes:                req.Notes,
	})
	if err != nil {
		return deduction.Deduction{}, err
	}

	slog.Info("deduction created",
		"deduction_id", created.ID,
		"employee_id", created.EmployeeID,
		"total", created.TotalAmount,
		"installment", created.InstallmentPerPeriod,
	)
	return created, nil
}

func (s *DeductionServiceImpl) Get(ctx context.Context, caller user.Caller, id string) (deduction.Deduction, error) {
	if err := caller.Authorize(user.PermissionCompensationView); err != nil {
		return deduction.Deduction{}, err
	}
	return s.deductionRepo.GetByID(ctx, id)
}

func (s *DeductionServiceImpl) List(ctx context.Context, caller user.Caller, filter deduction.DeductionFilter) ([]deduction.Deduction, error) {
	if err := caller.Authorize(user.PermissionCompensationView); err != nil {
		return nil, err
	}
	return s.deductionRepo.List(ctx, filter)
}

// Update changes the installment or notes of an active kasbon. The balance
// only moves through payroll approval.
func (s *DeductionServiceImpl) Update(ctx context.Context, caller user.Caller, req deduction.UpdateDeductionRequest) (deduction.Deduction, error) {
	if err := caller.Authorize(user.PermissionCompensationManage); err != nil {
		return deduction.Deduction{}, err
	}
	if err := req.Validate(); err != nil {
		return deduction.Deduction{}, err
	}

	current, err := s.deductionRepo.GetByID(ctx, req.ID)
	if err != nil {
		return deduction.Deduction{}, err
	}
	if current.Status != deduction.StatusActive {
		return deduction.Deduction{}, deduction.ErrDeductionNotActive
	}

	if err := s.deductionRepo.Update(ctx, req); err != nil {
		return deduction.Deduction{}, err
	}
	return s.deductionRepo.GetByID(ctx, req.ID)
}

func (s *DeductionServiceImpl) Delete(ctx context.Context, caller user.Caller, id string) error {
	if err := caller.Authorize(user.PermissionCompensationManage); err != nil {
		return err
	}
	if err := s.deductionRepo.Delete(ctx, id); err != nil {
		return err
	}
	slog.Info("deduction deleted", "deduction_id", id, "deleted_by", caller.ID)
	return nil
}
