package allowance

import (
	"context"
	"log/slog"
	"strings"

	"github.com/konveksi/payroll-backend-go/internal/domain/allowance"
	"github.com/konveksi/payroll-backend-go/internal/domain/employee"
	"github.com/konveksi/payroll-backend-go/internal/domain/user"
)

type AllowanceServiceImpl struct {
	allowanceRepo allowance.AllowanceRepository
	employeeRepo  employee.EmployeeRepository
}

func NewAllowanceService(allowanceRepo allowance.AllowanceRepository, employeeRepo employee.EmployeeRepository) allowance.AllowanceService {
	return &AllowanceServiceImpl{
		allowanceRepo: allowanceRepo,
		employeeRepo:  employeeRepo,
	}
}

func (s *AllowanceServiceImpl) Create(ctx context.Context, caller user.Caller, req allowance.CreateAllowanceRequest) (allowance.Allowance, error) {
	if err := caller.Authorize(user.PermissionCompensationManage); err != nil {
		return allowance.Allowance{}, err
	}
	if err := req.Validate(); err != nil {
		return allowance.Allowance{}, err
	}
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return allowance.Allowance{}, err
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	created, err := s.allowanceRepo.Create(ctx, allowance.Allowance{
		EmployeeID:        req.EmployeeID,
		Type:              strings.TrimSpace(req.Type),
		Amount:            req.Amount,
		CalculationMethod: allowance.CalculationMethod(req.CalculationMethod),
		IsActive:          isActive,
	})
	if err != nil {
		return allowance.Allowance{}, err
	}

	slog.Info("allowance created", "allowance_id", created.ID, "employee_id", created.EmployeeID, "type", created.Type)
	return created, nil
}

func (s *AllowanceServiceImpl) ListByEmployee(ctx context.Context, caller user.Caller, employeeID string) ([]allowance.Allowance, error) {
	if err := caller.Authorize(user.PermissionCompensationView); err != nil {
		return nil, err
	}
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}
	return s.allowanceRepo.ListByEmployee(ctx, employeeID, false)
}

func (s *AllowanceServiceImpl) Update(ctx context.Context, caller user.Caller, req allowance.UpdateAllowanceRequest) (allowance.Allowance, error) {
	if err := caller.Authorize(user.PermissionCompensationManage); err != nil {
		return allowance.Allowance{}, err
	}
	if err := req.Validate(); err != nil {
		return allowance.Allowance{}, err
	}

	if err := s.allowanceRepo.Update(ctx, req); err != nil {
		return allowance.Allowance{}, err
	}
	return s.allowanceRepo.GetByID(ctx, req.ID)
}

func (s *AllowanceServiceImpl) Delete(ctx context.Context, caller user.Caller, id string) error {
	if err := caller.Authorize(user.PermissionCompensationManage); err != nil {
		return err
	}
	if err := s.allowanceRepo.Delete(ctx, id); err != nil {
		return err
	}
	slog.Info("allowance deleted", "allowance_id", id, "deleted_by", caller.ID)
	return nil
}
