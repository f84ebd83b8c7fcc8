package employee

import (
	"context"
	"log/slog"
	"strings"

	"github.com/konveksi/payroll-backend-go/internal/domain/employee"
	"github.com/konveksi/payroll-backend-go/internal/domain/user"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, caller user.Caller, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	if err := caller.Authorize(user.PermissionEmployeeManage); err != nil {
		return employee.Employee{}, err
	}
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	nik := strings.TrimSpace(req.NIK)
	exists, err := s.employeeRepo.ExistsByNIK(ctx, nik)
	if err != nil {
		return employee.Employee{}, err
	}
	if exists {
		return employee.Employee{}, employee.ErrNIKExists
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		NIK:         nik,
		Name:        strings.TrimSpace(req.Name),
		Department:  strings.TrimSpace(req.Department),
		Position:    strings.TrimSpace(req.Position),
		DailyRate:   req.DailyRate,
		JoinDate:    req.ParsedJoinDate(),
		BankAccount: req.BankAccount,
		Status:      employee.StatusActive,
	})
	if err != nil {
		return employee.Employee{}, err
	}

	slog.Info("employee created", "employee_id", created.ID, "nik", created.NIK, "created_by", caller.ID)
	return created, nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, caller user.Caller, id string) (employee.Employee, error) {
	if err := caller.Authorize(user.PermissionEmployeeView); err != nil {
		return employee.Employee{}, err
	}
	return s.employeeRepo.GetByID(ctx, id)
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, caller user.Caller, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	if err := caller.Authorize(user.PermissionEmployeeView); err != nil {
		return employee.ListEmployeeResponse{}, err
	}
	filter.Normalize()

	employees, total, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeeResponse{}, err
	}
	return employee.ListEmployeeResponse{
		Data:       employees,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, caller user.Caller, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	if err := caller.Authorize(user.PermissionEmployeeManage); err != nil {
		return employee.Employee{}, err
	}
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	if err := s.employeeRepo.Update(ctx, req); err != nil {
		return employee.Employee{}, err
	}
	return s.employeeRepo.GetByID(ctx, req.ID)
}

// Deactivate implements employee.EmployeeService. Employees are never
// deleted; past payroll entries keep referencing them.
func (s *EmployeeServiceImpl) Deactivate(ctx context.Context, caller user.Caller, id string) error {
	if err := caller.Authorize(user.PermissionEmployeeManage); err != nil {
		return err
	}

	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !emp.IsActive() {
		return employee.ErrEmployeeAlreadyInactive
	}

	if err := s.employeeRepo.UpdateStatus(ctx, id, employee.StatusInactive); err != nil {
		return err
	}
	slog.Info("employee deactivated", "employee_id", id, "nik", emp.NIK, "deactivated_by", caller.ID)
	return nil
}
