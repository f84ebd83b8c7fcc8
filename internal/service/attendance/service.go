package attendance

import (
	"context"

	"github.com/konveksi/payroll-backend-go/internal/domain/attendance"
	"github.com/konveksi/payroll-backend-go/internal/domain/employee"
	"github.com/konveksi/payroll-backend-go/internal/domain/user"
)

// AttendanceServiceImpl is read-only; attendance rows are written by the
// external collection process.
type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewAttendanceService(attendanceRepo attendance.AttendanceRepository, employeeRepo employee.EmployeeRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

func (s *AttendanceServiceImpl) List(ctx context.Context, caller user.Caller, req attendance.RangeRequest) ([]attendance.Attendance, error) {
	return s.list(ctx, caller, &req)
}

func (s *AttendanceServiceImpl) Summary(ctx context.Context, caller user.Caller, req attendance.RangeRequest) (attendance.SummaryResponse, error) {
	records, err := s.list(ctx, caller, &req)
	if err != nil {
		return attendance.SummaryResponse{}, err
	}

	start, end := req.Range()
	return attendance.SummaryResponse{
		EmployeeID: req.EmployeeID,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Summary:    attendance.Summarize(records, start, end),
	}, nil
}

func (s *AttendanceServiceImpl) list(ctx context.Context, caller user.Caller, req *attendance.RangeRequest) ([]attendance.Attendance, error) {
	if err := caller.Authorize(user.PermissionEmployeeView); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return nil, err
	}

	start, end := req.Range()
	return s.attendanceRepo.ListByEmployeeRange(ctx, req.EmployeeID, start, end)
}
