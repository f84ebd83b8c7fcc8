package servicetest

import (
	"context"
	"sort"
	"time"

	"github.com/konveksi/payroll-backend-go/internal/domain/attendance"
)

type AttendanceRepo struct {
	Records []attendance.Attendance
}

func (r *AttendanceRepo) ListByEmployeeRange(_ context.Context, employeeID string, start, end time.Time) ([]attendance.Attendance, error) {
	out := []attendance.Attendance{}
	for _, rec := range r.Records {
		if rec.EmployeeID != employeeID || rec.Date.Before(start) || rec.Date.After(end) {
			continue
		}
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

var _ attendance.AttendanceRepository = (*AttendanceRepo)(nil)
