package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// ListByEmployeeRange returns records with start <= date <= end, oldest first.
	ListByEmployeeRange(ctx context.Context, employeeID string, start, end time.Time) ([]Attendance, error)
}
