package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/konveksi/payroll-backend-go/internal/domain/attendance"
	"github.com/konveksi/payroll-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// ListByEmployeeRange implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByEmployeeRange(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, status, deficit_hours, overtime_hours
		FROM attendances
		WHERE employee_id = $1 AND date BETWEEN $2::date AND $3::date
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, start.Format("2006-01-02"), end.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance for employee %s: %w", employeeID, err)
	}
	defer rows.Close()

	records := []attendance.Attendance{}
	for rows.Next() {
		var rec attendance.Attendance
		if err := rows.Scan(&rec.ID, &rec.EmployeeID, &rec.Date, &rec.Status, &rec.DeficitHours, &rec.OvertimeHours); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
