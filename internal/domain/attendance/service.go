package attendance

import (
	"context"

	"github.com/konveksi/payroll-backend-go/internal/domain/user"
)

type AttendanceService interface {
	List(ctx context.Context, caller user.Caller, req RangeRequest) ([]Attendance, error)
	Summary(ctx context.Context, caller user.Caller, req RangeRequest) (SummaryResponse, error)
}
