package cron

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/konveksi/payroll-backend-go/internal/domain/payroll"
	"github.com/konveksi/payroll-backend-go/internal/domain/user"
)

const autoGenerateJobName = "auto_generate_payroll"

// PayrollJobs drafts the previous month's payroll period once a month.
type PayrollJobs struct {
	payrollService payroll.PayrollService
	day            int
	location       *time.Location
	now            func() time.Time
}

// NewPayrollJobs runs generation on the given day of the month, evaluated
// in loc (UTC when nil).
func NewPayrollJobs(payrollService payroll.PayrollService, day int, loc *time.Location) *PayrollJobs {
	if loc == nil {
		loc = time.UTC
	}
	return &PayrollJobs{
		payrollService: payrollService,
		day:            day,
		location:       loc,
		now:            time.Now,
	}
}

func (j *PayrollJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob(autoGenerateJobName, 1*time.Hour, j.AutoGeneratePreviousMonth)
}

// AutoGeneratePreviousMonth is a no-op outside the configured day. The job
// fires hourly, so an already existing period is the normal outcome after
// the first run of the day.
func (j *PayrollJobs) AutoGeneratePreviousMonth(ctx context.Context) error {
	today := j.now().In(j.location)
	if today.Day() != j.day {
		return nil
	}

	start, end := previousMonth(today)
	req := payroll.GeneratePayrollRequest{
		StartDate: start.Format("2006-01-02"),
		EndDate:   end.Format("2006-01-02"),
	}

	period, err := j.payrollService.GeneratePayroll(ctx, user.System(), req)
	if errors.Is(err, payroll.ErrPeriodAlreadyExists) {
		slog.Debug("Cron: payroll period already generated", "start_date", req.StartDate)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to auto-generate payroll for %s: %w", req.StartDate, err)
	}

	slog.Info("Cron: payroll period drafted",
		"period_id", period.ID,
		"name", period.Name,
		"payment_date", period.PaymentDate.Format("2006-01-02"),
	)
	return nil
}

func previousMonth(t time.Time) (time.Time, time.Time) {
	firstOfThisMonth := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	start := firstOfThisMonth.AddDate(0, -1, 0)
	end := firstOfThisMonth.AddDate(0, 0, -1)
	return start, end
}
