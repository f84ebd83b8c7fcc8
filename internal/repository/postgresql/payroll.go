package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/konveksi/payroll-backend-go/internal/domain/payroll"
	"github.com/konveksi/payroll-backend-go/internal/pkg/database"
)

const periodColumns = `id, name, start_date, end_date, payment_date, status, created_by, approved_by, approved_at, created_at, updated_at`

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

func scanPeriod(row pgx.Row) (payroll.Period, error) {
	var p payroll.Period
	err := row.Scan(
		&p.ID, &p.Name, &p.StartDate, &p.EndDate, &p.PaymentDate, &p.Status,
		&p.CreatedBy, &p.ApprovedBy, &p.ApprovedAt, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

// CreatePeriod implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) CreatePeriod(ctx context.Context, period payroll.Period) (payroll.Period, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_periods (name, start_date, end_date, payment_date, status, created_by)
		VALUES ($1, $2::date, $3::date, $4::date, $5, $6)
		RETURNING ` + periodColumns

	created, err := scanPeriod(q.QueryRow(ctx, query,
		period.Name,
		period.StartDate.Format("2006-01-02"),
		period.EndDate.Format("2006-01-02"),
		period.PaymentDate.Format("2006-01-02"),
		period.Status,
		period.CreatedBy,
	))
	if err != nil {
		if isUniqueViolation(err, "uk_payroll_periods_name") {
			return payroll.Period{}, payroll.ErrPeriodAlreadyExists
		}
		return payroll.Period{}, fmt.Errorf("failed to create payroll period: %w", err)
	}
	return created, nil
}

// GetPeriodByID implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetPeriodByID(ctx context.Context, id string) (payroll.Period, error) {
	q := GetQuerier(ctx, r.db)

	p, err := scanPeriod(q.QueryRow(ctx, `SELECT `+periodColumns+` FROM payroll_periods WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Period{}, payroll.ErrPeriodNotFound
		}
		return payroll.Period{}, fmt.Errorf("failed to get payroll period with id %s: %w", id, err)
	}
	return p, nil
}

// ExistsPeriodByName implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) ExistsPeriodByName(ctx context.Context, name string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM payroll_periods WHERE name = $1)`, name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check payroll period name: %w", err)
	}
	return exists, nil
}

// ListPeriods implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) ListPeriods(ctx context.Context, filter payroll.PeriodFilter) ([]payroll.Period, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := "TRUE"
	args := []interface{}{}
	if filter.Status != nil && *filter.Status != "" {
		where = "status = $1"
		args = append(args, *filter.Status)
	}

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM payroll_periods WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count payroll periods: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s FROM payroll_periods
		WHERE %s
		ORDER BY start_date DESC
		LIMIT $%d OFFSET $%d
	`, periodColumns, where, len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset())

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payroll periods: %w", err)
	}
	defer rows.Close()

	periods := []payroll.Period{}
	for rows.Next() {
		p, err := scanPeriod(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan payroll period: %w", err)
		}
		periods = append(periods, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return periods, total, nil
}

// UpdatePeriodStatus implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) UpdatePeriodStatus(ctx context.Context, id string, from, to payroll.PeriodStatus, approverID *string, approvedAt *time.Time) (payroll.Period, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_periods
		SET status = $1,
			approved_by = COALESCE($2, approved_by),
			approved_at = COALESCE($3, approved_at),
			updated_at = NOW()
		WHERE id = $4 AND status = $5
		RETURNING ` + periodColumns

	updated, err := scanPeriod(q.QueryRow(ctx, query, to, approverID, approvedAt, id, from))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if _, getErr := r.GetPeriodByID(ctx, id); getErr != nil {
				return payroll.Period{}, getErr
			}
			return payroll.Period{}, payroll.ErrInvalidStatusTransition
		}
		return payroll.Period{}, fmt.Errorf("failed to update status for payroll period with id %s: %w", id, err)
	}
	return updated, nil
}

// CreateEntries implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) CreateEntries(ctx context.Context, periodID string, entries []payroll.Entry) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_entries (
			period_id, employee_id, total_work_days, daily_rate, base_salary, total_allowances,
			total_overtime, total_bonuses, gross_salary, total_deductions, net_salary,
			allowance_details, overtime_details, bonus_details, deduction_details
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	for _, e := range entries {
		details, err := marshalEntryDetails(e)
		if err != nil {
			return fmt.Errorf("failed to encode details for employee %s: %w", e.EmployeeID, err)
		}

		_, err = q.Exec(ctx, query,
			periodID, e.EmployeeID, e.TotalWorkDays, e.DailyRate, e.BaseSalary, e.TotalAllowances,
			e.TotalOvertime, e.TotalBonuses, e.GrossSalary, e.TotalDeductions, e.NetSalary,
			details[0], details[1], details[2], details[3],
		)
		if err != nil {
			return fmt.Errorf("failed to insert payroll entry for employee %s: %w", e.EmployeeID, err)
		}
	}
	return nil
}

func marshalEntryDetails(e payroll.Entry) ([4][]byte, error) {
	var out [4][]byte
	for i, v := range []interface{}{e.AllowanceDetails, e.OvertimeDetails, e.BonusDetails, e.DeductionDetails} {
		b, err := json.Marshal(v)
		if err != nil {
			return out, err
		}
		out[i] = b
	}
	return out, nil
}

// ListEntries implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) ListEntries(ctx context.Context, periodID string) ([]payroll.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT pe.id, pe.period_id, pe.employee_id, pe.total_work_days, pe.daily_rate, pe.base_salary,
			pe.total_allowances, pe.total_overtime, pe.total_bonuses, pe.gross_salary,
			pe.total_deductions, pe.net_salary,
			pe.allowance_details, pe.overtime_details, pe.bonus_details, pe.deduction_details,
			pe.created_at, e.name, e.nik
		FROM payroll_entries pe
		JOIN employees e ON e.id = pe.employee_id
		WHERE pe.period_id = $1
		ORDER BY e.nik ASC
	`

	rows, err := q.Query(ctx, query, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll entries for period %s: %w", periodID, err)
	}
	defer rows.Close()

	entries := []payroll.Entry{}
	for rows.Next() {
		var e payroll.Entry
		var allowances, overtime, bonuses, deductionsJS []byte
		err := rows.Scan(
			&e.ID, &e.PeriodID, &e.EmployeeID, &e.TotalWorkDays, &e.DailyRate, &e.BaseSalary,
			&e.TotalAllowances, &e.TotalOvertime, &e.TotalBonuses, &e.GrossSalary,
			&e.TotalDeductions, &e.NetSalary,
			&allowances, &overtime, &bonuses, &deductionsJS,
			&e.CreatedAt, &e.EmployeeName, &e.EmployeeNIK,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll entry: %w", err)
		}
		if err := unmarshalEntryDetails(&e, allowances, overtime, bonuses, deductionsJS); err != nil {
			return nil, fmt.Errorf("failed to decode details for entry %s: %w", e.ID, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

func unmarshalEntryDetails(e *payroll.Entry, allowances, overtime, bonuses, deductions []byte) error {
	if err := json.Unmarshal(allowances, &e.AllowanceDetails); err != nil {
		return err
	}
	if err := json.Unmarshal(overtime, &e.OvertimeDetails); err != nil {
		return err
	}
	if err := json.Unmarshal(bonuses, &e.BonusDetails); err != nil {
		return err
	}
	return json.Unmarshal(deductions, &e.DeductionDetails)
}

// GetPeriodTotals implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetPeriodTotals(ctx context.Context, periodID string) (payroll.Totals, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*),
			COALESCE(SUM(base_salary), 0)::bigint,
			COALESCE(SUM(total_allowances), 0)::bigint,
			COALESCE(SUM(total_overtime), 0)::bigint,
			COALESCE(SUM(total_bonuses), 0)::bigint,
			COALESCE(SUM(gross_salary), 0)::bigint,
			COALESCE(SUM(total_deductions), 0)::bigint,
			COALESCE(SUM(net_salary), 0)::bigint
		FROM payroll_entries
		WHERE period_id = $1
	`

	var t payroll.Totals
	err := q.QueryRow(ctx, query, periodID).Scan(
		&t.EmployeeCount, &t.BaseSalary, &t.Allowances, &t.Overtime,
		&t.Bonuses, &t.GrossSalary, &t.Deductions, &t.NetSalary,
	)
	if err != nil {
		return payroll.Totals{}, fmt.Errorf("failed to sum payroll entries for period %s: %w", periodID, err)
	}
	return t, nil
}
