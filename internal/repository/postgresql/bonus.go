package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/konveksi/payroll-backend-go/internal/domain/bonus"
	"github.com/konveksi/payroll-backend-go/internal/pkg/database"
)

const bonusColumns = `id, employee_id, type, amount, period_month, period_year, reason, status,
	created_by, approved_by, approved_at, created_at, updated_at`

type bonusRepositoryImpl struct {
	db *database.DB
}

func NewBonusRepository(db *database.DB) bonus.BonusRepository {
	return &bonusRepositoryImpl{db: db}
}

func scanBonus(row pgx.Row) (bonus.Bonus, error) {
	var b bonus.Bonus
	err := row.Scan(
		&b.ID, &b.EmployeeID, &b.Type, &b.Amount, &b.PeriodMonth, &b.PeriodYear, &b.Reason, &b.Status,
		&b.CreatedBy, &b.ApprovedBy, &b.ApprovedAt, &b.CreatedAt, &b.UpdatedAt,
	)
	return b, err
}

func collectBonuses(rows pgx.Rows) ([]bonus.Bonus, error) {
	defer rows.Close()

	bonuses := []bonus.Bonus{}
	for rows.Next() {
		b, err := scanBonus(rows)
		if err != nil {
			return nil, err
		}
		bonuses = append(bonuses, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return bonuses, nil
}

// Create implements bonus.BonusRepository.
func (r *bonusRepositoryImpl) Create(ctx context.Context, b bonus.Bonus) (bonus.Bonus, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO bonuses (employee_id, type, amount, period_month, period_year, reason, status, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + bonusColumns

	created, err := scanBonus(q.QueryRow(ctx, query,
		b.EmployeeID, b.Type, b.Amount, b.PeriodMonth, b.PeriodYear, b.Reason, b.Status, b.CreatedBy,
	))
	if err != nil {
		return bonus.Bonus{}, fmt.Errorf("failed to create bonus: %w", err)
	}
	return created, nil
}

// GetByID implements bonus.BonusRepository.
func (r *bonusRepositoryImpl) GetByID(ctx context.Context, id string) (bonus.Bonus, error) {
	q := GetQuerier(ctx, r.db)

	b, err := scanBonus(q.QueryRow(ctx, `SELECT `+bonusColumns+` FROM bonuses WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return bonus.Bonus{}, bonus.ErrBonusNotFound
		}
		return bonus.Bonus{}, fmt.Errorf("failed to get bonus with id %s: %w", id, err)
	}
	return b, nil
}

// List implements bonus.BonusRepository.
func (r *bonusRepositoryImpl) List(ctx context.Context, filter bonus.BonusFilter) ([]bonus.Bonus, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"TRUE"}
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		conditions = append(conditions, fmt.Sprintf("employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.PeriodMonth != nil {
		conditions = append(conditions, fmt.Sprintf("period_month = $%d", argIdx))
		args = append(args, *filter.PeriodMonth)
		argIdx++
	}
	if filter.PeriodYear != nil {
		conditions = append(conditions, fmt.Sprintf("period_year = $%d", argIdx))
		args = append(args, *filter.PeriodYear)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *filter.Status)
	}

	query := fmt.Sprintf(`
		SELECT %s FROM bonuses
		WHERE %s
		ORDER BY period_year DESC, period_month DESC, created_at ASC
	`, bonusColumns, strings.Join(conditions, " AND "))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list bonuses: %w", err)
	}
	bonuses, err := collectBonuses(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to scan bonuses: %w", err)
	}
	return bonuses, nil
}

// ListByEmployeePeriod implements bonus.BonusRepository.
func (r *bonusRepositoryImpl) ListByEmployeePeriod(ctx context.Context, employeeID string, month, year int) ([]bonus.Bonus, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + bonusColumns + `
		FROM bonuses
		WHERE employee_id = $1 AND period_month = $2 AND period_year = $3
		ORDER BY created_at ASC
	`

	rows, err := q.Query(ctx, query, employeeID, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list bonuses for employee %s: %w", employeeID, err)
	}
	bonuses, err := collectBonuses(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to scan bonuses: %w", err)
	}
	return bonuses, nil
}

// Update implements bonus.BonusRepository.
func (r *bonusRepositoryImpl) Update(ctx context.Context, req bonus.UpdateBonusRequest) error {
	q := GetQuerier(ctx, r.db)

	updates := make(map[string]interface{})
	if req.Type != nil {
		updates["type"] = *req.Type
	}
	if req.Amount != nil {
		updates["amount"] = *req.Amount
	}
	if req.PeriodMonth != nil {
		updates["period_month"] = *req.PeriodMonth
	}
	if req.PeriodYear != nil {
		updates["period_year"] = *req.PeriodYear
	}
	if req.Reason != nil {
		if *req.Reason == "" {
			updates["reason"] = nil
		} else {
			updates["reason"] = *req.Reason
		}
	}

	if len(updates) == 0 {
		return nil
	}
	updates["updated_at"] = time.Now()

	set, args := setClauses(updates)
	sql := fmt.Sprintf("UPDATE bonuses SET %s WHERE id = $%d AND status = $%d", set, len(args)+1, len(args)+2)
	args = append(args, req.ID, bonus.StatusPending)

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to update bonus with id %s: %w", req.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return r.notPendingOrMissing(ctx, req.ID, bonus.ErrBonusNotPending)
	}
	return nil
}

// Delete implements bonus.BonusRepository.
func (r *bonusRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM bonuses WHERE id = $1 AND status = $2`, id, bonus.StatusPending)
	if err != nil {
		return fmt.Errorf("failed to delete bonus with id %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return r.notPendingOrMissing(ctx, id, bonus.ErrBonusNotPending)
	}
	return nil
}

// Approve implements bonus.BonusRepository.
func (r *bonusRepositoryImpl) Approve(ctx context.Context, id, approverID string, approvedAt time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE bonuses
		SET status = $1, approved_by = $2, approved_at = $3, updated_at = NOW()
		WHERE id = $4 AND status = $5
	`

	tag, err := q.Exec(ctx, query, bonus.StatusApproved, approverID, approvedAt, id, bonus.StatusPending)
	if err != nil {
		return fmt.Errorf("failed to approve bonus with id %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return r.notPendingOrMissing(ctx, id, bonus.ErrBonusAlreadyApproved)
	}
	return nil
}

// notPendingOrMissing resolves a zero-row conditional write into the right
// sentinel.
func (r *bonusRepositoryImpl) notPendingOrMissing(ctx context.Context, id string, notPending error) error {
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}
	return notPending
}
