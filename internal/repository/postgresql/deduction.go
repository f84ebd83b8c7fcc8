package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/konveksi/payroll-backend-go/internal/domain/deduction"
	"github.com/konveksi/payroll-backend-go/internal/pkg/database"
)

const deductionColumns = `id, employee_id, type, total_amount, remaining_amount, installment_per_period,
	status, notes, created_at, updated_at`

type deductionRepositoryImpl struct {
	db *database.DB
}

func NewDeductionRepository(db *database.DB) deduction.DeductionRepository {
	return &deductionRepositoryImpl{db: db}
}

func scanDeduction(row pgx.Row) (deduction.Deduction, error) {
	var d deduction.Deduction
	err := row.Scan(
		&d.ID, &d.EmployeeID, &d.Type, &d.TotalAmount, &d.RemainingAmount, &d.InstallmentPerPeriod,
		&d.Status, &d.Notes, &d.CreatedAt, &d.UpdatedAt,
	)
	return d, err
}

func collectDeductions(rows pgx.Rows) ([]deduction.Deduction, error) {
	defer rows.Close()

	deductions := []deduction.Deduction{}
	for rows.Next() {
		d, err := scanDeduction(rows)
		if err != nil {
			return nil, err
		}
		deductions = append(deductions, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return deductions, nil
}

// Create implements deduction.DeductionRepository.
func (r *deductionRepositoryImpl) Create(ctx context.Context, d deduction.Deduction) (deduction.Deduction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO deductions (employee_id, type, total_amount, remaining_amount, installment_per_period, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + deductionColumns

	created, err := scanDeduction(q.QueryRow(ctx, query,
		d.EmployeeID, d.Type, d.TotalAmount, d.RemainingAmount, d.InstallmentPerPeriod, d.Status, d.Notes,
	))
	if err != nil {
		return deduction.Deduction{}, fmt.Errorf("failed to create deduction: %w", err)
	}
	return created, nil
}

// GetByID implements deduction.DeductionRepository.
func (r *deductionRepositoryImpl) GetByID(ctx context.Context, id string) (deduction.Deduction, error) {
	q := GetQuerier(ctx, r.db)

	d, err := scanDeduction(q.QueryRow(ctx, `SELECT `+deductionColumns+` FROM deductions WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return deduction.Deduction{}, deduction.ErrDeductionNotFound
		}
		return deduction.Deduction{}, fmt.Errorf("failed to get deduction with id %s: %w", id, err)
	}
	return d, nil
}

// List implements deduction.DeductionRepository.
func (r *deductionRepositoryImpl) List(ctx context.Context, filter deduction.DeductionFilter) ([]deduction.Deduction, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"TRUE"}
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		conditions = append(conditions, fmt.Sprintf("employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *filter.Status)
	}

	query := fmt.Sprintf(`SELECT %s FROM deductions WHERE %s ORDER BY created_at DESC`,
		deductionColumns, strings.Join(conditions, " AND "))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list deductions: %w", err)
	}
	deductions, err := collectDeductions(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to scan deductions: %w", err)
	}
	return deductions, nil
}

// ListActiveByEmployee implements deduction.DeductionRepository.
func (r *deductionRepositoryImpl) ListActiveByEmployee(ctx context.Context, employeeID string) ([]deduction.Deduction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + deductionColumns + `
		FROM deductions
		WHERE employee_id = $1 AND status = $2
		ORDER BY created_at ASC
	`

	rows, err := q.Query(ctx, query, employeeID, deduction.StatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to list active deductions for employee %s: %w", employeeID, err)
	}
	deductions, err := collectDeductions(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to scan deductions: %w", err)
	}
	return deductions, nil
}

// Update implements deduction.DeductionRepository.
func (r *deductionRepositoryImpl) Update(ctx context.Context, req deduction.UpdateDeductionRequest) error {
	q := GetQuerier(ctx, r.db)

	updates := make(map[string]interface{})
	if req.InstallmentPerPeriod != nil {
		updates["installment_per_period"] = *req.InstallmentPerPeriod
	}
	if req.Notes != nil {
		if *req.Notes == "" {
			updates["notes"] = nil
		} else {
			updates["notes"] = *req.Notes
		}
	}

	if len(updates) == 0 {
		return nil
	}
	updates["updated_at"] = time.Now()

	set, args := setClauses(updates)
	sql := fmt.Sprintf("UPDATE deductions SET %s WHERE id = $%d", set, len(args)+1)
	args = append(args, req.ID)

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to update deduction with id %s: %w", req.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return deduction.ErrDeductionNotFound
	}
	return nil
}

// Delete implements deduction.DeductionRepository.
func (r *deductionRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM deductions WHERE id = $1 AND remaining_amount = total_amount`, id)
	if err != nil {
		return fmt.Errorf("failed to delete deduction with id %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return deduction.ErrDeductionAlreadyRepaid
	}
	return nil
}

// ApplyInstallment implements deduction.DeductionRepository. Must run inside
// a transaction for the row lock to hold until commit.
func (r *deductionRepositoryImpl) ApplyInstallment(ctx context.Context, id string, amount int64) (deduction.Deduction, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + deductionColumns + ` FROM deductions WHERE id = $1 AND status = $2 FOR UPDATE`

	d, err := scanDeduction(q.QueryRow(ctx, query, id, deduction.StatusActive))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return deduction.Deduction{}, deduction.ErrDeductionNotFound
		}
		return deduction.Deduction{}, fmt.Errorf("failed to lock deduction with id %s: %w", id, err)
	}

	d.ApplyInstallment(amount)

	err = q.QueryRow(ctx, `
		UPDATE deductions
		SET remaining_amount = $1, status = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING updated_at
	`, d.RemainingAmount, d.Status, d.ID).Scan(&d.UpdatedAt)
	if err != nil {
		return deduction.Deduction{}, fmt.Errorf("failed to apply installment to deduction with id %s: %w", id, err)
	}
	return d, nil
}
