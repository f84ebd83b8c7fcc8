package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/konveksi/payroll-backend-go/internal/domain/allowance"
	"github.com/konveksi/payroll-backend-go/internal/pkg/database"
)

const allowanceColumns = `id, employee_id, type, amount, calculation_method, is_active, created_at, updated_at`

type allowanceRepositoryImpl struct {
	db *database.DB
}

func NewAllowanceRepository(db *database.DB) allowance.AllowanceRepository {
	return &allowanceRepositoryImpl{db: db}
}

func scanAllowance(row pgx.Row) (allowance.Allowance, error) {
	var a allowance.Allowance
	err := row.Scan(&a.ID, &a.EmployeeID, &a.Type, &a.Amount, &a.CalculationMethod, &a.IsActive, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

// Create implements allowance.AllowanceRepository.
func (r *allowanceRepositoryImpl) Create(ctx context.Context, a allowance.Allowance) (allowance.Allowance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO allowances (employee_id, type, amount, calculation_method, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + allowanceColumns

	created, err := scanAllowance(q.QueryRow(ctx, query, a.EmployeeID, a.Type, a.Amount, a.CalculationMethod, a.IsActive))
	if err != nil {
		return allowance.Allowance{}, fmt.Errorf("failed to create allowance: %w", err)
	}
	return created, nil
}

// GetByID implements allowance.AllowanceRepository.
func (r *allowanceRepositoryImpl) GetByID(ctx context.Context, id string) (allowance.Allowance, error) {
	q := GetQuerier(ctx, r.db)

	a, err := scanAllowance(q.QueryRow(ctx, `SELECT `+allowanceColumns+` FROM allowances WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return allowance.Allowance{}, allowance.ErrAllowanceNotFound
		}
		return allowance.Allowance{}, fmt.Errorf("failed to get allowance with id %s: %w", id, err)
	}
	return a, nil
}

// ListByEmployee implements allowance.AllowanceRepository.
func (r *allowanceRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, activeOnly bool) ([]allowance.Allowance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + allowanceColumns + `
		FROM allowances
		WHERE employee_id = $1 AND (NOT $2 OR is_active)
		ORDER BY created_at ASC
	`

	rows, err := q.Query(ctx, query, employeeID, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list allowances for employee %s: %w", employeeID, err)
	}
	defer rows.Close()

	allowances := []allowance.Allowance{}
	for rows.Next() {
		a, err := scanAllowance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan allowance: %w", err)
		}
		allowances = append(allowances, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return allowances, nil
}

// Update implements allowance.AllowanceRepository.
func (r *allowanceRepositoryImpl) Update(ctx context.Context, req allowance.UpdateAllowanceRequest) error {
	q := GetQuerier(ctx, r.db)

	updates := make(map[string]interface{})
	if req.Type != nil {
		updates["type"] = *req.Type
	}
	if req.Amount != nil {
		updates["amount"] = *req.Amount
	}
	if req.CalculationMethod != nil {
		updates["calculation_method"] = *req.CalculationMethod
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if len(updates) == 0 {
		return nil
	}
	updates["updated_at"] = time.Now()

	set, args := setClauses(updates)
	sql := fmt.Sprintf("UPDATE allowances SET %s WHERE id = $%d", set, len(args)+1)
	args = append(args, req.ID)

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to update allowance with id %s: %w", req.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return allowance.ErrAllowanceNotFound
	}
	return nil
}

// Delete implements allowance.AllowanceRepository.
func (r *allowanceRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM allowances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete allowance with id %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return allowance.ErrAllowanceNotFound
	}
	return nil
}
