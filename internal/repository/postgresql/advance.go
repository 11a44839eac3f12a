package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/sitepay/sitepay-backend-go/internal/domain/advance"
	"github.com/sitepay/sitepay-backend-go/internal/pkg/database"
)

type advanceRepository struct {
	db *database.DB
}

func NewAdvanceRepository(db *database.DB) advance.AdvanceRepository {
	return &advanceRepository{db: db}
}

func (r *advanceRepository) GetActivePair(ctx context.Context, employeeID string) (advance.Pair, error) {
	return r.getActivePair(ctx, employeeID, false)
}

func (r *advanceRepository) GetActivePairForUpdate(ctx context.Context, employeeID string) (advance.Pair, error) {
	return r.getActivePair(ctx, employeeID, true)
}

func (r *advanceRepository) getActivePair(ctx context.Context, employeeID string, forUpdate bool) (advance.Pair, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, amount, remaining_balance, status, created_at, updated_at
		FROM cash_advances
		WHERE employee_id = $1 AND status = 'active'
	`
	if forUpdate {
		query += " FOR UPDATE"
	}

	var ca advance.CashAdvance
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&ca.ID, &ca.EmployeeID, &ca.Amount, &ca.RemainingBalance, &ca.Status, &ca.CreatedAt, &ca.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return advance.Pair{}, advance.ErrNoActiveAdvance
		}
		return advance.Pair{}, fmt.Errorf("failed to get active cash advance: %w", err)
	}

	var ed advance.EmergencyDeduction
	err = q.QueryRow(ctx, `
		SELECT id, employee_id, cash_advance_id, amount, status, created_at, updated_at
		FROM emergency_deductions
		WHERE cash_advance_id = $1
	`, ca.ID).Scan(
		&ed.ID, &ed.EmployeeID, &ed.CashAdvanceID, &ed.Amount, &ed.Status, &ed.CreatedAt, &ed.UpdatedAt,
	)
	if err != nil {
		return advance.Pair{}, fmt.Errorf("failed to get paired emergency deduction: %w", err)
	}

	return advance.Pair{Advance: &ca, Deduction: &ed}, nil
}

func (r *advanceRepository) CreatePair(ctx context.Context, employeeID string, advanceAmount, deductionAmount decimal.Decimal) (advance.Pair, error) {
	q := database.GetQuerier(ctx, r.db)

	var ca advance.CashAdvance
	err := q.QueryRow(ctx, `
		INSERT INTO cash_advances (employee_id, amount, remaining_balance, status)
		VALUES ($1, $2, $2, 'active')
		RETURNING id, employee_id, amount, remaining_balance, status, created_at, updated_at
	`, employeeID, advanceAmount).Scan(
		&ca.ID, &ca.EmployeeID, &ca.Amount, &ca.RemainingBalance, &ca.Status, &ca.CreatedAt, &ca.UpdatedAt,
	)
	if err != nil {
		// Partial unique index on (employee_id) WHERE status = 'active'.
		if strings.Contains(err.Error(), "uq_cash_advances_active_employee") {
			return advance.Pair{}, advance.ErrActiveAdvanceExists
		}
		return advance.Pair{}, fmt.Errorf("failed to create cash advance: %w", err)
	}

	var ed advance.EmergencyDeduction
	err = q.QueryRow(ctx, `
		INSERT INTO emergency_deductions (employee_id, cash_advance_id, amount, status)
		VALUES ($1, $2, $3, 'active')
		RETURNING id, employee_id, cash_advance_id, amount, status, created_at, updated_at
	`, employeeID, ca.ID, deductionAmount).Scan(
		&ed.ID, &ed.EmployeeID, &ed.CashAdvanceID, &ed.Amount, &ed.Status, &ed.CreatedAt, &ed.UpdatedAt,
	)
	if err != nil {
		return advance.Pair{}, fmt.Errorf("failed to create emergency deduction: %w", err)
	}

	return advance.Pair{Advance: &ca, Deduction: &ed}, nil
}

func (r *advanceRepository) UpdateBalance(ctx context.Context, advanceID string, newBalance decimal.Decimal) error {
	q := database.GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE cash_advances
		SET remaining_balance = $2, updated_at = NOW()
		WHERE id = $1 AND status = 'active'
	`, advanceID, newBalance)
	if err != nil {
		return fmt.Errorf("failed to update cash advance balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return advance.ErrNoActiveAdvance
	}

	return nil
}

func (r *advanceRepository) CompletePair(ctx context.Context, advanceID string) error {
	q := database.GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE cash_advances
		SET remaining_balance = 0, status = 'completed', updated_at = NOW()
		WHERE id = $1 AND status = 'active'
	`, advanceID)
	if err != nil {
		return fmt.Errorf("failed to complete cash advance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return advance.ErrNoActiveAdvance
	}

	_, err = q.Exec(ctx, `
		UPDATE emergency_deductions
		SET status = 'completed', updated_at = NOW()
		WHERE cash_advance_id = $1 AND status = 'active'
	`, advanceID)
	if err != nil {
		return fmt.Errorf("failed to complete emergency deduction: %w", err)
	}

	return nil
}

func (r *advanceRepository) ListByEmployee(ctx context.Context, employeeID string) ([]advance.CashAdvance, error) {
	q := database.GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, employee_id, amount, remaining_balance, status, created_at, updated_at
		FROM cash_advances
		WHERE employee_id = $1
		ORDER BY created_at DESC
	`, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cash advances: %w", err)
	}
	defer rows.Close()

	var advances []advance.CashAdvance
	for rows.Next() {
		var ca advance.CashAdvance
		if err := rows.Scan(
			&ca.ID, &ca.EmployeeID, &ca.Amount, &ca.RemainingBalance, &ca.Status, &ca.CreatedAt, &ca.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan cash advance: %w", err)
		}
		advances = append(advances, ca)
	}

	return advances, rows.Err()
}
