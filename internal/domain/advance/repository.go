package advance

import (
	"context"

	"github.com/shopspring/decimal"
)

// AdvanceRepository defines data access for cash-advance/deduction pairs.
// Mutating methods are expected to run inside a caller-owned transaction so
// a payroll run's ledger work commits or rolls back as one unit.
type AdvanceRepository interface {
	// GetActivePair returns the employee's active pair, or ErrNoActiveAdvance.
	GetActivePair(ctx context.Context, employeeID string) (Pair, error)

	// GetActivePairForUpdate is GetActivePair with the advance row locked,
	// serializing concurrent payroll runs for the same employee.
	GetActivePairForUpdate(ctx context.Context, employeeID string) (Pair, error)

	// CreatePair inserts an advance and its deduction. A still-active pair
	// for the employee surfaces as ErrActiveAdvanceExists.
	CreatePair(ctx context.Context, employeeID string, advanceAmount, deductionAmount decimal.Decimal) (Pair, error)

	// UpdateBalance persists a new remaining balance on an active advance.
	UpdateBalance(ctx context.Context, advanceID string, newBalance decimal.Decimal) error

	// CompletePair clamps the advance balance to zero and marks both rows
	// completed.
	CompletePair(ctx context.Context, advanceID string) error

	// ListByEmployee returns the employee's advance history, newest first.
	ListByEmployee(ctx context.Context, employeeID string) ([]CashAdvance, error)
}
