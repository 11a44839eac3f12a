package advance

import (
	"context"

	"github.com/shopspring/decimal"
)

// AdvanceService is the emergency-advance ledger. It owns the invariant that
// an employee has at most one active advance/deduction pair and that the two
// halves change status together.
type AdvanceService interface {
	// ActivePair returns the employee's active pair; a zero Pair (both
	// halves nil) when none is active.
	ActivePair(ctx context.Context, employeeID string) (Pair, error)

	// OpenPair creates a new active pair. Both amounts must be positive.
	// Returns ErrActiveAdvanceExists while an earlier pair is still active.
	OpenPair(ctx context.Context, employeeID string, advanceAmount, deductionAmount decimal.Decimal) (Pair, error)

	// ApplyDeduction amortizes the active advance by amount. A zero amount
	// succeeds without touching the ledger. When the balance would reach or
	// cross zero it is clamped to zero and both halves complete.
	ApplyDeduction(ctx context.Context, employeeID string, amount decimal.Decimal) (DeductionResult, error)

	// History lists the employee's advances, newest first.
	History(ctx context.Context, employeeID string) ([]CashAdvanceResponse, error)
}
