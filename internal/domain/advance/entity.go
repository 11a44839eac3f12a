package advance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status enum shared by both halves of a pair. A pair is created active and
// flips to completed exactly once, when amortization drives the balance to
// zero. Completed pairs are never reactivated.
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

// CashAdvance is the lump sum advanced to an employee (ECA). RemainingBalance
// starts at Amount and only ever decreases, clamped at zero.
type CashAdvance struct {
	ID               string
	EmployeeID       string
	Amount           decimal.Decimal
	RemainingBalance decimal.Decimal
	Status           Status
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// EmergencyDeduction is the per-period amount withheld against its cash
// advance (ED). Amount never changes after creation; only Status does.
type EmergencyDeduction struct {
	ID            string
	EmployeeID    string
	CashAdvanceID string
	Amount        decimal.Decimal
	Status        Status
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Pair bundles an advance with its deduction. The two are created together
// and completed together; one is never active without the other.
type Pair struct {
	Advance   *CashAdvance
	Deduction *EmergencyDeduction
}

func (p Pair) Active() bool {
	return p.Advance != nil && p.Advance.Status == StatusActive
}
