package advance

import "github.com/shopspring/decimal"

// DeductionResult reports the outcome of one amortization step.
type DeductionResult struct {
	NewBalance decimal.Decimal `json:"new_balance"`
	Completed  bool            `json:"completed"`
}

type CashAdvanceResponse struct {
	ID               string          `json:"id"`
	EmployeeID       string          `json:"employee_id"`
	Amount           decimal.Decimal `json:"amount"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
	Status           string          `json:"status"`
	CreatedAt        string          `json:"created_at"`
}

type PairResponse struct {
	Advance   *CashAdvanceResponse        `json:"advance,omitempty"`
	Deduction *EmergencyDeductionResponse `json:"deduction,omitempty"`
}

type EmergencyDeductionResponse struct {
	ID            string          `json:"id"`
	EmployeeID    string          `json:"employee_id"`
	CashAdvanceID string          `json:"cash_advance_id"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
}
