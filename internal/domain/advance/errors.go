package advance

import "errors"

var (
	ErrActiveAdvanceExists = errors.New("employee already has an active cash advance")
	ErrNoActiveAdvance     = errors.New("employee has no active cash advance")
	ErrAdvanceNotFound     = errors.New("cash advance not found")
	ErrInvalidAmount       = errors.New("advance and deduction amounts must be greater than zero")
	ErrNegativeDeduction   = errors.New("deduction amount must be non-negative")
)
