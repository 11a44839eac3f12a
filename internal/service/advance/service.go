package advance

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sitepay/sitepay-backend-go/internal/domain/advance"
	"github.com/sitepay/sitepay-backend-go/internal/pkg/database"
)

type AdvanceServiceImpl struct {
	tx          database.TxManager
	advanceRepo advance.AdvanceRepository
}

func NewAdvanceService(tx database.TxManager, advanceRepo advance.AdvanceRepository) advance.AdvanceService {
	return &AdvanceServiceImpl{
		tx:          tx,
		advanceRepo: advanceRepo,
	}
}

func (s *AdvanceServiceImpl) ActivePair(ctx context.Context, employeeID string) (advance.Pair, error) {
	pair, err := s.advanceRepo.GetActivePair(ctx, employeeID)
	if err != nil {
		if errors.Is(err, advance.ErrNoActiveAdvance) {
			return advance.Pair{}, nil
		}
		return advance.Pair{}, err
	}
	return pair, nil
}

func (s *AdvanceServiceImpl) OpenPair(ctx context.Context, employeeID string, advanceAmount, deductionAmount decimal.Decimal) (advance.Pair, error) {
	if !advanceAmount.IsPositive() || !deductionAmount.IsPositive() {
		return advance.Pair{}, advance.ErrInvalidAmount
	}

	var pair advance.Pair
	err := s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		var err error
		pair, err = s.advanceRepo.CreatePair(txCtx, employeeID, advanceAmount, deductionAmount)
		return err
	})
	if err != nil {
		return advance.Pair{}, err
	}

	return pair, nil
}

func (s *AdvanceServiceImpl) ApplyDeduction(ctx context.Context, employeeID string, amount decimal.Decimal) (advance.DeductionResult, error) {
	if amount.IsNegative() {
		return advance.DeductionResult{}, advance.ErrNegativeDeduction
	}

	var result advance.DeductionResult
	err := s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		// Row lock serializes concurrent runs for the same employee.
		pair, err := s.advanceRepo.GetActivePairForUpdate(txCtx, employeeID)
		if err != nil {
			return err
		}

		if amount.IsZero() {
			result = advance.DeductionResult{NewBalance: pair.Advance.RemainingBalance, Completed: false}
			return nil
		}

		newBalance := pair.Advance.RemainingBalance.Sub(amount)
		if newBalance.LessThanOrEqual(decimal.Zero) {
			if err := s.advanceRepo.CompletePair(txCtx, pair.Advance.ID); err != nil {
				return err
			}
			result = advance.DeductionResult{NewBalance: decimal.Zero, Completed: true}
			return nil
		}

		if err := s.advanceRepo.UpdateBalance(txCtx, pair.Advance.ID, newBalance); err != nil {
			return err
		}
		result = advance.DeductionResult{NewBalance: newBalance, Completed: false}
		return nil
	})
	if err != nil {
		return advance.DeductionResult{}, err
	}

	return result, nil
}

func (s *AdvanceServiceImpl) History(ctx context.Context, employeeID string) ([]advance.CashAdvanceResponse, error) {
	advances, err := s.advanceRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	result := make([]advance.CashAdvanceResponse, 0, len(advances))
	for _, ca := range advances {
		result = append(result, advance.CashAdvanceResponse{
			ID:               ca.ID,
			EmployeeID:       ca.EmployeeID,
			Amount:           ca.Amount,
			RemainingBalance: ca.RemainingBalance,
			Status:           string(ca.Status),
			CreatedAt:        ca.CreatedAt.Format(time.RFC3339),
		})
	}

	return result, nil
}
