package advance

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitepay/sitepay-backend-go/internal/domain/advance"
)

// fakeTxManager runs the callback directly; the fake repository below is
// already atomic from the test's point of view.
type fakeTxManager struct{}

func (f *fakeTxManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeAdvanceRepo struct {
	advances   map[string]*advance.CashAdvance
	deductions map[string]*advance.EmergencyDeduction
}

func newFakeAdvanceRepo() *fakeAdvanceRepo {
	return &fakeAdvanceRepo{
		advances:   make(map[string]*advance.CashAdvance),
		deductions: make(map[string]*advance.EmergencyDeduction),
	}
}

func (r *fakeAdvanceRepo) activeAdvance(employeeID string) *advance.CashAdvance {
	for _, ca := range r.advances {
		if ca.EmployeeID == employeeID && ca.Status == advance.StatusActive {
			return ca
		}
	}
	return nil
}

func (r *fakeAdvanceRepo) deductionFor(advanceID string) *advance.EmergencyDeduction {
	for _, ed := range r.deductions {
		if ed.CashAdvanceID == advanceID {
			return ed
		}
	}
	return nil
}

func (r *fakeAdvanceRepo) GetActivePair(ctx context.Context, employeeID string) (advance.Pair, error) {
	ca := r.activeAdvance(employeeID)
	if ca == nil {
		return advance.Pair{}, advance.ErrNoActiveAdvance
	}
	caCopy := *ca
	edCopy := *r.deductionFor(ca.ID)
	return advance.Pair{Advance: &caCopy, Deduction: &edCopy}, nil
}

func (r *fakeAdvanceRepo) GetActivePairForUpdate(ctx context.Context, employeeID string) (advance.Pair, error) {
	return r.GetActivePair(ctx, employeeID)
}

func (r *fakeAdvanceRepo) CreatePair(ctx context.Context, employeeID string, advanceAmount, deductionAmount decimal.Decimal) (advance.Pair, error) {
	if r.activeAdvance(employeeID) != nil {
		return advance.Pair{}, advance.ErrActiveAdvanceExists
	}

	now := time.Now()
	ca := &advance.CashAdvance{
		ID:               uuid.NewString(),
		EmployeeID:       employeeID,
		Amount:           advanceAmount,
		RemainingBalance: advanceAmount,
		Status:           advance.StatusActive,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	ed := &advance.EmergencyDeduction{
		ID:            uuid.NewString(),
		EmployeeID:    employeeID,
		CashAdvanceID: ca.ID,
		Amount:        deductionAmount,
		Status:        advance.StatusActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	r.advances[ca.ID] = ca
	r.deductions[ed.ID] = ed

	caCopy := *ca
	edCopy := *ed
	return advance.Pair{Advance: &caCopy, Deduction: &edCopy}, nil
}

func (r *fakeAdvanceRepo) UpdateBalance(ctx context.Context, advanceID string, newBalance decimal.Decimal) error {
	ca, ok := r.advances[advanceID]
	if !ok || ca.Status != advance.StatusActive {
		return advance.ErrNoActiveAdvance
	}
	ca.RemainingBalance = newBalance
	return nil
}

func (r *fakeAdvanceRepo) CompletePair(ctx context.Context, advanceID string) error {
	ca, ok := r.advances[advanceID]
	if !ok || ca.Status != advance.StatusActive {
		return advance.ErrNoActiveAdvance
	}
	ca.RemainingBalance = decimal.Zero
	ca.Status = advance.StatusCompleted
	r.deductionFor(advanceID).Status = advance.StatusCompleted
	return nil
}

func (r *fakeAdvanceRepo) ListByEmployee(ctx context.Context, employeeID string) ([]advance.CashAdvance, error) {
	var result []advance.CashAdvance
	for _, ca := range r.advances {
		if ca.EmployeeID == employeeID {
			result = append(result, *ca)
		}
	}
	return result, nil
}

func newTestService() (advance.AdvanceService, *fakeAdvanceRepo) {
	repo := newFakeAdvanceRepo()
	return NewAdvanceService(&fakeTxManager{}, repo), repo
}

func TestOpenPair_RejectsNonPositiveAmounts(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.OpenPair(ctx, "emp-1", decimal.Zero, decimal.NewFromInt(100))
	assert.ErrorIs(t, err, advance.ErrInvalidAmount)

	_, err = svc.OpenPair(ctx, "emp-1", decimal.NewFromInt(500), decimal.NewFromInt(-100))
	assert.ErrorIs(t, err, advance.ErrInvalidAmount)
}

func TestOpenPair_AtMostOneActivePair(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.OpenPair(ctx, "emp-1", decimal.NewFromInt(1000), decimal.NewFromInt(200))
	require.NoError(t, err)

	_, err = svc.OpenPair(ctx, "emp-1", decimal.NewFromInt(500), decimal.NewFromInt(100))
	assert.ErrorIs(t, err, advance.ErrActiveAdvanceExists)

	// A different employee is unaffected.
	_, err = svc.OpenPair(ctx, "emp-2", decimal.NewFromInt(500), decimal.NewFromInt(100))
	assert.NoError(t, err)
}

func TestApplyDeduction_AmortizesToCompletion(t *testing.T) {
	t.Parallel()
	svc, repo := newTestService()
	ctx := context.Background()

	pair, err := svc.OpenPair(ctx, "emp-1", decimal.NewFromInt(1000), decimal.NewFromInt(600))
	require.NoError(t, err)
	require.True(t, pair.Advance.RemainingBalance.Equal(decimal.NewFromInt(1000)))

	result, err := svc.ApplyDeduction(ctx, "emp-1", decimal.NewFromInt(600))
	require.NoError(t, err)
	assert.True(t, result.NewBalance.Equal(decimal.NewFromInt(400)), "balance = %s", result.NewBalance)
	assert.False(t, result.Completed)

	result, err = svc.ApplyDeduction(ctx, "emp-1", decimal.NewFromInt(400))
	require.NoError(t, err)
	assert.True(t, result.NewBalance.IsZero(), "balance = %s", result.NewBalance)
	assert.True(t, result.Completed)

	// Both halves completed together.
	stored := repo.advances[pair.Advance.ID]
	assert.Equal(t, advance.StatusCompleted, stored.Status)
	assert.Equal(t, advance.StatusCompleted, repo.deductionFor(pair.Advance.ID).Status)

	// Nothing left to deduct against.
	_, err = svc.ApplyDeduction(ctx, "emp-1", decimal.NewFromInt(100))
	assert.ErrorIs(t, err, advance.ErrNoActiveAdvance)
}

func TestApplyDeduction_OverpaymentClampsToZero(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.OpenPair(ctx, "emp-1", decimal.NewFromInt(300), decimal.NewFromInt(500))
	require.NoError(t, err)

	result, err := svc.ApplyDeduction(ctx, "emp-1", decimal.NewFromInt(500))
	require.NoError(t, err)
	assert.True(t, result.NewBalance.IsZero(), "balance = %s", result.NewBalance)
	assert.True(t, result.Completed)
}

func TestApplyDeduction_ZeroIsNoOp(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.OpenPair(ctx, "emp-1", decimal.NewFromInt(1000), decimal.NewFromInt(200))
	require.NoError(t, err)

	result, err := svc.ApplyDeduction(ctx, "emp-1", decimal.Zero)
	require.NoError(t, err)
	assert.True(t, result.NewBalance.Equal(decimal.NewFromInt(1000)), "balance = %s", result.NewBalance)
	assert.False(t, result.Completed)
}

func TestApplyDeduction_RejectsNegativeAmount(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.ApplyDeduction(ctx, "emp-1", decimal.NewFromInt(-50))
	assert.ErrorIs(t, err, advance.ErrNegativeDeduction)
}

func TestApplyDeduction_BalanceMonotonicity(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.OpenPair(ctx, "emp-1", decimal.NewFromInt(1000), decimal.NewFromInt(150))
	require.NoError(t, err)

	previous := decimal.NewFromInt(1000)
	for i := 0; i < 10; i++ {
		result, err := svc.ApplyDeduction(ctx, "emp-1", decimal.NewFromInt(150))
		require.NoError(t, err)
		assert.True(t, result.NewBalance.LessThanOrEqual(previous), "balance increased: %s > %s", result.NewBalance, previous)
		assert.False(t, result.NewBalance.IsNegative(), "balance went negative: %s", result.NewBalance)
		previous = result.NewBalance
		if result.Completed {
			return
		}
	}
	t.Fatal("pair never completed")
}

func TestReopenAfterCompletion(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.OpenPair(ctx, "emp-1", decimal.NewFromInt(500), decimal.NewFromInt(500))
	require.NoError(t, err)

	result, err := svc.ApplyDeduction(ctx, "emp-1", decimal.NewFromInt(500))
	require.NoError(t, err)
	require.True(t, result.Completed)

	// Completed pair no longer blocks a new one.
	pair, err := svc.OpenPair(ctx, "emp-1", decimal.NewFromInt(800), decimal.NewFromInt(200))
	require.NoError(t, err)
	assert.True(t, pair.Advance.RemainingBalance.Equal(decimal.NewFromInt(800)))
}

func TestActivePair_ZeroValueWhenNoneActive(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService()
	ctx := context.Background()

	pair, err := svc.ActivePair(ctx, "emp-1")
	require.NoError(t, err)
	assert.Nil(t, pair.Advance)
	assert.Nil(t, pair.Deduction)
	assert.False(t, pair.Active())
}

func TestHistory_ListsAllAdvances(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.OpenPair(ctx, "emp-1", decimal.NewFromInt(100), decimal.NewFromInt(100))
		require.NoError(t, err)
		_, err = svc.ApplyDeduction(ctx, "emp-1", decimal.NewFromInt(100))
		require.NoError(t, err)
	}

	history, err := svc.History(ctx, "emp-1")
	require.NoError(t, err)
	require.Len(t, history, 3)
	for i, entry := range history {
		assert.Equal(t, string(advance.StatusCompleted), entry.Status, fmt.Sprintf("entry %d", i))
	}
}
