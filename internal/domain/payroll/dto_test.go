package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitepay/sitepay-backend-go/internal/pkg/validator"
)

func validSiteRequest() ProcessSitePayrollRequest {
	return ProcessSitePayrollRequest{
		EmployeeID:     "0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
		PayPeriodStart: "2025-06-02",
		PayPeriodEnd:   "2025-06-07",
		WorkingDays:    5,
	}
}

func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	return verrs.ToMap()
}

func TestProcessSitePayrollRequest_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid request passes", func(t *testing.T) {
		req := validSiteRequest()
		assert.NoError(t, req.Validate())
	})

	t.Run("missing employee id", func(t *testing.T) {
		req := validSiteRequest()
		req.EmployeeID = ""
		fields := fieldsOf(t, req.Validate())
		assert.Contains(t, fields, "employee_id")
	})

	t.Run("malformed period dates", func(t *testing.T) {
		req := validSiteRequest()
		req.PayPeriodStart = "06/02/2025"
		fields := fieldsOf(t, req.Validate())
		assert.Contains(t, fields, "pay_period_start")
	})

	t.Run("period end before start", func(t *testing.T) {
		req := validSiteRequest()
		req.PayPeriodStart = "2025-06-07"
		req.PayPeriodEnd = "2025-06-02"
		fields := fieldsOf(t, req.Validate())
		assert.Contains(t, fields, "pay_period_end")
	})

	t.Run("negative deductions rejected", func(t *testing.T) {
		req := validSiteRequest()
		req.CashAdvance = decimal.NewFromInt(-1)
		req.OthersDeduction = decimal.NewFromInt(-5)
		fields := fieldsOf(t, req.Validate())
		assert.Contains(t, fields, "cash_advance")
		assert.Contains(t, fields, "others_deduction")
	})

	t.Run("negative daily overtime rejected", func(t *testing.T) {
		req := validSiteRequest()
		req.DailyOvertime = &DailyOvertime{Tuesday: decimal.NewFromInt(-2)}
		fields := fieldsOf(t, req.Validate())
		assert.Contains(t, fields, "daily_overtime")
	})
}

func TestEmergencyPairValidation(t *testing.T) {
	t.Parallel()

	amount := decimal.NewFromInt(1000)
	deduction := decimal.NewFromInt(200)
	zero := decimal.Zero

	t.Run("pair supplied together passes", func(t *testing.T) {
		req := validSiteRequest()
		req.EmergencyCashAdvance = &amount
		req.EmergencyDeduction = &deduction
		assert.NoError(t, req.Validate())
	})

	t.Run("advance without deduction rejected", func(t *testing.T) {
		req := validSiteRequest()
		req.EmergencyCashAdvance = &amount
		fields := fieldsOf(t, req.Validate())
		assert.Contains(t, fields, "emergency_cash_advance")
	})

	t.Run("deduction without advance rejected", func(t *testing.T) {
		req := validSiteRequest()
		req.EmergencyDeduction = &deduction
		fields := fieldsOf(t, req.Validate())
		assert.Contains(t, fields, "emergency_cash_advance")
	})

	t.Run("zero amounts rejected", func(t *testing.T) {
		req := validSiteRequest()
		req.EmergencyCashAdvance = &zero
		req.EmergencyDeduction = &zero
		fields := fieldsOf(t, req.Validate())
		assert.Contains(t, fields, "emergency_cash_advance")
		assert.Contains(t, fields, "emergency_deduction")
	})
}

func TestProcessOfficePayrollRequest_Validate(t *testing.T) {
	t.Parallel()

	valid := ProcessOfficePayrollRequest{
		EmployeeID:       "0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
		PayPeriodStart:   "2025-06-01",
		PayPeriodEnd:     "2025-06-30",
		TotalWorkingDays: 22,
	}
	assert.NoError(t, valid.Validate())

	tooManyDays := valid
	tooManyDays.TotalWorkingDays = 32
	fields := fieldsOf(t, tooManyDays.Validate())
	assert.Contains(t, fields, "total_working_days")

	negativeLate := valid
	negativeLate.TotalLateMinutes = -10
	fields = fieldsOf(t, negativeLate.Validate())
	assert.Contains(t, fields, "total_late_minutes")
}

func TestUpdatePayrollRequest_Validate(t *testing.T) {
	t.Parallel()

	paid := string(StatusPaid)
	bogus := "Archived"
	negative := decimal.NewFromInt(-50)

	valid := UpdatePayrollRequest{ID: "x", Status: &paid}
	assert.NoError(t, valid.Validate())

	invalidStatus := UpdatePayrollRequest{ID: "x", Status: &bogus}
	fields := fieldsOf(t, invalidStatus.Validate())
	assert.Contains(t, fields, "status")

	negativeAdvance := UpdatePayrollRequest{ID: "x", CashAdvance: &negative}
	fields = fieldsOf(t, negativeAdvance.Validate())
	assert.Contains(t, fields, "cash_advance")
}
