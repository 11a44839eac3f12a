package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestCalculateSite_FullWeekScenario(t *testing.T) {
	t.Parallel()

	got := CalculateSite(SiteCalcInput{
		DailyRate:  dec("500"),
		HourlyRate: dec("62.5"),
		Attendance: DailyAttendance{
			Monday: true, Tuesday: true, Wednesday: true, Thursday: true, Friday: true,
		},
		Overtime:        DailyOvertime{Monday: dec("2")},
		Late:            DailyLate{Tuesday: 30},
		CashAdvance:     dec("200"),
		OthersDeduction: decimal.Zero,
	})

	assert.True(t, got.BasicSalary.Equal(dec("2500.00")), "basic salary = %s", got.BasicSalary)
	assert.True(t, got.OvertimePay.Equal(dec("125.00")), "overtime pay = %s", got.OvertimePay)
	assert.True(t, got.LateDeduction.Equal(dec("31.25")), "late deduction = %s", got.LateDeduction)
	assert.True(t, got.GrossPay.Equal(dec("2625.00")), "gross pay = %s", got.GrossPay)
	assert.True(t, got.TotalDeductions.Equal(dec("231.25")), "total deductions = %s", got.TotalDeductions)
	assert.True(t, got.NetPay.Equal(dec("2393.75")), "net pay = %s", got.NetPay)
}

func TestCalculateOffice_MonthlyScenario(t *testing.T) {
	t.Parallel()

	got := CalculateOffice(OfficeCalcInput{
		DailyRate:          dec("800"),
		HourlyRate:         dec("100"),
		TotalWorkingDays:   22,
		TotalLateMinutes:   45,
		TotalOvertimeHours: dec("3"),
		CashAdvance:        dec("500"),
		OthersDeduction:    dec("100"),
	})

	assert.True(t, got.BasicSalary.Equal(dec("17600.00")), "basic salary = %s", got.BasicSalary)
	assert.True(t, got.OvertimePay.Equal(dec("300.00")), "overtime pay = %s", got.OvertimePay)
	assert.True(t, got.LateDeduction.Equal(dec("75.00")), "late deduction = %s", got.LateDeduction)
	assert.True(t, got.GrossPay.Equal(dec("17900.00")), "gross pay = %s", got.GrossPay)
	assert.True(t, got.TotalDeductions.Equal(dec("675.00")), "total deductions = %s", got.TotalDeductions)
	assert.True(t, got.NetPay.Equal(dec("17225.00")), "net pay = %s", got.NetPay)
}

// Office overtime pays the plain hourly rate. No premium multiplier.
func TestCalculateOffice_NoOvertimePremium(t *testing.T) {
	t.Parallel()

	got := CalculateOffice(OfficeCalcInput{
		DailyRate:          dec("800"),
		HourlyRate:         dec("100"),
		TotalWorkingDays:   0,
		TotalOvertimeHours: dec("4"),
	})

	assert.True(t, got.OvertimePay.Equal(dec("400.00")), "overtime pay = %s", got.OvertimePay)
}

// Overtime and lateness on a day marked absent still count; only the basic
// salary is gated by attendance.
func TestCalculateSite_OvertimeNotGatedByAttendance(t *testing.T) {
	t.Parallel()

	got := CalculateSite(SiteCalcInput{
		DailyRate:  dec("500"),
		HourlyRate: dec("62.5"),
		Attendance: DailyAttendance{},
		Overtime:   DailyOvertime{Saturday: dec("2")},
		Late:       DailyLate{Saturday: 60},
	})

	assert.True(t, got.BasicSalary.IsZero(), "basic salary = %s", got.BasicSalary)
	assert.True(t, got.OvertimePay.Equal(dec("125.00")), "overtime pay = %s", got.OvertimePay)
	assert.True(t, got.LateDeduction.Equal(dec("62.50")), "late deduction = %s", got.LateDeduction)
}

func TestCalculateSiteTotals_MatchesDailyPath(t *testing.T) {
	t.Parallel()

	daily := CalculateSite(SiteCalcInput{
		DailyRate:  dec("450"),
		HourlyRate: dec("56.25"),
		Attendance: DailyAttendance{Monday: true, Wednesday: true, Friday: true},
		Overtime:   DailyOvertime{Monday: dec("1.5"), Friday: dec("0.5")},
		Late:       DailyLate{Wednesday: 20},
	})
	totals := CalculateSiteTotals(dec("450"), dec("56.25"), 3, dec("2"), 20, decimal.Zero, decimal.Zero)

	assert.True(t, daily.BasicSalary.Equal(totals.BasicSalary))
	assert.True(t, daily.OvertimePay.Equal(totals.OvertimePay))
	assert.True(t, daily.LateDeduction.Equal(totals.LateDeduction))
	assert.True(t, daily.NetPay.Equal(totals.NetPay))
}

func TestCalculate_RoundingIdentities(t *testing.T) {
	t.Parallel()

	cases := []OfficeCalcInput{
		{DailyRate: dec("333.33"), HourlyRate: dec("41.67"), TotalWorkingDays: 21, TotalLateMinutes: 7, TotalOvertimeHours: dec("1.25"), CashAdvance: dec("99.99"), OthersDeduction: dec("0.01")},
		{DailyRate: dec("512.75"), HourlyRate: dec("64.09"), TotalWorkingDays: 26, TotalLateMinutes: 125, TotalOvertimeHours: dec("10.5"), CashAdvance: decimal.Zero, OthersDeduction: dec("250")},
		{DailyRate: dec("0"), HourlyRate: dec("0"), TotalWorkingDays: 0, TotalLateMinutes: 0, TotalOvertimeHours: decimal.Zero},
	}

	for _, in := range cases {
		got := CalculateOffice(in)

		for _, field := range []decimal.Decimal{got.BasicSalary, got.OvertimePay, got.LateDeduction, got.GrossPay, got.TotalDeductions, got.NetPay} {
			assert.LessOrEqual(t, int(field.Exponent())*-1, 2, "field %s has more than 2 decimal places", field)
		}
		assert.True(t, got.GrossPay.Equal(got.BasicSalary.Add(got.OvertimePay)), "gross identity broken: %s", got.GrossPay)
		assert.True(t, got.NetPay.Equal(got.GrossPay.Sub(got.TotalDeductions)), "net identity broken: %s", got.NetPay)
	}
}

func TestCalculate_ZeroDays(t *testing.T) {
	t.Parallel()

	got := CalculateSiteTotals(dec("500"), dec("62.5"), 0, decimal.Zero, 0, dec("100"), decimal.Zero)

	assert.True(t, got.BasicSalary.IsZero())
	assert.True(t, got.GrossPay.IsZero())
	assert.True(t, got.NetPay.Equal(dec("-100.00")), "net pay = %s", got.NetPay)
}

func TestRecomputeDeductions(t *testing.T) {
	t.Parallel()

	totalDeductions, netPay := RecomputeDeductions(dec("2625.00"), dec("31.25"), dec("350"), dec("50"))

	assert.True(t, totalDeductions.Equal(dec("431.25")), "total deductions = %s", totalDeductions)
	assert.True(t, netPay.Equal(dec("2193.75")), "net pay = %s", netPay)
}
