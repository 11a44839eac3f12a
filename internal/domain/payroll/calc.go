package payroll

import "github.com/shopspring/decimal"

var sixty = decimal.NewFromInt(60)

// Breakdown holds the six computed monetary fields of a payroll run, each
// rounded to two decimal places.
type Breakdown struct {
	BasicSalary     decimal.Decimal
	OvertimePay     decimal.Decimal
	LateDeduction   decimal.Decimal
	GrossPay        decimal.Decimal
	TotalDeductions decimal.Decimal
	NetPay          decimal.Decimal
}

type SiteCalcInput struct {
	DailyRate       decimal.Decimal
	HourlyRate      decimal.Decimal
	Attendance      DailyAttendance
	Overtime        DailyOvertime
	Late            DailyLate
	CashAdvance     decimal.Decimal
	OthersDeduction decimal.Decimal
}

type OfficeCalcInput struct {
	DailyRate          decimal.Decimal
	HourlyRate         decimal.Decimal
	TotalWorkingDays   int
	TotalLateMinutes   int
	TotalOvertimeHours decimal.Decimal
	CashAdvance        decimal.Decimal
	OthersDeduction    decimal.Decimal
}

// CalculateSite computes the pay breakdown for a site employee from the
// per-weekday inputs. Overtime and lateness are summed across all six days
// regardless of whether attendance marks the day present; only the basic
// salary is gated by attendance.
func CalculateSite(in SiteCalcInput) Breakdown {
	return compute(
		in.DailyRate, in.HourlyRate,
		in.Attendance.Count(),
		in.Overtime.Total(),
		decimal.NewFromInt(int64(in.Late.Total())),
		in.CashAdvance, in.OthersDeduction,
	)
}

// CalculateSiteTotals computes the site breakdown from aggregate totals, for
// submissions that carry no per-weekday detail.
func CalculateSiteTotals(dailyRate, hourlyRate decimal.Decimal, workingDays int, overtimeHours decimal.Decimal, lateMinutes int, cashAdvance, othersDeduction decimal.Decimal) Breakdown {
	return compute(dailyRate, hourlyRate, workingDays, overtimeHours, decimal.NewFromInt(int64(lateMinutes)), cashAdvance, othersDeduction)
}

// CalculateOffice computes the pay breakdown for an office employee from
// monthly aggregates. Overtime pays the plain hourly rate; no premium
// multiplier is applied.
func CalculateOffice(in OfficeCalcInput) Breakdown {
	return compute(
		in.DailyRate, in.HourlyRate,
		in.TotalWorkingDays,
		in.TotalOvertimeHours,
		decimal.NewFromInt(int64(in.TotalLateMinutes)),
		in.CashAdvance, in.OthersDeduction,
	)
}

func compute(dailyRate, hourlyRate decimal.Decimal, workingDays int, overtimeHours, lateMinutes, cashAdvance, othersDeduction decimal.Decimal) Breakdown {
	basicSalary := dailyRate.Mul(decimal.NewFromInt(int64(workingDays))).Round(2)
	overtimePay := hourlyRate.Mul(overtimeHours).Round(2)
	lateDeduction := hourlyRate.Mul(lateMinutes.Div(sixty)).Round(2)

	grossPay := basicSalary.Add(overtimePay).Round(2)
	totalDeductions := lateDeduction.Add(cashAdvance).Add(othersDeduction).Round(2)
	netPay := grossPay.Sub(totalDeductions).Round(2)

	return Breakdown{
		BasicSalary:     basicSalary,
		OvertimePay:     overtimePay,
		LateDeduction:   lateDeduction,
		GrossPay:        grossPay,
		TotalDeductions: totalDeductions,
		NetPay:          netPay,
	}
}

// RecomputeDeductions reapplies the deduction identity after cash_advance or
// others_deduction changes on a stored record. The late deduction and the
// earnings side stay as stored.
func RecomputeDeductions(grossPay, lateDeduction, cashAdvance, othersDeduction decimal.Decimal) (totalDeductions, netPay decimal.Decimal) {
	totalDeductions = lateDeduction.Add(cashAdvance).Add(othersDeduction).Round(2)
	netPay = grossPay.Sub(totalDeductions).Round(2)
	return totalDeductions, netPay
}
