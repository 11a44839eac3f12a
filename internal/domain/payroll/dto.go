package payroll

import (
	"github.com/shopspring/decimal"
	"github.com/sitepay/sitepay-backend-go/internal/pkg/validator"
)

// ========== SITE PAYROLL DTOs ==========

type ProcessSitePayrollRequest struct {
	EmployeeID      string          `json:"employee_id"`
	PayPeriodStart  string          `json:"pay_period_start"`
	PayPeriodEnd    string          `json:"pay_period_end"`
	WorkingDays     int             `json:"working_days"`
	OvertimeHours   decimal.Decimal `json:"overtime_hours"`
	LateMinutes     int             `json:"late_minutes"`
	CashAdvance     decimal.Decimal `json:"cash_advance"`
	OthersDeduction decimal.Decimal `json:"others_deduction"`

	// Per-weekday detail. When present it overrides the aggregate fields
	// above; working days, overtime and lateness are derived from the maps.
	DailyAttendance  *DailyAttendance  `json:"daily_attendance,omitempty"`
	DailyOvertime    *DailyOvertime    `json:"daily_overtime,omitempty"`
	DailyLate        *DailyLate        `json:"daily_late,omitempty"`
	DailySiteAddress *DailySiteAddress `json:"daily_site_address,omitempty"`

	// Supplying both opens a new emergency advance/deduction pair.
	EmergencyCashAdvance *decimal.Decimal `json:"emergency_cash_advance,omitempty"`
	EmergencyDeduction   *decimal.Decimal `json:"emergency_deduction,omitempty"`
}

func (r *ProcessSitePayrollRequest) Validate() error {
	errs := validatePeriod(r.EmployeeID, r.PayPeriodStart, r.PayPeriodEnd)

	if r.WorkingDays < 0 || r.WorkingDays > 7 {
		errs = append(errs, validator.ValidationError{Field: "working_days", Message: "must be between 0 and 7"})
	}
	if r.OvertimeHours.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "overtime_hours", Message: "must be non-negative"})
	}
	if r.LateMinutes < 0 {
		errs = append(errs, validator.ValidationError{Field: "late_minutes", Message: "must be non-negative"})
	}
	errs = append(errs, validateDeductions(r.CashAdvance, r.OthersDeduction)...)
	errs = append(errs, validateEmergencyPair(r.EmergencyCashAdvance, r.EmergencyDeduction)...)

	if r.DailyOvertime != nil {
		for _, day := range []decimal.Decimal{r.DailyOvertime.Monday, r.DailyOvertime.Tuesday, r.DailyOvertime.Wednesday, r.DailyOvertime.Thursday, r.DailyOvertime.Friday, r.DailyOvertime.Saturday} {
			if day.IsNegative() {
				errs = append(errs, validator.ValidationError{Field: "daily_overtime", Message: "hours must be non-negative"})
				break
			}
		}
	}
	if r.DailyLate != nil {
		for _, day := range []int{r.DailyLate.Monday, r.DailyLate.Tuesday, r.DailyLate.Wednesday, r.DailyLate.Thursday, r.DailyLate.Friday, r.DailyLate.Saturday} {
			if day < 0 {
				errs = append(errs, validator.ValidationError{Field: "daily_late", Message: "minutes must be non-negative"})
				break
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========== OFFICE PAYROLL DTOs ==========

type ProcessOfficePayrollRequest struct {
	EmployeeID         string          `json:"employee_id"`
	PayPeriodStart     string          `json:"pay_period_start"`
	PayPeriodEnd       string          `json:"pay_period_end"`
	TotalWorkingDays   int             `json:"total_working_days"`
	TotalLateMinutes   int             `json:"total_late_minutes"`
	TotalOvertimeHours decimal.Decimal `json:"total_overtime_hours"`
	CashAdvance        decimal.Decimal `json:"cash_advance"`
	OthersDeduction    decimal.Decimal `json:"others_deduction"`

	EmergencyCashAdvance *decimal.Decimal `json:"emergency_cash_advance,omitempty"`
	EmergencyDeduction   *decimal.Decimal `json:"emergency_deduction,omitempty"`
}

func (r *ProcessOfficePayrollRequest) Validate() error {
	errs := validatePeriod(r.EmployeeID, r.PayPeriodStart, r.PayPeriodEnd)

	if r.TotalWorkingDays < 0 || r.TotalWorkingDays > 31 {
		errs = append(errs, validator.ValidationError{Field: "total_working_days", Message: "must be between 0 and 31"})
	}
	if r.TotalLateMinutes < 0 {
		errs = append(errs, validator.ValidationError{Field: "total_late_minutes", Message: "must be non-negative"})
	}
	if r.TotalOvertimeHours.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "total_overtime_hours", Message: "must be non-negative"})
	}
	errs = append(errs, validateDeductions(r.CashAdvance, r.OthersDeduction)...)
	errs = append(errs, validateEmergencyPair(r.EmergencyCashAdvance, r.EmergencyDeduction)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========== SHARED VALIDATION ==========

func validatePeriod(employeeID, start, end string) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if validator.IsEmpty(employeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}

	startDate, startOK := validator.IsValidDate(start)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "pay_period_start", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	endDate, endOK := validator.IsValidDate(end)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "pay_period_end", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if startOK && endOK && endDate.Before(startDate) {
		errs = append(errs, validator.ValidationError{Field: "pay_period_end", Message: "must not be before pay_period_start"})
	}

	return errs
}

func validateDeductions(cashAdvance, othersDeduction decimal.Decimal) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if cashAdvance.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "cash_advance", Message: "must be non-negative"})
	}
	if othersDeduction.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "others_deduction", Message: "must be non-negative"})
	}

	return errs
}

func validateEmergencyPair(eca, ed *decimal.Decimal) validator.ValidationErrors {
	var errs validator.ValidationErrors

	// The pair opens together or not at all.
	if (eca == nil) != (ed == nil) {
		errs = append(errs, validator.ValidationError{Field: "emergency_cash_advance", Message: "emergency_cash_advance and emergency_deduction must be supplied together"})
		return errs
	}
	if eca != nil && !eca.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "emergency_cash_advance", Message: "must be greater than zero"})
	}
	if ed != nil && !ed.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "emergency_deduction", Message: "must be greater than zero"})
	}

	return errs
}

// ========== UPDATE DTOs ==========

// UpdatePayrollRequest amends a stored record. Changing either deduction
// field recomputes total_deductions and net_pay from the stored late
// deduction; the earnings side is never recomputed on update.
type UpdatePayrollRequest struct {
	ID              string
	Status          *string          `json:"status,omitempty"`
	CashAdvance     *decimal.Decimal `json:"cash_advance,omitempty"`
	OthersDeduction *decimal.Decimal `json:"others_deduction,omitempty"`
}

func (r *UpdatePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != nil && !validator.IsInSlice(*r.Status, ValidStatuses) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of Pending, Processing, Paid, On Hold"})
	}
	if r.CashAdvance != nil && r.CashAdvance.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "cash_advance", Message: "must be non-negative"})
	}
	if r.OthersDeduction != nil && r.OthersDeduction.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "others_deduction", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========== RESPONSES ==========

type SitePayrollResponse struct {
	ID              string           `json:"id"`
	EmployeeID      string           `json:"employee_id"`
	EmployeeName    string           `json:"employee_name"`
	EmployeeCode    string           `json:"employee_code"`
	Position        string           `json:"position"`
	PayPeriodStart  string           `json:"pay_period_start"`
	PayPeriodEnd    string           `json:"pay_period_end"`
	WorkingDays     int              `json:"working_days"`
	OvertimeHours   decimal.Decimal  `json:"overtime_hours"`
	LateMinutes     int              `json:"late_minutes"`
	Attendance      DailyAttendance  `json:"daily_attendance"`
	Overtime        DailyOvertime    `json:"daily_overtime"`
	Late            DailyLate        `json:"daily_late"`
	SiteAddress     DailySiteAddress `json:"daily_site_address"`
	BasicSalary     decimal.Decimal  `json:"basic_salary"`
	OvertimePay     decimal.Decimal  `json:"overtime_pay"`
	LateDeduction   decimal.Decimal  `json:"late_deduction"`
	GrossPay        decimal.Decimal  `json:"gross_pay"`
	CashAdvance     decimal.Decimal  `json:"cash_advance"`
	OthersDeduction decimal.Decimal  `json:"others_deduction"`
	TotalDeductions decimal.Decimal  `json:"total_deductions"`
	NetPay          decimal.Decimal  `json:"net_pay"`
	Status          string           `json:"status"`
	CreatedAt       string           `json:"created_at"`
}

type OfficePayrollResponse struct {
	ID                 string          `json:"id"`
	EmployeeID         string          `json:"employee_id"`
	EmployeeName       string          `json:"employee_name"`
	EmployeeCode       string          `json:"employee_code"`
	Position           string          `json:"position"`
	PayPeriodStart     string          `json:"pay_period_start"`
	PayPeriodEnd       string          `json:"pay_period_end"`
	TotalWorkingDays   int             `json:"total_working_days"`
	TotalLateMinutes   int             `json:"total_late_minutes"`
	TotalOvertimeHours decimal.Decimal `json:"total_overtime_hours"`
	BasicSalary        decimal.Decimal `json:"basic_salary"`
	OvertimePay        decimal.Decimal `json:"overtime_pay"`
	LateDeduction      decimal.Decimal `json:"late_deduction"`
	GrossPay           decimal.Decimal `json:"gross_pay"`
	CashAdvance        decimal.Decimal `json:"cash_advance"`
	OthersDeduction    decimal.Decimal `json:"others_deduction"`
	TotalDeductions    decimal.Decimal `json:"total_deductions"`
	NetPay             decimal.Decimal `json:"net_pay"`
	Status             string          `json:"status"`
	CreatedAt          string          `json:"created_at"`
}

type PayrollFilter struct {
	EmployeeID *string
	Status     *string
	Page       int
	Limit      int
}

type ListSitePayrollResponse struct {
	Data       []SitePayrollResponse `json:"data"`
	TotalCount int64                 `json:"total_count"`
	Page       int                   `json:"page"`
	Limit      int                   `json:"limit"`
}

type ListOfficePayrollResponse struct {
	Data       []OfficePayrollResponse `json:"data"`
	TotalCount int64                   `json:"total_count"`
	Page       int                     `json:"page"`
	Limit      int                     `json:"limit"`
}
