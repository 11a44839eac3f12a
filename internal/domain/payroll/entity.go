package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordStatus enum
type RecordStatus string

const (
	StatusPending    RecordStatus = "Pending"
	StatusProcessing RecordStatus = "Processing"
	StatusPaid       RecordStatus = "Paid"
	StatusOnHold     RecordStatus = "On Hold"
)

// ValidStatuses lists every accepted record status. Transitions between them
// are unconstrained; any status may follow any other.
var ValidStatuses = []string{
	string(StatusPending),
	string(StatusProcessing),
	string(StatusPaid),
	string(StatusOnHold),
}

// The working week runs Monday through Saturday; Sunday is never worked.

// DailyAttendance marks presence per weekday.
type DailyAttendance struct {
	Monday    bool `json:"monday"`
	Tuesday   bool `json:"tuesday"`
	Wednesday bool `json:"wednesday"`
	Thursday  bool `json:"thursday"`
	Friday    bool `json:"friday"`
	Saturday  bool `json:"saturday"`
}

// Count returns the number of days marked present.
func (d DailyAttendance) Count() int {
	count := 0
	for _, present := range []bool{d.Monday, d.Tuesday, d.Wednesday, d.Thursday, d.Friday, d.Saturday} {
		if present {
			count++
		}
	}
	return count
}

// DailyOvertime holds overtime hours per weekday.
type DailyOvertime struct {
	Monday    decimal.Decimal `json:"monday"`
	Tuesday   decimal.Decimal `json:"tuesday"`
	Wednesday decimal.Decimal `json:"wednesday"`
	Thursday  decimal.Decimal `json:"thursday"`
	Friday    decimal.Decimal `json:"friday"`
	Saturday  decimal.Decimal `json:"saturday"`
}

// Total sums overtime hours across the week. Days are counted whether or not
// attendance marks them present; see CalculateSite.
func (d DailyOvertime) Total() decimal.Decimal {
	total := decimal.Zero
	for _, hours := range []decimal.Decimal{d.Monday, d.Tuesday, d.Wednesday, d.Thursday, d.Friday, d.Saturday} {
		total = total.Add(hours)
	}
	return total
}

// DailyLate holds lateness minutes per weekday.
type DailyLate struct {
	Monday    int `json:"monday"`
	Tuesday   int `json:"tuesday"`
	Wednesday int `json:"wednesday"`
	Thursday  int `json:"thursday"`
	Friday    int `json:"friday"`
	Saturday  int `json:"saturday"`
}

// Total sums lateness minutes across the week.
func (d DailyLate) Total() int {
	return d.Monday + d.Tuesday + d.Wednesday + d.Thursday + d.Friday + d.Saturday
}

// DailySiteAddress records which site the employee worked at per weekday.
type DailySiteAddress struct {
	Monday    string `json:"monday"`
	Tuesday   string `json:"tuesday"`
	Wednesday string `json:"wednesday"`
	Thursday  string `json:"thursday"`
	Friday    string `json:"friday"`
	Saturday  string `json:"saturday"`
}

// SitePayroll - one payroll run for a site employee
type SitePayroll struct {
	ID              string
	EmployeeID      string
	EmployeeName    string
	EmployeeCode    string
	Position        string
	PeriodStart     time.Time
	PeriodEnd       time.Time
	WorkingDays     int
	OvertimeHours   decimal.Decimal
	LateMinutes     int
	Attendance      DailyAttendance
	Overtime        DailyOvertime
	Late            DailyLate
	SiteAddress     DailySiteAddress
	BasicSalary     decimal.Decimal
	OvertimePay     decimal.Decimal
	LateDeduction   decimal.Decimal
	GrossPay        decimal.Decimal
	CashAdvance     decimal.Decimal
	OthersDeduction decimal.Decimal
	TotalDeductions decimal.Decimal
	NetPay          decimal.Decimal
	Status          RecordStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OfficePayroll - one payroll run for an office employee, monthly aggregates
type OfficePayroll struct {
	ID                 string
	EmployeeID         string
	EmployeeName       string
	EmployeeCode       string
	Position           string
	PeriodStart        time.Time
	PeriodEnd          time.Time
	TotalWorkingDays   int
	TotalLateMinutes   int
	TotalOvertimeHours decimal.Decimal
	BasicSalary        decimal.Decimal
	OvertimePay        decimal.Decimal
	LateDeduction      decimal.Decimal
	GrossPay           decimal.Decimal
	CashAdvance        decimal.Decimal
	OthersDeduction    decimal.Decimal
	TotalDeductions    decimal.Decimal
	NetPay             decimal.Decimal
	Status             RecordStatus
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
