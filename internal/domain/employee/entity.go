package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID           string
	EmployeeCode string
	FullName     string
	Position     string
	Type         Type
	DailyRate    decimal.Decimal
	HourlyRate   decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}

// Type decides which payroll workflow may process the employee. Site crews
// are paid from per-weekday attendance, office staff from monthly totals.
type Type string

const (
	TypeSite   Type = "site"
	TypeOffice Type = "office"
)
