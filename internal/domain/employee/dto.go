package employee

import (
	"github.com/shopspring/decimal"
	"github.com/sitepay/sitepay-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	EmployeeCode string          `json:"employee_code"`
	FullName     string          `json:"full_name"`
	Position     string          `json:"position"`
	Type         string          `json:"type"` // "site" or "office"
	DailyRate    decimal.Decimal `json:"daily_rate"`
	HourlyRate   decimal.Decimal `json:"hourly_rate"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_code", Message: "is required"})
	}
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "is required"})
	}
	if r.Type != string(TypeSite) && r.Type != string(TypeOffice) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be 'site' or 'office'"})
	}
	if r.DailyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "daily_rate", Message: "must be non-negative"})
	}
	if r.HourlyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "hourly_rate", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID         string
	FullName   *string          `json:"full_name,omitempty"`
	Position   *string          `json:"position,omitempty"`
	DailyRate  *decimal.Decimal `json:"daily_rate,omitempty"`
	HourlyRate *decimal.Decimal `json:"hourly_rate,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.DailyRate != nil && r.DailyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "daily_rate", Message: "must be non-negative"})
	}
	if r.HourlyRate != nil && r.HourlyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "hourly_rate", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID           string          `json:"id"`
	EmployeeCode string          `json:"employee_code"`
	FullName     string          `json:"full_name"`
	Position     string          `json:"position"`
	Type         string          `json:"type"`
	DailyRate    decimal.Decimal `json:"daily_rate"`
	HourlyRate   decimal.Decimal `json:"hourly_rate"`
}
