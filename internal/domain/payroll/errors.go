package payroll

import "errors"

var (
	ErrPayrollRecordNotFound = errors.New("payroll record not found")
	ErrNotSiteEmployee       = errors.New("employee is not a site employee")
	ErrNotOfficeEmployee     = errors.New("employee is not an office employee")
	ErrInvalidStatus         = errors.New("invalid payroll status")
)
