package payroll

import "context"

// SitePayrollService processes payroll runs for site employees.
type SitePayrollService interface {
	ProcessPayroll(ctx context.Context, req ProcessSitePayrollRequest) (SitePayrollResponse, error)
	GetPayroll(ctx context.Context, id string) (SitePayrollResponse, error)
	ListPayrolls(ctx context.Context, filter PayrollFilter) (ListSitePayrollResponse, error)
	UpdatePayroll(ctx context.Context, req UpdatePayrollRequest) (SitePayrollResponse, error)
	DeletePayroll(ctx context.Context, id string) error
}

// OfficePayrollService processes payroll runs for office employees.
type OfficePayrollService interface {
	ProcessPayroll(ctx context.Context, req ProcessOfficePayrollRequest) (OfficePayrollResponse, error)
	GetPayroll(ctx context.Context, id string) (OfficePayrollResponse, error)
	ListPayrolls(ctx context.Context, filter PayrollFilter) (ListOfficePayrollResponse, error)
	UpdatePayroll(ctx context.Context, req UpdatePayrollRequest) (OfficePayrollResponse, error)
	DeletePayroll(ctx context.Context, id string) error
}
