package payroll

import "context"

// PayrollRepository defines data access for payroll records. Records are
// append-only: updates touch status and the deduction fields only, and the
// repository persists the recomputed totals handed to it.
type PayrollRepository interface {
	// Site records
	CreateSiteRecord(ctx context.Context, record SitePayroll) (SitePayroll, error)
	GetSiteRecordByID(ctx context.Context, id string) (SitePayroll, error)
	ListSiteRecords(ctx context.Context, filter PayrollFilter) ([]SitePayroll, int64, error)
	UpdateSiteRecord(ctx context.Context, record SitePayroll) error
	DeleteSiteRecord(ctx context.Context, id string) error

	// Office records
	CreateOfficeRecord(ctx context.Context, record OfficePayroll) (OfficePayroll, error)
	GetOfficeRecordByID(ctx context.Context, id string) (OfficePayroll, error)
	ListOfficeRecords(ctx context.Context, filter PayrollFilter) ([]OfficePayroll, int64, error)
	UpdateOfficeRecord(ctx context.Context, record OfficePayroll) error
	DeleteOfficeRecord(ctx context.Context, id string) error
}
