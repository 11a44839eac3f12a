package employee

import "context"

// EmployeeRepository defines data access methods for the employee directory.
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmployeeCode(ctx context.Context, code string) (Employee, error)
	ListByType(ctx context.Context, empType Type) ([]Employee, error)
	ListAll(ctx context.Context) ([]Employee, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) error
	Delete(ctx context.Context, id string) error
}
