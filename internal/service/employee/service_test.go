package employee

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitepay/sitepay-backend-go/internal/domain/employee"
)

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
}

func (r *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	for _, existing := range r.employees {
		if existing.EmployeeCode == emp.EmployeeCode {
			return employee.Employee{}, employee.ErrEmployeeCodeExists
		}
	}
	emp.ID = uuid.NewString()
	r.employees[emp.ID] = emp
	return emp, nil
}

func (r *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (r *fakeEmployeeRepo) GetByEmployeeCode(ctx context.Context, code string) (employee.Employee, error) {
	for _, emp := range r.employees {
		if emp.EmployeeCode == code {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) ListByType(ctx context.Context, empType employee.Type) ([]employee.Employee, error) {
	var result []employee.Employee
	for _, emp := range r.employees {
		if emp.Type == empType {
			result = append(result, emp)
		}
	}
	return result, nil
}

func (r *fakeEmployeeRepo) ListAll(ctx context.Context) ([]employee.Employee, error) {
	var result []employee.Employee
	for _, emp := range r.employees {
		result = append(result, emp)
	}
	return result, nil
}

func (r *fakeEmployeeRepo) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	emp, ok := r.employees[req.ID]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	if req.FullName != nil {
		emp.FullName = *req.FullName
	}
	if req.Position != nil {
		emp.Position = *req.Position
	}
	if req.DailyRate != nil {
		emp.DailyRate = *req.DailyRate
	}
	if req.HourlyRate != nil {
		emp.HourlyRate = *req.HourlyRate
	}
	r.employees[req.ID] = emp
	return nil
}

func (r *fakeEmployeeRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.employees[id]; !ok {
		return employee.ErrEmployeeNotFound
	}
	delete(r.employees, id)
	return nil
}

func validCreateRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		EmployeeCode: "SITE-001",
		FullName:     "Ramon Cruz",
		Position:     "Mason",
		Type:         "site",
		DailyRate:    decimal.NewFromInt(500),
		HourlyRate:   decimal.NewFromFloat(62.5),
	}
}

func TestCreateEmployee(t *testing.T) {
	t.Parallel()
	svc := NewEmployeeService(newFakeEmployeeRepo())
	ctx := context.Background()

	created, err := svc.CreateEmployee(ctx, validCreateRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "site", created.Type)

	// Duplicate code rejected.
	_, err = svc.CreateEmployee(ctx, validCreateRequest())
	assert.ErrorIs(t, err, employee.ErrEmployeeCodeExists)
}

func TestCreateEmployee_Validation(t *testing.T) {
	t.Parallel()
	svc := NewEmployeeService(newFakeEmployeeRepo())
	ctx := context.Background()

	req := validCreateRequest()
	req.Type = "remote"
	_, err := svc.CreateEmployee(ctx, req)
	assert.Error(t, err)

	req = validCreateRequest()
	req.DailyRate = decimal.NewFromInt(-100)
	_, err = svc.CreateEmployee(ctx, req)
	assert.Error(t, err)
}

func TestListEmployees_TypeFilter(t *testing.T) {
	t.Parallel()
	svc := NewEmployeeService(newFakeEmployeeRepo())
	ctx := context.Background()

	siteReq := validCreateRequest()
	_, err := svc.CreateEmployee(ctx, siteReq)
	require.NoError(t, err)

	officeReq := validCreateRequest()
	officeReq.EmployeeCode = "OFF-001"
	officeReq.Type = "office"
	_, err = svc.CreateEmployee(ctx, officeReq)
	require.NoError(t, err)

	all, err := svc.ListEmployees(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	siteType := employee.TypeSite
	siteOnly, err := svc.ListEmployees(ctx, &siteType)
	require.NoError(t, err)
	require.Len(t, siteOnly, 1)
	assert.Equal(t, "SITE-001", siteOnly[0].EmployeeCode)
}

func TestUpdateEmployee(t *testing.T) {
	t.Parallel()
	svc := NewEmployeeService(newFakeEmployeeRepo())
	ctx := context.Background()

	created, err := svc.CreateEmployee(ctx, validCreateRequest())
	require.NoError(t, err)

	newRate := decimal.NewFromInt(550)
	updated, err := svc.UpdateEmployee(ctx, employee.UpdateEmployeeRequest{
		ID:        created.ID,
		DailyRate: &newRate,
	})
	require.NoError(t, err)
	assert.True(t, updated.DailyRate.Equal(newRate))
	assert.Equal(t, created.FullName, updated.FullName)
}

func TestDeleteEmployee(t *testing.T) {
	t.Parallel()
	svc := NewEmployeeService(newFakeEmployeeRepo())
	ctx := context.Background()

	created, err := svc.CreateEmployee(ctx, validCreateRequest())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteEmployee(ctx, created.ID))

	_, err = svc.GetEmployee(ctx, created.ID)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
