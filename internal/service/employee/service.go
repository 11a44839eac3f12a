package employee

import (
	"context"

	"github.com/sitepay/sitepay-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		EmployeeCode: req.EmployeeCode,
		FullName:     req.FullName,
		Position:     req.Position,
		Type:         employee.Type(req.Type),
		DailyRate:    req.DailyRate,
		HourlyRate:   req.HourlyRate,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapEmployeeResponse(created), nil
}

func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapEmployeeResponse(emp), nil
}

func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, empType *employee.Type) ([]employee.EmployeeResponse, error) {
	var (
		employees []employee.Employee
		err       error
	)
	if empType != nil {
		employees, err = s.employeeRepo.ListByType(ctx, *empType)
	} else {
		employees, err = s.employeeRepo.ListAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	result := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		result = append(result, mapEmployeeResponse(emp))
	}

	return result, nil
}

func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if err := s.employeeRepo.Update(ctx, req); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return s.GetEmployee(ctx, req.ID)
}

func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	return s.employeeRepo.Delete(ctx, id)
}

func mapEmployeeResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:           emp.ID,
		EmployeeCode: emp.EmployeeCode,
		FullName:     emp.FullName,
		Position:     emp.Position,
		Type:         string(emp.Type),
		DailyRate:    emp.DailyRate,
		HourlyRate:   emp.HourlyRate,
	}
}
