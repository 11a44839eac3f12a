package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/sitepay/sitepay-backend-go/internal/domain/advance"
	"github.com/sitepay/sitepay-backend-go/internal/domain/employee"
	"github.com/sitepay/sitepay-backend-go/internal/domain/payroll"
	"github.com/sitepay/sitepay-backend-go/internal/pkg/database"
	"github.com/sitepay/sitepay-backend-go/internal/pkg/validator"
)

type OfficePayrollServiceImpl struct {
	tx             database.TxManager
	payrollRepo    payroll.PayrollRepository
	employeeRepo   employee.EmployeeRepository
	advanceService advance.AdvanceService
}

func NewOfficePayrollService(
	tx database.TxManager,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	advanceService advance.AdvanceService,
) payroll.OfficePayrollService {
	return &OfficePayrollServiceImpl{
		tx:             tx,
		payrollRepo:    payrollRepo,
		employeeRepo:   employeeRepo,
		advanceService: advanceService,
	}
}

func (s *OfficePayrollServiceImpl) ProcessPayroll(ctx context.Context, req payroll.ProcessOfficePayrollRequest) (payroll.OfficePayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.OfficePayrollResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return payroll.OfficePayrollResponse{}, err
	}
	if emp.Type != employee.TypeOffice {
		return payroll.OfficePayrollResponse{}, payroll.ErrNotOfficeEmployee
	}

	periodStart, _ := validator.IsValidDate(req.PayPeriodStart)
	periodEnd, _ := validator.IsValidDate(req.PayPeriodEnd)

	var record payroll.OfficePayroll
	err = s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		if req.EmergencyCashAdvance != nil && req.EmergencyDeduction != nil {
			if _, err := s.advanceService.OpenPair(txCtx, emp.ID, *req.EmergencyCashAdvance, *req.EmergencyDeduction); err != nil {
				return err
			}
		}

		pair, err := s.advanceService.ActivePair(txCtx, emp.ID)
		if err != nil {
			return err
		}
		if pair.Active() && req.CashAdvance.IsPositive() {
			if _, err := s.advanceService.ApplyDeduction(txCtx, emp.ID, req.CashAdvance); err != nil {
				return err
			}
		}

		breakdown := payroll.CalculateOffice(payroll.OfficeCalcInput{
			DailyRate:          emp.DailyRate,
			HourlyRate:         emp.HourlyRate,
			TotalWorkingDays:   req.TotalWorkingDays,
			TotalLateMinutes:   req.TotalLateMinutes,
			TotalOvertimeHours: req.TotalOvertimeHours,
			CashAdvance:        req.CashAdvance,
			OthersDeduction:    req.OthersDeduction,
		})

		record = payroll.OfficePayroll{
			EmployeeID:         emp.ID,
			EmployeeName:       emp.FullName,
			EmployeeCode:       emp.EmployeeCode,
			Position:           emp.Position,
			PeriodStart:        periodStart,
			PeriodEnd:          periodEnd,
			TotalWorkingDays:   req.TotalWorkingDays,
			TotalLateMinutes:   req.TotalLateMinutes,
			TotalOvertimeHours: req.TotalOvertimeHours,
			BasicSalary:        breakdown.BasicSalary,
			OvertimePay:        breakdown.OvertimePay,
			LateDeduction:      breakdown.LateDeduction,
			GrossPay:           breakdown.GrossPay,
			CashAdvance:        req.CashAdvance,
			OthersDeduction:    req.OthersDeduction,
			TotalDeductions:    breakdown.TotalDeductions,
			NetPay:             breakdown.NetPay,
			Status:             payroll.StatusPending,
		}

		record, err = s.payrollRepo.CreateOfficeRecord(txCtx, record)
		if err != nil {
			return fmt.Errorf("failed to persist office payroll: %w", err)
		}
		return nil
	})
	if err != nil {
		return payroll.OfficePayrollResponse{}, err
	}

	return mapOfficeResponse(record), nil
}

func (s *OfficePayrollServiceImpl) GetPayroll(ctx context.Context, id string) (payroll.OfficePayrollResponse, error) {
	record, err := s.payrollRepo.GetOfficeRecordByID(ctx, id)
	if err != nil {
		return payroll.OfficePayrollResponse{}, err
	}
	return mapOfficeResponse(record), nil
}

func (s *OfficePayrollServiceImpl) ListPayrolls(ctx context.Context, filter payroll.PayrollFilter) (payroll.ListOfficePayrollResponse, error) {
	normalizeFilter(&filter)

	records, totalCount, err := s.payrollRepo.ListOfficeRecords(ctx, filter)
	if err != nil {
		return payroll.ListOfficePayrollResponse{}, err
	}

	data := make([]payroll.OfficePayrollResponse, 0, len(records))
	for _, rec := range records {
		data = append(data, mapOfficeResponse(rec))
	}

	return payroll.ListOfficePayrollResponse{
		Data:       data,
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (s *OfficePayrollServiceImpl) UpdatePayroll(ctx context.Context, req payroll.UpdatePayrollRequest) (payroll.OfficePayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.OfficePayrollResponse{}, err
	}

	record, err := s.payrollRepo.GetOfficeRecordByID(ctx, req.ID)
	if err != nil {
		return payroll.OfficePayrollResponse{}, err
	}

	if req.Status != nil {
		record.Status = payroll.RecordStatus(*req.Status)
	}
	if req.CashAdvance != nil {
		record.CashAdvance = *req.CashAdvance
	}
	if req.OthersDeduction != nil {
		record.OthersDeduction = *req.OthersDeduction
	}
	record.TotalDeductions, record.NetPay = payroll.RecomputeDeductions(
		record.GrossPay, record.LateDeduction, record.CashAdvance, record.OthersDeduction,
	)

	if err := s.payrollRepo.UpdateOfficeRecord(ctx, record); err != nil {
		return payroll.OfficePayrollResponse{}, err
	}

	return mapOfficeResponse(record), nil
}

func (s *OfficePayrollServiceImpl) DeletePayroll(ctx context.Context, id string) error {
	return s.payrollRepo.DeleteOfficeRecord(ctx, id)
}

func mapOfficeResponse(rec payroll.OfficePayroll) payroll.OfficePayrollResponse {
	return payroll.OfficePayrollResponse{
		ID:                 rec.ID,
		EmployeeID:         rec.EmployeeID,
		EmployeeName:       rec.EmployeeName,
		EmployeeCode:       rec.EmployeeCode,
		Position:           rec.Position,
		PayPeriodStart:     rec.PeriodStart.Format("2006-01-02"),
		PayPeriodEnd:       rec.PeriodEnd.Format("2006-01-02"),
		TotalWorkingDays:   rec.TotalWorkingDays,
		TotalLateMinutes:   rec.TotalLateMinutes,
		TotalOvertimeHours: rec.TotalOvertimeHours,
		BasicSalary:        rec.BasicSalary,
		OvertimePay:        rec.OvertimePay,
		LateDeduction:      rec.LateDeduction,
		GrossPay:           rec.GrossPay,
		CashAdvance:        rec.CashAdvance,
		OthersDeduction:    rec.OthersDeduction,
		TotalDeductions:    rec.TotalDeductions,
		NetPay:             rec.NetPay,
		Status:             string(rec.Status),
		CreatedAt:          rec.CreatedAt.Format(time.RFC3339),
	}
}
