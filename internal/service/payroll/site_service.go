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

type SitePayrollServiceImpl struct {
	tx             database.TxManager
	payrollRepo    payroll.PayrollRepository
	employeeRepo   employee.EmployeeRepository
	advanceService advance.AdvanceService
}

func NewSitePayrollService(
	tx database.TxManager,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	advanceService advance.AdvanceService,
) payroll.SitePayrollService {
	return &SitePayrollServiceImpl{
		tx:             tx,
		payrollRepo:    payrollRepo,
		employeeRepo:   employeeRepo,
		advanceService: advanceService,
	}
}

func (s *SitePayrollServiceImpl) ProcessPayroll(ctx context.Context, req payroll.ProcessSitePayrollRequest) (payroll.SitePayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.SitePayrollResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return payroll.SitePayrollResponse{}, err
	}
	if emp.Type != employee.TypeSite {
		return payroll.SitePayrollResponse{}, payroll.ErrNotSiteEmployee
	}

	periodStart, _ := validator.IsValidDate(req.PayPeriodStart)
	periodEnd, _ := validator.IsValidDate(req.PayPeriodEnd)

	var record payroll.SitePayroll
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

		var breakdown payroll.Breakdown
		record = payroll.SitePayroll{
			EmployeeID:      emp.ID,
			EmployeeName:    emp.FullName,
			EmployeeCode:    emp.EmployeeCode,
			Position:        emp.Position,
			PeriodStart:     periodStart,
			PeriodEnd:       periodEnd,
			CashAdvance:     req.CashAdvance,
			OthersDeduction: req.OthersDeduction,
			Status:          payroll.StatusPending,
		}

		if req.DailyAttendance != nil {
			attendance := *req.DailyAttendance
			overtime := payroll.DailyOvertime{}
			late := payroll.DailyLate{}
			siteAddress := payroll.DailySiteAddress{}
			if req.DailyOvertime != nil {
				overtime = *req.DailyOvertime
			}
			if req.DailyLate != nil {
				late = *req.DailyLate
			}
			if req.DailySiteAddress != nil {
				siteAddress = *req.DailySiteAddress
			}

			breakdown = payroll.CalculateSite(payroll.SiteCalcInput{
				DailyRate:       emp.DailyRate,
				HourlyRate:      emp.HourlyRate,
				Attendance:      attendance,
				Overtime:        overtime,
				Late:            late,
				CashAdvance:     req.CashAdvance,
				OthersDeduction: req.OthersDeduction,
			})

			record.WorkingDays = attendance.Count()
			record.OvertimeHours = overtime.Total()
			record.LateMinutes = late.Total()
			record.Attendance = attendance
			record.Overtime = overtime
			record.Late = late
			record.SiteAddress = siteAddress
		} else {
			// Aggregate-only submission, no per-weekday detail.
			breakdown = payroll.CalculateSiteTotals(
				emp.DailyRate, emp.HourlyRate,
				req.WorkingDays, req.OvertimeHours, req.LateMinutes,
				req.CashAdvance, req.OthersDeduction,
			)

			record.WorkingDays = req.WorkingDays
			record.OvertimeHours = req.OvertimeHours
			record.LateMinutes = req.LateMinutes
		}

		record.BasicSalary = breakdown.BasicSalary
		record.OvertimePay = breakdown.OvertimePay
		record.LateDeduction = breakdown.LateDeduction
		record.GrossPay = breakdown.GrossPay
		record.TotalDeductions = breakdown.TotalDeductions
		record.NetPay = breakdown.NetPay

		record, err = s.payrollRepo.CreateSiteRecord(txCtx, record)
		if err != nil {
			return fmt.Errorf("failed to persist site payroll: %w", err)
		}
		return nil
	})
	if err != nil {
		return payroll.SitePayrollResponse{}, err
	}

	return mapSiteResponse(record), nil
}

func (s *SitePayrollServiceImpl) GetPayroll(ctx context.Context, id string) (payroll.SitePayrollResponse, error) {
	record, err := s.payrollRepo.GetSiteRecordByID(ctx, id)
	if err != nil {
		return payroll.SitePayrollResponse{}, err
	}
	return mapSiteResponse(record), nil
}

func (s *SitePayrollServiceImpl) ListPayrolls(ctx context.Context, filter payroll.PayrollFilter) (payroll.ListSitePayrollResponse, error) {
	normalizeFilter(&filter)

	records, totalCount, err := s.payrollRepo.ListSiteRecords(ctx, filter)
	if err != nil {
		return payroll.ListSitePayrollResponse{}, err
	}

	data := make([]payroll.SitePayrollResponse, 0, len(records))
	for _, rec := range records {
		data = append(data, mapSiteResponse(rec))
	}

	return payroll.ListSitePayrollResponse{
		Data:       data,
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (s *SitePayrollServiceImpl) UpdatePayroll(ctx context.Context, req payroll.UpdatePayrollRequest) (payroll.SitePayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.SitePayrollResponse{}, err
	}

	record, err := s.payrollRepo.GetSiteRecordByID(ctx, req.ID)
	if err != nil {
		return payroll.SitePayrollResponse{}, err
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

	if err := s.payrollRepo.UpdateSiteRecord(ctx, record); err != nil {
		return payroll.SitePayrollResponse{}, err
	}

	return mapSiteResponse(record), nil
}

func (s *SitePayrollServiceImpl) DeletePayroll(ctx context.Context, id string) error {
	return s.payrollRepo.DeleteSiteRecord(ctx, id)
}

func mapSiteResponse(rec payroll.SitePayroll) payroll.SitePayrollResponse {
	return payroll.SitePayrollResponse{
		ID:              rec.ID,
		EmployeeID:      rec.EmployeeID,
		EmployeeName:    rec.EmployeeName,
		EmployeeCode:    rec.EmployeeCode,
		Position:        rec.Position,
		PayPeriodStart:  rec.PeriodStart.Format("2006-01-02"),
		PayPeriodEnd:    rec.PeriodEnd.Format("2006-01-02"),
		WorkingDays:     rec.WorkingDays,
		OvertimeHours:   rec.OvertimeHours,
		LateMinutes:     rec.LateMinutes,
		Attendance:      rec.Attendance,
		Overtime:        rec.Overtime,
		Late:            rec.Late,
		SiteAddress:     rec.SiteAddress,
		BasicSalary:     rec.BasicSalary,
		OvertimePay:     rec.OvertimePay,
		LateDeduction:   rec.LateDeduction,
		GrossPay:        rec.GrossPay,
		CashAdvance:     rec.CashAdvance,
		OthersDeduction: rec.OthersDeduction,
		TotalDeductions: rec.TotalDeductions,
		NetPay:          rec.NetPay,
		Status:          string(rec.Status),
		CreatedAt:       rec.CreatedAt.Format(time.RFC3339),
	}
}

func normalizeFilter(filter *payroll.PayrollFilter) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}
}
