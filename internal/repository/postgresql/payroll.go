package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sitepay/sitepay-backend-go/internal/domain/payroll"
	"github.com/sitepay/sitepay-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

// ========== SITE RECORDS ==========

const sitePayrollColumns = `
	id, employee_id, employee_name, employee_code, position,
	period_start, period_end, working_days, overtime_hours, late_minutes,
	daily_attendance, daily_overtime, daily_late, daily_site_address,
	basic_salary, overtime_pay, late_deduction, gross_pay,
	cash_advance, others_deduction, total_deductions, net_pay,
	status, created_at, updated_at`

func scanSiteRecord(row pgx.Row) (payroll.SitePayroll, error) {
	var rec payroll.SitePayroll
	var attendanceBytes, overtimeBytes, lateBytes, siteAddressBytes []byte

	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.EmployeeName, &rec.EmployeeCode, &rec.Position,
		&rec.PeriodStart, &rec.PeriodEnd, &rec.WorkingDays, &rec.OvertimeHours, &rec.LateMinutes,
		&attendanceBytes, &overtimeBytes, &lateBytes, &siteAddressBytes,
		&rec.BasicSalary, &rec.OvertimePay, &rec.LateDeduction, &rec.GrossPay,
		&rec.CashAdvance, &rec.OthersDeduction, &rec.TotalDeductions, &rec.NetPay,
		&rec.Status, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return payroll.SitePayroll{}, err
	}

	_ = json.Unmarshal(attendanceBytes, &rec.Attendance)
	_ = json.Unmarshal(overtimeBytes, &rec.Overtime)
	_ = json.Unmarshal(lateBytes, &rec.Late)
	_ = json.Unmarshal(siteAddressBytes, &rec.SiteAddress)

	return rec, nil
}

func (r *payrollRepository) CreateSiteRecord(ctx context.Context, record payroll.SitePayroll) (payroll.SitePayroll, error) {
	q := database.GetQuerier(ctx, r.db)

	attendanceJSON, _ := json.Marshal(record.Attendance)
	overtimeJSON, _ := json.Marshal(record.Overtime)
	lateJSON, _ := json.Marshal(record.Late)
	siteAddressJSON, _ := json.Marshal(record.SiteAddress)

	query := `
		INSERT INTO site_payrolls (
			employee_id, employee_name, employee_code, position,
			period_start, period_end, working_days, overtime_hours, late_minutes,
			daily_attendance, daily_overtime, daily_late, daily_site_address,
			basic_salary, overtime_pay, late_deduction, gross_pay,
			cash_advance, others_deduction, total_deductions, net_pay, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
		RETURNING ` + sitePayrollColumns

	created, err := scanSiteRecord(q.QueryRow(ctx, query,
		record.EmployeeID, record.EmployeeName, record.EmployeeCode, record.Position,
		record.PeriodStart, record.PeriodEnd, record.WorkingDays, record.OvertimeHours, record.LateMinutes,
		attendanceJSON, overtimeJSON, lateJSON, siteAddressJSON,
		record.BasicSalary, record.OvertimePay, record.LateDeduction, record.GrossPay,
		record.CashAdvance, record.OthersDeduction, record.TotalDeductions, record.NetPay, record.Status,
	))
	if err != nil {
		return payroll.SitePayroll{}, fmt.Errorf("failed to create site payroll record: %w", err)
	}

	return created, nil
}

func (r *payrollRepository) GetSiteRecordByID(ctx context.Context, id string) (payroll.SitePayroll, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `SELECT ` + sitePayrollColumns + ` FROM site_payrolls WHERE id = $1`

	rec, err := scanSiteRecord(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.SitePayroll{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.SitePayroll{}, fmt.Errorf("failed to get site payroll record: %w", err)
	}

	return rec, nil
}

func (r *payrollRepository) ListSiteRecords(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.SitePayroll, int64, error) {
	q := database.GetQuerier(ctx, r.db)

	where, args := buildPayrollFilter(filter)

	var totalCount int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM site_payrolls`+where, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count site payroll records: %w", err)
	}

	query := `SELECT ` + sitePayrollColumns + ` FROM site_payrolls` + where +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list site payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.SitePayroll
	for rows.Next() {
		rec, err := scanSiteRecord(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan site payroll record: %w", err)
		}
		records = append(records, rec)
	}

	return records, totalCount, rows.Err()
}

func (r *payrollRepository) UpdateSiteRecord(ctx context.Context, record payroll.SitePayroll) error {
	q := database.GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE site_payrolls
		SET status = $2, cash_advance = $3, others_deduction = $4,
			total_deductions = $5, net_pay = $6, updated_at = NOW()
		WHERE id = $1
	`, record.ID, record.Status, record.CashAdvance, record.OthersDeduction, record.TotalDeductions, record.NetPay)
	if err != nil {
		return fmt.Errorf("failed to update site payroll record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayrollRecordNotFound
	}

	return nil
}

func (r *payrollRepository) DeleteSiteRecord(ctx context.Context, id string) error {
	q := database.GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM site_payrolls WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete site payroll record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayrollRecordNotFound
	}

	return nil
}

// ========== OFFICE RECORDS ==========

const officePayrollColumns = `
	id, employee_id, employee_name, employee_code, position,
	period_start, period_end, total_working_days, total_late_minutes, total_overtime_hours,
	basic_salary, overtime_pay, late_deduction, gross_pay,
	cash_advance, others_deduction, total_deductions, net_pay,
	status, created_at, updated_at`

func scanOfficeRecord(row pgx.Row) (payroll.OfficePayroll, error) {
	var rec payroll.OfficePayroll
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.EmployeeName, &rec.EmployeeCode, &rec.Position,
		&rec.PeriodStart, &rec.PeriodEnd, &rec.TotalWorkingDays, &rec.TotalLateMinutes, &rec.TotalOvertimeHours,
		&rec.BasicSalary, &rec.OvertimePay, &rec.LateDeduction, &rec.GrossPay,
		&rec.CashAdvance, &rec.OthersDeduction, &rec.TotalDeductions, &rec.NetPay,
		&rec.Status, &rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}

func (r *payrollRepository) CreateOfficeRecord(ctx context.Context, record payroll.OfficePayroll) (payroll.OfficePayroll, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `
		INSERT INTO office_payrolls (
			employee_id, employee_name, employee_code, position,
			period_start, period_end, total_working_days, total_late_minutes, total_overtime_hours,
			basic_salary, overtime_pay, late_deduction, gross_pay,
			cash_advance, others_deduction, total_deductions, net_pay, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING ` + officePayrollColumns

	created, err := scanOfficeRecord(q.QueryRow(ctx, query,
		record.EmployeeID, record.EmployeeName, record.EmployeeCode, record.Position,
		record.PeriodStart, record.PeriodEnd, record.TotalWorkingDays, record.TotalLateMinutes, record.TotalOvertimeHours,
		record.BasicSalary, record.OvertimePay, record.LateDeduction, record.GrossPay,
		record.CashAdvance, record.OthersDeduction, record.TotalDeductions, record.NetPay, record.Status,
	))
	if err != nil {
		return payroll.OfficePayroll{}, fmt.Errorf("failed to create office payroll record: %w", err)
	}

	return created, nil
}

func (r *payrollRepository) GetOfficeRecordByID(ctx context.Context, id string) (payroll.OfficePayroll, error) {
	q := database.GetQuerier(ctx, r.db)

	query := `SELECT ` + officePayrollColumns + ` FROM office_payrolls WHERE id = $1`

	rec, err := scanOfficeRecord(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.OfficePayroll{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.OfficePayroll{}, fmt.Errorf("failed to get office payroll record: %w", err)
	}

	return rec, nil
}

func (r *payrollRepository) ListOfficeRecords(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.OfficePayroll, int64, error) {
	q := database.GetQuerier(ctx, r.db)

	where, args := buildPayrollFilter(filter)

	var totalCount int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM office_payrolls`+where, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count office payroll records: %w", err)
	}

	query := `SELECT ` + officePayrollColumns + ` FROM office_payrolls` + where +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list office payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.OfficePayroll
	for rows.Next() {
		rec, err := scanOfficeRecord(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan office payroll record: %w", err)
		}
		records = append(records, rec)
	}

	return records, totalCount, rows.Err()
}

func (r *payrollRepository) UpdateOfficeRecord(ctx context.Context, record payroll.OfficePayroll) error {
	q := database.GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE office_payrolls
		SET status = $2, cash_advance = $3, others_deduction = $4,
			total_deductions = $5, net_pay = $6, updated_at = NOW()
		WHERE id = $1
	`, record.ID, record.Status, record.CashAdvance, record.OthersDeduction, record.TotalDeductions, record.NetPay)
	if err != nil {
		return fmt.Errorf("failed to update office payroll record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayrollRecordNotFound
	}

	return nil
}

func (r *payrollRepository) DeleteOfficeRecord(ctx context.Context, id string) error {
	q := database.GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM office_payrolls WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete office payroll record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayrollRecordNotFound
	}

	return nil
}

// ========== FILTER ==========

func buildPayrollFilter(filter payroll.PayrollFilter) (string, []interface{}) {
	var conds []string
	var args []interface{}

	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		conds = append(conds, fmt.Sprintf("employee_id = $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}

	if len(conds) == 0 {
		return "", args
	}

	where := " WHERE " + conds[0]
	for _, c := range conds[1:] {
		where += " AND " + c
	}
	return where, args
}
