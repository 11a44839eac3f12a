package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sitepay/sitepay-backend-go/internal/domain/payroll"
	"github.com/sitepay/sitepay-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	ProcessSitePayroll(w http.ResponseWriter, r *http.Request)
	GetSitePayroll(w http.ResponseWriter, r *http.Request)
	ListSitePayrolls(w http.ResponseWriter, r *http.Request)
	UpdateSitePayroll(w http.ResponseWriter, r *http.Request)
	DeleteSitePayroll(w http.ResponseWriter, r *http.Request)

	ProcessOfficePayroll(w http.ResponseWriter, r *http.Request)
	GetOfficePayroll(w http.ResponseWriter, r *http.Request)
	ListOfficePayrolls(w http.ResponseWriter, r *http.Request)
	UpdateOfficePayroll(w http.ResponseWriter, r *http.Request)
	DeleteOfficePayroll(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	siteService   payroll.SitePayrollService
	officeService payroll.OfficePayrollService
}

func NewPayrollHandler(siteService payroll.SitePayrollService, officeService payroll.OfficePayrollService) PayrollHandler {
	return &payrollHandlerImpl{
		siteService:   siteService,
		officeService: officeService,
	}
}

func parsePayrollFilter(r *http.Request) payroll.PayrollFilter {
	var filter payroll.PayrollFilter

	if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
		filter.EmployeeID = &employeeID
	}
	if status := r.URL.Query().Get("status"); status != "" {
		filter.Status = &status
	}
	if p := r.URL.Query().Get("page"); p != "" {
		if page, err := strconv.Atoi(p); err == nil && page > 0 {
			filter.Page = page
		}
	}
	if l := r.URL.Query().Get("limit"); l != "" {
		if limit, err := strconv.Atoi(l); err == nil && limit > 0 {
			filter.Limit = limit
		}
	}

	return filter
}

// ProcessSitePayroll implements PayrollHandler
func (h *payrollHandlerImpl) ProcessSitePayroll(w http.ResponseWriter, r *http.Request) {
	var req payroll.ProcessSitePayrollRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ProcessSitePayroll decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.siteService.ProcessPayroll(r.Context(), req)
	if err != nil {
		slog.Error("ProcessSitePayroll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll processed successfully", result)
}

// GetSitePayroll implements PayrollHandler
func (h *payrollHandlerImpl) GetSitePayroll(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payroll ID is required", nil)
		return
	}

	result, err := h.siteService.GetPayroll(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListSitePayrolls implements PayrollHandler
func (h *payrollHandlerImpl) ListSitePayrolls(w http.ResponseWriter, r *http.Request) {
	result, err := h.siteService.ListPayrolls(r.Context(), parsePayrollFilter(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateSitePayroll implements PayrollHandler
func (h *payrollHandlerImpl) UpdateSitePayroll(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payroll ID is required", nil)
		return
	}

	var req payroll.UpdatePayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateSitePayroll decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	result, err := h.siteService.UpdatePayroll(r.Context(), req)
	if err != nil {
		slog.Error("UpdateSitePayroll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll updated successfully", result)
}

// DeleteSitePayroll implements PayrollHandler
func (h *payrollHandlerImpl) DeleteSitePayroll(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payroll ID is required", nil)
		return
	}

	if err := h.siteService.DeletePayroll(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll deleted successfully", nil)
}

// ProcessOfficePayroll implements PayrollHandler
func (h *payrollHandlerImpl) ProcessOfficePayroll(w http.ResponseWriter, r *http.Request) {
	var req payroll.ProcessOfficePayrollRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ProcessOfficePayroll decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.officeService.ProcessPayroll(r.Context(), req)
	if err != nil {
		slog.Error("ProcessOfficePayroll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll processed successfully", result)
}

// GetOfficePayroll implements PayrollHandler
func (h *payrollHandlerImpl) GetOfficePayroll(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payroll ID is required", nil)
		return
	}

	result, err := h.officeService.GetPayroll(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListOfficePayrolls implements PayrollHandler
func (h *payrollHandlerImpl) ListOfficePayrolls(w http.ResponseWriter, r *http.Request) {
	result, err := h.officeService.ListPayrolls(r.Context(), parsePayrollFilter(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateOfficePayroll implements PayrollHandler
func (h *payrollHandlerImpl) UpdateOfficePayroll(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payroll ID is required", nil)
		return
	}

	var req payroll.UpdatePayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateOfficePayroll decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	result, err := h.officeService.UpdatePayroll(r.Context(), req)
	if err != nil {
		slog.Error("UpdateOfficePayroll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll updated successfully", result)
}

// DeleteOfficePayroll implements PayrollHandler
func (h *payrollHandlerImpl) DeleteOfficePayroll(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payroll ID is required", nil)
		return
	}

	if err := h.officeService.DeletePayroll(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll deleted successfully", nil)
}
