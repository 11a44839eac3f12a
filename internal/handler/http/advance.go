package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sitepay/sitepay-backend-go/internal/domain/advance"
	"github.com/sitepay/sitepay-backend-go/internal/handler/http/response"
)

type AdvanceHandler interface {
	GetActiveAdvance(w http.ResponseWriter, r *http.Request)
	GetAdvanceHistory(w http.ResponseWriter, r *http.Request)
}

type advanceHandlerImpl struct {
	advanceService advance.AdvanceService
}

func NewAdvanceHandler(advanceService advance.AdvanceService) AdvanceHandler {
	return &advanceHandlerImpl{
		advanceService: advanceService,
	}
}

// GetActiveAdvance implements AdvanceHandler
func (h *advanceHandlerImpl) GetActiveAdvance(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	pair, err := h.advanceService.ActivePair(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, mapPairResponse(pair))
}

// GetAdvanceHistory implements AdvanceHandler
func (h *advanceHandlerImpl) GetAdvanceHistory(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	history, err := h.advanceService.History(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, history)
}

func mapPairResponse(pair advance.Pair) advance.PairResponse {
	var resp advance.PairResponse

	if pair.Advance != nil {
		resp.Advance = &advance.CashAdvanceResponse{
			ID:               pair.Advance.ID,
			EmployeeID:       pair.Advance.EmployeeID,
			Amount:           pair.Advance.Amount,
			RemainingBalance: pair.Advance.RemainingBalance,
			Status:           string(pair.Advance.Status),
			CreatedAt:        pair.Advance.CreatedAt.Format(time.RFC3339),
		}
	}
	if pair.Deduction != nil {
		resp.Deduction = &advance.EmergencyDeductionResponse{
			ID:            pair.Deduction.ID,
			EmployeeID:    pair.Deduction.EmployeeID,
			CashAdvanceID: pair.Deduction.CashAdvanceID,
			Amount:        pair.Deduction.Amount,
			Status:        string(pair.Deduction.Status),
		}
	}

	return resp
}
