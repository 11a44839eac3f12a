package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitepay/sitepay-backend-go/internal/domain/advance"
	"github.com/sitepay/sitepay-backend-go/internal/domain/auth"
	"github.com/sitepay/sitepay-backend-go/internal/domain/employee"
	"github.com/sitepay/sitepay-backend-go/internal/domain/payroll"
	"github.com/sitepay/sitepay-backend-go/internal/pkg/validator"
)

func TestHandleError_StatusMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"employee not found", employee.ErrEmployeeNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"payroll record not found", payroll.ErrPayrollRecordNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"no active advance", advance.ErrNoActiveAdvance, http.StatusNotFound, "NOT_FOUND"},
		{"classification mismatch", payroll.ErrNotSiteEmployee, http.StatusBadRequest, "BAD_REQUEST"},
		{"negative deduction", advance.ErrNegativeDeduction, http.StatusBadRequest, "BAD_REQUEST"},
		{"active advance exists", advance.ErrActiveAdvanceExists, http.StatusConflict, "CONFLICT"},
		{"duplicate employee code", employee.ErrEmployeeCodeExists, http.StatusConflict, "CONFLICT"},
		{"invalid credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"unexpected error", errors.New("pool exhausted"), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, c.err)

			assert.Equal(t, c.wantStatus, rec.Code)

			var body Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, c.wantCode, body.Error.Code)
		})
	}
}

func TestHandleError_ValidationErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, validator.ValidationErrors{
		{Field: "employee_id", Message: "is required"},
		{Field: "cash_advance", Message: "must be non-negative"},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
	assert.Equal(t, "is required", body.Error.Details["employee_id"])
	assert.Equal(t, "must be non-negative", body.Error.Details["cash_advance"])
}

func TestHandleError_WrappedErrorsStillMap(t *testing.T) {
	rec := httptest.NewRecorder()
	wrapped := errors.Join(errors.New("processing payroll"), advance.ErrActiveAdvanceExists)
	HandleError(rec, wrapped)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestInternalServerError_HidesDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, errors.New("dial tcp 10.0.0.5:5432: connection refused"))

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.NotContains(t, body.Error.Message, "10.0.0.5")
}
