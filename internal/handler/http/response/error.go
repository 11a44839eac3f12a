package response

import (
	"errors"
	"net/http"

	"github.com/sitepay/sitepay-backend-go/internal/domain/advance"
	"github.com/sitepay/sitepay-backend-go/internal/domain/auth"
	"github.com/sitepay/sitepay-backend-go/internal/domain/employee"
	"github.com/sitepay/sitepay-backend-go/internal/domain/payroll"
	"github.com/sitepay/sitepay-backend-go/internal/domain/user"
	"github.com/sitepay/sitepay-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	case errors.Is(err, employee.ErrEmployeeNotFound),
		errors.Is(err, payroll.ErrPayrollRecordNotFound),
		errors.Is(err, advance.ErrAdvanceNotFound),
		errors.Is(err, advance.ErrNoActiveAdvance),
		errors.Is(err, user.ErrUserNotFound):
		NotFound(w, err.Error())

	case errors.Is(err, payroll.ErrNotSiteEmployee),
		errors.Is(err, payroll.ErrNotOfficeEmployee),
		errors.Is(err, payroll.ErrInvalidStatus),
		errors.Is(err, advance.ErrInvalidAmount),
		errors.Is(err, advance.ErrNegativeDeduction):
		BadRequest(w, err.Error(), nil)

	case errors.Is(err, advance.ErrActiveAdvanceExists),
		errors.Is(err, employee.ErrEmployeeCodeExists),
		errors.Is(err, user.ErrEmailExists):
		Conflict(w, err.Error())

	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenExpired),
		errors.Is(err, auth.ErrRefreshTokenRevoked),
		errors.Is(err, auth.ErrOAuthEmailNotFound):
		Unauthorized(w, err.Error())

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
