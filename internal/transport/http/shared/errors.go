package shared

import (
	"errors"
	"net/http"

	"paydesk/internal/domain/auth"
	"paydesk/internal/domain/core"
	"paydesk/internal/domain/payroll"
	"paydesk/internal/transport/http/api"
)

// WriteError translates the domain error kinds to HTTP statuses at the
// boundary of the triggering action. Anything unrecognized is reported
// as a store failure.
func WriteError(w http.ResponseWriter, err error, requestID string) {
	var validationErr *core.ValidationError
	var inputErr *payroll.InvalidInputError

	switch {
	case errors.As(err, &validationErr):
		api.Fail(w, http.StatusBadRequest, "validation_error", validationErr.Error(), requestID)
	case errors.As(err, &inputErr):
		api.Fail(w, http.StatusBadRequest, "invalid_input", inputErr.Error(), requestID)
	case errors.Is(err, core.ErrEmployeeNotFound), errors.Is(err, payroll.ErrSalaryNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", err.Error(), requestID)
	case errors.Is(err, core.ErrEmployeeExists):
		api.Fail(w, http.StatusConflict, "conflict", err.Error(), requestID)
	case errors.Is(err, auth.ErrPermissionDenied):
		api.Fail(w, http.StatusForbidden, "permission_denied", err.Error(), requestID)
	case errors.Is(err, auth.ErrInvalidCredentials):
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", err.Error(), requestID)
	default:
		api.Fail(w, http.StatusInternalServerError, "store_error", "operation failed", requestID)
	}
}
