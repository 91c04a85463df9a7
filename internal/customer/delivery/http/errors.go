package http

import (
	"errors"
	"net/http"

	"support-router/internal/customer"
	pkgErrors "support-router/pkg/errors"
)

var errInvalidID = pkgErrors.NewHTTPError(http.StatusBadRequest, "id must be a positive integer")

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, customer.ErrCustomerNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case customer.IsValidation(err):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
