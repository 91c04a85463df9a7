package http

import (
	"errors"
	"net/http"

	"support-router/internal/customer"
	"support-router/internal/support"
	pkgErrors "support-router/pkg/errors"
)

var errWrongBody = pkgErrors.NewHTTPError(http.StatusBadRequest, "customer_id must be a positive integer")

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, customer.ErrCustomerNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, support.ErrInvalidCustomerID), customer.IsValidation(err):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
