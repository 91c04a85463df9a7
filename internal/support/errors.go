package support

import "errors"

var (
	ErrInvalidCustomerID = errors.New("customer id must be positive")
	ErrMissingCustomer   = errors.New("history has no customer")
)
