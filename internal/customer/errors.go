package customer

import "errors"

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrNoUpdateFields   = errors.New("no fields provided for update")
	ErrNoValidFields    = errors.New("no valid fields in update payload")
	ErrEmptyIssue       = errors.New("ticket issue cannot be empty")
	ErrInvalidPriority  = errors.New("invalid priority: must be low, medium or high")
	ErrInvalidID        = errors.New("customer id must be positive")
)

// IsValidation reports whether err is a caller mistake rather than a lookup miss or storage failure.
func IsValidation(err error) bool {
	return errors.Is(err, ErrNoUpdateFields) ||
		errors.Is(err, ErrNoValidFields) ||
		errors.Is(err, ErrEmptyIssue) ||
		errors.Is(err, ErrInvalidPriority) ||
		errors.Is(err, ErrInvalidID)
}
