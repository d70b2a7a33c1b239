package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Business-rule and lookup failures surfaced to the caller as user-facing
// messages. Handlers map these to HTTP status codes.
var (
	ErrSlotUnavailable = stderrors.New("selected time slot is not available")
	ErrAlreadyReserved = stderrors.New("parking slot is already reserved for this date")
	ErrNotFound        = stderrors.New("not found")
	ErrInvalidSlot     = stderrors.New("invalid parking slot")
	ErrEmailTaken      = stderrors.New("email is already registered")

	ErrTooManyVisitors    = stderrors.New("too many additional visitors on one booking")
	ErrUnsupportedPayment = stderrors.New("unsupported payment method")
	ErrAlreadyPaid        = stderrors.New("payment is already completed")
)

// ValidationError reports missing or malformed request fields. It is always
// surfaced to the caller verbatim and never fatal.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid or missing fields: " + strings.Join(e.Fields, ", ")
}

// NewValidationError builds a ValidationError for the given field names.
func NewValidationError(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// PersistenceError wraps an underlying store failure. The wrapped error is
// logged; callers only see a generic message.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// NewPersistenceError wraps err with the failing operation name.
func NewPersistenceError(op string, err error) *PersistenceError {
	return &PersistenceError{Op: op, Err: err}
}
