// internal/domain/errors.go
package domain

import "net/http"

// PaymentError carries the HTTP status and the wire-level status/message
// pair for every rejection a payment provider can produce. Handlers map
// anything that is not a *PaymentError to a generic 500.
type PaymentError struct {
	Code    int
	Status  Status
	Message string
}

func (e *PaymentError) Error() string {
	return e.Message
}

// NewValidationError rejects malformed or out-of-range input.
func NewValidationError(message string) *PaymentError {
	return &PaymentError{
		Code:    http.StatusBadRequest,
		Status:  StatusError,
		Message: message,
	}
}

// NewRateLimitError rejects a request over the per-email sliding window.
func NewRateLimitError(message string) *PaymentError {
	return &PaymentError{
		Code:    http.StatusTooManyRequests,
		Status:  StatusFailed,
		Message: message,
	}
}

// NewDuplicateError rejects a replayed (email, amount, reference) triple.
func NewDuplicateError(message string) *PaymentError {
	return &PaymentError{
		Code:    http.StatusConflict,
		Status:  StatusFailed,
		Message: message,
	}
}

// NewSimulatedFailure models a deliberate provider failure, either the
// reserved sentinel amount (400) or random instability (500).
func NewSimulatedFailure(code int, message string) *PaymentError {
	return &PaymentError{
		Code:    code,
		Status:  StatusFailed,
		Message: message,
	}
}
