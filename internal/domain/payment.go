// internal/domain/payment.go
package domain

import (
	"time"
)

type Status string

const (
	StatusSuccess Status = "SUCCESS"
	StatusFailed  Status = "FAILED"
	StatusError   Status = "ERROR"
)

// PaymentLogEntry is one line of the append-only card/wallet payment log.
// Entries are appended in request order and never rewritten; the log is
// also the index used for rate limiting and duplicate detection.
type PaymentLogEntry struct {
	TransactionID string    `json:"transactionId"`
	Email         string    `json:"email"`
	Amount        float64   `json:"amount"`
	Reference     string    `json:"reference"`
	Timestamp     time.Time `json:"timestamp"`
}

// CardPaymentRequest is the body of POST /pay-paypal.
type CardPaymentRequest struct {
	Email     string  `json:"email"`
	Amount    float64 `json:"amount"`
	Reference string  `json:"reference,omitempty"`
}

// CardPaymentResponse is the success payload of POST /pay-paypal.
type CardPaymentResponse struct {
	TransactionID string    `json:"transactionId"`
	Reference     string    `json:"reference"`
	Status        Status    `json:"status"`
	Message       string    `json:"message"`
	Email         string    `json:"email"`
	Amount        float64   `json:"amount"`
	Timestamp     time.Time `json:"timestamp"`
}

// MobilePaymentRequest is the body of POST /pay-mpesa and POST /pay-airtel.
// Amount is a pointer so a missing field can be told apart from zero.
type MobilePaymentRequest struct {
	Phone  string   `json:"phone"`
	Amount *float64 `json:"amount"`
}

// MobilePaymentResponse is the success payload of the airtel mock.
type MobilePaymentResponse struct {
	TransactionID string    `json:"transactionId"`
	Status        Status    `json:"status"`
	Message       string    `json:"message"`
	Phone         string    `json:"phone"`
	Amount        float64   `json:"amount"`
	Timestamp     time.Time `json:"timestamp"`
}
