// internal/provider/mpesa/mpesa.go
package mpesa

import (
	"context"
	"encoding/json"
)

// Provider initiates an STK push. The returned payload is written to the
// client verbatim: the real client passes the upstream response through,
// the mock returns a fixed synthetic confirmation.
type Provider interface {
	InitiateSTKPush(ctx context.Context, phone string, amount float64) (json.RawMessage, error)
}

// STKPushRequest is the Lipa Na M-Pesa Online request payload.
type STKPushRequest struct {
	BusinessShortCode string `json:"BusinessShortCode"`
	Password          string `json:"Password"`
	Timestamp         string `json:"Timestamp"`
	TransactionType   string `json:"TransactionType"`
	Amount            int    `json:"Amount"`
	PartyA            string `json:"PartyA"`
	PartyB            string `json:"PartyB"`
	PhoneNumber       string `json:"PhoneNumber"`
	CallBackURL       string `json:"CallBackURL"`
	AccountReference  string `json:"AccountReference"`
	TransactionDesc   string `json:"TransactionDesc"`
}

// STKPushResponse is the Lipa Na M-Pesa Online response payload.
type STKPushResponse struct {
	MerchantRequestID   string `json:"MerchantRequestID"`
	CheckoutRequestID   string `json:"CheckoutRequestID"`
	ResponseCode        string `json:"ResponseCode"`
	ResponseDescription string `json:"ResponseDescription"`
	CustomerMessage     string `json:"CustomerMessage"`
}

// MockProvider accepts every payment unconditionally with a constant
// checkout request id. There is deliberately no failure branch.
type MockProvider struct{}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (m *MockProvider) InitiateSTKPush(ctx context.Context, phone string, amount float64) (json.RawMessage, error) {
	response := STKPushResponse{
		MerchantRequestID:   "12345",
		CheckoutRequestID:   "MOCK123456789",
		ResponseCode:        "0",
		ResponseDescription: "Mock payment accepted",
		CustomerMessage:     "This is a mock payment confirmation.",
	}
	return json.Marshal(response)
}
