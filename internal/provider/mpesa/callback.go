// internal/provider/mpesa/callback.go
package mpesa

import (
	"encoding/json"
	"fmt"
)

// STKCallbackRequest is the asynchronous result Safaricom posts to the
// configured callback URL after an STK push.
type STKCallbackRequest struct {
	Body struct {
		StkCallback struct {
			MerchantRequestID string `json:"MerchantRequestID"`
			CheckoutRequestID string `json:"CheckoutRequestID"`
			ResultCode        int    `json:"ResultCode"`
			ResultDesc        string `json:"ResultDesc"`
			CallbackMetadata  struct {
				Item []struct {
					Name  string      `json:"Name"`
					Value interface{} `json:"Value"`
				} `json:"Item"`
			} `json:"CallbackMetadata"`
		} `json:"stkCallback"`
	} `json:"Body"`
}

// CallbackResult is the flattened outcome of an STK callback.
type CallbackResult struct {
	MerchantRequestID string
	CheckoutRequestID string
	ResultCode        string
	ResultDescription string
	Success           bool
	Amount            float64
	ReceiptNumber     string
	PhoneNumber       string
}

// ParseSTKCallback flattens an STK callback payload. Metadata items are
// only present on success.
func ParseSTKCallback(payload []byte) (*CallbackResult, error) {
	var callback STKCallbackRequest
	if err := json.Unmarshal(payload, &callback); err != nil {
		return nil, fmt.Errorf("failed to parse callback: %w", err)
	}

	stkCallback := callback.Body.StkCallback

	result := &CallbackResult{
		MerchantRequestID: stkCallback.MerchantRequestID,
		CheckoutRequestID: stkCallback.CheckoutRequestID,
		ResultCode:        fmt.Sprintf("%d", stkCallback.ResultCode),
		ResultDescription: stkCallback.ResultDesc,
		Success:           stkCallback.ResultCode == 0,
	}

	if stkCallback.ResultCode == 0 {
		for _, item := range stkCallback.CallbackMetadata.Item {
			switch item.Name {
			case "Amount":
				if val, ok := item.Value.(float64); ok {
					result.Amount = val
				}
			case "MpesaReceiptNumber":
				if val, ok := item.Value.(string); ok {
					result.ReceiptNumber = val
				}
			case "PhoneNumber":
				switch val := item.Value.(type) {
				case string:
					result.PhoneNumber = val
				case float64:
					result.PhoneNumber = fmt.Sprintf("%.0f", val)
				}
			}
		}
	}

	return result, nil
}
