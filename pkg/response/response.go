package response

import (
	"encoding/json"
	"net/http"
)

// JSON writes v as the response body.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Raw writes a pre-encoded JSON body, used for upstream passthrough.
func Raw(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// Error writes the {"error": ...} failure shape used by /ask and
// /pay-mpesa.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

// PaymentFailure writes the {"status": ..., "message": ...} failure shape
// used by the pay-paypal and pay-airtel endpoints.
func PaymentFailure(w http.ResponseWriter, code int, status, message string) {
	JSON(w, code, map[string]string{
		"status":  status,
		"message": message,
	})
}
