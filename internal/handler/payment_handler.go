// internal/handler/payment_handler.go
package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"homework-service/internal/domain"
	"homework-service/internal/provider/airtel"
	"homework-service/internal/provider/mpesa"
	"homework-service/internal/provider/paypal"
	"homework-service/pkg/response"

	"go.uber.org/zap"
)

type PaymentHandler struct {
	mpesa  mpesa.Provider
	paypal *paypal.Simulator
	airtel *airtel.Mock
	logger *zap.Logger
}

func NewPaymentHandler(
	mpesaProvider mpesa.Provider,
	paypalSimulator *paypal.Simulator,
	airtelMock *airtel.Mock,
	logger *zap.Logger,
) *PaymentHandler {
	return &PaymentHandler{
		mpesa:  mpesaProvider,
		paypal: paypalSimulator,
		airtel: airtelMock,
		logger: logger,
	}
}

// HandleMpesa initiates an STK push (real or mocked, fixed at startup)
// and passes the provider payload through verbatim.
func (h *PaymentHandler) HandleMpesa(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req domain.MobilePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode mpesa request", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	amount := 0.0
	if req.Amount != nil {
		amount = *req.Amount
	}

	payload, err := h.mpesa.InitiateSTKPush(ctx, req.Phone, amount)
	if err != nil {
		h.logger.Error("M-Pesa error",
			zap.String("phone", req.Phone),
			zap.Float64("amount", amount),
			zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "M-Pesa payment failed")
		return
	}

	response.Raw(w, http.StatusOK, payload)
}

// HandlePayPal runs the card/wallet payment through the mock simulator.
func (h *PaymentHandler) HandlePayPal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req domain.CardPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode paypal request", zap.Error(err))
		response.PaymentFailure(w, http.StatusBadRequest,
			string(domain.StatusError), "Invalid request body.")
		return
	}

	resp, err := h.paypal.Charge(ctx, &req)
	if err != nil {
		h.writePaymentError(w, "paypal", err)
		return
	}

	response.JSON(w, http.StatusOK, resp)
}

// HandleAirtel runs the mobile-money payment through the airtel mock.
func (h *PaymentHandler) HandleAirtel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req domain.MobilePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode airtel request", zap.Error(err))
		response.PaymentFailure(w, http.StatusBadRequest,
			string(domain.StatusError), "Invalid request body.")
		return
	}

	resp, err := h.airtel.Pay(ctx, &req)
	if err != nil {
		h.writePaymentError(w, "airtel", err)
		return
	}

	response.JSON(w, http.StatusOK, resp)
}

// HandleMpesaCallback receives the asynchronous STK push result, logs the
// outcome and acknowledges receipt.
func (h *PaymentHandler) HandleMpesaCallback(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		h.logger.Error("failed to read mpesa callback body", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	result, err := mpesa.ParseSTKCallback(payload)
	if err != nil {
		h.logger.Error("failed to parse mpesa callback", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "invalid callback payload")
		return
	}

	h.logger.Info("mpesa stk callback received",
		zap.String("merchant_request_id", result.MerchantRequestID),
		zap.String("checkout_request_id", result.CheckoutRequestID),
		zap.String("result_code", result.ResultCode),
		zap.String("result_desc", result.ResultDescription),
		zap.Bool("success", result.Success),
		zap.Float64("amount", result.Amount),
		zap.String("receipt", result.ReceiptNumber),
		zap.String("phone", result.PhoneNumber))

	response.JSON(w, http.StatusOK, map[string]interface{}{
		"ResultCode": 0,
		"ResultDesc": "Accepted",
	})
}

func (h *PaymentHandler) writePaymentError(w http.ResponseWriter, provider string, err error) {
	var paymentErr *domain.PaymentError
	if errors.As(err, &paymentErr) {
		h.logger.Info("payment rejected",
			zap.String("provider", provider),
			zap.Int("code", paymentErr.Code),
			zap.String("message", paymentErr.Message))
		response.PaymentFailure(w, paymentErr.Code,
			string(paymentErr.Status), paymentErr.Message)
		return
	}

	h.logger.Error("payment failed",
		zap.String("provider", provider),
		zap.Error(err))
	response.PaymentFailure(w, http.StatusInternalServerError,
		string(domain.StatusFailed), "Payment could not be processed.")
}
