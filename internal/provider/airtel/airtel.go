// internal/provider/airtel/airtel.go
package airtel

import (
	"context"
	"time"

	"homework-service/internal/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	minAmount = 10
	maxAmount = 70000
)

// Mock is the Airtel Money provider. It has no real mode: payments are
// validated, normalized and accepted locally with no rate limiting,
// logging or duplicate detection.
type Mock struct {
	logger *zap.Logger
	now    func() time.Time
}

func NewMock(logger *zap.Logger) *Mock {
	return &Mock{
		logger: logger,
		now:    time.Now,
	}
}

// Pay validates the phone and amount, normalizes 07XXXXXXXX numbers to
// the 254 form, and synthesizes a success payload.
func (m *Mock) Pay(ctx context.Context, req *domain.MobilePaymentRequest) (*domain.MobilePaymentResponse, error) {
	if req.Phone == "" || req.Amount == nil {
		return nil, domain.NewValidationError("Phone and amount are required.")
	}

	phone, ok := domain.NormalizePhone(req.Phone)
	if !ok {
		return nil, domain.NewValidationError("Invalid phone. Use format 07XXXXXXXX or 2547XXXXXXXX.")
	}

	if !domain.ValidAmount(*req.Amount, minAmount, maxAmount) {
		return nil, domain.NewValidationError("Amount must be a number between 10 and 70,000.")
	}

	transactionID := uuid.NewString()
	timestamp := m.now().UTC()

	m.logger.Info("mock airtel money payment accepted",
		zap.String("transaction_id", transactionID),
		zap.String("phone", phone),
		zap.Float64("amount", *req.Amount))

	return &domain.MobilePaymentResponse{
		TransactionID: transactionID,
		Status:        domain.StatusSuccess,
		Message:       "Mock Airtel Money payment accepted.",
		Phone:         phone,
		Amount:        *req.Amount,
		Timestamp:     timestamp,
	}, nil
}
