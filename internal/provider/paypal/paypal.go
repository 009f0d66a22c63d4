// internal/provider/paypal/paypal.go
package paypal

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"homework-service/internal/domain"
	"homework-service/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	minAmount      = 1
	maxAmount      = 10000
	sentinelAmount = 666

	rateLimitWindow = time.Minute
	rateLimitMax    = 3

	failureRate = 0.10
)

// FailurePolicy decides whether a request that passed every check is
// still failed, modelling transient provider instability. Injectable so
// tests can force either branch.
type FailurePolicy interface {
	Fail() bool
}

// RandomFailure fails with independent probability Rate per request.
type RandomFailure struct {
	Rate float64
}

func (p RandomFailure) Fail() bool {
	return rand.Float64() < p.Rate
}

// Simulator is the card/wallet mock provider. There is no real mode:
// every request runs the full validation, rate-limit, duplicate and
// instability pipeline against the append-only payment log.
type Simulator struct {
	log    repository.PaymentLogRepository
	policy FailurePolicy
	now    func() time.Time
	newRef func() string
	logger *zap.Logger

	// mu makes the read-check-append sequence atomic across concurrent
	// requests for the same email.
	mu sync.Mutex
}

func NewSimulator(log repository.PaymentLogRepository, logger *zap.Logger) *Simulator {
	return &Simulator{
		log:    log,
		policy: RandomFailure{Rate: failureRate},
		now:    time.Now,
		newRef: NewReference,
		logger: logger,
	}
}

// SetFailurePolicy replaces the instability policy, so tests can force
// either branch deterministically.
func (s *Simulator) SetFailurePolicy(policy FailurePolicy) {
	s.policy = policy
}

// Charge runs one payment through the mock pipeline. Checks short-circuit
// in order: email shape, amount range, sentinel amount, rate limit,
// duplicate, simulated instability. Exactly one log entry is appended on
// success, none on any rejection.
func (s *Simulator) Charge(ctx context.Context, req *domain.CardPaymentRequest) (*domain.CardPaymentResponse, error) {
	if !domain.ValidEmail(req.Email) {
		return nil, domain.NewValidationError("Invalid or missing email address.")
	}
	email := domain.NormalizeEmail(req.Email)

	if !domain.ValidAmount(req.Amount, minAmount, maxAmount) {
		return nil, domain.NewValidationError("Amount must be a number between 1 and 10,000.")
	}

	if req.Amount == sentinelAmount {
		return nil, domain.NewSimulatedFailure(http.StatusBadRequest,
			"Mock PayPal payment failed: 666 is not allowed (demo error).")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.log.List(ctx)
	if err != nil {
		// An unreadable log counts as empty, matching the missing-file case.
		s.logger.Warn("payment log unreadable, treating as empty", zap.Error(err))
		entries = nil
	}

	cutoff := s.now().Add(-rateLimitWindow)
	recent := 0
	for _, e := range entries {
		if e.Email == email && e.Timestamp.After(cutoff) {
			recent++
		}
	}
	if recent >= rateLimitMax {
		return nil, domain.NewRateLimitError(
			"Rate limit exceeded: Max 3 payments per minute per email.")
	}

	reference := req.Reference
	if reference == "" {
		reference = s.newRef()
	}
	for _, e := range entries {
		if e.Email == email && e.Amount == req.Amount && e.Reference == reference {
			return nil, domain.NewDuplicateError(
				"Duplicate payment detected for this email, amount, and reference.")
		}
	}

	if s.policy.Fail() {
		return nil, domain.NewSimulatedFailure(http.StatusInternalServerError,
			"Mock PayPal payment failed due to a simulated error.")
	}

	entry := &domain.PaymentLogEntry{
		TransactionID: uuid.NewString(),
		Email:         email,
		Amount:        req.Amount,
		Reference:     reference,
		Timestamp:     s.now().UTC(),
	}
	if err := s.log.Append(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	s.logger.Info("mock paypal payment accepted",
		zap.String("transaction_id", entry.TransactionID),
		zap.String("email", email),
		zap.Float64("amount", req.Amount),
		zap.String("reference", reference))

	return &domain.CardPaymentResponse{
		TransactionID: entry.TransactionID,
		Reference:     reference,
		Status:        domain.StatusSuccess,
		Message:       "Mock PayPal payment accepted.",
		Email:         email,
		Amount:        req.Amount,
		Timestamp:     entry.Timestamp,
	}, nil
}

const referenceCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewReference generates a fresh PAYPAL-XXXXXXXX reference with an
// 8-character uppercase alphanumeric suffix.
func NewReference() string {
	suffix := make([]byte, 8)
	for i := range suffix {
		suffix[i] = referenceCharset[rand.Intn(len(referenceCharset))]
	}
	return "PAYPAL-" + string(suffix)
}
