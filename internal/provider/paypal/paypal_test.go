package paypal

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"homework-service/internal/domain"
	"homework-service/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubPolicy struct {
	fail bool
}

func (p stubPolicy) Fail() bool { return p.fail }

func newTestSimulator(t *testing.T, now time.Time) *Simulator {
	t.Helper()
	log := repository.NewFilePaymentLog(filepath.Join(t.TempDir(), "payments.log"))
	s := NewSimulator(log, zap.NewNop())
	s.policy = stubPolicy{fail: false}
	s.now = func() time.Time { return now }
	return s
}

func paymentError(t *testing.T, err error) *domain.PaymentError {
	t.Helper()
	var paymentErr *domain.PaymentError
	require.True(t, errors.As(err, &paymentErr), "expected *domain.PaymentError, got %v", err)
	return paymentErr
}

func TestChargeSuccessAppendsEntry(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	s := newTestSimulator(t, now)
	ctx := context.Background()

	resp, err := s.Charge(ctx, &domain.CardPaymentRequest{
		Email:  "Student@Example.COM",
		Amount: 250,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusSuccess, resp.Status)
	assert.Equal(t, "Mock PayPal payment accepted.", resp.Message)
	assert.Equal(t, "student@example.com", resp.Email, "email is lowercased before anything else")
	assert.Equal(t, 250.0, resp.Amount)
	assert.True(t, resp.Timestamp.Equal(now))

	_, err = uuid.Parse(resp.TransactionID)
	assert.NoError(t, err, "transaction id should be a UUID")
	assert.Regexp(t, regexp.MustCompile(`^PAYPAL-[A-Z0-9]{8}$`), resp.Reference)

	entries, err := s.log.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, resp.TransactionID, entries[0].TransactionID)
	assert.Equal(t, "student@example.com", entries[0].Email)
}

func TestChargeInvalidEmail(t *testing.T) {
	s := newTestSimulator(t, time.Now())

	for _, email := range []string{"", "nope", "no@tld", "white space@x.com"} {
		_, err := s.Charge(context.Background(), &domain.CardPaymentRequest{Email: email, Amount: 10})
		perr := paymentError(t, err)
		assert.Equal(t, http.StatusBadRequest, perr.Code, "email %q", email)
		assert.Equal(t, domain.StatusError, perr.Status)
		assert.Equal(t, "Invalid or missing email address.", perr.Message)
	}
}

func TestChargeAmountOutOfRange(t *testing.T) {
	s := newTestSimulator(t, time.Now())

	for _, amount := range []float64{0, 0.5, -5, 10001} {
		_, err := s.Charge(context.Background(), &domain.CardPaymentRequest{Email: "a@b.co", Amount: amount})
		perr := paymentError(t, err)
		assert.Equal(t, http.StatusBadRequest, perr.Code, "amount %v", amount)
		assert.Equal(t, "Amount must be a number between 1 and 10,000.", perr.Message)
	}
}

func TestChargeSentinelAmountAlwaysFails(t *testing.T) {
	s := newTestSimulator(t, time.Now())

	_, err := s.Charge(context.Background(), &domain.CardPaymentRequest{Email: "a@b.co", Amount: 666})
	perr := paymentError(t, err)
	assert.Equal(t, http.StatusBadRequest, perr.Code)
	assert.Equal(t, domain.StatusFailed, perr.Status)
	assert.Equal(t, "Mock PayPal payment failed: 666 is not allowed (demo error).", perr.Message)

	// No entry is appended on rejection.
	entries, listErr := s.log.List(context.Background())
	require.NoError(t, listErr)
	assert.Empty(t, entries)
}

func TestChargeRateLimitSlidingWindow(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	s := newTestSimulator(t, now)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := s.Charge(ctx, &domain.CardPaymentRequest{Email: "a@b.co", Amount: float64(10 + i)})
		require.NoError(t, err)
	}

	// 4th payment within the window is rejected regardless of amount.
	_, err := s.Charge(ctx, &domain.CardPaymentRequest{Email: "a@b.co", Amount: 999})
	perr := paymentError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, perr.Code)
	assert.Equal(t, "Rate limit exceeded: Max 3 payments per minute per email.", perr.Message)

	// Other emails are unaffected.
	_, err = s.Charge(ctx, &domain.CardPaymentRequest{Email: "other@b.co", Amount: 50})
	assert.NoError(t, err)

	// Once the window slides past the earlier payments, the email is
	// allowed again.
	s.now = func() time.Time { return now.Add(61 * time.Second) }
	_, err = s.Charge(ctx, &domain.CardPaymentRequest{Email: "a@b.co", Amount: 999})
	assert.NoError(t, err)
}

func TestChargeRateLimitIsCaseNormalized(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	s := newTestSimulator(t, now)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := s.Charge(ctx, &domain.CardPaymentRequest{Email: "A@B.CO", Amount: float64(10 + i)})
		require.NoError(t, err)
	}

	_, err := s.Charge(ctx, &domain.CardPaymentRequest{Email: "a@b.co", Amount: 500})
	perr := paymentError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, perr.Code)
}

func TestChargeDuplicateTriple(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	s := newTestSimulator(t, now)
	ctx := context.Background()

	req := &domain.CardPaymentRequest{Email: "a@b.co", Amount: 75, Reference: "ORDER-1"}
	_, err := s.Charge(ctx, req)
	require.NoError(t, err)

	// Move past the rate window so only the duplicate check can trip.
	s.now = func() time.Time { return now.Add(2 * time.Minute) }

	_, err = s.Charge(ctx, req)
	perr := paymentError(t, err)
	assert.Equal(t, http.StatusConflict, perr.Code)
	assert.Equal(t, "Duplicate payment detected for this email, amount, and reference.", perr.Message)

	// A different amount with the same reference is not a duplicate.
	_, err = s.Charge(ctx, &domain.CardPaymentRequest{Email: "a@b.co", Amount: 76, Reference: "ORDER-1"})
	assert.NoError(t, err)
}

func TestChargeGeneratedReferencesAvoidDuplicates(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	s := newTestSimulator(t, now)
	ctx := context.Background()

	refs := []string{"PAYPAL-AAAAAAAA", "PAYPAL-BBBBBBBB"}
	s.newRef = func() string {
		ref := refs[0]
		refs = refs[1:]
		return ref
	}

	first, err := s.Charge(ctx, &domain.CardPaymentRequest{Email: "a@b.co", Amount: 20})
	require.NoError(t, err)
	assert.Equal(t, "PAYPAL-AAAAAAAA", first.Reference)

	second, err := s.Charge(ctx, &domain.CardPaymentRequest{Email: "a@b.co", Amount: 20})
	require.NoError(t, err)
	assert.Equal(t, "PAYPAL-BBBBBBBB", second.Reference)
}

func TestChargeSimulatedInstability(t *testing.T) {
	s := newTestSimulator(t, time.Now())
	s.policy = stubPolicy{fail: true}

	_, err := s.Charge(context.Background(), &domain.CardPaymentRequest{Email: "a@b.co", Amount: 10})
	perr := paymentError(t, err)
	assert.Equal(t, http.StatusInternalServerError, perr.Code)
	assert.Equal(t, domain.StatusFailed, perr.Status)
	assert.Equal(t, "Mock PayPal payment failed due to a simulated error.", perr.Message)

	entries, listErr := s.log.List(context.Background())
	require.NoError(t, listErr)
	assert.Empty(t, entries, "instability failures must not append")
}

func TestNewReferenceShape(t *testing.T) {
	pattern := regexp.MustCompile(`^PAYPAL-[A-Z0-9]{8}$`)
	for i := 0; i < 100; i++ {
		assert.Regexp(t, pattern, NewReference())
	}
}
