// internal/repository/paymentlog.go
package repository

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"homework-service/internal/domain"
)

// PaymentLogRepository is the append-only store behind the card/wallet
// mock provider. Append never rewrites earlier entries; List returns
// entries in append order. A missing or partially corrupt log is treated
// as having fewer entries, never as an error the caller must handle.
type PaymentLogRepository interface {
	Append(ctx context.Context, entry *domain.PaymentLogEntry) error
	List(ctx context.Context) ([]domain.PaymentLogEntry, error)
}

type fileLogRepo struct {
	path string
}

// NewFilePaymentLog returns a PaymentLogRepository backed by one
// newline-delimited JSON file at path.
func NewFilePaymentLog(path string) PaymentLogRepository {
	return &fileLogRepo{path: path}
}

func (r *fileLogRepo) Append(ctx context.Context, entry *domain.PaymentLogEntry) error {
	line, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode log entry: %w", err)
	}

	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open payment log: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("failed to append to payment log: %w", err)
	}
	return nil
}

func (r *fileLogRepo) List(ctx context.Context) ([]domain.PaymentLogEntry, error) {
	f, err := os.Open(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open payment log: %w", err)
	}
	defer f.Close()

	var entries []domain.PaymentLogEntry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var entry domain.PaymentLogEntry
		if err := json.Unmarshal(line, &entry); err != nil {
			// Malformed lines are dropped, not fatal.
			continue
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return entries, fmt.Errorf("failed to read payment log: %w", err)
	}
	return entries, nil
}
