// internal/provider/ai/ai.go
package ai

import (
	"context"
	"fmt"

	"homework-service/internal/domain"
)

// Provider answers a homework question, optionally grounded on a photo.
type Provider interface {
	Answer(ctx context.Context, req *domain.AskRequest) (string, error)
}

// MockProvider answers without any external call, for development
// without an API key.
type MockProvider struct{}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (m *MockProvider) Answer(ctx context.Context, req *domain.AskRequest) (string, error) {
	if req.Photo != nil {
		return "Mock AI: This image looks interesting.", nil
	}
	return fmt.Sprintf("Mock AI: Here's a sample answer to %q.", req.Question), nil
}
