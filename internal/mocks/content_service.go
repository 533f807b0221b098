package mocks

import (
	"context"
	"errors"
	"sync"

	"github.com/phrazzld/contentgen-api/internal/content"
)

// MockContentService implements service.ContentService for testing
type MockContentService struct {
	GenerateContentFn func(ctx context.Context, in content.Input) (*content.Response, error)

	mu     sync.Mutex
	inputs []content.Input
}

// GenerateContent implements service.ContentService
func (m *MockContentService) GenerateContent(ctx context.Context, in content.Input) (*content.Response, error) {
	m.mu.Lock()
	m.inputs = append(m.inputs, in)
	m.mu.Unlock()

	if m.GenerateContentFn != nil {
		return m.GenerateContentFn(ctx, in)
	}
	return nil, errors.New("GenerateContentFn not set")
}

// Inputs returns every input GenerateContent received, in call order
func (m *MockContentService) Inputs() []content.Input {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]content.Input(nil), m.inputs...)
}
