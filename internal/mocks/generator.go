package mocks

import (
	"context"
	"errors"
	"sync"

	"github.com/phrazzld/covercraft/internal/generation"
)

// MockGenerator implements generation.Generator for testing
type MockGenerator struct {
	// GenerateTextFn allows test cases to mock the GenerateText behavior
	GenerateTextFn func(ctx context.Context, model, prompt string) (string, error)

	// Default response values
	Text string
	Err  error

	mu      sync.Mutex
	models  []string
	prompts []string
}

var _ generation.Generator = (*MockGenerator)(nil)

// GenerateText implements the generation.Generator interface
func (m *MockGenerator) GenerateText(ctx context.Context, model, prompt string) (string, error) {
	m.mu.Lock()
	m.models = append(m.models, model)
	m.prompts = append(m.prompts, prompt)
	m.mu.Unlock()

	if m.GenerateTextFn != nil {
		return m.GenerateTextFn(ctx, model, prompt)
	}
	return m.Text, m.Err
}

// CallCount returns how many times GenerateText was called.
func (m *MockGenerator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.prompts)
}

// Prompts returns the prompts passed to GenerateText, in call order.
func (m *MockGenerator) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.prompts...)
}

// Models returns the model identifiers passed to GenerateText, in call order.
func (m *MockGenerator) Models() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.models...)
}

// NewMockGeneratorWithText creates a MockGenerator that returns text
func NewMockGeneratorWithText(text string) *MockGenerator {
	return &MockGenerator{Text: text}
}

// NewMockGeneratorWithError creates a MockGenerator that returns the specified error
func NewMockGeneratorWithError(err error) *MockGenerator {
	return &MockGenerator{Err: err}
}

// MockGeneratorThatFails creates a MockGenerator that always returns
// an error wrapping generation.ErrGenerationFailed.
func MockGeneratorThatFails() *MockGenerator {
	return NewMockGeneratorWithError(errors.Join(generation.ErrGenerationFailed, errors.New("mock generation failure")))
}
