package mocks

import (
	"context"
	"sync"
)

// MockCheckout implements coverletter.Checkout for testing
type MockCheckout struct {
	// SubscribeFn allows test cases to mock the Subscribe behavior
	SubscribeFn func(ctx context.Context) error

	// Err is returned when SubscribeFn is nil
	Err error

	mu    sync.Mutex
	calls int
}

// Subscribe implements coverletter.Checkout
func (m *MockCheckout) Subscribe(ctx context.Context) error {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()

	if m.SubscribeFn != nil {
		return m.SubscribeFn(ctx)
	}
	return m.Err
}

// CallCount returns how many times Subscribe was called.
func (m *MockCheckout) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}
