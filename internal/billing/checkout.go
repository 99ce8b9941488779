// Package billing holds the payment collaborator used by the subscription
// action. Only a stub exists: it grants entitlement without settling any
// payment. A real deployment replaces StubCheckout with a checkout provider
// integration and server-confirmed entitlement.
package billing

import (
	"context"
	"errors"
	"log/slog"
)

// StubCheckout approves every subscription without contacting a payment provider.
type StubCheckout struct {
	logger *slog.Logger
}

// NewStubCheckout creates a StubCheckout.
func NewStubCheckout(logger *slog.Logger) (*StubCheckout, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	return &StubCheckout{logger: logger}, nil
}

// Subscribe implements coverletter.Checkout.
func (c *StubCheckout) Subscribe(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.logger.InfoContext(ctx, "stub checkout approved subscription",
		"note", "this would integrate with a real checkout provider")
	return nil
}
