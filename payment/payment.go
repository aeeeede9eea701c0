// Package payment implements the adapter pattern around a checkout flow.
// CheckoutService talks to the Processor interface. The external payment
// SDK has a foreign surface (integer cents, status strings, its own
// transaction ledger); SDKAdapter translates between the two. A
// DirectProcessor shows the same flow without an adapter.
package payment

import (
	"context"
	"fmt"

	"github.com/Jorgeamayapabon/design-patterns/logging"
)

// Processor charges an amount in the given currency.
type Processor interface {
	Pay(ctx context.Context, amount float64, currency string) error
}

// CheckoutService runs a checkout through whatever processor it was given.
type CheckoutService struct {
	processor Processor
	log       logging.Logger
}

// NewCheckoutService creates a checkout service backed by processor.
func NewCheckoutService(p Processor, log logging.Logger) *CheckoutService {
	return &CheckoutService{processor: p, log: log}
}

// Checkout charges amount in COP and reports the outcome.
func (s *CheckoutService) Checkout(ctx context.Context, amount float64) error {
	if err := s.processor.Pay(ctx, amount, "COP"); err != nil {
		return fmt.Errorf("payment failed: %w", err)
	}
	s.log.Info("payment succeeded")
	return nil
}

// DirectProcessor accepts the native Processor call shape without any
// translation layer.
type DirectProcessor struct {
	Log logging.Logger
}

// Pay implements Processor.
func (p DirectProcessor) Pay(ctx context.Context, amount float64, currency string) error {
	p.Log.Info("paying without adapter... total: %.2f, currency: %s", amount, currency)
	return nil
}
