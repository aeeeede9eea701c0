package payment

import (
	"context"
	"fmt"
	"math"
)

// SDKAdapter adapts the external SDK to the Processor interface:
// float amounts become integer cents on the way in, status strings become
// errors on the way out.
type SDKAdapter struct {
	sdk *ExternalSDK
}

// NewSDKAdapter wraps an external SDK as a Processor.
func NewSDKAdapter(sdk *ExternalSDK) *SDKAdapter {
	return &SDKAdapter{sdk: sdk}
}

// Pay implements Processor.
func (a *SDKAdapter) Pay(ctx context.Context, amount float64, currency string) error {
	totalInCents := int64(math.Round(amount * 100))

	tx, err := a.sdk.MakeTransaction(ctx, totalInCents, currency)
	if err != nil {
		return err
	}
	if tx.Status != StatusSuccess {
		return fmt.Errorf("payment: transaction %s %s", tx.ID, tx.Status)
	}
	return nil
}

var _ Processor = (*SDKAdapter)(nil)
