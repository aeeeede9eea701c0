package payment

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jorgeamayapabon/design-patterns/logging"
)

func newTestSDK(t *testing.T) *ExternalSDK {
	t.Helper()
	sdk, err := NewExternalSDK()
	require.NoError(t, err)
	t.Cleanup(func() { sdk.Close() })
	return sdk
}

func TestMakeTransactionRecordsLedgerEntry(t *testing.T) {
	sdk := newTestSDK(t)
	ctx := context.Background()

	tx, err := sdk.MakeTransaction(ctx, 10050, "COP")
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, tx.Status)
	assert.Equal(t, int64(10050), tx.TotalCents)
	_, err = uuid.Parse(tx.ID)
	assert.NoError(t, err, "transaction IDs are UUIDs")

	ledger, err := sdk.Transactions(ctx)
	require.NoError(t, err)
	require.Len(t, ledger, 1)
	assert.Equal(t, tx.ID, ledger[0].ID)
	assert.Equal(t, "COP", ledger[0].Currency)
}

func TestMakeTransactionRejectsNonPositiveTotals(t *testing.T) {
	sdk := newTestSDK(t)

	tx, err := sdk.MakeTransaction(context.Background(), 0, "COP")
	require.NoError(t, err)
	assert.Equal(t, StatusRejected, tx.Status)
}

func TestAdapterConvertsAmountToCents(t *testing.T) {
	sdk := newTestSDK(t)
	adapter := NewSDKAdapter(sdk)
	ctx := context.Background()

	require.NoError(t, adapter.Pay(ctx, 100.50, "COP"))

	ledger, err := sdk.Transactions(ctx)
	require.NoError(t, err)
	require.Len(t, ledger, 1)
	assert.Equal(t, int64(10050), ledger[0].TotalCents)
}

func TestAdapterSurfacesRejection(t *testing.T) {
	sdk := newTestSDK(t)
	adapter := NewSDKAdapter(sdk)

	err := adapter.Pay(context.Background(), -5, "COP")
	require.Error(t, err)
	assert.Contains(t, err.Error(), StatusRejected)
}

func TestCheckoutThroughAdapter(t *testing.T) {
	sdk := newTestSDK(t)
	var buf bytes.Buffer
	svc := NewCheckoutService(NewSDKAdapter(sdk), logging.NewConsoleTo(&buf))
	ctx := context.Background()

	require.NoError(t, svc.Checkout(ctx, 100.50))
	assert.Contains(t, buf.String(), "payment succeeded")

	err := svc.Checkout(ctx, -1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "payment failed")

	// Both attempts reached the ledger.
	ledger, err := sdk.Transactions(ctx)
	require.NoError(t, err)
	assert.Len(t, ledger, 2)
}

func TestCheckoutWithoutAdapter(t *testing.T) {
	var buf bytes.Buffer
	log := logging.NewConsoleTo(&buf)
	svc := NewCheckoutService(DirectProcessor{Log: log}, log)

	require.NoError(t, svc.Checkout(context.Background(), 200.95))
	assert.Contains(t, buf.String(), "paying without adapter")
	assert.Contains(t, buf.String(), "200.95")
}
