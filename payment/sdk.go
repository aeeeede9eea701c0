package payment

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Transaction statuses reported by the external SDK.
const (
	StatusSuccess  = "success"
	StatusRejected = "rejected"
)

// Transaction is the external SDK's record of one charge. Amounts are in
// integer cents, the SDK's native unit.
type Transaction struct {
	ID         string
	TotalCents int64
	Currency   string
	Status     string
	CreatedAt  time.Time
}

// ExternalSDK simulates a third-party payment SDK with its own calling
// conventions: amounts in cents, currency codes, status strings, and a
// private transaction ledger (an in-process SQLite database).
type ExternalSDK struct {
	db *sql.DB
}

// NewExternalSDK opens the SDK with an in-memory ledger.
func NewExternalSDK() (*ExternalSDK, error) {
	return NewExternalSDKWithDSN(":memory:")
}

// NewExternalSDKWithDSN opens the SDK with a ledger at the given SQLite DSN.
func NewExternalSDKWithDSN(dsn string) (*ExternalSDK, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("payment: opening ledger: %w", err)
	}
	// An in-memory SQLite database exists per connection; keep one.
	db.SetMaxOpenConns(1)

	const schema = `CREATE TABLE IF NOT EXISTS transactions (
		id          TEXT PRIMARY KEY,
		total_cents INTEGER NOT NULL,
		currency    TEXT NOT NULL,
		status      TEXT NOT NULL,
		created_at  TIMESTAMP NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("payment: preparing ledger: %w", err)
	}
	return &ExternalSDK{db: db}, nil
}

// Close releases the ledger.
func (s *ExternalSDK) Close() error {
	return s.db.Close()
}

// MakeTransaction charges totalInCents in the given currency and records
// the attempt in the ledger. Non-positive totals are recorded as rejected.
func (s *ExternalSDK) MakeTransaction(ctx context.Context, totalInCents int64, currencyCode string) (Transaction, error) {
	tx := Transaction{
		ID:         uuid.NewString(),
		TotalCents: totalInCents,
		Currency:   currencyCode,
		Status:     StatusSuccess,
		CreatedAt:  time.Now().UTC(),
	}
	if totalInCents <= 0 {
		tx.Status = StatusRejected
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO transactions (id, total_cents, currency, status, created_at) VALUES (?, ?, ?, ?, ?)`,
		tx.ID, tx.TotalCents, tx.Currency, tx.Status, tx.CreatedAt)
	if err != nil {
		return Transaction{}, fmt.Errorf("payment: recording transaction: %w", err)
	}
	return tx, nil
}

// Transactions returns the ledger contents, oldest first.
func (s *ExternalSDK) Transactions(ctx context.Context) ([]Transaction, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, total_cents, currency, status, created_at FROM transactions ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("payment: reading ledger: %w", err)
	}
	defer rows.Close()

	var out []Transaction
	for rows.Next() {
		var tx Transaction
		if err := rows.Scan(&tx.ID, &tx.TotalCents, &tx.Currency, &tx.Status, &tx.CreatedAt); err != nil {
			return nil, fmt.Errorf("payment: scanning ledger row: %w", err)
		}
		out = append(out, tx)
	}
	return out, rows.Err()
}
