package ports

import (
	"context"

	"dispatch/internal/core/domain/model/ledger"
)

// LedgerStore defines the append-only persistence contract for transaction
// records. Records are never edited or removed; the store exposes exactly
// one write path and one read path.
type LedgerStore interface {
	// Append adds a record to the end of the ledger.
	Append(ctx context.Context, record ledger.TransactionRecord) error

	// GetAll returns every record in append order.
	GetAll(ctx context.Context) ([]ledger.TransactionRecord, error)
}
