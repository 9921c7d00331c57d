// Package queries contains read-only operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries never mutate state and never participate in transactions.
package queries

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/ledger"
	"dispatch/internal/core/domain/model/order"
)

// Reader interfaces give query handlers storage access without binding them
// to a particular backend. Both the Postgres and the in-memory adapters
// satisfy them through their repository types.
type (
	// OrderReader provides read access to persisted orders.
	OrderReader interface {
		Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
		GetAllInPendingStatus(ctx context.Context) ([]*order.Order, error)
	}

	// LedgerReader provides read access to the transaction ledger.
	LedgerReader interface {
		GetAll(ctx context.Context) ([]ledger.TransactionRecord, error)
	}
)
