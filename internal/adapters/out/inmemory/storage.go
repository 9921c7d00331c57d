// Package inmemory provides process-local implementations of the storage
// ports. It is the default backend when no database is configured: state
// lives for the lifetime of the process and is lost on restart.
//
// A single Storage instance backs every repository and unit of work created
// from it, so all requests observe the same state. Mutations apply
// immediately; the unit of work here exists only to satisfy the
// transactional contract of the application layer.
package inmemory

import (
	"sync"

	"dispatch/internal/core/domain/model/ledger"
	"dispatch/internal/core/domain/model/order"
)

// Storage is the shared in-memory state: the order table and the ledger.
// One mutex guards both; the data volumes involved make finer locking
// pointless.
type Storage struct {
	mu      sync.RWMutex
	orders  map[string]*order.Order
	records []ledger.TransactionRecord
}

// NewStorage creates an empty storage instance.
func NewStorage() *Storage {
	return &Storage{
		orders:  make(map[string]*order.Order),
		records: make([]ledger.TransactionRecord, 0),
	}
}

// cloneOrder snapshots an aggregate so callers never alias stored state.
// The stored copy only changes through Transition, under the lock.
func cloneOrder(o *order.Order) (*order.Order, error) {
	return order.RestoreOrder(
		o.ID(),
		o.CustomerID(),
		o.Items(),
		o.TotalAmount(),
		o.Status(),
		o.AssignedPartnerID(),
		o.HandoffCode(),
	)
}
