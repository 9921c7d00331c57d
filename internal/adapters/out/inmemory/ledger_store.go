package inmemory

import (
	"context"
	"slices"

	"dispatch/internal/core/domain/model/ledger"
)

// MemoryLedgerStore implements LedgerStore over shared in-memory state.
// Records accumulate in append order and are never modified.
type MemoryLedgerStore struct {
	storage *Storage
}

// NewMemoryLedgerStore creates a ledger store bound to the given storage.
func NewMemoryLedgerStore(storage *Storage) *MemoryLedgerStore {
	return &MemoryLedgerStore{storage: storage}
}

// Append adds a record to the end of the ledger.
func (s *MemoryLedgerStore) Append(_ context.Context, record ledger.TransactionRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}

	s.storage.mu.Lock()
	defer s.storage.mu.Unlock()

	s.storage.records = append(s.storage.records, record)
	return nil
}

// GetAll returns every ledger record in append order.
func (s *MemoryLedgerStore) GetAll(_ context.Context) ([]ledger.TransactionRecord, error) {
	s.storage.mu.RLock()
	defer s.storage.mu.RUnlock()

	return slices.Clone(s.storage.records), nil
}
