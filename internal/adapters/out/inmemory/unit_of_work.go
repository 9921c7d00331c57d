package inmemory

import (
	"context"

	"dispatch/internal/core/ports"
)

// MemoryUnitOfWorkFactory creates unit of work instances over one shared
// storage. Drop-in replacement for the Postgres factory when running
// without a database.
type MemoryUnitOfWorkFactory struct {
	storage *Storage
}

// NewMemoryUnitOfWorkFactory creates a factory bound to the given storage.
func NewMemoryUnitOfWorkFactory(storage *Storage) *MemoryUnitOfWorkFactory {
	return &MemoryUnitOfWorkFactory{storage: storage}
}

// Create produces a new UnitOfWork instance.
func (f *MemoryUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &MemoryUnitOfWork{storage: f.storage}
}

// MemoryUnitOfWork satisfies the UnitOfWork contract without real
// transactions: repository mutations apply to shared state immediately and
// Commit/Rollback are accepted as no-ops. Per-order atomicity still holds
// because Transition serializes under the storage lock.
type MemoryUnitOfWork struct {
	storage *Storage
}

// Begin is a no-op.
func (uow *MemoryUnitOfWork) Begin(_ context.Context) error {
	return nil
}

// Commit is a no-op; changes are already visible.
func (uow *MemoryUnitOfWork) Commit(_ context.Context) error {
	return nil
}

// Rollback is a no-op; already-applied changes are not undone.
func (uow *MemoryUnitOfWork) Rollback(_ context.Context) error {
	return nil
}

// OrderRepository returns an order repository over the shared storage.
func (uow *MemoryUnitOfWork) OrderRepository() ports.OrderRepository {
	return NewMemoryOrderRepository(uow.storage)
}

// LedgerStore returns a ledger store over the shared storage.
func (uow *MemoryUnitOfWork) LedgerStore() ports.LedgerStore {
	return NewMemoryLedgerStore(uow.storage)
}
