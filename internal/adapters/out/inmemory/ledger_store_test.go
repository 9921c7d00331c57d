package inmemory_test

import (
	"testing"

	"dispatch/internal/adapters/out/inmemory"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/ledger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecord(t *testing.T, total float64) ledger.TransactionRecord {
	t.Helper()
	record, err := ledger.NewTransactionRecord(
		kernel.NewUUID(), "cust-1", "partner-7",
		total, total*0.15, total*0.02, total*0.08)
	require.NoError(t, err)
	return record
}

func TestMemoryLedgerStore_AppendAndGetAll(t *testing.T) {
	ctx := t.Context()
	store := inmemory.NewMemoryLedgerStore(inmemory.NewStorage())

	first := newRecord(t, 80)
	second := newRecord(t, 200)
	require.NoError(t, store.Append(ctx, first))
	require.NoError(t, store.Append(ctx, second))

	records, err := store.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, first.OrderID(), records[0].OrderID())
	assert.Equal(t, second.OrderID(), records[1].OrderID())
}

func TestMemoryLedgerStore_Append_NotConstructed(t *testing.T) {
	ctx := t.Context()
	store := inmemory.NewMemoryLedgerStore(inmemory.NewStorage())

	err := store.Append(ctx, ledger.TransactionRecord{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ledger.ErrTransactionRecordIsNotConstructed)
}

func TestMemoryLedgerStore_GetAll_Empty(t *testing.T) {
	ctx := t.Context()
	store := inmemory.NewMemoryLedgerStore(inmemory.NewStorage())

	records, err := store.GetAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestMemoryUnitOfWork_SharesStorage(t *testing.T) {
	ctx := t.Context()
	storage := inmemory.NewStorage()
	factory := inmemory.NewMemoryUnitOfWorkFactory(storage)

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))

	o := newTestOrder(t)
	require.NoError(t, uow.OrderRepository().Add(ctx, o))
	require.NoError(t, uow.Commit(ctx))

	// A second unit of work over the same storage sees the order
	other := factory.Create()
	restored, err := other.OrderRepository().Get(ctx, o.ID())
	require.NoError(t, err)
	assert.True(t, restored.IsEqual(o))
}
