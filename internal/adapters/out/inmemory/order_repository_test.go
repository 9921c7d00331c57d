package inmemory_test

import (
	"sync"
	"testing"

	"dispatch/internal/adapters/out/inmemory"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	carrot, err := order.NewItem("Carrot", 2, "kg", 10)
	require.NoError(t, err)
	banana, err := order.NewItem("Banana", 1, "", 5)
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), "cust-1", []order.Item{carrot, banana})
	require.NoError(t, err)
	return o
}

func TestMemoryOrderRepository_AddAndGet(t *testing.T) {
	ctx := t.Context()
	repo := inmemory.NewMemoryOrderRepository(inmemory.NewStorage())
	o := newTestOrder(t)

	require.NoError(t, repo.Add(ctx, o))

	restored, err := repo.Get(ctx, o.ID())
	require.NoError(t, err)
	assert.True(t, restored.IsEqual(o))
	assert.Equal(t, "cust-1", restored.CustomerID())
	assert.Equal(t, order.Pending, restored.Status())
	assert.InDelta(t, 25.0, restored.TotalAmount(), 1e-9)
}

func TestMemoryOrderRepository_Add_DuplicateID(t *testing.T) {
	ctx := t.Context()
	repo := inmemory.NewMemoryOrderRepository(inmemory.NewStorage())
	o := newTestOrder(t)

	require.NoError(t, repo.Add(ctx, o))
	err := repo.Add(ctx, o)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestMemoryOrderRepository_Add_NotConstructed(t *testing.T) {
	ctx := t.Context()
	repo := inmemory.NewMemoryOrderRepository(inmemory.NewStorage())

	err := repo.Add(ctx, &order.Order{})
	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
}

func TestMemoryOrderRepository_Get_NotFound(t *testing.T) {
	ctx := t.Context()
	repo := inmemory.NewMemoryOrderRepository(inmemory.NewStorage())

	_, err := repo.Get(ctx, kernel.NewUUID())
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestMemoryOrderRepository_Get_ReturnsSnapshot(t *testing.T) {
	ctx := t.Context()
	repo := inmemory.NewMemoryOrderRepository(inmemory.NewStorage())
	o := newTestOrder(t)
	require.NoError(t, repo.Add(ctx, o))

	first, err := repo.Get(ctx, o.ID())
	require.NoError(t, err)
	require.NoError(t, first.Accept("partner-7", "1234"))

	// Mutating the returned copy must not leak into storage
	second, err := repo.Get(ctx, o.ID())
	require.NoError(t, err)
	assert.Equal(t, order.Pending, second.Status())
}

func TestMemoryOrderRepository_GetAllInPendingStatus(t *testing.T) {
	ctx := t.Context()
	repo := inmemory.NewMemoryOrderRepository(inmemory.NewStorage())

	pending := newTestOrder(t)
	require.NoError(t, repo.Add(ctx, pending))

	claimed := newTestOrder(t)
	require.NoError(t, claimed.Accept("partner-7", "1234"))
	require.NoError(t, repo.Add(ctx, claimed))

	result, err := repo.GetAllInPendingStatus(ctx)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.True(t, result[0].IsEqual(pending))
}

func TestMemoryOrderRepository_Transition_Succeeds(t *testing.T) {
	ctx := t.Context()
	repo := inmemory.NewMemoryOrderRepository(inmemory.NewStorage())
	o := newTestOrder(t)
	require.NoError(t, repo.Add(ctx, o))

	accepted, err := repo.Transition(ctx, o.ID(), order.Pending,
		func(current *order.Order) error {
			return current.Accept("partner-7", "4321")
		})
	require.NoError(t, err)
	assert.Equal(t, order.Accepted, accepted.Status())

	restored, err := repo.Get(ctx, o.ID())
	require.NoError(t, err)
	assert.Equal(t, order.Accepted, restored.Status())
	assert.Equal(t, "partner-7", restored.AssignedPartnerID())
	assert.Equal(t, "4321", restored.HandoffCode())
}

func TestMemoryOrderRepository_Transition_StatusConflict(t *testing.T) {
	ctx := t.Context()
	repo := inmemory.NewMemoryOrderRepository(inmemory.NewStorage())
	o := newTestOrder(t)
	require.NoError(t, o.Accept("partner-7", "1234"))
	require.NoError(t, repo.Add(ctx, o))

	_, err := repo.Transition(ctx, o.ID(), order.Pending,
		func(current *order.Order) error {
			return current.Accept("partner-8", "5678")
		})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrStatusConflict)

	restored, err := repo.Get(ctx, o.ID())
	require.NoError(t, err)
	assert.Equal(t, "partner-7", restored.AssignedPartnerID())
}

func TestMemoryOrderRepository_Transition_NotFound(t *testing.T) {
	ctx := t.Context()
	repo := inmemory.NewMemoryOrderRepository(inmemory.NewStorage())

	_, err := repo.Transition(ctx, kernel.NewUUID(), order.Pending,
		func(*order.Order) error { return nil })
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestMemoryOrderRepository_Transition_MutatorErrorKeepsState(t *testing.T) {
	ctx := t.Context()
	repo := inmemory.NewMemoryOrderRepository(inmemory.NewStorage())
	o := newTestOrder(t)
	require.NoError(t, o.Accept("partner-7", "1234"))
	require.NoError(t, repo.Add(ctx, o))

	_, err := repo.Transition(ctx, o.ID(), order.Accepted,
		func(current *order.Order) error {
			return current.Deliver("0000")
		})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrHandoffCodeMismatch)

	restored, err := repo.Get(ctx, o.ID())
	require.NoError(t, err)
	assert.Equal(t, order.Accepted, restored.Status())
	assert.Equal(t, "1234", restored.HandoffCode())
}

func TestMemoryOrderRepository_Transition_ConcurrentAcceptsExactlyOneWins(t *testing.T) {
	ctx := t.Context()
	repo := inmemory.NewMemoryOrderRepository(inmemory.NewStorage())
	o := newTestOrder(t)
	require.NoError(t, repo.Add(ctx, o))

	const partners = 32
	results := make([]error, partners)

	var wg sync.WaitGroup
	for i := range partners {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Transition(ctx, o.ID(), order.Pending,
				func(current *order.Order) error {
					return current.Accept("partner", "1234")
				})
			results[i] = err
		}()
	}
	wg.Wait()

	winners := 0
	for _, err := range results {
		if err == nil {
			winners++
		} else {
			assert.ErrorIs(t, err, errs.ErrStatusConflict)
		}
	}
	assert.Equal(t, 1, winners)
}
