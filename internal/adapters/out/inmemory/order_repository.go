package inmemory

import (
	"context"
	"sort"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
)

// MemoryOrderRepository implements OrderRepository over shared in-memory state.
type MemoryOrderRepository struct {
	storage *Storage
}

// NewMemoryOrderRepository creates a repository bound to the given storage.
func NewMemoryOrderRepository(storage *Storage) *MemoryOrderRepository {
	return &MemoryOrderRepository{storage: storage}
}

// Add saves a new order. Fails when the ID is already taken.
func (r *MemoryOrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.storage.mu.Lock()
	defer r.storage.mu.Unlock()

	key := aggregate.ID().String()
	if _, exists := r.storage.orders[key]; exists {
		return errs.NewValueIsInvalidError("order ID already exists")
	}

	stored, err := cloneOrder(aggregate)
	if err != nil {
		return err
	}

	r.storage.orders[key] = stored
	return nil
}

// Get retrieves an order by ID.
func (r *MemoryOrderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	r.storage.mu.RLock()
	defer r.storage.mu.RUnlock()

	stored, exists := r.storage.orders[id.String()]
	if !exists {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}

	return cloneOrder(stored)
}

// GetAllInPendingStatus retrieves all orders waiting to be claimed,
// sorted by ID for deterministic output.
func (r *MemoryOrderRepository) GetAllInPendingStatus(_ context.Context) ([]*order.Order, error) {
	r.storage.mu.RLock()
	defer r.storage.mu.RUnlock()

	pending := make([]*order.Order, 0)
	for _, stored := range r.storage.orders {
		if stored.Status() != order.Pending {
			continue
		}
		snapshot, err := cloneOrder(stored)
		if err != nil {
			return nil, err
		}
		pending = append(pending, snapshot)
	}

	sort.Slice(pending, func(i, j int) bool {
		return pending[i].ID().String() < pending[j].ID().String()
	})

	return pending, nil
}

// Transition atomically mutates one order.
//
// The storage lock is held for the whole load-check-mutate-store sequence,
// so concurrent calls on the same order serialize and at most one claim can
// move a Pending order to Accepted. The mutation runs on a snapshot: a
// mutator error leaves the stored aggregate untouched.
func (r *MemoryOrderRepository) Transition(
	_ context.Context,
	id kernel.UUID,
	expected order.Status,
	mutate func(*order.Order) error,
) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	r.storage.mu.Lock()
	defer r.storage.mu.Unlock()

	stored, exists := r.storage.orders[id.String()]
	if !exists {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}

	if actual := stored.Status(); actual != expected {
		return nil, errs.NewStatusConflictError("order", id.String(),
			expected.String(), actual.String())
	}

	mutated, err := cloneOrder(stored)
	if err != nil {
		return nil, err
	}

	if err = mutate(mutated); err != nil {
		return nil, err
	}

	r.storage.orders[id.String()] = mutated
	return cloneOrder(mutated)
}
