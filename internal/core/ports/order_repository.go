package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// It is the single source of truth for order state: after creation every
// mutation flows through Transition so status changes are totally ordered
// per order id.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ErrObjectNotFound when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllInPendingStatus retrieves all orders awaiting acceptance.
	// Used by partners browsing the dispatch board.
	GetAllInPendingStatus(ctx context.Context) ([]*order.Order, error)

	// Transition atomically mutates one order: it loads the aggregate,
	// verifies its status equals expected, applies mutate, and commits the
	// result. Concurrent Transition calls on the same id never interleave.
	//
	// Returns errs.ErrObjectNotFound for an unknown id and
	// errs.ErrStatusConflict when the observed status differs from
	// expected; a non-nil error from mutate aborts with no side effects
	// and is returned verbatim. On success the mutated aggregate is
	// returned.
	Transition(
		ctx context.Context,
		id kernel.UUID,
		expected order.Status,
		mutate func(*order.Order) error,
	) (*order.Order, error)
}
