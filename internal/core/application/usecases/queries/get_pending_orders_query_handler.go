package queries

import (
	"context"
)

// GetPendingOrdersQueryHandler retrieves unclaimed orders from storage.
// Accepted and delivered orders are filtered out by the reader, so the
// board only ever shows claimable work.
type GetPendingOrdersQueryHandler struct {
	orders OrderReader
}

// NewGetPendingOrdersQueryHandler creates a handler for dispatch board queries.
func NewGetPendingOrdersQueryHandler(orders OrderReader) GetPendingOrdersQueryHandler {
	return GetPendingOrdersQueryHandler{orders: orders}
}

// Handle executes the query to retrieve all pending orders.
// Returns an empty slice, not nil, when nothing is waiting.
func (h GetPendingOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetPendingOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	pending, err := h.orders.GetAllInPendingStatus(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]OrderResponse, 0, len(pending))
	for _, o := range pending {
		responses = append(responses, newOrderResponse(o))
	}

	return responses, nil
}
