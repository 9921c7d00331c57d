package queries

import (
	"context"
)

// GetLedgerQueryHandler retrieves the transaction ledger from storage.
// Records come back in append order; the ledger is never filtered or paged
// at this layer.
type GetLedgerQueryHandler struct {
	ledger LedgerReader
}

// NewGetLedgerQueryHandler creates a handler for ledger queries.
func NewGetLedgerQueryHandler(ledger LedgerReader) GetLedgerQueryHandler {
	return GetLedgerQueryHandler{ledger: ledger}
}

// Handle executes the query to retrieve every ledger record.
// Returns an empty slice, not nil, when no orders have been delivered yet.
func (h GetLedgerQueryHandler) Handle(
	ctx context.Context,
	query GetLedgerQuery,
) ([]TransactionRecordResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	records, err := h.ledger.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]TransactionRecordResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, TransactionRecordResponse{
			OrderID:            r.OrderID(),
			CustomerID:         r.CustomerID(),
			PartnerID:          r.PartnerID(),
			OrderTotal:         r.OrderTotal(),
			RewardBonus:        r.RewardBonus(),
			PartnerCommission:  r.PartnerCommission(),
			PlatformCommission: r.PlatformCommission(),
		})
	}

	return responses, nil
}
