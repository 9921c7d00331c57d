package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrGetLedgerQueryIsNotConstructed = errors.New(
		"GetLedgerQuery must be created via NewGetLedgerQuery constructor",
	)
)

// GetLedgerQuery retrieves the full transaction ledger in append order.
// Intended for the admin reporting surface.
type GetLedgerQuery struct {
	guard guard.ConstructorGuard
}

// NewGetLedgerQuery creates a query to retrieve all ledger records.
func NewGetLedgerQuery() GetLedgerQuery {
	return GetLedgerQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetLedgerQueryIsNotConstructed if validation fails.
func (q GetLedgerQuery) Validate() error {
	return q.guard.Validate(ErrGetLedgerQueryIsNotConstructed)
}

// TransactionRecordResponse is the read-side projection of one ledger entry.
type TransactionRecordResponse struct {
	OrderID            kernel.UUID
	CustomerID         string
	PartnerID          string
	OrderTotal         float64
	RewardBonus        float64
	PartnerCommission  float64
	PlatformCommission float64
}
