package queries

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var (
	ErrGetNearbyItemsQueryIsNotConstructed = errors.New(
		"GetNearbyItemsQuery must be created via NewGetNearbyItemsQuery constructor",
	)
)

// GetNearbyItemsQuery retrieves the catalog of items customers can order.
// The catalog is a fixed demo set; there is no vendor onboarding or
// per-location filtering behind it.
type GetNearbyItemsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetNearbyItemsQuery creates a query to retrieve the item catalog.
func NewGetNearbyItemsQuery() GetNearbyItemsQuery {
	return GetNearbyItemsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetNearbyItemsQueryIsNotConstructed if validation fails.
func (q GetNearbyItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetNearbyItemsQueryIsNotConstructed)
}

// NearbyItemResponse is one catalog entry: a purchasable item with its
// price and the vendor carrying it.
type NearbyItemResponse struct {
	Name   string
	Price  float64
	Vendor string
}
