package queries

import (
	"context"
	"slices"
)

// GetNearbyItemsQueryHandler serves the static item catalog.
// Prices here are informational; an order's total is fixed from the prices
// submitted at creation, so catalog changes never affect existing orders.
type GetNearbyItemsQueryHandler struct {
	catalog []NearbyItemResponse
}

// NewGetNearbyItemsQueryHandler creates a handler serving the built-in catalog.
func NewGetNearbyItemsQueryHandler() GetNearbyItemsQueryHandler {
	return GetNearbyItemsQueryHandler{
		catalog: []NearbyItemResponse{
			{Name: "Carrot", Price: 10.0, Vendor: "Local Grocery"},
			{Name: "Aspirin", Price: 50.0, Vendor: "Pharmacy"},
			{Name: "Banana", Price: 5.0, Vendor: "Fruit Market"},
		},
	}
}

// Handle executes the query to retrieve the catalog.
func (h GetNearbyItemsQueryHandler) Handle(
	_ context.Context,
	query GetNearbyItemsQuery,
) ([]NearbyItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return slices.Clone(h.catalog), nil
}
