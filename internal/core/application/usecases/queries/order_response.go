package queries

import (
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// OrderResponse is the read-side projection of an order. It carries
// everything a customer or partner may see; the handoff code is never part
// of a query response.
type OrderResponse struct {
	ID                kernel.UUID
	CustomerID        string
	Items             []ItemResponse
	TotalAmount       float64
	Status            string
	AssignedPartnerID string
}

// ItemResponse is one line item within an OrderResponse.
type ItemResponse struct {
	Name     string
	Quantity float64
	Unit     string
	Price    float64
}

// newOrderResponse projects an order aggregate into its read model.
func newOrderResponse(o *order.Order) OrderResponse {
	items := make([]ItemResponse, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, ItemResponse{
			Name:     item.Name(),
			Quantity: item.Quantity(),
			Unit:     item.Unit(),
			Price:    item.UnitPrice(),
		})
	}

	return OrderResponse{
		ID:                o.ID(),
		CustomerID:        o.CustomerID(),
		Items:             items,
		TotalAmount:       o.TotalAmount(),
		Status:            o.Status().String(),
		AssignedPartnerID: o.AssignedPartnerID(),
	}
}
