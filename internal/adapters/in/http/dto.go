package http

import (
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/ledger"
	"dispatch/internal/core/domain/model/order"
)

// ErrorResponse is the uniform error body returned by every endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ItemRequest is one line item in an order creation request.
type ItemRequest struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Price    float64 `json:"price"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	CustomerID string        `json:"customer_id"`
	Items      []ItemRequest `json:"items"`
}

// AcceptOrderRequest is the body of POST /api/v1/orders/:id/accept.
type AcceptOrderRequest struct {
	PartnerID string `json:"partner_id"`
}

// CloseOrderRequest is the body of POST /api/v1/orders/:id/close.
type CloseOrderRequest struct {
	HandoffCode string `json:"handoff_code"`
}

// ItemResponse is one line item in an order response.
type ItemResponse struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Price    float64 `json:"price"`
}

// OrderResponse is the public projection of an order. The handoff code is
// intentionally absent; it travels only in the accept response.
type OrderResponse struct {
	ID                string         `json:"id"`
	CustomerID        string         `json:"customer_id"`
	Items             []ItemResponse `json:"items"`
	TotalAmount       float64        `json:"total_amount"`
	Status            string         `json:"status"`
	AssignedPartnerID string         `json:"assigned_partner_id,omitempty"`
}

// AcceptOrderResponse confirms a successful claim. This is the only place
// the handoff code is ever disclosed, and only to the winning partner.
type AcceptOrderResponse struct {
	OrderID     string `json:"order_id"`
	PartnerID   string `json:"partner_id"`
	Status      string `json:"status"`
	HandoffCode string `json:"handoff_code"`
}

// TransactionRecordResponse is one ledger entry in API form.
type TransactionRecordResponse struct {
	OrderID            string  `json:"order_id"`
	CustomerID         string  `json:"customer_id"`
	PartnerID          string  `json:"partner_id"`
	OrderTotal         float64 `json:"order_total"`
	RewardBonus        float64 `json:"reward_bonus"`
	PartnerCommission  float64 `json:"partner_commission"`
	PlatformCommission float64 `json:"platform_commission"`
}

// NearbyItemResponse is one catalog entry.
type NearbyItemResponse struct {
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
	Vendor string  `json:"vendor"`
}

// toDomainItems converts request items into validated domain values.
func toDomainItems(items []ItemRequest) ([]order.Item, error) {
	domainItems := make([]order.Item, 0, len(items))
	for _, item := range items {
		domainItem, err := order.NewItem(item.Name, item.Quantity, item.Unit, item.Price)
		if err != nil {
			return nil, err
		}
		domainItems = append(domainItems, domainItem)
	}
	return domainItems, nil
}

// orderResponseFromDomain projects an aggregate returned by a command.
func orderResponseFromDomain(o *order.Order) OrderResponse {
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
		ID:                o.ID().String(),
		CustomerID:        o.CustomerID(),
		Items:             items,
		TotalAmount:       o.TotalAmount(),
		Status:            o.Status().String(),
		AssignedPartnerID: o.AssignedPartnerID(),
	}
}

// orderResponseFromQuery projects a read-side order.
func orderResponseFromQuery(q queries.OrderResponse) OrderResponse {
	items := make([]ItemResponse, 0, len(q.Items))
	for _, item := range q.Items {
		items = append(items, ItemResponse{
			Name:     item.Name,
			Quantity: item.Quantity,
			Unit:     item.Unit,
			Price:    item.Price,
		})
	}

	return OrderResponse{
		ID:                q.ID.String(),
		CustomerID:        q.CustomerID,
		Items:             items,
		TotalAmount:       q.TotalAmount,
		Status:            q.Status,
		AssignedPartnerID: q.AssignedPartnerID,
	}
}

// recordResponseFromDomain projects a ledger record returned by the close command.
func recordResponseFromDomain(record ledger.TransactionRecord) TransactionRecordResponse {
	return TransactionRecordResponse{
		OrderID:            record.OrderID().String(),
		CustomerID:         record.CustomerID(),
		PartnerID:          record.PartnerID(),
		OrderTotal:         record.OrderTotal(),
		RewardBonus:        record.RewardBonus(),
		PartnerCommission:  record.PartnerCommission(),
		PlatformCommission: record.PlatformCommission(),
	}
}
