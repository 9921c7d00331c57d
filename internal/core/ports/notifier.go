package ports

import (
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// EventKind names a push event on the live notification channel.
type EventKind string

const (
	// EventNewOrder announces a freshly created order to all partners.
	EventNewOrder EventKind = "new_order"

	// EventOrderAccepted tells the originating customer which partner
	// claimed their order.
	EventOrderAccepted EventKind = "order_accepted"

	// EventOrderTaken tells all partners an order left the dispatch board.
	EventOrderTaken EventKind = "order_taken"

	// EventOrderDelivered tells both parties the order was closed.
	EventOrderDelivered EventKind = "order_delivered"
)

// Event is one message pushed over the live channel. Delivery is
// best-effort and at-most-once: events are not queued for offline users and
// there is no acknowledgment or replay mechanism.
type Event struct {
	Kind      EventKind     `json:"event"`
	Order     *OrderPayload `json:"order,omitempty"`
	OrderID   string        `json:"order_id,omitempty"`
	PartnerID string        `json:"partner_id,omitempty"`
}

// OrderPayload is the order projection carried by new_order events. The
// handoff code and partner assignment are deliberately absent: a new_order
// is always Pending and the code must never travel the broadcast channel.
type OrderPayload struct {
	ID          string        `json:"id"`
	CustomerID  string        `json:"customer_id"`
	Items       []ItemPayload `json:"items"`
	TotalAmount float64       `json:"total_amount"`
	Status      string        `json:"status"`
}

// ItemPayload is one line item inside an OrderPayload.
type ItemPayload struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Price    float64 `json:"price"`
}

// NewOrderEvent builds the broadcast announcing a created order.
func NewOrderEvent(o *order.Order) Event {
	items := make([]ItemPayload, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, ItemPayload{
			Name:     item.Name(),
			Quantity: item.Quantity(),
			Unit:     item.Unit(),
			Price:    item.UnitPrice(),
		})
	}

	return Event{
		Kind: EventNewOrder,
		Order: &OrderPayload{
			ID:          o.ID().String(),
			CustomerID:  o.CustomerID(),
			Items:       items,
			TotalAmount: o.TotalAmount(),
			Status:      o.Status().String(),
		},
	}
}

// OrderAcceptedEvent builds the targeted notification for the customer
// whose order was claimed.
func OrderAcceptedEvent(orderID kernel.UUID, partnerID string) Event {
	return Event{
		Kind:      EventOrderAccepted,
		OrderID:   orderID.String(),
		PartnerID: partnerID,
	}
}

// OrderTakenEvent builds the broadcast withdrawing an order from the
// dispatch board.
func OrderTakenEvent(orderID kernel.UUID) Event {
	return Event{
		Kind:    EventOrderTaken,
		OrderID: orderID.String(),
	}
}

// OrderDeliveredEvent builds the closure notification for both parties.
func OrderDeliveredEvent(orderID kernel.UUID) Event {
	return Event{
		Kind:    EventOrderDelivered,
		OrderID: orderID.String(),
	}
}

// Notifier pushes events to live connections. Implementations recover send
// failures internally (dropping the dead connection) and never surface them
// to the caller: a mutation must not fail because a push could not be
// delivered.
type Notifier interface {
	// BroadcastToRole sends the event to every live connection registered
	// under the role.
	BroadcastToRole(role kernel.Role, event Event)

	// NotifyUser sends the event to all connections registered under the
	// exact (role, userID) pair; a no-op when none are live.
	NotifyUser(role kernel.Role, userID string, event Event)
}
