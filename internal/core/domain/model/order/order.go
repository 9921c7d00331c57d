package order

import (
	"errors"
	"slices"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder. This ensures all orders are
	// properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order represents a delivery order in the system. It is the aggregate root
// that manages the order lifecycle from creation through acceptance by
// exactly one partner to handoff-code-verified delivery.
//
// Order maintains these invariants:
//   - Pending orders have no assigned partner and no handoff code
//   - Accepted orders have both an assigned partner and a handoff code
//   - Delivered is terminal: no field mutates afterwards
//   - The total amount is the sum of quantity x unit price over the items,
//     computed once at creation and never recomputed, so later catalog price
//     changes cannot drift an existing order's total
//
// The struct uses private fields to ensure encapsulation; all mutation goes
// through Accept and Deliver.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID is the identity of the requesting customer
	customerID string

	// items is the ordered sequence of line items, immutable after creation
	items []Item

	// totalAmount is derived from items exactly once, at creation
	totalAmount float64

	// status represents the current state in the order lifecycle
	status Status

	// assignedPartnerID is the claiming partner's identity
	// (empty until acceptance, then set exactly once)
	assignedPartnerID string

	// handoffCode is the shared secret gating delivery
	// (empty until acceptance, cleared after delivery)
	handoffCode string

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in Pending status. This is the only way to
// create a fresh order, ensuring all business invariants hold from the start.
//
// The items slice must be non-empty and every item must already be a valid
// Item value (see NewItem). The total amount is computed here and fixed for
// the order's lifetime.
func NewOrder(id kernel.UUID, customerID string, items []Item) (*Order, error) {
	order := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	for _, item := range order.items {
		order.totalAmount += item.Cost()
	}

	return order, nil
}

// RestoreOrder reconstructs an order from persistence. Unlike NewOrder it
// accepts the stored total amount verbatim instead of recomputing it, and
// restores status, partner assignment and handoff code as persisted.
func RestoreOrder(
	id kernel.UUID,
	customerID string,
	items []Item,
	totalAmount float64,
	status Status,
	assignedPartnerID string,
	handoffCode string,
) (*Order, error) {
	order := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setItems(items),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	order.totalAmount = totalAmount
	order.status = status
	order.assignedPartnerID = assignedPartnerID
	order.handoffCode = handoffCode

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
// Returns ErrOrderIsNotConstructed for zero-value instances. Call this when
// reconstructing orders from untrusted sources.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identity of the customer who placed the order.
func (o *Order) CustomerID() string {
	return o.customerID
}

// Items returns a copy of the order's line items.
func (o *Order) Items() []Item {
	return slices.Clone(o.items)
}

// TotalAmount returns the order total fixed at creation time.
func (o *Order) TotalAmount() float64 {
	return o.totalAmount
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// AssignedPartnerID returns the claiming partner's identity.
// Returns the empty string while the order is Pending.
func (o *Order) AssignedPartnerID() string {
	return o.assignedPartnerID
}

// HandoffCode returns the shared-secret code gating delivery.
// Empty while Pending and again after successful delivery.
func (o *Order) HandoffCode() string {
	return o.handoffCode
}

// Accept claims the order for a partner and arms the handoff code.
//
// Business rules enforced:
//   - The partner identity must be non-empty
//   - The code must be a well-formed 4-digit handoff code
//   - The order must be Pending; any other status fails the transition
//
// On success the order is Accepted, the partner is recorded, and the code
// is stored for later verification by Deliver.
func (o *Order) Accept(partnerID, handoffCode string) error {
	if partnerID == "" {
		return errs.NewValueIsRequiredError("partnerID")
	}
	if err := validateHandoffCode(handoffCode); err != nil {
		return err
	}

	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.assignedPartnerID = partnerID
	o.handoffCode = handoffCode
	return nil
}

// Deliver completes the order after verifying the handoff code.
//
// Business rules enforced:
//   - The order must be Accepted
//   - The supplied code must exactly match the stored handoff code; a
//     mismatch returns HandoffCodeMismatchError and changes nothing
//
// On success the order becomes Delivered and the stored code is cleared so
// it cannot be replayed.
func (o *Order) Deliver(handoffCode string) error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	if handoffCode != o.handoffCode {
		return errs.NewHandoffCodeMismatchError(o.id.String())
	}

	o.status = newStatus
	o.handoffCode = ""
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setCustomerID validates and sets the requesting customer's identity.
func (o *Order) setCustomerID(customerID string) error {
	if customerID == "" {
		return errs.NewValueIsRequiredError("customerID")
	}
	o.customerID = customerID
	return nil
}

// setItems validates and sets the order's line items.
// The slice is copied so callers cannot mutate the aggregate afterwards.
func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if item.name == "" {
			return errs.NewValueIsInvalidErrorWithCause("items",
				errors.New("items must be created via NewItem"))
		}
	}
	o.items = slices.Clone(items)
	return nil
}
