package commands

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
)

// AcceptOrderCommandHandler handles the business logic for claiming an order.
// Acceptance is exactly-once: the repository's compare-and-transition admits
// a single winner per order, and every losing partner gets a status conflict.
//
// Example:
//
//	handler := NewAcceptOrderCommandHandler(uowFactory, notifier)
//	cmd, _ := NewAcceptOrderCommand(orderID, "partner-7")
//
//	accepted, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrStatusConflict) {
//	    // another partner got there first
//	}
type AcceptOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewAcceptOrderCommandHandler creates a handler for order acceptance.
// Requires an OrderUoWFactory for transactional persistence and a Notifier
// for the post-commit fan-out.
func NewAcceptOrderCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the acceptance command.
// Atomically transitions the order from Pending to Accepted, recording the
// partner and arming a freshly generated handoff code. After the commit it
// notifies the customer that their order was accepted and tells all partners
// the order left the dispatch board. The order_accepted event intentionally
// carries no handoff code; the code is only ever returned to the claiming
// partner through the response.
func (h *AcceptOrderCommandHandler) Handle(
	ctx context.Context, cmd AcceptOrderCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	accepted, err := uow.OrderRepository().Transition(
		ctx, cmd.OrderID(), order.Pending,
		func(o *order.Order) error {
			return o.Accept(cmd.PartnerID(), order.NewHandoffCode())
		},
	)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.NotifyUser(kernel.RoleCustomer, accepted.CustomerID(),
		ports.OrderAcceptedEvent(accepted.ID(), accepted.AssignedPartnerID()))
	h.notifier.BroadcastToRole(kernel.RolePartner,
		ports.OrderTakenEvent(accepted.ID()))

	return accepted, nil
}
