package commands

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/ledger"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
)

// CloseOrderCommandHandler handles the business logic for completing an order.
// Verifies the handoff code, transitions the order to Delivered, computes the
// payout amounts, and appends the ledger record in the same transaction as
// the status change. Either both persist or neither does.
//
// Example:
//
//	handler := NewCloseOrderCommandHandler(uowFactory, calculator, notifier)
//	cmd, _ := NewCloseOrderCommand(orderID, "0042")
//
//	record, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrHandoffCodeMismatch) {
//	    // wrong code, order stays Accepted and can be retried
//	}
type CloseOrderCommandHandler struct {
	uowFactory UoWFactory
	calculator services.PayoutCalculator
	notifier   ports.Notifier
}

// NewCloseOrderCommandHandler creates a handler for order closing operations.
// Requires a UoWFactory spanning orders and the ledger, the payout
// calculator, and a Notifier for the post-commit fan-out.
func NewCloseOrderCommandHandler(
	uowFactory UoWFactory,
	calculator services.PayoutCalculator,
	notifier ports.Notifier,
) CloseOrderCommandHandler {
	return CloseOrderCommandHandler{
		uowFactory: uowFactory,
		calculator: calculator,
		notifier:   notifier,
	}
}

// Handle processes the close command.
// Atomically transitions the order from Accepted to Delivered after the
// aggregate verifies the presented code, then computes the payouts from the
// order total and appends the transaction record before committing. After a
// successful commit both the customer and the claiming partner receive an
// order_delivered event. A code mismatch aborts the transition with no side
// effects and leaves the order claimable for another close attempt.
func (h *CloseOrderCommandHandler) Handle(
	ctx context.Context, cmd CloseOrderCommand,
) (ledger.TransactionRecord, error) {
	if err := cmd.Validate(); err != nil {
		return ledger.TransactionRecord{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ledger.TransactionRecord{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	delivered, err := uow.OrderRepository().Transition(
		ctx, cmd.OrderID(), order.Accepted,
		func(o *order.Order) error {
			return o.Deliver(cmd.HandoffCode())
		},
	)
	if err != nil {
		return ledger.TransactionRecord{}, err
	}

	payout, err := h.calculator.Calculate(delivered.TotalAmount())
	if err != nil {
		return ledger.TransactionRecord{}, err
	}

	record, err := ledger.NewTransactionRecord(
		delivered.ID(),
		delivered.CustomerID(),
		delivered.AssignedPartnerID(),
		delivered.TotalAmount(),
		payout.RewardBonus,
		payout.PartnerCommission,
		payout.PlatformCommission,
	)
	if err != nil {
		return ledger.TransactionRecord{}, err
	}

	if err = uow.LedgerStore().Append(ctx, record); err != nil {
		return ledger.TransactionRecord{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ledger.TransactionRecord{}, err
	}

	deliveredEvent := ports.OrderDeliveredEvent(delivered.ID())
	h.notifier.NotifyUser(kernel.RoleCustomer, delivered.CustomerID(), deliveredEvent)
	h.notifier.NotifyUser(kernel.RolePartner, delivered.AssignedPartnerID(), deliveredEvent)

	return record, nil
}
