package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrCloseOrderCommandIsNotConstructed = errors.New(
		"CloseOrderCommand must be created via NewCloseOrderCommand constructor",
	)
	ErrHandoffCodeIsRequired = errors.New("handoff code is required")
)

// CloseOrderCommand represents a request to complete an accepted order by
// presenting the handoff code the claiming partner received at acceptance.
type CloseOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	handoffCode string

	guard guard.ConstructorGuard
}

// NewCloseOrderCommand creates a command to close an order.
// Validates that the order ID is valid and a code was supplied; whether the
// code actually matches is decided by the aggregate during the transition.
func NewCloseOrderCommand(orderID kernel.UUID, handoffCode string) (CloseOrderCommand, error) {
	closeCommand := CloseOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		closeCommand.setOrderID(orderID),
		closeCommand.setHandoffCode(handoffCode),
	); err != nil {
		return CloseOrderCommand{}, err
	}

	return closeCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCloseOrderCommandIsNotConstructed if validation fails.
func (c CloseOrderCommand) Validate() error {
	return c.guard.Validate(ErrCloseOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being closed.
func (c CloseOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// HandoffCode returns the code presented for verification.
func (c CloseOrderCommand) HandoffCode() string {
	return c.handoffCode
}

func (c *CloseOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CloseOrderCommand) setHandoffCode(handoffCode string) error {
	if handoffCode == "" {
		return ErrHandoffCodeIsRequired
	}

	c.handoffCode = handoffCode
	return nil
}
