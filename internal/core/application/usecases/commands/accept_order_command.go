package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrAcceptOrderCommandIsNotConstructed = errors.New(
		"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
	)
	ErrPartnerIDIsRequired = errors.New("partner ID is required")
)

// AcceptOrderCommand represents a partner's claim on a pending order.
// At most one such claim can ever succeed per order.
type AcceptOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	partnerID string

	guard guard.ConstructorGuard
}

// NewAcceptOrderCommand creates a command for a partner to claim an order.
// Validates that the order ID is valid and the partner identity is not empty.
func NewAcceptOrderCommand(orderID kernel.UUID, partnerID string) (AcceptOrderCommand, error) {
	acceptCommand := AcceptOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		acceptCommand.setOrderID(orderID),
		acceptCommand.setPartnerID(partnerID),
	); err != nil {
		return AcceptOrderCommand{}, err
	}

	return acceptCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAcceptOrderCommandIsNotConstructed if validation fails.
func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being claimed.
func (c AcceptOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PartnerID returns the identity of the claiming partner.
func (c AcceptOrderCommand) PartnerID() string {
	return c.partnerID
}

func (c *AcceptOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AcceptOrderCommand) setPartnerID(partnerID string) error {
	if partnerID == "" {
		return ErrPartnerIDIsRequired
	}

	c.partnerID = partnerID
	return nil
}
