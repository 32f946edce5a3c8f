package commands

import (
	"errors"

	"deliverymanager/internal/core/domain/model/kernel"
	"deliverymanager/internal/pkg/guard"
)

var ErrRemoveOrdersCommandIsNotConstructed = errors.New(
	"RemoveOrdersCommand must be created via NewRemoveOrdersCommand constructor",
)

// RemoveOrdersCommand represents deleting the selected orders from the book.
type RemoveOrdersCommand struct { //nolint:recvcheck //using for validation
	orderIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveOrdersCommand creates a command to delete the given orders.
// Requires at least one valid id.
func NewRemoveOrdersCommand(orderIDs []kernel.UUID) (RemoveOrdersCommand, error) {
	removeCommand := RemoveOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := removeCommand.setOrderIDs(orderIDs); err != nil {
		return RemoveOrdersCommand{}, err
	}

	return removeCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRemoveOrdersCommandIsNotConstructed if validation fails.
func (c RemoveOrdersCommand) Validate() error {
	return c.guard.Validate(ErrRemoveOrdersCommandIsNotConstructed)
}

// OrderIDs returns the ids of the orders to delete.
func (c RemoveOrdersCommand) OrderIDs() []kernel.UUID {
	return c.orderIDs
}

func (c *RemoveOrdersCommand) setOrderIDs(orderIDs []kernel.UUID) error {
	if len(orderIDs) == 0 {
		return ErrOrderIDsAreRequired
	}
	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	c.orderIDs = append([]kernel.UUID(nil), orderIDs...)
	return nil
}
