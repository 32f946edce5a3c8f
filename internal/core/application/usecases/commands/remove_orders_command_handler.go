package commands

import (
	"context"

	"deliverymanager/internal/core/ports"
)

// RemoveOrdersCommandHandler deletes orders from the book.
type RemoveOrdersCommandHandler struct {
	orderRepository ports.OrderRepository
}

// NewRemoveOrdersCommandHandler creates a handler for order deletion.
func NewRemoveOrdersCommandHandler(orderRepository ports.OrderRepository) RemoveOrdersCommandHandler {
	return RemoveOrdersCommandHandler{orderRepository: orderRepository}
}

// Handle processes the deletion. Every id must resolve to a stored order; an
// unknown id fails the command before any order is removed.
func (h RemoveOrdersCommandHandler) Handle(ctx context.Context, cmd RemoveOrdersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	for _, id := range cmd.OrderIDs() {
		if _, err := h.orderRepository.Get(ctx, id); err != nil {
			return err
		}
	}

	for _, id := range cmd.OrderIDs() {
		if err := h.orderRepository.Remove(ctx, id); err != nil {
			return err
		}
	}

	return nil
}
