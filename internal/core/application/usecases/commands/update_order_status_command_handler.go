package commands

import (
	"context"

	"deliverymanager/internal/core/domain/model/order"
	"deliverymanager/internal/core/ports"
)

// UpdateOrderStatusCommandHandler applies a bulk status change to the order
// book.
type UpdateOrderStatusCommandHandler struct {
	orderRepository ports.OrderRepository
}

// NewUpdateOrderStatusCommandHandler creates a handler for bulk status
// updates.
func NewUpdateOrderStatusCommandHandler(orderRepository ports.OrderRepository) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{orderRepository: orderRepository}
}

// Handle processes the status update. Every id must resolve to a stored
// order; an unknown id fails the command before any order is written, so a
// failed bulk update leaves the book untouched.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	orders := make([]*order.Order, 0, len(cmd.OrderIDs()))
	for _, id := range cmd.OrderIDs() {
		o, err := h.orderRepository.Get(ctx, id)
		if err != nil {
			return err
		}
		orders = append(orders, o)
	}

	for _, o := range orders {
		if err := o.SetStatus(cmd.Status()); err != nil {
			return err
		}
		if err := h.orderRepository.Update(ctx, o); err != nil {
			return err
		}
	}

	return nil
}
