package queries

import (
	"context"

	"deliverymanager/internal/core/domain/model/order"
	"deliverymanager/internal/core/ports"
)

// GetOrdersByStatusQueryHandler reads the order book filtered by status.
type GetOrdersByStatusQueryHandler struct {
	orderRepository ports.OrderRepository
}

// NewGetOrdersByStatusQueryHandler creates a handler for the status filter.
func NewGetOrdersByStatusQueryHandler(orderRepository ports.OrderRepository) GetOrdersByStatusQueryHandler {
	return GetOrdersByStatusQueryHandler{orderRepository: orderRepository}
}

// Handle returns the orders whose status is among the query's statuses, in
// entry order.
func (h GetOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByStatusQuery,
) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.orderRepository.GetAllInStatus(ctx, query.Statuses()...)
}
