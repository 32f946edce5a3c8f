package queries

import (
	"context"

	"deliverymanager/internal/core/domain/model/order"
	"deliverymanager/internal/core/ports"
)

// GetAllOrdersQueryHandler reads the full order book.
type GetAllOrdersQueryHandler struct {
	orderRepository ports.OrderRepository
}

// NewGetAllOrdersQueryHandler creates a handler for the full-book query.
func NewGetAllOrdersQueryHandler(orderRepository ports.OrderRepository) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{orderRepository: orderRepository}
}

// Handle returns every order in entry order.
func (h GetAllOrdersQueryHandler) Handle(ctx context.Context, query GetAllOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.orderRepository.GetAll(ctx)
}
