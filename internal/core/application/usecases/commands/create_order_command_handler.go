package commands

import (
	"context"

	"deliverymanager/internal/core/domain/model/order"
	"deliverymanager/internal/core/domain/services"
	"deliverymanager/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order creation:
// the product field text becomes order lines, the delivery address feeds the
// autocompletion history, and the order lands in the repository in Pending
// status.
type CreateOrderCommandHandler struct {
	orderRepository ports.OrderRepository
	addressRecorder AddressRecorder
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// The address recorder may be nil when no history is kept.
func NewCreateOrderCommandHandler(
	orderRepository ports.OrderRepository,
	addressRecorder AddressRecorder,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		orderRepository: orderRepository,
		addressRecorder: addressRecorder,
	}
}

// Handle processes the order creation command. The order starts Pending with
// its lines parsed from the product field text. A failure to record the
// address does not fail the creation; the history is advisory.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newOrder, err := order.NewOrder(cmd.OrderID())
	if err != nil {
		return err
	}

	newOrder.SetClientName(cmd.ClientName())
	newOrder.SetPhone(cmd.Phone())
	newOrder.SetAddress(cmd.Address())
	newOrder.SetAgent(cmd.Agent())
	newOrder.SetNotes(cmd.Notes())

	if err = newOrder.SetDeliveryFee(cmd.DeliveryFee()); err != nil {
		return err
	}
	if err = newOrder.SetLines(services.ParseProductField(cmd.ProductsText())); err != nil {
		return err
	}

	if err = h.orderRepository.Add(ctx, newOrder); err != nil {
		return err
	}

	if h.addressRecorder != nil && cmd.Address() != "" {
		_ = h.addressRecorder.Record(cmd.Address())
	}

	return nil
}
