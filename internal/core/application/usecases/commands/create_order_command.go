package commands

import (
	"errors"
	"strings"

	"deliverymanager/internal/core/domain/model/kernel"
	"deliverymanager/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrClientNameIsRequired  = errors.New("client name is required")
	ErrDeliveryFeeIsNegative = errors.New("delivery fee cannot be negative")
)

// CreateOrderCommand represents a request to register a new delivery order.
// Carries the raw form fields: the delivery fee arrives as text and is parsed
// here, the product field stays text and is parsed by the handler.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, "Rakoto Jean", "034 12 345 67",
//	    "Lot II A 23 Andoharanofotsy", "3000", "CA x 2, TA", "Hery", "")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(repo, history)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	clientName   string
	phone        string
	address      string
	deliveryFee  kernel.Money
	productsText string
	agent        string
	notes        string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new delivery order.
// Validates that the order ID is valid, the client name is not empty, and the
// delivery fee text parses to a non-negative amount. The other fields are
// free text; their quality checks are advisory and happen elsewhere.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	clientName string,
	phone string,
	address string,
	deliveryFeeText string,
	productsText string,
	agent string,
	notes string,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		phone:        strings.TrimSpace(phone),
		address:      strings.TrimSpace(address),
		productsText: strings.TrimSpace(productsText),
		agent:        strings.TrimSpace(agent),
		notes:        strings.TrimSpace(notes),

		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setClientName(clientName),
		orderCommand.setDeliveryFee(deliveryFeeText),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ClientName returns the customer's name.
func (c CreateOrderCommand) ClientName() string {
	return c.clientName
}

// Phone returns the raw phone field text.
func (c CreateOrderCommand) Phone() string {
	return c.phone
}

// Address returns the delivery address text.
func (c CreateOrderCommand) Address() string {
	return c.address
}

// DeliveryFee returns the parsed delivery fee.
func (c CreateOrderCommand) DeliveryFee() kernel.Money {
	return c.deliveryFee
}

// ProductsText returns the raw product field text, e.g. "CA x 2, TA:3".
func (c CreateOrderCommand) ProductsText() string {
	return c.productsText
}

// Agent returns the assigned delivery agent, possibly empty.
func (c CreateOrderCommand) Agent() string {
	return c.agent
}

// Notes returns the free-form notes, possibly empty.
func (c CreateOrderCommand) Notes() string {
	return c.notes
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setClientName(clientName string) error {
	clientName = strings.TrimSpace(clientName)
	if clientName == "" {
		return ErrClientNameIsRequired
	}

	c.clientName = clientName
	return nil
}

func (c *CreateOrderCommand) setDeliveryFee(text string) error {
	fee, err := kernel.ParseMoney(text)
	if err != nil {
		return err
	}
	if fee.IsNegative() {
		return ErrDeliveryFeeIsNegative
	}

	c.deliveryFee = fee
	return nil
}
