package ports

import (
	"context"

	"deliverymanager/internal/core/domain/model/kernel"
	"deliverymanager/internal/core/domain/model/order"
)

// OrderRepository defines the storage contract for the session's order book:
// the set of orders behind the table the operator works in. Entry order is
// part of the contract — GetAll and GetAllInStatus return orders in the order
// they were added, because row order is meaningful for display.
type OrderRepository interface {
	// Add stores a new order aggregate.
	// The order must be valid and not already present.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update stores changes to an existing order aggregate.
	// The order must already be present and valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Remove deletes an order by its unique identifier.
	// Removing an absent order is an error.
	Remove(ctx context.Context, id kernel.UUID) error

	// GetAll retrieves every order in entry order.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetAllInStatus retrieves the orders whose status is among the given
	// ones, in entry order. Used by the status filter.
	GetAllInStatus(ctx context.Context, statuses ...order.Status) ([]*order.Order, error)

	// Clear removes every order. Backs the "clear all" operation.
	Clear(ctx context.Context) error
}
