// Package inmem provides the in-memory order repository backing one editing
// session. The desktop tool keeps the order book in memory and persists it
// only through explicit CSV export, so this is the sole order store.
package inmem

import (
	"context"

	"deliverymanager/internal/core/domain/model/kernel"
	"deliverymanager/internal/core/domain/model/order"
	"deliverymanager/internal/pkg/errs"
)

// OrderRepository implements ports.OrderRepository with insertion-ordered
// in-memory storage. It is not safe for concurrent use; the application is
// single-threaded by design.
type OrderRepository struct {
	ids    []string
	orders map[string]*order.Order
}

// NewOrderRepository creates an empty repository.
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{
		orders: make(map[string]*order.Order),
	}
}

// Add stores a new order. Fails when the order is invalid or already present.
func (r *OrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	key := aggregate.ID().String()
	if _, exists := r.orders[key]; exists {
		return errs.NewValueIsInvalidError("order with this ID already exists")
	}

	r.ids = append(r.ids, key)
	r.orders[key] = aggregate
	return nil
}

// Update stores changes to an existing order. Fails when the order is invalid
// or not present.
func (r *OrderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	key := aggregate.ID().String()
	if _, exists := r.orders[key]; !exists {
		return errs.NewObjectNotFoundError("orderId", key)
	}

	r.orders[key] = aggregate
	return nil
}

// Get retrieves an order by ID.
func (r *OrderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	aggregate, exists := r.orders[id.String()]
	if !exists {
		return nil, errs.NewObjectNotFoundError("orderId", id.String())
	}
	return aggregate, nil
}

// Remove deletes an order by ID.
func (r *OrderRepository) Remove(_ context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	key := id.String()
	if _, exists := r.orders[key]; !exists {
		return errs.NewObjectNotFoundError("orderId", key)
	}

	delete(r.orders, key)
	for i, existing := range r.ids {
		if existing == key {
			r.ids = append(r.ids[:i], r.ids[i+1:]...)
			break
		}
	}
	return nil
}

// GetAll returns every order in entry order.
func (r *OrderRepository) GetAll(_ context.Context) ([]*order.Order, error) {
	all := make([]*order.Order, 0, len(r.ids))
	for _, key := range r.ids {
		all = append(all, r.orders[key])
	}
	return all, nil
}

// GetAllInStatus returns the orders whose status is among the given ones,
// in entry order.
func (r *OrderRepository) GetAllInStatus(_ context.Context, statuses ...order.Status) ([]*order.Order, error) {
	wanted := make(map[order.Status]bool, len(statuses))
	for _, s := range statuses {
		wanted[s] = true
	}

	matching := make([]*order.Order, 0)
	for _, key := range r.ids {
		if aggregate := r.orders[key]; wanted[aggregate.Status()] {
			matching = append(matching, aggregate)
		}
	}
	return matching, nil
}

// Clear removes every order.
func (r *OrderRepository) Clear(_ context.Context) error {
	r.ids = nil
	r.orders = make(map[string]*order.Order)
	return nil
}
