package queries

import (
	"errors"

	"deliverymanager/internal/core/domain/model/order"
	"deliverymanager/internal/pkg/guard"
)

var (
	ErrGetOrdersByStatusQueryIsNotConstructed = errors.New(
		"GetOrdersByStatusQuery must be created via NewGetOrdersByStatusQuery constructor",
	)
	ErrStatusesAreRequired = errors.New("at least one status is required")
)

// GetOrdersByStatusQuery retrieves the orders in the given statuses, in
// entry order. Backs the table's status filter.
type GetOrdersByStatusQuery struct { //nolint:recvcheck //using for validation
	statuses []order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersByStatusQuery creates a status-filter query. Requires at least
// one valid status.
func NewGetOrdersByStatusQuery(statuses []order.Status) (GetOrdersByStatusQuery, error) {
	statusQuery := GetOrdersByStatusQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := statusQuery.setStatuses(statuses); err != nil {
		return GetOrdersByStatusQuery{}, err
	}

	return statusQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersByStatusQueryIsNotConstructed if validation fails.
func (q GetOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByStatusQueryIsNotConstructed)
}

// Statuses returns the statuses to filter by.
func (q GetOrdersByStatusQuery) Statuses() []order.Status {
	return q.statuses
}

func (q *GetOrdersByStatusQuery) setStatuses(statuses []order.Status) error {
	if len(statuses) == 0 {
		return ErrStatusesAreRequired
	}
	for _, status := range statuses {
		if err := status.Validate(); err != nil {
			return err
		}
	}

	q.statuses = append([]order.Status(nil), statuses...)
	return nil
}
