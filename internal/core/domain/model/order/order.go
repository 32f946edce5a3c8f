package order

import (
	"errors"
	"fmt"
	"strings"

	"deliverymanager/internal/core/domain/model/kernel"
	"deliverymanager/internal/core/domain/model/product"
	"deliverymanager/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder factory function.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder")

// Order represents one delivery order: one row of the table the operator
// works in. It is the aggregate root for everything entered about a delivery.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Delivery fee is never negative
//   - Status is always a valid Status; new orders start Pending
//   - Lines keep their entry order, which is meaningful for display
//   - The total is derived, never stored: it is recomputed from the current
//     lines, catalog, and fee on every call to Total
//
// Free-text fields (client name, phone, address, agent, notes) are stored as
// entered. Whether they are well-formed is the concern of the field
// validators, which flag rather than reject: an order with a bad phone number
// still exists and is highlighted for correction, matching the manual
// post-hoc correction workflow this tool is built around.
type Order struct {
	// id is the stable identity of the order within a session
	id kernel.UUID

	// clientName, phone, address, agent, notes are stored as entered
	clientName string
	phone      string
	address    string
	agent      string
	notes      string

	// deliveryFee is never negative
	deliveryFee kernel.Money

	// lines preserve entry order
	lines []Line

	// status is always a valid Status
	status Status

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates a new Order with the given identity. The order starts in
// Pending status with no lines and a zero delivery fee; callers fill in the
// remaining fields through the setters.
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID())
//	if err != nil {
//	    return err
//	}
//	o.SetClientName("Rakoto Jean")
//	if err := o.SetLines(lines); err != nil {
//	    return err
//	}
func NewOrder(id kernel.UUID) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		status:        Pending,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder. This prevents bypassing validation by directly instantiating the
// struct, and should be called when accepting orders from outside the package.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ClientName returns the client name as entered.
func (o *Order) ClientName() string {
	return o.clientName
}

// Phone returns the phone field as entered. May hold several numbers
// separated by "/".
func (o *Order) Phone() string {
	return o.phone
}

// Address returns the delivery address as entered.
func (o *Order) Address() string {
	return o.address
}

// DeliveryFee returns the delivery fee.
func (o *Order) DeliveryFee() kernel.Money {
	return o.deliveryFee
}

// Lines returns a copy of the order lines in entry order.
func (o *Order) Lines() []Line {
	lines := make([]Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Agent returns the assigned delivery agent. Empty means unassigned; the
// value is free text and is not checked against the agent list.
func (o *Order) Agent() string {
	return o.agent
}

// Notes returns the free-text notes.
func (o *Order) Notes() string {
	return o.notes
}

// SetClientName updates the client name. Surrounding whitespace is trimmed.
func (o *Order) SetClientName(name string) {
	o.clientName = strings.TrimSpace(name)
}

// SetPhone updates the phone field. Stored as entered; well-formedness is the
// phone validator's concern.
func (o *Order) SetPhone(phone string) {
	o.phone = strings.TrimSpace(phone)
}

// SetAddress updates the delivery address.
func (o *Order) SetAddress(address string) {
	o.address = strings.TrimSpace(address)
}

// SetAgent updates the assigned agent.
func (o *Order) SetAgent(agent string) {
	o.agent = strings.TrimSpace(agent)
}

// SetNotes updates the free-text notes.
func (o *Order) SetNotes(notes string) {
	o.notes = strings.TrimSpace(notes)
}

// SetDeliveryFee updates the delivery fee.
// Returns an error for negative amounts.
func (o *Order) SetDeliveryFee(fee kernel.Money) error {
	if fee.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("deliveryFee", fmt.Errorf("%s is negative", fee))
	}
	o.deliveryFee = fee
	return nil
}

// SetStatus updates the order status.
// Returns an error when the status is not a valid Status.
func (o *Order) SetStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// SetLines replaces the order lines, preserving the given order.
// Every line must have been created via NewLine.
func (o *Order) SetLines(lines []Line) error {
	for _, l := range lines {
		if err := l.Validate(); err != nil {
			return err
		}
	}
	o.lines = make([]Line, len(lines))
	copy(o.lines, lines)
	return nil
}

// ProductsText reconstructs the human-readable Product(s) field from the
// current lines, e.g. "CA x 2, TA".
func (o *Order) ProductsText() string {
	return LinesText(o.lines)
}

// Total computes the order total against the catalog: the sum of the line
// totals plus the delivery fee. Lines whose code the catalog does not know
// contribute zero. The result is recomputed from current state on every call
// and is independent of line order.
func (o *Order) Total(catalog product.Catalog) kernel.Money {
	total := kernel.ZeroMoney()
	for _, l := range o.lines {
		total = total.Add(l.Total(catalog))
	}
	return total.Add(o.deliveryFee)
}

// UnresolvedCodes returns the product codes of lines the catalog does not
// know, in entry order without duplicates. Callers use this to flag rows for
// correction.
func (o *Order) UnresolvedCodes(catalog product.Catalog) []string {
	seen := make(map[string]bool)
	var codes []string
	for _, l := range o.lines {
		if l.Resolved(catalog) || seen[l.ProductCode()] {
			continue
		}
		seen[l.ProductCode()] = true
		codes = append(codes, l.ProductCode())
	}
	return codes
}
