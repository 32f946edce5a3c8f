package order

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"deliverymanager/internal/core/domain/model/kernel"
	"deliverymanager/internal/core/domain/model/product"
	"deliverymanager/internal/pkg/errs"
	"deliverymanager/internal/pkg/guard"
)

// ErrLineIsNotConstructed is returned when a Line instance was not created
// through the NewLine factory function.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine")

// Line is one product entry of an order: a product code and a quantity.
//
// Line follows these invariants:
//   - Product code is non-empty and stored uppercase
//   - Quantity is at least 1
//
// A line holds only the code, not the product itself. The code should resolve
// against the catalog for pricing, but an unresolved code is deliberately
// tolerated: it contributes zero to the total and is left for the operator to
// correct, so a typo never blocks entering or importing an order.
type Line struct {
	productCode string
	quantity    int

	guard guard.ConstructorGuard
}

// NewLine creates a validated Line. The product code is uppercased.
// Returns an error when the code is empty or the quantity is below 1.
func NewLine(productCode string, quantity int) (Line, error) {
	l := Line{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		l.setProductCode(productCode),
		l.setQuantity(quantity),
	); err != nil {
		return Line{}, err
	}

	return l, nil
}

// Validate ensures the Line was created through NewLine.
func (l Line) Validate() error {
	return l.guard.Validate(ErrLineIsNotConstructed)
}

// ProductCode returns the uppercase product code.
func (l Line) ProductCode() string {
	return l.productCode
}

// Quantity returns the ordered quantity.
func (l Line) Quantity() int {
	return l.quantity
}

// Resolved reports whether the line's code is known to the catalog.
func (l Line) Resolved(catalog product.Catalog) bool {
	_, ok := catalog.Resolve(l.productCode)
	return ok
}

// Total prices the line against the catalog: quantity times unit price when
// the code resolves, the zero amount otherwise.
func (l Line) Total(catalog product.Catalog) kernel.Money {
	p, ok := catalog.Resolve(l.productCode)
	if !ok {
		return kernel.ZeroMoney()
	}
	return p.Price().MulInt(l.quantity)
}

// String renders the human-readable form used in the Product(s) field:
// "CA x 2" for quantities above one, the bare code for quantity one.
// The bare-code form keeps reformatting stable under re-parsing, since the
// parser reads a bare code as quantity one.
func (l Line) String() string {
	if l.quantity == 1 {
		return l.productCode
	}
	return l.productCode + " x " + strconv.Itoa(l.quantity)
}

// LinesText reconstructs the human-readable Product(s) field from a sequence
// of lines, e.g. "CA x 2, TA". Entry order is preserved.
func LinesText(lines []Line) string {
	parts := make([]string, 0, len(lines))
	for _, l := range lines {
		parts = append(parts, l.String())
	}
	return strings.Join(parts, ", ")
}

func (l *Line) setProductCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return errs.NewValueIsRequiredError("productCode")
	}
	l.productCode = strings.ToUpper(code)
	return nil
}

func (l *Line) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not at least 1", quantity))
	}
	l.quantity = quantity
	return nil
}
