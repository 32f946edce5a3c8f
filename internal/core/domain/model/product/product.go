package product

import (
	"errors"
	"fmt"
	"strings"

	"deliverymanager/internal/core/domain/model/kernel"
	"deliverymanager/internal/pkg/errs"
	"deliverymanager/internal/pkg/guard"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through the NewProduct factory function.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct")

// DefaultUnit is the unit of measurement assumed when the catalog file does
// not specify one.
const DefaultUnit = "unit"

// Product represents one entry of the product catalog: a short code the
// operator types into the product field ("CA", "TA"), a display name, a unit
// price, and a unit of measurement.
//
// Product follows these invariants:
//   - Code is non-empty and stored uppercase; lookup is case-insensitive
//   - Name is non-empty
//   - Price is never negative
//   - Unit defaults to DefaultUnit when blank
//
// Products are immutable once loaded. A catalog reload replaces them
// wholesale; individual products are never mutated.
type Product struct {
	code  string
	name  string
	price kernel.Money
	unit  string

	guard guard.ConstructorGuard
}

// NewProduct creates a validated Product. The code is uppercased and the unit
// falls back to DefaultUnit when blank. Returns an error when the code or name
// is empty or the price is negative.
func NewProduct(code, name string, price kernel.Money, unit string) (Product, error) {
	p := Product{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		p.setCode(code),
		p.setName(name),
		p.setPrice(price),
		p.setUnit(unit),
	); err != nil {
		return Product{}, err
	}

	return p, nil
}

// Validate ensures the Product was created through NewProduct.
func (p Product) Validate() error {
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// Code returns the uppercase product code.
func (p Product) Code() string {
	return p.code
}

// Name returns the product display name.
func (p Product) Name() string {
	return p.name
}

// Price returns the unit price.
func (p Product) Price() kernel.Money {
	return p.price
}

// Unit returns the unit of measurement.
func (p Product) Unit() string {
	return p.unit
}

func (p *Product) setCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}
	p.code = strings.ToUpper(code)
	return nil
}

func (p *Product) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price kernel.Money) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is negative", price))
	}
	p.price = price
	return nil
}

func (p *Product) setUnit(unit string) error {
	unit = strings.TrimSpace(unit)
	if unit == "" {
		unit = DefaultUnit
	}
	p.unit = unit
	return nil
}
