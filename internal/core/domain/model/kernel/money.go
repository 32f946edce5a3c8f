package kernel

import (
	"strings"

	"deliverymanager/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// currencyMarker is the ariary suffix accepted on input and appended on display.
const currencyMarker = "Ar"

// Money is a value object representing a monetary amount: a product price,
// a delivery fee, or an order total. It wraps a decimal amount so that totals
// computed from many lines do not accumulate binary floating point drift.
//
// Unlike the identifiers in this package, the zero value of Money is valid:
// it is the zero amount. Money values are immutable; arithmetic methods return
// new values.
//
// Money knows the two textual conventions of the order files:
//   - parsing is tolerant of thousands separators and the currency marker,
//     so "25000", "25 000", "25,000", and "25 000 Ar" all read as the same amount
//   - formatting renders "25 000 Ar" style, with two decimals only when the
//     amount is fractional
type Money struct {
	amount decimal.Decimal
}

// NewMoney creates a Money from a decimal amount.
func NewMoney(amount decimal.Decimal) Money {
	return Money{amount: amount}
}

// MoneyFromInt creates a Money from a whole number of currency units.
func MoneyFromInt(v int64) Money {
	return Money{amount: decimal.NewFromInt(v)}
}

// ZeroMoney returns the zero amount.
func ZeroMoney() Money {
	return Money{}
}

// ParseMoney reads a monetary amount from user- or file-supplied text.
// Thousands separators (spaces or commas) and the "Ar" currency marker are
// stripped before parsing. Returns an error for empty or non-numeric input;
// negative amounts parse successfully and are left for the caller to judge.
func ParseMoney(s string) (Money, error) {
	cleaned := strings.NewReplacer(" ", "", " ", "", ",", "").Replace(strings.TrimSpace(s))
	for _, marker := range []string{currencyMarker, strings.ToLower(currencyMarker), strings.ToUpper(currencyMarker)} {
		cleaned = strings.TrimSuffix(cleaned, marker)
	}

	if cleaned == "" {
		return Money{}, errs.NewValueIsRequiredError("amount")
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return Money{amount: amount}, nil
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// MulInt returns the amount multiplied by a whole quantity.
func (m Money) MulInt(n int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(n)))}
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// Equals compares two amounts for numeric equality.
func (m Money) Equals(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Decimal returns the underlying decimal amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Format renders the amount for display and for the numeric CSV columns:
// space-grouped thousands, two decimals only when the amount is fractional,
// "-" prefix for negatives, "Ar" suffix. Examples: "25 000 Ar", "1 234.50 Ar".
func (m Money) Format() string {
	abs := m.amount.Abs()

	var formatted string
	if abs.Equal(abs.Truncate(0)) {
		formatted = groupThousands(abs.Truncate(0).String())
	} else {
		fixed := abs.StringFixed(2)
		whole, frac, _ := strings.Cut(fixed, ".")
		formatted = groupThousands(whole) + "." + frac
	}

	if m.amount.IsNegative() {
		formatted = "-" + formatted
	}
	return formatted + " " + currencyMarker
}

// String implements fmt.Stringer using the display format.
func (m Money) String() string {
	return m.Format()
}

// groupThousands inserts a space every three digits, counting from the right.
// The input must be a plain digit string without sign or decimal point.
func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
