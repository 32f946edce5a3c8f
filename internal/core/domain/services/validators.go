package services

import (
	"fmt"
	"strings"
	"unicode"

	"deliverymanager/internal/core/domain/model/kernel"
	"deliverymanager/internal/core/domain/model/order"
)

// Validator is the capability every field check implements: given one field
// value it reports validity and a message for the operator. Validators never
// return errors; a failed check is a result, not a failure.
type Validator func(value string) (valid bool, message string)

// PhoneBounds is the accepted digit-count range for one phone sub-number.
type PhoneBounds struct {
	Min int
	Max int
}

// DefaultPhoneBounds returns the standard 8 to 15 digit range.
func DefaultPhoneBounds() PhoneBounds {
	return PhoneBounds{Min: 8, Max: 15}
}

// phoneSeparatorReplacer strips the punctuation tolerated inside one phone
// number before counting digits.
var phoneSeparatorReplacer = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")

// ValidatePhone builds the phone validator for the given digit bounds.
//
// Rules: the field may hold several numbers separated by "/"; each may contain
// spaces, dashes, parentheses, and a "+" prefix; after stripping those, each
// must be all digits with a count inside the bounds. An empty field is invalid.
func ValidatePhone(bounds PhoneBounds) Validator {
	return func(value string) (bool, string) {
		parts := make([]string, 0, 2)
		for _, part := range strings.Split(value, "/") {
			if part = strings.TrimSpace(part); part != "" {
				parts = append(parts, part)
			}
		}
		if len(parts) == 0 {
			return false, "empty phone field"
		}

		for _, part := range parts {
			digits := strings.TrimPrefix(phoneSeparatorReplacer.Replace(part), "+")

			if digits == "" || !isAllDigits(digits) {
				return false, fmt.Sprintf("phone %q contains invalid characters", part)
			}
			if len(digits) < bounds.Min || len(digits) > bounds.Max {
				return false, fmt.Sprintf("phone %q length must be %d-%d digits", part, bounds.Min, bounds.Max)
			}
		}
		return true, "OK"
	}
}

// ValidateAddress checks that an address is non-empty after trimming.
func ValidateAddress(value string) (bool, string) {
	if strings.TrimSpace(value) == "" {
		return false, "address cannot be empty"
	}
	return true, "OK"
}

// ValidateDeliveryFee checks that a delivery-fee string parses as a
// non-negative amount. Formatted input with thousands separators is accepted.
func ValidateDeliveryFee(value string) (bool, string) {
	if strings.TrimSpace(value) == "" {
		return false, "delivery fee is required"
	}

	fee, err := kernel.ParseMoney(value)
	if err != nil {
		return false, "delivery fee must be a valid number"
	}
	if fee.IsNegative() {
		return false, "delivery fee cannot be negative"
	}
	return true, "OK"
}

// FieldReport is the outcome of checking one order's fields: overall validity
// and one message per failed check. An invalid report never blocks anything;
// callers use it to highlight the row for correction.
type FieldReport struct {
	Valid    bool
	Messages []string
}

// CheckOrderFields runs the field checks against an order: client name
// present, phone well-formed within bounds, address non-empty. The delivery
// fee needs no check here; a constructed order cannot hold a negative fee,
// and fee text is judged by ValidateDeliveryFee at the input boundary.
// Pure and infallible: bad fields produce messages, never errors.
func CheckOrderFields(o *order.Order, bounds PhoneBounds) FieldReport {
	report := FieldReport{Valid: true}

	if strings.TrimSpace(o.ClientName()) == "" {
		report.Valid = false
		report.Messages = append(report.Messages, "client name is empty")
	}
	if ok, msg := ValidatePhone(bounds)(o.Phone()); !ok {
		report.Valid = false
		report.Messages = append(report.Messages, msg)
	}
	if ok, msg := ValidateAddress(o.Address()); !ok {
		report.Valid = false
		report.Messages = append(report.Messages, msg)
	}
	return report
}

// CapitalizeName normalizes a client name to one capitalized word per word,
// the way names are displayed in the table.
func CapitalizeName(name string) string {
	words := strings.Fields(name)
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
