package order

import (
	"fmt"
	"strings"

	"deliverymanager/internal/pkg/errs"
)

// Status represents the delivery state of an order as the operator tracks it:
// freshly entered, delivered, delivered with a return, cancelled, or reported
// for follow-up. Any valid status may be set from any other; the desktop
// workflow is manual correction, not a one-way state machine.
//
// Status is a value object that validates set membership and provides the
// string forms used for display and in the order CSV.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a newly entered order.
	Pending

	// Ok indicates the order was delivered.
	Ok

	// OkWithRetour indicates the order was delivered with a partial return.
	OkWithRetour

	// Cancelled indicates the order was cancelled.
	Cancelled

	// Reported indicates the order was reported for later follow-up.
	Reported
)

// getStatusStrings returns a map of Status values to their string
// representations. All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:      "Unknown",
		Pending:      "Pending",
		Ok:           "Ok",
		OkWithRetour: "Ok with retour",
		Cancelled:    "Cancelled",
		Reported:     "Reported",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:      "Pending",
		Ok:           "Ok",
		OkWithRetour: "Ok with retour",
		Cancelled:    "Cancelled",
		Reported:     "Reported",
	}
}

// Statuses returns every valid status in display order. Used by callers that
// render status choices (filter panel, bulk status buttons).
func Statuses() []Status {
	return []Status{Pending, Ok, OkWithRetour, Cancelled, Reported}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Ok, OkWithRetour, Cancelled, Reported.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status. This is also the form
// written to and read from the order CSV ("Ok with retour", not "OkWithRetour").
// Returns "Unknown" for invalid status values; implements fmt.Stringer and is
// safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ParseStatus reads a status from its string form, case-insensitively and
// ignoring surrounding whitespace. Returns an error for input that names no
// valid status, including the empty string.
func ParseStatus(s string) (Status, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for status, str := range getValidStatusStrings() {
		if strings.ToLower(str) == needle {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a recognized status", s))
}
