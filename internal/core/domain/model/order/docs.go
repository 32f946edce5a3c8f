// Package order provides domain entities and business logic for order
// management in the delivery manager. It implements the Order aggregate root
// together with its Line entries and Status lifecycle value.
//
// The package includes:
//   - Order: The aggregate root holding the fields of one delivery order
//   - Line: A value object pairing a product code with a quantity
//   - Status: The set of delivery states an order can be in
//
// Key business rules:
//   - Orders have a stable unique identifier and a never-negative delivery fee
//   - Totals are derived values, recomputed against the catalog on every read
//   - Unresolved product codes are tolerated and price at zero; they are
//     flagged, not rejected, because the workflow is manual correction
//   - Any valid status may be set from any other; the tool tracks deliveries,
//     it does not enforce a one-way workflow
package order
