// Package services provides domain services that work across the order and
// product models of the delivery manager.
//
// The package includes:
//   - ParseProductField: The tolerant free-text grammar for the Product(s)
//     field, turning "CA x 2, TA:1" into order lines
//   - Field validators: Pure predicates for phone, address, and delivery-fee
//     values that report validity without ever failing
//   - CheckOrderFields: The per-order aggregation of those predicates used to
//     flag rows for correction
//
// Nothing in this package rejects bad data outright. The desktop workflow is
// entry first, correction after, so services here normalize what they can and
// flag what they cannot.
package services
