// Package product provides the product side of the delivery manager domain:
// the Product value object and the Catalog lookup table that order totals are
// priced against.
//
// Key business rules:
//   - Product codes are unique, case-insensitive identifiers stored uppercase
//   - Prices are never negative
//   - A catalog is immutable once built; reloading builds a replacement
//   - Order lines reference products by code only; a code the catalog does
//     not know is tolerated and simply prices at zero
package product
