// Package ordercsv persists orders as CSV files in the fixed 10-column
// schema of the delivery manager: the nine operator-visible columns plus
// OrderLinesJSON, a machine-readable encoding of the line items that makes
// export then import lossless for product codes and quantities.
//
// Failure taxonomy:
//   - ExportError: destination not writable; no partial-write rollback
//   - ImportError: structural file problems only (missing file, corrupt CSV,
//     missing required columns)
//   - per-row validity flags: bad phone, unknown status, unresolved product
//     codes and the like never fail an import; the row arrives flagged
package ordercsv
