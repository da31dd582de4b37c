// Package services provides domain services that work across several
// aggregates.
//
// The package includes:
//   - ExportBatcher: turns placed orders and their customers into export
//     records and marks the orders of a written batch as exported
package services
