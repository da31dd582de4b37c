// Package kernel holds the value objects shared by every aggregate of the
// ordering domain.
//
// The package includes:
//   - UUID: identifier of change requests and export log entries
//   - Money: non-negative amount in euro cents
//   - Address: delivery address with optional phone and notes
//
// All values are immutable. Constructors reject invalid input, and the zero
// value of UUID is never valid.
package kernel
