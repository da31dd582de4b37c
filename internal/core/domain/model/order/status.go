package order

import (
	"errors"
	"fmt"

	"bakery/internal/pkg/errs"
)

// ErrInvalidTransition is wrapped by every InvalidTransitionError.
var ErrInvalidTransition = errors.New("invalid status transition")

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Draft ──> Placed ──> Exported
//	  │         │
//	  └────┬────┘
//	       v
//	   Cancelled
//
// Exported is terminal. Cancelled accepts a repeated cancel as a no-op.
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota

	// Draft is the customer's open cart. Only drafts accept line changes.
	Draft

	// Placed orders are submitted and waiting for the next export run.
	Placed

	// Exported orders have been handed over to the external system.
	Exported

	// Cancelled orders are withdrawn by the customer or by staff.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Draft:     "DRAFT",
		Placed:    "PLACED",
		Exported:  "EXPORTED",
		Cancelled: "CANCELLED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Draft:     "DRAFT",
		Placed:    "PLACED",
		Exported:  "EXPORTED",
		Cancelled: "CANCELLED",
	}
}

// ParseStatus converts a persisted status name back to a Status.
func ParseStatus(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that s is one of Draft, Placed, Exported or Cancelled.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted name of the status, e.g. "PLACED".
// Values outside the enum print as "UNKNOWN".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Place transitions the status to Placed.
//
// Valid transitions:
//   - Draft -> Placed (customer checks out the cart)
//
// Invalid transitions:
//   - Placed, Exported or Cancelled -> Placed (already submitted or closed)
//   - Unknown -> Placed (invalid initial state)
//
// Returns:
//   - (Placed, nil) on valid transition
//   - (Unknown, *InvalidTransitionError) otherwise
//
// Example:
//
//	next, err := current.Place()
//	if errors.Is(err, order.ErrInvalidTransition) {
//	    // The cart was already placed
//	}
func (s Status) Place() (Status, error) {
	if s != Draft {
		return Unknown, newInvalidTransitionError(s, "place")
	}
	return Placed, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Draft -> Cancelled (cart discarded)
//   - Placed -> Cancelled (order withdrawn before export)
//   - Cancelled -> Cancelled (repeated cancel is a no-op)
//
// Invalid transitions:
//   - Exported -> Cancelled (already handed over)
//   - Unknown -> Cancelled (invalid initial state)
//
// Returns:
//   - (Cancelled, nil) on valid transition
//   - (Unknown, *InvalidTransitionError) otherwise
//
// Example:
//
//	next, err := current.Cancel()
//	if err != nil {
//	    // The order was exported meanwhile
//	}
func (s Status) Cancel() (Status, error) {
	switch s { //nolint:exhaustive // every other status is rejected below
	case Draft, Placed, Cancelled:
		return Cancelled, nil
	default:
		return Unknown, newInvalidTransitionError(s, "cancel")
	}
}

// Export transitions the status to Exported.
//
// Valid transitions:
//   - Placed -> Exported (order written to an export batch)
//
// Invalid transitions:
//   - Draft -> Exported (must be placed first)
//   - Exported -> Exported (already exported)
//   - Cancelled -> Exported (withdrawn orders are never exported)
//
// Returns:
//   - (Exported, nil) on valid transition
//   - (Unknown, *InvalidTransitionError) otherwise
//
// Exported is a final state. Used by Order.MarkExported.
//
// Example:
//
//	next, err := current.Export()
//	if err != nil {
//	    // Skip the order in this batch
//	}
func (s Status) Export() (Status, error) {
	if s != Placed {
		return Unknown, newInvalidTransitionError(s, "export")
	}
	return Exported, nil
}

// InvalidTransitionError reports an action the current status does not allow.
type InvalidTransitionError struct {
	From   Status
	Action string
}

func newInvalidTransitionError(from Status, action string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, Action: action}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: cannot %s an order in status %s", ErrInvalidTransition, e.Action, e.From)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}
