package order

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a linear
// state machine with no back-transitions and no cancellation path:
//
//	Pending ──> Accepted ──> Delivered
//
// Pending orders are visible to every partner; Accepted orders belong to
// exactly one partner; Delivered is terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	// Orders in this status are waiting to be claimed by a partner.
	Pending

	// Accepted indicates exactly one partner has claimed the order and a
	// handoff code has been generated.
	Accepted

	// Delivered indicates the handoff code was verified and the order is
	// complete. This is a final state with no further transitions.
	Delivered
)

// getStatusStrings returns a map of Status values to their string
// representations. All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Accepted:  "Accepted",
		Delivered: "Delivered",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Accepted:  "Accepted",
		Delivered: "Delivered",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are: Pending, Accepted, Delivered.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status. It implements
// fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Accept transitions the status to Accepted.
//
// The only valid transition is Pending -> Accepted: once an order has been
// claimed it can never be claimed again. Together with the repository's
// compare-and-transition this makes acceptance exactly-once.
func (s Status) Accept() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to accept", s.String()))
	}

	return Accepted, nil
}

// Deliver transitions the status to Delivered.
//
// The only valid transition is Accepted -> Delivered. Delivered is a final
// state with no further transitions possible.
func (s Status) Deliver() (Status, error) {
	if s != Accepted {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to deliver", s.String()))
	}

	return Delivered, nil
}
