package order

import (
	"errors"
	"fmt"

	"orderboard/internal/pkg/errs"
)

// ErrInvalidTransition is the sentinel wrapped by every rejected status
// transition. Use errors.Is to classify transition failures.
var ErrInvalidTransition = errors.New("invalid status transition")

// InvalidTransitionError reports a rejected status edge, including same-status
// requests and backward moves.
type InvalidTransitionError struct {
	From Status
	To   Status
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given edge.
func NewInvalidTransitionError(from, to Status) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// Status represents the lifecycle state of an order. It implements a strict
// forward-only state machine:
//
//	Pending ──> Confirmed ──> Served
//
// No other edges exist; same-status and backward transitions are rejected.
// The string form of a Status is its wire value (lowercase), used both in
// persistence and in broadcast payloads.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned at creation. Pending orders
	// sit in the active queue waiting to be acknowledged.
	Pending

	// Confirmed indicates the order has been acknowledged by the counter.
	// The processing time is computed when this status is reached.
	Confirmed

	// Served indicates the order left the active queue. This is the final
	// state with no further transitions allowed.
	Served
)

// getStatusStrings returns a map of Status values to their wire strings.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Confirmed: "confirmed",
		Served:    "served",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Confirmed: "confirmed",
		Served:    "served",
	}
}

// StatusFromString parses a wire string ("pending", "confirmed", "served")
// into a Status. Returns an error for any other value; this is the only
// entry point for statuses arriving from external payloads.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
// Valid statuses are: Pending, Confirmed, Served.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation of the status.
// Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Confirm returns the Confirmed status if the transition from the current
// status is allowed. Only Pending orders can be confirmed.
func (s Status) Confirm() (Status, error) {
	if s != Pending {
		return Unknown, NewInvalidTransitionError(s, Confirmed)
	}
	return Confirmed, nil
}

// Serve returns the Served status if the transition from the current status
// is allowed. Only Confirmed orders can be served.
func (s Status) Serve() (Status, error) {
	if s != Confirmed {
		return Unknown, NewInvalidTransitionError(s, Served)
	}
	return Served, nil
}

// Advance returns the next status if moving to next is exactly one step
// forward in the state machine. All other edges, including same-status
// requests, are rejected with an InvalidTransitionError.
func (s Status) Advance(next Status) (Status, error) {
	switch next {
	case Confirmed:
		return s.Confirm()
	case Served:
		return s.Serve()
	default:
		return Unknown, NewInvalidTransitionError(s, next)
	}
}
