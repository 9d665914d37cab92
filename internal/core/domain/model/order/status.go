package order

import (
	"errors"
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// ErrInvalidTransition is carried as the cause of every rejected transition,
// so callers can match it with errors.Is.
var ErrInvalidTransition = errors.New("invalid transition")

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──┬──> Accepted ──> InProgress ──> Completed
//	          │       │             │
//	          │       └──> Pending <┘ (revert)
//	          └──> Cancelled
//
// Status is a closed enum: the zero value Unknown never validates and values
// read from storage go through ParseStatus.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status. The kitchen has not committed to the order yet.
	Pending

	// Accepted means the kitchen committed to the order and its stock was reserved.
	Accepted

	// InProgress means a chef is cooking the order.
	InProgress

	// Completed is terminal.
	Completed

	// Cancelled is terminal.
	Cancelled
)

var statusNames = map[Status]string{
	Unknown:    "unknown",
	Pending:    "pending",
	Accepted:   "accepted",
	InProgress: "in_progress",
	Completed:  "completed",
	Cancelled:  "cancelled",
}

// transitions is the full table of allowed moves. Anything absent is rejected.
var transitions = map[Status][]Status{
	Pending:    {Accepted, Cancelled},
	Accepted:   {InProgress, Pending},
	InProgress: {Completed, Pending},
}

// AllStatuses lists the valid statuses in lifecycle order.
func AllStatuses() []Status {
	return []Status{Pending, Accepted, InProgress, Completed, Cancelled}
}

// ParseStatus converts the persisted text form back into a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range statusNames {
		if status != Unknown && name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that s is one of the five lifecycle states.
func (s Status) Validate() error {
	if s < Pending || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted name of the status, e.g. "in_progress".
// Invalid values render as "unknown".
func (s Status) String() string {
	if str, ok := statusNames[s]; ok {
		return str
	}
	return statusNames[Unknown]
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// CanTransitionTo reports whether the table allows s -> target.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo validates s -> target against the table.
//
// Returns:
//   - (target, nil) when the move is allowed
//   - (Unknown, *errs.ValueIsInvalidError wrapping ErrInvalidTransition) otherwise
//
// Example:
//
//	next, err := order.Completed.TransitionTo(order.Accepted)
//	errors.Is(err, order.ErrInvalidTransition) // true
func (s Status) TransitionTo(target Status) (Status, error) {
	if !s.CanTransitionTo(target) {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s -> %s: %w", s, target, ErrInvalidTransition),
		)
	}
	return target, nil
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(data []byte) error {
	parsed, err := ParseStatus(string(data))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
