package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Action is the verb a caller uses to request a transition. Each action has
// exactly one target status; the source status decides whether it is allowed.
type Action int

const (
	UnknownAction Action = iota
	Accept
	Cancel
	Start
	Complete
	Revert
)

var actionNames = map[Action]string{
	Accept:   "accept",
	Cancel:   "cancel",
	Start:    "start",
	Complete: "complete",
	Revert:   "revert",
}

var actionTargets = map[Action]Status{
	Accept:   Accepted,
	Cancel:   Cancelled,
	Start:    InProgress,
	Complete: Completed,
	Revert:   Pending,
}

func ParseAction(s string) (Action, error) {
	for action, name := range actionNames {
		if name == s {
			return action, nil
		}
	}
	return UnknownAction, errs.NewValueIsInvalidErrorWithCause("action", fmt.Errorf("%q is not a valid action", s))
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

func (a Action) Validate() error {
	if _, ok := actionTargets[a]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("action", fmt.Errorf("%d is not a valid action", a))
	}
	return nil
}

// Target returns the status the action moves an order to.
func (a Action) Target() Status {
	return actionTargets[a]
}
