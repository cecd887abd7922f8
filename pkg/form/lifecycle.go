package form

import (
	"errors"
	"fmt"
)

// Activation is the validation mode of a field.
type Activation string

const (
	Active  Activation = "active"
	Ignored Activation = "ignored"
)

// State is the state of a form's validation pass machine.
type State string

const (
	StateInit       State = "init"
	StateValidating State = "validating"
	StateSuccess    State = "success"
	StateError      State = "error"
)

type event string

const (
	eventIgnore  event = "ignore"
	eventWatch   event = "watch"
	eventStart   event = "start"
	eventSucceed event = "succeed"
	eventFail    event = "fail"
	eventAbort   event = "abort"
)

var activationTransitions = map[Activation]map[event]Activation{
	Active:  {eventIgnore: Ignored},
	Ignored: {eventWatch: Active},
}

// A form may be validated again once a pass has ended, but never while one
// is running.
var passTransitions = map[State]map[event]State{
	StateInit:       {eventStart: StateValidating},
	StateSuccess:    {eventStart: StateValidating},
	StateError:      {eventStart: StateValidating},
	StateValidating: {eventSucceed: StateSuccess, eventFail: StateError, eventAbort: StateError},
}

// TransitionError indicates that no transition exists for an event in the current state.
type TransitionError struct {
	From  string
	Event string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("no transition available from state %q for event %q", e.From, e.Event)
}

// IsTransitionError reports whether err wraps a *TransitionError.
func IsTransitionError(err error) bool {
	var e *TransitionError
	return errors.As(err, &e)
}

func transition[S ~string](table map[S]map[event]S, from S, ev event) (S, error) {
	to, ok := table[from][ev]
	if !ok {
		return from, &TransitionError{From: string(from), Event: string(ev)}
	}
	return to, nil
}
