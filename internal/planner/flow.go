package planner

import (
	"fmt"

	"travelplanner/pkg/utils"
)

// State is the screen the visitor is on.
type State int

const (
	StateHero State = iota
	StateForm
	StateResults
)

// Event is a user action that may move the flow forward or back.
type Event int

const (
	EventGetStarted Event = iota
	EventSubmit
	EventBack
)

var stateNames = [...]string{
	StateHero:    "hero",
	StateForm:    "form",
	StateResults: "results",
}

var eventNames = [...]string{
	EventGetStarted: "getStarted",
	EventSubmit:     "submit",
	EventBack:       "back",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("state(%d)", int(s))
	}
	return stateNames[s]
}

func (e Event) String() string {
	if e < 0 || int(e) >= len(eventNames) {
		return fmt.Sprintf("event(%d)", int(e))
	}
	return eventNames[e]
}

func (s State) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *State) UnmarshalText(text []byte) error {
	for i, name := range stateNames {
		if name == string(text) {
			*s = State(i)
			return nil
		}
	}
	return fmt.Errorf("planner: unknown state %q", string(text))
}

type transitionKey struct {
	from State
	on   Event
}

var transitions = map[transitionKey]State{
	{StateHero, EventGetStarted}: StateForm,
	{StateForm, EventSubmit}:     StateResults,
	{StateResults, EventBack}:    StateForm,
}

// Transition is defined for every (state, event) pair. Pairs outside the
// flow leave the state unchanged and return utils.ErrInvalidTransition.
func Transition(from State, on Event) (State, error) {
	if to, ok := transitions[transitionKey{from, on}]; ok {
		return to, nil
	}
	return from, fmt.Errorf("%w: %s from %s", utils.ErrInvalidTransition, on, from)
}
