package character

import "strings"

// State is the life state of a character
type State string

const (
	StateAlive  State = "alive"
	StateStable State = "stable"
	StateDying  State = "dying"
	StateDead   State = "dead"
)

var knownStates = map[State]struct{}{
	StateAlive:  {},
	StateStable: {},
	StateDying:  {},
	StateDead:   {},
}

// NormalizeState maps a stored value onto one of the four states.
// Empty or unrecognized values are treated as alive.
func NormalizeState(value string) State {
	state := State(strings.ToLower(strings.TrimSpace(value)))
	if _, ok := knownStates[state]; !ok {
		return StateAlive
	}
	return state
}

// IsValid reports whether s is one of the four known states
func (s State) IsValid() bool {
	_, ok := knownStates[s]
	return ok
}

func (s State) String() string {
	return string(s)
}
