package patch

import "fmt"

// State is a step of a patch operation.
type State uint8

const (
	StateIdle State = iota
	StateLocating
	StateValidating
	StateWriting
	StateRecording
	StateDone
	StateFailed
	// StatePartiallyDone means the artifact was patched but the marker was not recorded.
	StatePartiallyDone
)

var stateNames = [...]string{
	StateIdle:          "idle",
	StateLocating:      "locating",
	StateValidating:    "validating",
	StateWriting:       "writing",
	StateRecording:     "recording",
	StateDone:          "done",
	StateFailed:        "failed",
	StatePartiallyDone: "partially-done",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// Terminal reports whether no further transition is possible.
func (s State) Terminal() bool {
	return s == StateDone || s == StateFailed || s == StatePartiallyDone
}

// transitions lists the legal successors of each non-terminal state.
// Failed is reachable from every non-terminal state except Recording:
// once the span is written the only outcomes are Done and PartiallyDone.
var transitions = map[State][]State{
	StateIdle:       {StateLocating, StateFailed},
	StateLocating:   {StateValidating, StateFailed},
	StateValidating: {StateWriting, StateFailed},
	StateWriting:    {StateRecording, StateFailed},
	StateRecording:  {StateDone, StatePartiallyDone},
}

// CanTransition reports whether from -> to is legal.
func CanTransition(from, to State) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
