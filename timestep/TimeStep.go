// Package timestep implements timesteps of the agent-environment interaction
package timestep

import (
	"fmt"
)

// StepType denotes the type of step that a TimeStep can be, either  first
// environmental step, a middle step, or a last step
type StepType int

const (
	First StepType = iota
	Mid
	Last
)

func (s StepType) String() string {
	switch s {
	case First:
		return "First"
	case Last:
		return "Last"
	default:
		return "Mid"
	}
}

// EndType describes why an episode ended. Only Last steps carry an
// EndType other than NotEnded.
type EndType int

const (
	NotEnded EndType = iota

	// TerminalStateReached means the environment entered a terminal
	// state (the episode was terminated)
	TerminalStateReached

	// Timeout means the episode was cut off by a step limit (the
	// episode was truncated)
	Timeout
)

func (e EndType) String() string {
	switch e {
	case TerminalStateReached:
		return "TerminalStateReached"
	case Timeout:
		return "Timeout"
	default:
		return "NotEnded"
	}
}

// TimeStep packages together a single timestep in an environment. The
// State is the discrete state the environment is in after the step.
type TimeStep struct {
	StepType
	EndType
	Reward float64
	State  int
	Number int
}

// New returns a new TimeStep. Steps of type Last created this way are
// considered terminated; use SetEnd to mark them otherwise.
func New(t StepType, r float64, state, n int) TimeStep {
	step := TimeStep{StepType: t, Reward: r, State: state, Number: n}
	if t == Last {
		step.EndType = TerminalStateReached
	}
	return step
}

// SetEnd marks the TimeStep as the last in its episode, ending for
// reason e
func (t *TimeStep) SetEnd(e EndType) {
	t.EndType = e
	if e != NotEnded {
		t.StepType = Last
	}
}

// First returns whether a TimeStep is the first in an environment
func (t *TimeStep) First() bool {
	return t.StepType == First
}

// Mid returns whether a TimeStep is a middle step in an environment
func (t *TimeStep) Mid() bool {
	return t.StepType == Mid
}

// Last returns whether a TimeStep is the last step in an environment
func (t *TimeStep) Last() bool {
	return t.StepType == Last
}

// Terminated returns whether the episode ended in a terminal state
func (t *TimeStep) Terminated() bool {
	return t.Last() && t.EndType == TerminalStateReached
}

// Truncated returns whether the episode was cut off before reaching a
// terminal state
func (t *TimeStep) Truncated() bool {
	return t.Last() && t.EndType == Timeout
}

func (t TimeStep) String() string {
	str := "TimeStep | Type: %v  |  State: %d  |  Reward:  %.2f  |  " +
		"Step Number:  %v"

	return fmt.Sprintf(str, t.StepType, t.State, t.Reward, t.Number)
}
