package environment

import (
	ts "github.com/samuelfneumann/qlearn/timestep"
)

// FunctionEnder ends an episode whenever a function of the
// environment state returns true.
type FunctionEnder struct {
	end     func(state int) bool
	endType ts.EndType
}

// NewFunctionEnder returns a new FunctionEnder which ends episodes with
// end type endType when f returns true.
func NewFunctionEnder(f func(int) bool, endType ts.EndType) Ender {
	return &FunctionEnder{f, endType}
}

// End determines whether or not the current episode should be ended,
// returning a boolean to indicate episode termination. If the episode
// should be ended, End() will modify the timestep so that its StepType
// field is timestep.Last and its EndType is the appropriate ending
// type.
func (f *FunctionEnder) End(t *ts.TimeStep) bool {
	if f.end(t.State) {
		t.SetEnd(f.endType)
		return true
	}
	return false
}

// MultiEnder ends an episode when any of its Enders does. Enders are
// consulted in order, so the first Ender to end the episode sets its
// end type.
type MultiEnder []Ender

// End implements the Ender interface
func (m MultiEnder) End(t *ts.TimeStep) bool {
	for _, ender := range m {
		if ender != nil && ender.End(t) {
			return true
		}
	}
	return false
}
