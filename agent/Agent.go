// Package agent defines an agent interface for tabular learning
package agent

import (
	"github.com/samuelfneumann/qlearn/qtable"
	ts "github.com/samuelfneumann/qlearn/timestep"
)

// Agent determines the implementation details of an agent or algorithm
//
// An Agent is composed of a Learner, which learns action values, and a
// Policy which chooses actions in each state. Both share the same
// QTable so that the updates made by the Learner are reflected in the
// actions the Policy chooses.
type Agent interface {
	Learner
	Policy
}

// Learner implements a learning algorithm that defines how action
// values are updated.
type Learner interface {
	// Observe records that taking action in state led to the timestep
	// next, and updates the action values accordingly
	Observe(state, action int, next ts.TimeStep) error

	// Table returns the action values being learned
	Table() *qtable.QTable
}

// Policy represents a policy that an agent can have.
//
// The exploration parameter controls how often the policy departs from
// the greedy action. An exploration of 0 always acts greedily.
type Policy interface {
	SelectAction(state int, exploration float64) (int, error)
}
