// Package policy implements action selection over tabular state-action
// values
package policy

import (
	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/qlearn/qtable"
	"github.com/samuelfneumann/qlearn/rlerr"
	"gonum.org/v1/gonum/stat/distuv"
)

// ActionSampler samples an action uniformly at random from the valid
// actions of an environment
type ActionSampler func() int

// EGreedy selects an action from an ε-greedy policy over the action
// values of state. A number u is drawn uniformly from [0, 1) using src.
// If u > ε, the greedy action is returned, otherwise sample is called
// and its action returned. With ε = 0 the greedy action is always
// returned.
//
// The draw from src happens on every call, so that the sequence of
// random numbers consumed does not depend on ε.
func EGreedy(q *qtable.QTable, state int, epsilon float64, src rand.Source,
	sample ActionSampler) (int, error) {
	if epsilon < 0 || epsilon > 1 {
		return 0, rlerr.New("eGreedy", rlerr.ErrInvalidArgument,
			"epsilon = %v not in [0, 1]", epsilon)
	}

	u := distuv.Uniform{Min: 0, Max: 1, Src: src}.Rand()

	if u > epsilon || epsilon == 0 {
		return Greedy(q, state)
	}
	return sample(), nil
}
