// Package twostate implements a deterministic environment with two
// states and two actions.
//
// From the start state 0, action 0 (Exit) moves to the terminal state
// 1 with reward 1, and action 1 (Stay) loops back to state 0 with
// reward 0. The optimal policy exits immediately.
package twostate

import (
	"fmt"

	"golang.org/x/exp/rand"

	env "github.com/samuelfneumann/qlearn/environment"
	ts "github.com/samuelfneumann/qlearn/timestep"
	"gonum.org/v1/gonum/stat/distuv"
)

// Actions available in the environment
const (
	Exit int = iota
	Stay
)

// States of the environment
const (
	StartState int = iota
	TerminalState
)

// ExitReward is the reward for moving to the terminal state
const ExitReward float64 = 1.0

// TwoState implements the two-state environment
type TwoState struct {
	ender   env.Ender
	source  rand.Source
	actions distuv.Categorical

	started     bool
	currentStep ts.TimeStep
}

// New returns a new TwoState environment. If cutoff > 0, episodes are
// truncated after cutoff steps. The seed determines the actions
// returned by SampleAction.
func New(cutoff int, seed uint64) *TwoState {
	enders := env.MultiEnder{env.NewFunctionEnder(func(s int) bool {
		return s == TerminalState
	}, ts.TerminalStateReached)}
	if cutoff > 0 {
		enders = append(enders, env.NewStepLimit(cutoff))
	}

	source := rand.NewSource(seed)
	return &TwoState{
		ender:   enders,
		source:  source,
		actions: distuv.NewCategorical([]float64{1, 1}, source),
	}
}

// Reset resets the environment to the start state. The environment is
// deterministic, so seed only reseeds action sampling.
func (t *TwoState) Reset(seed *uint64) (ts.TimeStep, error) {
	if seed != nil {
		t.source.Seed(*seed)
	}
	t.started = true
	t.currentStep = ts.New(ts.First, 0, StartState, 0)
	return t.currentStep, nil
}

// Step takes one environmental step given some action
func (t *TwoState) Step(action int) (ts.TimeStep, error) {
	if !t.started {
		return ts.TimeStep{}, fmt.Errorf("step: environment must be reset " +
			"before stepping")
	}
	if action != Exit && action != Stay {
		return ts.TimeStep{}, fmt.Errorf("step: illegal action %d", action)
	}

	state, reward := t.currentStep.State, 0.0
	if state == StartState && action == Exit {
		state, reward = TerminalState, ExitReward
	}

	step := ts.New(ts.Mid, reward, state, t.currentStep.Number+1)
	t.ender.End(&step)
	t.currentStep = step
	return step, nil
}

// SampleAction returns an action sampled uniformly at random
func (t *TwoState) SampleAction() int {
	return int(t.actions.Rand())
}

// StateSpace returns the number of states, 2
func (t *TwoState) StateSpace() int { return 2 }

// ActionSpace returns the number of actions, 2
func (t *TwoState) ActionSpace() int { return 2 }
