// Package qlearning implements the tabular Q-Learning algorithm.
//
// After taking action a in state s and observing reward r and next
// state s', Q-Learning moves Q(s, a) towards the target
// r + γ max_a' Q(s', a') with step size α. The target uses the greedy
// next action regardless of the action that the behaviour policy takes
// next, which makes Q-Learning off-policy.
package qlearning

import (
	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/qlearn/agent"
	"github.com/samuelfneumann/qlearn/policy"
	"github.com/samuelfneumann/qlearn/qtable"
	"github.com/samuelfneumann/qlearn/rlerr"
	ts "github.com/samuelfneumann/qlearn/timestep"
)

// QLearning implements the Q-Learning algorithm with an ε-greedy
// behaviour policy
type QLearning struct {
	q            *qtable.QTable
	learningRate float64
	gamma        float64

	source rand.Source
	sample policy.ActionSampler
}

var _ agent.Agent = &QLearning{}

// New creates a new QLearning agent which learns the values in q. The
// source is used to decide between exploring and exploiting, and sample
// is called to select exploratory actions.
func New(q *qtable.QTable, c Config, source rand.Source,
	sample policy.ActionSampler) (*QLearning, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if q == nil {
		return nil, rlerr.New("new", rlerr.ErrInvalidArgument, "nil table")
	}
	if source == nil || sample == nil {
		return nil, rlerr.New("new", rlerr.ErrInvalidArgument,
			"random source and action sampler must be non-nil")
	}

	return &QLearning{
		q:            q,
		learningRate: c.LearningRate,
		gamma:        c.Gamma,
		source:       source,
		sample:       sample,
	}, nil
}

// SelectAction selects an action in state using an ε-greedy policy
// with ε = epsilon
func (l *QLearning) SelectAction(state int, epsilon float64) (int, error) {
	return policy.EGreedy(l.q, state, epsilon, l.source, l.sample)
}

// Observe updates the value of taking action in state, given that the
// action led to the timestep next
func (l *QLearning) Observe(state, action int, next ts.TimeStep) error {
	_, err := Update(l.q, state, action, next.Reward, next.State,
		l.learningRate, l.gamma)
	return err
}

// Table returns the table of action values being learned
func (l *QLearning) Table() *qtable.QTable {
	return l.q
}

// Update performs a single Q-Learning update of the value of taking
// action in state, given that the action led to nextState with reward
// reward:
//
//	Q(s, a) ← Q(s, a) + α (r + γ max_a' Q(s', a') - Q(s, a))
//
// The new value is returned.
func Update(q *qtable.QTable, state, action int, reward float64,
	nextState int, learningRate, gamma float64) (float64, error) {
	current, err := q.Value(state, action)
	if err != nil {
		return 0, err
	}

	nextMax, err := q.MaxValue(nextState)
	if err != nil {
		return 0, err
	}

	tdError := reward + gamma*nextMax - current
	value := current + learningRate*tdError

	return value, q.Update(state, action, value)
}
