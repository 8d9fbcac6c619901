// Package frozenlake implements the FrozenLake gridworld environment.
//
// The agent starts on a start cell (S) and must cross a frozen lake (F)
// to reach the goal (G) without falling into a hole (H). Reaching the
// goal gives a reward of 1, every other transition gives 0. Both holes
// and the goal end the episode. On a slippery lake the agent moves in
// the intended direction with probability 1/3 and in each of the two
// perpendicular directions with probability 1/3.
package frozenlake

import (
	"fmt"
	"strings"

	"golang.org/x/exp/rand"

	env "github.com/samuelfneumann/qlearn/environment"
	ts "github.com/samuelfneumann/qlearn/timestep"
	"gonum.org/v1/gonum/stat/distuv"
)

// Actions available in the FrozenLake
const (
	Left int = iota
	Down
	Right
	Up
)

// NumActions is the number of actions in the FrozenLake
const NumActions int = 4

// FrozenLake implements the FrozenLake environment
type FrozenLake struct {
	desc       [][]byte
	rows, cols int
	slippery   bool

	env.Starter
	ender env.Ender

	// source drives slippery transitions, actionSource drives
	// SampleAction. Only source is reseeded on Reset.
	source       rand.Source
	slip         distuv.Categorical
	actionSource rand.Source
	actions      distuv.Categorical

	position    int
	started     bool
	currentStep ts.TimeStep
}

// New returns a new FrozenLake described by desc, where each string is
// a row of cell letters. If cutoff > 0, episodes are truncated after
// cutoff steps.
func New(desc []string, slippery bool, cutoff int,
	seed uint64) (*FrozenLake, error) {
	if len(desc) == 0 || len(desc[0]) == 0 {
		return nil, fmt.Errorf("new: empty lake")
	}

	rows, cols := len(desc), len(desc[0])
	board := make([][]byte, rows)
	var starts []int
	for r, row := range desc {
		if len(row) != cols {
			return nil, fmt.Errorf("new: row %d has %d cells, want %d", r,
				len(row), cols)
		}
		board[r] = []byte(row)
		for c, cell := range board[r] {
			switch cell {
			case Start:
				starts = append(starts, r*cols+c)
			case Frozen, Hole, Goal:
			default:
				return nil, fmt.Errorf("new: unknown cell %q at (%d, %d)",
					cell, r, c)
			}
		}
	}
	if len(starts) == 0 {
		return nil, fmt.Errorf("new: lake has no start cell")
	}

	// Start states, slips and sampled actions each use their own stream
	seeds := env.SplitSeed(seed, 3)
	starter, err := env.NewUniformStarter(starts, rows*cols, seeds[0])
	if err != nil {
		return nil, fmt.Errorf("new: %v", err)
	}

	f := &FrozenLake{
		desc:     board,
		rows:     rows,
		cols:     cols,
		slippery: slippery,
		Starter:  starter,
	}

	enders := env.MultiEnder{env.NewFunctionEnder(f.terminal,
		ts.TerminalStateReached)}
	if cutoff > 0 {
		enders = append(enders, env.NewStepLimit(cutoff))
	}
	f.ender = enders

	f.source = rand.NewSource(seeds[1])
	f.slip = distuv.NewCategorical([]float64{1, 1, 1}, f.source)
	f.actionSource = rand.NewSource(seeds[2])
	f.actions = distuv.NewCategorical(uniform(NumActions), f.actionSource)

	return f, nil
}

// NewNamed returns a new FrozenLake using one of the built-in Maps
func NewNamed(name string, slippery bool, cutoff int,
	seed uint64) (*FrozenLake, error) {
	desc, ok := Maps[name]
	if !ok {
		return nil, fmt.Errorf("newNamed: no map %q", name)
	}
	return New(desc, slippery, cutoff, seed)
}

// Reset resets the environment to a starting state
func (f *FrozenLake) Reset(seed *uint64) (ts.TimeStep, error) {
	if seed != nil {
		seeds := env.SplitSeed(*seed, 2)
		f.Starter.Seed(seeds[0])
		f.source.Seed(seeds[1])
	}

	f.position = f.Start()
	f.started = true

	step := ts.New(ts.First, 0, f.position, 0)
	f.currentStep = step
	return step, nil
}

// Step takes one environmental step given some action. Stepping from a
// hole or the goal leaves the agent where it is with zero reward.
func (f *FrozenLake) Step(action int) (ts.TimeStep, error) {
	if !f.started {
		return ts.TimeStep{}, fmt.Errorf("step: environment must be reset " +
			"before stepping")
	}
	if action < 0 || action >= NumActions {
		return ts.TimeStep{}, fmt.Errorf("step: illegal action %d", action)
	}

	wasTerminal := f.terminal(f.position)
	if !wasTerminal {
		if f.slippery {
			// Slip to (a-1) mod 4, a, or (a+1) mod 4
			action = (action + int(f.slip.Rand()) + NumActions - 1) %
				NumActions
		}
		f.position = f.move(f.position, action)
	}

	reward := 0.0
	if !wasTerminal && f.cell(f.position) == Goal {
		reward = 1.0
	}

	step := ts.New(ts.Mid, reward, f.position, f.currentStep.Number+1)
	f.ender.End(&step)
	f.currentStep = step

	return step, nil
}

// SampleAction returns an action sampled uniformly at random
func (f *FrozenLake) SampleAction() int {
	return int(f.actions.Rand())
}

// StateSpace returns the number of states in the lake
func (f *FrozenLake) StateSpace() int {
	return f.rows * f.cols
}

// ActionSpace returns the number of actions in the lake
func (f *FrozenLake) ActionSpace() int {
	return NumActions
}

// Dims returns the number of rows and columns of the lake
func (f *FrozenLake) Dims() (rows, cols int) {
	return f.rows, f.cols
}

// CurrentTimeStep returns the last TimeStep returned by the environment
func (f *FrozenLake) CurrentTimeStep() ts.TimeStep {
	return f.currentStep
}

// Coordinates returns the row and column of the agent
func (f *FrozenLake) Coordinates() (row, col int) {
	return f.position / f.cols, f.position % f.cols
}

// move returns the state reached by taking action in state. Moves off
// the lake leave the agent in place.
func (f *FrozenLake) move(state, action int) int {
	row, col := state/f.cols, state%f.cols

	switch action {
	case Left:
		if col > 0 {
			col--
		}
	case Down:
		if row < f.rows-1 {
			row++
		}
	case Right:
		if col < f.cols-1 {
			col++
		}
	case Up:
		if row > 0 {
			row--
		}
	}
	return row*f.cols + col
}

func (f *FrozenLake) cell(state int) byte {
	return f.desc[state/f.cols][state%f.cols]
}

func (f *FrozenLake) terminal(state int) bool {
	c := f.cell(state)
	return c == Hole || c == Goal
}

func (f *FrozenLake) String() string {
	var b strings.Builder
	for r, row := range f.desc {
		for c, cell := range row {
			if f.started && r*f.cols+c == f.position {
				fmt.Fprintf(&b, "[%c]", cell)
			} else {
				fmt.Fprintf(&b, " %c ", cell)
			}
		}
		if r < f.rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func uniform(n int) []float64 {
	weights := make([]float64, n)
	for i := range weights {
		weights[i] = 1.0
	}
	return weights
}
