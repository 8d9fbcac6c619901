// Package environment outlines the interfaces and structs needed to
// implement discrete environments for tabular learning
package environment

import (
	"golang.org/x/exp/rand"

	ts "github.com/samuelfneumann/qlearn/timestep"
)

// Environment implements a simulated environment with a finite number
// of states and actions. States are numbered 0, 1, ..., StateSpace()-1
// and actions 0, 1, ..., ActionSpace()-1.
type Environment interface {
	// Reset starts a new episode and returns its first TimeStep. If
	// seed is non-nil the environment's randomness is reseeded with it
	// before the episode starts.
	Reset(seed *uint64) (ts.TimeStep, error)

	// Step takes action in the current state. The returned TimeStep is
	// of type timestep.Last if the episode was terminated or truncated.
	Step(action int) (ts.TimeStep, error)

	// SampleAction returns an action sampled uniformly at random
	SampleAction() int

	StateSpace() int
	ActionSpace() int
}

// Ender determines when episodes should be ended
type Ender interface {
	// End returns whether the episode should end on t. If so, End
	// marks t as the last step with the appropriate timestep.EndType.
	End(t *ts.TimeStep) bool
}

// Starter implements a distribution of starting states and samples
// starting states for environments
type Starter interface {
	Start() int

	// Seed reseeds the distribution of starting states
	Seed(seed uint64)
}

// Seed returns a pointer to seed, for use with Reset
func Seed(seed uint64) *uint64 {
	return &seed
}

// SplitSeed derives n seeds from seed, one for each independent random
// stream of an environment or experiment. Streams seeded with the same
// value produce the same numbers, so each stream must get its own seed.
func SplitSeed(seed uint64, n int) []uint64 {
	rng := rand.New(rand.NewSource(seed))
	seeds := make([]uint64, n)
	for i := range seeds {
		seeds[i] = rng.Uint64()
	}
	return seeds
}
