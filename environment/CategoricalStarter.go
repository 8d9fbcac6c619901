package environment

import (
	"fmt"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// CategoricalStarter returns starting states sampled from a categorical
// distribution over states.
type CategoricalStarter struct {
	source rand.Source
	rand   distuv.Categorical
}

// NewCategoricalStarter returns a new CategoricalStarter, sampling
// state i with probability proportional to weights[i]
func NewCategoricalStarter(weights []float64,
	seed uint64) (*CategoricalStarter, error) {
	total := 0.0
	for i, w := range weights {
		if w < 0 {
			return nil, fmt.Errorf("newCategoricalStarter: weight %d "+
				"negative (%v)", i, w)
		}
		total += w
	}
	if total == 0 {
		return nil, fmt.Errorf("newCategoricalStarter: no state has " +
			"positive weight")
	}

	source := rand.NewSource(seed)
	return &CategoricalStarter{
		source: source,
		rand:   distuv.NewCategorical(weights, source),
	}, nil
}

// NewUniformStarter returns a CategoricalStarter which samples each of
// the argument states with equal probability out of numStates states
func NewUniformStarter(states []int, numStates int,
	seed uint64) (*CategoricalStarter, error) {
	weights := make([]float64, numStates)
	for _, s := range states {
		if s < 0 || s >= numStates {
			return nil, fmt.Errorf("newUniformStarter: state %d not in "+
				"[0, %d)", s, numStates)
		}
		weights[s] = 1.0
	}
	return NewCategoricalStarter(weights, seed)
}

// Start returns a starting state
func (c *CategoricalStarter) Start() int {
	return int(c.rand.Rand())
}

// Seed reseeds the starting state distribution
func (c *CategoricalStarter) Seed(seed uint64) {
	c.source.Seed(seed)
}
