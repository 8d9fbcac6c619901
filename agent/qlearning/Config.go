package qlearning

import (
	"math"

	"github.com/samuelfneumann/qlearn/agent"
	"github.com/samuelfneumann/qlearn/rlerr"
)

// Config represents the hyperparameters of a Q-learning run: how the
// agent is trained and how it is evaluated afterwards
type Config struct {
	NTrainingEpisodes int     `json:"n_training_episodes" yaml:"n_training_episodes"`
	LearningRate      float64 `json:"learning_rate" yaml:"learning_rate"`
	Gamma             float64 `json:"gamma" yaml:"gamma"`
	MaxSteps          int     `json:"max_steps" yaml:"max_steps"`

	// Exploration schedule, see Schedule
	MaxEpsilon float64 `json:"max_epsilon" yaml:"max_epsilon"`
	MinEpsilon float64 `json:"min_epsilon" yaml:"min_epsilon"`
	DecayRate  float64 `json:"decay_rate" yaml:"decay_rate"`

	NEvalEpisodes int `json:"n_eval_episodes" yaml:"n_eval_episodes"`

	// EvalSeeds holds one environment seed per evaluation episode. If
	// empty, evaluation episodes are not seeded.
	EvalSeeds []uint64 `json:"eval_seeds,omitempty" yaml:"eval_seeds,omitempty"`
}

var _ agent.Config = Config{}

// DefaultConfig returns the hyperparameters used to train on the 4x4
// FrozenLake
func DefaultConfig() Config {
	return Config{
		NTrainingEpisodes: 10000,
		LearningRate:      0.7,
		Gamma:             0.95,
		MaxSteps:          99,
		MaxEpsilon:        1.0,
		MinEpsilon:        0.05,
		DecayRate:         0.0005,
		NEvalEpisodes:     100,
	}
}

// Validate ensures that the Config is valid. Values outside their
// valid range are reported, never clamped.
func (c Config) Validate() error {
	floats := []struct {
		name  string
		value float64
	}{
		{"learning rate", c.LearningRate},
		{"gamma", c.Gamma},
		{"max epsilon", c.MaxEpsilon},
		{"min epsilon", c.MinEpsilon},
		{"decay rate", c.DecayRate},
	}
	for _, f := range floats {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return invalid("%s must be finite, have %v", f.name, f.value)
		}
	}

	switch {
	case c.LearningRate <= 0 || c.LearningRate > 1:
		return invalid("learning rate must be in (0, 1], have %v",
			c.LearningRate)

	case c.Gamma < 0 || c.Gamma > 1:
		return invalid("gamma must be in [0, 1], have %v", c.Gamma)

	case c.MinEpsilon < 0:
		return invalid("min epsilon must be non-negative, have %v",
			c.MinEpsilon)

	case c.MinEpsilon > c.MaxEpsilon:
		return invalid("min epsilon (%v) exceeds max epsilon (%v)",
			c.MinEpsilon, c.MaxEpsilon)

	case c.MaxEpsilon > 1:
		return invalid("max epsilon must be at most 1, have %v",
			c.MaxEpsilon)

	case c.DecayRate < 0:
		return invalid("decay rate must be non-negative, have %v",
			c.DecayRate)

	case c.MaxSteps <= 0:
		return invalid("max steps must be positive, have %d", c.MaxSteps)

	case c.NTrainingEpisodes < 0:
		return invalid("training episodes must be non-negative, have %d",
			c.NTrainingEpisodes)

	case c.NEvalEpisodes < 0:
		return invalid("evaluation episodes must be non-negative, have %d",
			c.NEvalEpisodes)
	}

	return nil
}

// Schedule returns the exploration schedule of the Config
func (c Config) Schedule() Schedule {
	return Schedule{Min: c.MinEpsilon, Max: c.MaxEpsilon, DecayRate: c.DecayRate}
}

func invalid(format string, args ...interface{}) error {
	return rlerr.New("validate", rlerr.ErrInvalidArgument, format, args...)
}
