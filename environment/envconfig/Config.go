// Package envconfig provides configuration structs for configuring
// discrete environments. Environment configurations in this package are
// JSON and YAML serializable.
package envconfig

import (
	"fmt"

	"golang.org/x/exp/rand"

	env "github.com/samuelfneumann/qlearn/environment"
	"github.com/samuelfneumann/qlearn/environment/frozenlake"
	"github.com/samuelfneumann/qlearn/environment/twostate"
	"github.com/samuelfneumann/qlearn/rlerr"
)

// EnvName stores the name of environments that can be configured with
// this package
type EnvName string

// Environments available for configuration
const (
	FrozenLake EnvName = "FrozenLake"
	TwoState   EnvName = "TwoState"
)

// Config implements a specific configuration of a specific environment.
//
// For the FrozenLake, Map names one of the built-in maps. If Map is
// empty and Size is positive, a random Size x Size map is generated
// from the environment seed, with each cell frozen with probability
// Frozen. Otherwise the 4x4 map is used.
type Config struct {
	Environment EnvName `json:"environment" yaml:"environment"`
	Map         string  `json:"map,omitempty" yaml:"map,omitempty"`
	Size        int     `json:"size,omitempty" yaml:"size,omitempty"`
	Frozen      float64 `json:"frozen,omitempty" yaml:"frozen,omitempty"`
	Slippery    bool    `json:"slippery" yaml:"slippery"`

	// EpisodeCutoff truncates episodes after this many steps if
	// positive
	EpisodeCutoff int `json:"episode_cutoff" yaml:"episode_cutoff"`
}

// Default returns the configuration of the non-slippery 4x4 FrozenLake
func Default() Config {
	return Config{
		Environment:   FrozenLake,
		Map:           "4x4",
		EpisodeCutoff: frozenlake.DefaultCutoffs["4x4"],
	}
}

// Validate ensures that the Config describes an environment that can
// be created
func (c Config) Validate() error {
	switch c.Environment {
	case FrozenLake:
		if c.Map != "" {
			if _, ok := frozenlake.Maps[c.Map]; !ok {
				return invalid("no FrozenLake map %q", c.Map)
			}
		} else if c.Size < 0 || c.Size == 1 {
			return invalid("FrozenLake size must be at least 2, have %d",
				c.Size)
		} else if c.Size > 0 && (c.Frozen <= 0 || c.Frozen > 1) {
			return invalid("frozen probability must be in (0, 1], have %v",
				c.Frozen)
		}

	case TwoState:
		if c.Map != "" || c.Size != 0 || c.Slippery {
			return invalid("TwoState has no map, size, or slippery option")
		}

	default:
		return invalid("no such environment %q", c.Environment)
	}

	if c.EpisodeCutoff < 0 {
		return invalid("episode cutoff must be non-negative, have %d",
			c.EpisodeCutoff)
	}
	return nil
}

// Create returns the environment described by the Config
func (c Config) Create(seed uint64) (env.Environment, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	switch c.Environment {
	case TwoState:
		return twostate.New(c.EpisodeCutoff, seed), nil

	case FrozenLake:
		return CreateFrozenLake(c, seed)
	}

	panic(fmt.Sprintf("create: cannot create environment %v, no such "+
		"environment", c.Environment))
}

// CreateFrozenLake is a factory for creating the FrozenLake environment
// described by c
func CreateFrozenLake(c Config, seed uint64) (*frozenlake.FrozenLake,
	error) {
	switch {
	case c.Map != "":
		return frozenlake.NewNamed(c.Map, c.Slippery, c.EpisodeCutoff, seed)

	case c.Size > 0:
		desc, err := frozenlake.GenerateRandomMap(c.Size, c.Frozen,
			rand.NewSource(seed))
		if err != nil {
			return nil, err
		}
		return frozenlake.New(desc, c.Slippery, c.EpisodeCutoff, seed)
	}

	return frozenlake.NewNamed("4x4", c.Slippery, c.EpisodeCutoff, seed)
}

func invalid(format string, args ...interface{}) error {
	return rlerr.New("validate", rlerr.ErrInvalidArgument, format, args...)
}
