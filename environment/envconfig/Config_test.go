package envconfig

import (
	"testing"

	"github.com/samuelfneumann/qlearn/environment/frozenlake"
	"github.com/samuelfneumann/qlearn/environment/twostate"
	"github.com/samuelfneumann/qlearn/rlerr"
)

func TestCreate(t *testing.T) {
	tests := []struct {
		config  Config
		states  int
		actions int
	}{
		{Default(), 16, 4},
		{Config{Environment: FrozenLake, Map: "8x8", Slippery: true}, 64, 4},
		{Config{Environment: FrozenLake, Size: 6, Frozen: 0.8}, 36, 4},
		{Config{Environment: FrozenLake}, 16, 4},
		{Config{Environment: TwoState, EpisodeCutoff: 10}, 2, 2},
	}

	for _, test := range tests {
		e, err := test.config.Create(3)
		if err != nil {
			t.Errorf("%+v: %v", test.config, err)
			continue
		}
		if e.StateSpace() != test.states || e.ActionSpace() != test.actions {
			t.Errorf("%+v: want %dx%d, have %dx%d", test.config, test.states,
				test.actions, e.StateSpace(), e.ActionSpace())
		}
	}

	e, _ := Default().Create(0)
	if _, ok := e.(*frozenlake.FrozenLake); !ok {
		t.Errorf("default: want *frozenlake.FrozenLake, have %T", e)
	}
	e, _ = Config{Environment: TwoState}.Create(0)
	if _, ok := e.(*twostate.TwoState); !ok {
		t.Errorf("want *twostate.TwoState, have %T", e)
	}
}

func TestCreateRandomMapSeeded(t *testing.T) {
	c := Config{Environment: FrozenLake, Size: 5, Frozen: 0.7}
	first, _ := CreateFrozenLake(c, 9)
	second, _ := CreateFrozenLake(c, 9)
	if first.String() != second.String() {
		t.Errorf("same seed gave different maps:\n%v\n\n%v", first, second)
	}
}

func TestValidate(t *testing.T) {
	invalid := []Config{
		{Environment: "CartPole"},
		{Environment: FrozenLake, Map: "3x3"},
		{Environment: FrozenLake, Size: 1},
		{Environment: FrozenLake, Size: 4, Frozen: 0},
		{Environment: FrozenLake, EpisodeCutoff: -1},
		{Environment: TwoState, Slippery: true},
	}

	for _, c := range invalid {
		if _, err := c.Create(0); !rlerr.IsInvalidArgument(err) {
			t.Errorf("%+v: want invalid argument, have %v", c, err)
		}
	}
}
