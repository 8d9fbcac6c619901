package tracker

import (
	"path/filepath"
	"testing"

	ts "github.com/samuelfneumann/qlearn/timestep"
)

// episode returns the timesteps of an episode with the given rewards
func episode(rewards ...float64) []ts.TimeStep {
	steps := []ts.TimeStep{ts.New(ts.First, 0, 0, 0)}
	for i, r := range rewards {
		stepType := ts.Mid
		if i == len(rewards)-1 {
			stepType = ts.Last
		}
		steps = append(steps, ts.New(stepType, r, 0, i+1))
	}
	return steps
}

func TestReturn(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "returns.bin")
	r := NewReturn(filename)

	for _, ep := range [][]float64{{0, 0, 1}, {0, 0}, {0.5, 0.5, 0.5, 0.5}} {
		for _, step := range episode(ep...) {
			r.Track(step)
		}
	}

	// Unfinished episode is not recorded
	r.Track(ts.New(ts.First, 0, 0, 0))
	r.Track(ts.New(ts.Mid, 3, 0, 1))

	want := []float64{1, 0, 2}
	have := r.Data()
	if len(have) != len(want) {
		t.Fatalf("want %v, have %v", want, have)
	}
	for i := range want {
		if have[i] != want[i] {
			t.Errorf("episode %d: want %v, have %v", i, want[i], have[i])
		}
	}

	if m := r.Mean(2); m != 1.0 {
		t.Errorf("mean over last 2: want 1, have %v", m)
	}
	if m := r.Mean(0); m != 1.0 {
		t.Errorf("mean over all: want 1, have %v", m)
	}

	if err := r.Save(); err != nil {
		t.Fatal(err)
	}
	loaded, err := LoadData(filename)
	if err != nil {
		t.Fatal(err)
	}
	for i := range want {
		if loaded[i] != want[i] {
			t.Errorf("loaded episode %d: want %v, have %v", i, want[i],
				loaded[i])
		}
	}
}

func TestEpisodeLength(t *testing.T) {
	e := NewEpisodeLength("")
	for _, ep := range [][]float64{{0, 0, 1}, {1}} {
		for _, step := range episode(ep...) {
			e.Track(step)
		}
	}

	have := e.Data()
	if len(have) != 2 || have[0] != 3 || have[1] != 1 {
		t.Errorf("want [3 1], have %v", have)
	}
	if err := e.Save(); err != nil {
		t.Errorf("save without filename: %v", err)
	}
}

func TestLoadDataMissing(t *testing.T) {
	if _, err := LoadData(filepath.Join(t.TempDir(), "none.bin")); err == nil {
		t.Error("want error for missing file")
	}
}
