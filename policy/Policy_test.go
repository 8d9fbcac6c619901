package policy

import (
	"testing"

	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/qlearn/qtable"
	"github.com/samuelfneumann/qlearn/rlerr"
)

func newTable(t *testing.T, rows [][]float64) *qtable.QTable {
	t.Helper()
	q, err := qtable.New(len(rows), len(rows[0]))
	if err != nil {
		t.Fatal(err)
	}
	for s, row := range rows {
		for a, v := range row {
			if err := q.Update(s, a, v); err != nil {
				t.Fatal(err)
			}
		}
	}
	return q
}

func TestGreedyDeterministic(t *testing.T) {
	q := newTable(t, [][]float64{
		{0, 0, 0, 0},
		{0.1, 0.5, 0.5, 0.2},
		{-1, -3, -2, -1},
	})
	want := []int{0, 1, 0}

	for s, w := range want {
		for i := 0; i < 5; i++ {
			a, err := Greedy(q, s)
			if err != nil {
				t.Fatal(err)
			}
			if a != w {
				t.Errorf("state %d: want %d, have %d", s, w, a)
			}
		}
	}
}

func TestGreedyOutOfRange(t *testing.T) {
	q := newTable(t, [][]float64{{0, 0}})
	if _, err := Greedy(q, 1); !rlerr.IsOutOfRange(err) {
		t.Errorf("want out of range, have %v", err)
	}
}

func TestEGreedyZeroEpsilonIsGreedy(t *testing.T) {
	q := newTable(t, [][]float64{
		{0, 1, 0},
		{2, 0, 2},
	})
	src := rand.NewSource(42)
	sample := func() int {
		t.Fatal("sampler should not be called with epsilon = 0")
		return 0
	}

	for i := 0; i < 1000; i++ {
		s := i % 2
		a, err := EGreedy(q, s, 0, src, sample)
		if err != nil {
			t.Fatal(err)
		}
		g, _ := Greedy(q, s)
		if a != g {
			t.Errorf("state %d: want greedy %d, have %d", s, g, a)
		}
	}
}

func TestEGreedyOneEpsilonSamples(t *testing.T) {
	q := newTable(t, [][]float64{{0, 10, 0, 0}})
	src := rand.NewSource(7)
	sampleSrc := rand.New(rand.NewSource(8))

	calls := 0
	sample := func() int {
		calls++
		return sampleSrc.Intn(4)
	}

	seen := make(map[int]int)
	const trials = 2000
	for i := 0; i < trials; i++ {
		a, err := EGreedy(q, 0, 1, src, sample)
		if err != nil {
			t.Fatal(err)
		}
		seen[a]++
	}

	if calls != trials {
		t.Errorf("sampler called %d times, want %d", calls, trials)
	}
	for a := 0; a < 4; a++ {
		if seen[a] == 0 {
			t.Errorf("action %d never selected", a)
		}
	}
}

func TestEGreedyReproducible(t *testing.T) {
	q := newTable(t, [][]float64{{0, 1, 0, 0}})

	run := func() []int {
		src := rand.NewSource(2021)
		sampleSrc := rand.New(rand.NewSource(2022))
		sample := func() int { return sampleSrc.Intn(4) }

		actions := make([]int, 200)
		for i := range actions {
			actions[i], _ = EGreedy(q, 0, 0.5, src, sample)
		}
		return actions
	}

	first, second := run(), run()
	explored := false
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("step %d: %d != %d under the same seed", i, first[i],
				second[i])
		}
		if first[i] != 1 {
			explored = true
		}
	}
	if !explored {
		t.Error("epsilon = 0.5 should explore at least once in 200 steps")
	}
}

func TestEGreedyInvalidEpsilon(t *testing.T) {
	q := newTable(t, [][]float64{{0, 0}})
	src := rand.NewSource(1)
	sample := func() int { return 0 }

	for _, e := range []float64{-0.1, 1.01, 5} {
		if _, err := EGreedy(q, 0, e, src, sample); !rlerr.IsInvalidArgument(err) {
			t.Errorf("epsilon %v: want invalid argument, have %v", e, err)
		}
	}
}
