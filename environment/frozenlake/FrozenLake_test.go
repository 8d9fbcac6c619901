package frozenlake

import (
	"testing"

	"golang.org/x/exp/rand"

	env "github.com/samuelfneumann/qlearn/environment"
)

func TestDeterministicPath(t *testing.T) {
	f, err := NewNamed("4x4", false, 100, 1)
	if err != nil {
		t.Fatal(err)
	}

	step, err := f.Reset(nil)
	if err != nil {
		t.Fatal(err)
	}
	if !step.First() || step.State != 0 {
		t.Fatalf("reset: want first step in state 0, have %v", step)
	}

	// The shortest safe path through the default 4x4 lake
	path := []int{Down, Down, Right, Right, Down, Right}
	states := []int{4, 8, 9, 10, 14, 15}

	for i, a := range path {
		step, err = f.Step(a)
		if err != nil {
			t.Fatal(err)
		}
		if step.State != states[i] {
			t.Errorf("step %d: want state %d, have %d", i, states[i],
				step.State)
		}
		if i < len(path)-1 && (step.Last() || step.Reward != 0) {
			t.Errorf("step %d: want non-terminal zero reward step, have %v",
				i, step)
		}
	}

	if !step.Terminated() {
		t.Errorf("goal should terminate the episode, have %v", step.EndType)
	}
	if step.Reward != 1.0 {
		t.Errorf("goal reward: want 1, have %v", step.Reward)
	}

	// Stepping from the goal stays put without reward
	step, _ = f.Step(Left)
	if step.State != 15 || step.Reward != 0 || !step.Terminated() {
		t.Errorf("want absorbing goal, have %v", step)
	}
}

func TestHoleTerminates(t *testing.T) {
	f, _ := NewNamed("4x4", false, 0, 1)
	f.Reset(nil)

	f.Step(Down)
	step, _ := f.Step(Right) // state 5 is a hole

	if step.State != 5 || !step.Terminated() || step.Reward != 0 {
		t.Errorf("want terminated in hole 5 with zero reward, have %v", step)
	}
}

func TestWallsKeepPosition(t *testing.T) {
	f, _ := NewNamed("4x4", false, 0, 1)
	f.Reset(nil)

	for _, a := range []int{Left, Up} {
		step, _ := f.Step(a)
		if step.State != 0 {
			t.Errorf("action %d: want to stay in 0, have %d", a, step.State)
		}
	}
}

func TestCutoffTruncates(t *testing.T) {
	f, _ := NewNamed("4x4", false, 3, 1)
	f.Reset(nil)

	var last bool
	for i := 0; i < 3; i++ {
		step, _ := f.Step(Left)
		last = step.Last()
		if i < 2 && last {
			t.Fatalf("step %d should not be last", i)
		}
		if i == 2 && !step.Truncated() {
			t.Errorf("step 3 should be truncated, have %v", step.EndType)
		}
	}
	if !last {
		t.Error("episode should end after the cutoff")
	}
}

func TestStepErrors(t *testing.T) {
	f, _ := NewNamed("4x4", false, 0, 1)
	if _, err := f.Step(Left); err == nil {
		t.Error("want error stepping before reset")
	}

	f.Reset(nil)
	for _, a := range []int{-1, NumActions} {
		if _, err := f.Step(a); err == nil {
			t.Errorf("want error for illegal action %d", a)
		}
	}
}

func TestSlipperySeededReset(t *testing.T) {
	run := func(seed uint64) []int {
		f, _ := NewNamed("8x8", true, 200, 99)
		f.Reset(env.Seed(seed))

		var states []int
		for i := 0; i < 30; i++ {
			step, _ := f.Step(Right)
			states = append(states, step.State)
			if step.Last() {
				break
			}
		}
		return states
	}

	first, second := run(3), run(3)
	if len(first) != len(second) {
		t.Fatalf("same seed gave trajectories of length %d and %d",
			len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("step %d: same seed gave states %d and %d", i,
				first[i], second[i])
		}
	}
}

func TestSlipperyMovesPerpendicular(t *testing.T) {
	f, _ := New([]string{
		"FFF",
		"FSF",
		"FFF",
	}, true, 0, 5)

	seen := make(map[int]bool)
	for i := 0; i < 300; i++ {
		f.Reset(nil)
		step, _ := f.Step(Right)
		seen[step.State] = true
	}

	// From the centre, Right slips to Up (1), Right (5), or Down (7)
	for _, s := range []int{1, 5, 7} {
		if !seen[s] {
			t.Errorf("state %d never reached", s)
		}
	}
	if seen[3] {
		t.Error("slipping should never move opposite to the action")
	}
}

func TestSampleActionCoversActions(t *testing.T) {
	f, _ := NewNamed("4x4", false, 0, 11)

	seen := make(map[int]int)
	for i := 0; i < 400; i++ {
		a := f.SampleAction()
		if a < 0 || a >= NumActions {
			t.Fatalf("sampled illegal action %d", a)
		}
		seen[a]++
	}
	if len(seen) != NumActions {
		t.Errorf("want all actions sampled, have %v", seen)
	}
}

func TestNewInvalid(t *testing.T) {
	descs := [][]string{
		{},
		{"SFF", "FF"},
		{"SXF"},
		{"FFF", "FFG"},
	}
	for _, desc := range descs {
		if _, err := New(desc, false, 0, 0); err == nil {
			t.Errorf("%v: want error", desc)
		}
	}

	if _, err := NewNamed("16x16", false, 0, 0); err == nil {
		t.Error("want error for unknown map")
	}
}

func TestSpaces(t *testing.T) {
	f, _ := NewNamed("8x8", false, 0, 0)
	if f.StateSpace() != 64 || f.ActionSpace() != 4 {
		t.Errorf("want 64 states and 4 actions, have %d and %d",
			f.StateSpace(), f.ActionSpace())
	}
}

func TestGenerateRandomMap(t *testing.T) {
	src := rand.NewSource(17)
	for size := 2; size < 10; size++ {
		desc, err := GenerateRandomMap(size, 0.6, src)
		if err != nil {
			t.Fatal(err)
		}
		if len(desc) != size {
			t.Fatalf("want %d rows, have %d", size, len(desc))
		}

		board := make([][]byte, size)
		for r := range desc {
			board[r] = []byte(desc[r])
		}
		if board[0][0] != Start || board[size-1][size-1] != Goal {
			t.Errorf("map %v: start or goal misplaced", desc)
		}
		if !reachable(board) {
			t.Errorf("map %v: goal unreachable", desc)
		}

		if _, err := New(desc, false, 0, 0); err != nil {
			t.Errorf("map %v: %v", desc, err)
		}
	}

	if _, err := GenerateRandomMap(1, 0.8, src); err == nil {
		t.Error("want error for size 1")
	}
	if _, err := GenerateRandomMap(4, 0, src); err == nil {
		t.Error("want error for p = 0")
	}
}

func TestReachable(t *testing.T) {
	blocked := [][]byte{
		[]byte("SH"),
		[]byte("HG"),
	}
	if reachable(blocked) {
		t.Error("goal behind holes should not be reachable")
	}
}

func TestSlipperySampledActions(t *testing.T) {
	f, err := New([]string{
		"FFFFF",
		"FFFFF",
		"FFSFF",
		"FFFFF",
		"FFFFF",
	}, true, 0, 3)
	if err != nil {
		t.Fatal(err)
	}
	const centre, cols = 12, 5
	moves := map[int]int{-1: Left, cols: Down, 1: Right, -cols: Up}

	// counts[a][d] is the number of times sampled action a moved in
	// direction d
	var counts [NumActions][NumActions]int
	for i := 0; i < 12000; i++ {
		f.Reset(nil)
		a := f.SampleAction()
		step, err := f.Step(a)
		if err != nil {
			t.Fatal(err)
		}
		d, ok := moves[step.State-centre]
		if !ok {
			t.Fatalf("action %d: moved from %d to %d", a, centre, step.State)
		}
		counts[a][d]++
	}

	for a := 0; a < NumActions; a++ {
		total := 0
		for _, n := range counts[a] {
			total += n
		}
		opposite := (a + 2) % NumActions
		if counts[a][opposite] != 0 {
			t.Errorf("action %d moved opposite %d times", a,
				counts[a][opposite])
		}
		for _, d := range []int{(a + NumActions - 1) % NumActions, a,
			(a + 1) % NumActions} {
			if frac := float64(counts[a][d]) / float64(total); frac < 0.28 ||
				frac > 0.39 {
				t.Errorf("action %d moved in direction %d with frequency "+
					"%.3f, want about 1/3 (%v)", a, d, frac, counts[a])
			}
		}
	}
}
