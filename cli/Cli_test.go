package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/samuelfneumann/qlearn/experiment/tracker"
	"github.com/samuelfneumann/qlearn/qtable"
)

const twoState = `
seed: 3
environment:
  environment: TwoState
agent:
  n_training_episodes: 200
  max_steps: 20
  decay_rate: 0.01
  n_eval_episodes: 10
`

func run(t *testing.T, args ...string) string {
	t.Helper()

	var out bytes.Buffer
	cmd := GetRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("%v: %v\n%s", args, err, out.String())
	}
	return out.String()
}

func TestTrainEvaluate(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "run.yaml")
	if err := os.WriteFile(configFile, []byte(twoState), 0o644); err != nil {
		t.Fatal(err)
	}

	saved := filepath.Join(dir, "q.gob")
	returns := filepath.Join(dir, "returns.bin")
	out := run(t, "train", "--config", configFile, "--progress=false",
		"--episodes", "150", "--save", saved, "--returns", returns,
		"--plot", filepath.Join(dir, "returns.png"),
		"--checkpoint-every", "50",
		"--checkpoint-dir", filepath.Join(dir, "checkpoints"))

	if !strings.Contains(out, "Trained in") {
		t.Errorf("want training time printed, have %q", out)
	}
	if !strings.Contains(out, "Mean Reward: 1.00 +/- 0.00") {
		t.Errorf("want optimal evaluation, have %q", out)
	}

	q, err := qtable.Load(saved)
	if err != nil {
		t.Fatal(err)
	}
	if states, actions := q.Dims(); states != 2 || actions != 2 {
		t.Errorf("want 2x2 table, have %dx%d", states, actions)
	}

	data, err := tracker.LoadData(returns)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 150 {
		t.Errorf("--episodes should override the configuration: have %d "+
			"returns", len(data))
	}

	for _, name := range []string{"returns.png", "checkpoints/qtable3.gob"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("want %v written: %v", name, err)
		}
	}

	out = run(t, "evaluate", "--config", configFile, "--load", saved,
		"--eval-episodes", "5")
	if !strings.Contains(out, "Mean Reward: 1.00 +/- 0.00") {
		t.Errorf("want optimal evaluation, have %q", out)
	}
}

func TestInvalidConfig(t *testing.T) {
	cmd := GetRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"train", "--max-steps", "0", "--progress=false"})
	if err := cmd.Execute(); err == nil {
		t.Error("want error for zero max steps")
	}
}

func TestRunSeeds(t *testing.T) {
	for _, s := range []uint64{0, 1, 3, 1 << 40} {
		envSeed, agentSeed := runSeeds(s)
		if envSeed == agentSeed {
			t.Errorf("seed %d: environment and agent share seed %d", s,
				envSeed)
		}
		if e, a := runSeeds(s); e != envSeed || a != agentSeed {
			t.Errorf("seed %d: seeds not reproducible", s)
		}
	}
}
