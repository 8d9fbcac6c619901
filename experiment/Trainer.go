package experiment

import (
	"errors"

	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/qlearn/agent"
	"github.com/samuelfneumann/qlearn/agent/qlearning"
	env "github.com/samuelfneumann/qlearn/environment"
	"github.com/samuelfneumann/qlearn/experiment/checkpointer"
	"github.com/samuelfneumann/qlearn/experiment/tracker"
	"github.com/samuelfneumann/qlearn/qtable"
	"github.com/samuelfneumann/qlearn/rlerr"
	ts "github.com/samuelfneumann/qlearn/timestep"
)

// Trainer is an Experiment that trains a Q-Learning agent online. In
// episode i the agent acts ε-greedily with ε given by the exploration
// schedule of the hyperparameters, and updates its action values after
// every environmental step.
type Trainer struct {
	environment env.Environment
	agent       agent.Agent
	schedule    qlearning.Schedule
	episodes    int
	maxSteps    int

	trackers      []tracker.Tracker
	checkpointers []checkpointer.Checkpointer

	// OnEpisode, if non-nil, is called before each episode starts with
	// the episode index and its exploration rate
	OnEpisode func(episode int, epsilon float64)

	state   State
	episode int
}

var _ Experiment = &Trainer{}

// NewTrainer creates and returns a new Trainer which learns the action
// values q on environment e with Q-Learning. The source drives ε-greedy
// exploration, and exploratory actions are sampled from the
// environment. The t parameter is a slice of tracker.Tracker which
// determine what data is saved.
func NewTrainer(c qlearning.Config, e env.Environment, q *qtable.QTable,
	source rand.Source, t ...tracker.Tracker) (*Trainer, error) {
	if e == nil {
		return nil, rlerr.New("newTrainer", rlerr.ErrInvalidArgument,
			"nil environment")
	}
	if err := checkDims("newTrainer", e, q); err != nil {
		return nil, err
	}

	learner, err := qlearning.New(q, c, source, e.SampleAction)
	if err != nil {
		return nil, err
	}
	return NewAgentTrainer(c, e, learner, t...)
}

// NewAgentTrainer is like NewTrainer, but trains an existing Agent. The
// Config determines the number of episodes, the episode length and the
// exploration schedule.
func NewAgentTrainer(c qlearning.Config, e env.Environment, a agent.Agent,
	t ...tracker.Tracker) (*Trainer, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if e == nil || a == nil {
		return nil, rlerr.New("newAgentTrainer", rlerr.ErrInvalidArgument,
			"environment and agent must be non-nil")
	}
	if err := checkDims("newAgentTrainer", e, a.Table()); err != nil {
		return nil, err
	}

	return &Trainer{
		environment: e,
		agent:       a,
		schedule:    c.Schedule(),
		episodes:    c.NTrainingEpisodes,
		maxSteps:    c.MaxSteps,
		trackers:    t,
	}, nil
}

// Train trains the action values q on environment e for the number of
// episodes given by the hyperparameters, and returns the trained table
func Train(c qlearning.Config, e env.Environment, q *qtable.QTable,
	source rand.Source) (*qtable.QTable, error) {
	trainer, err := NewTrainer(c, e, q, source)
	if err != nil {
		return nil, err
	}
	return trainer.Run()
}

// Register registers a tracker.Tracker with the Trainer so that data
// generated during training can be tracked and saved
func (t *Trainer) Register(tr tracker.Tracker) {
	t.trackers = append(t.trackers, tr)
}

// AddCheckpointer registers a checkpointer.Checkpointer with the Trainer
func (t *Trainer) AddCheckpointer(c checkpointer.Checkpointer) {
	t.checkpointers = append(t.checkpointers, c)
}

// State returns the state of the Trainer
func (t *Trainer) State() State {
	return t.state
}

// Episode returns the index of the current episode, or the number of
// episodes run once training is done
func (t *Trainer) Episode() int {
	return t.episode
}

// Table returns the action values being trained
func (t *Trainer) Table() *qtable.QTable {
	return t.agent.Table()
}

// Run runs all training episodes and returns the trained action
// values. The table is updated in place. A Trainer can only be run
// once. If the environment fails, training stops immediately and the
// error is returned as an *rlerr.EnvironmentError.
func (t *Trainer) Run() (*qtable.QTable, error) {
	if t.state != NotStarted {
		return nil, rlerr.New("run", rlerr.ErrInvalidArgument,
			"trainer is %v", t.state)
	}
	t.state = Running

	for t.episode = 0; t.episode < t.episodes; t.episode++ {
		epsilon := t.schedule.Epsilon(t.episode)
		if t.OnEpisode != nil {
			t.OnEpisode(t.episode, epsilon)
		}

		if err := t.RunEpisode(epsilon); err != nil {
			t.state = Failed
			return nil, err
		}
		if err := t.checkpoint(t.episode); err != nil {
			t.state = Failed
			return nil, err
		}
	}

	t.state = Done
	return t.agent.Table(), nil
}

// RunEpisode runs a single training episode with exploration rate
// epsilon. The episode ends when the environment returns a last step or
// after the maximum number of steps, whichever happens first. In the
// latter case the final step is tracked as truncated.
func (t *Trainer) RunEpisode(epsilon float64) error {
	step, err := t.environment.Reset(nil)
	if err != nil {
		return rlerr.Environment("reset", err)
	}
	track(t.trackers, step)

	state := step.State
	for n := 0; n < t.maxSteps; n++ {
		action, err := t.agent.SelectAction(state, epsilon)
		if err != nil {
			return err
		}

		next, err := t.environment.Step(action)
		if err != nil {
			return rlerr.Environment("step", err)
		}
		if !next.Last() && n == t.maxSteps-1 {
			next.SetEnd(ts.Timeout)
		}
		track(t.trackers, next)

		if err := t.agent.Observe(state, action, next); err != nil {
			return err
		}

		if next.Last() {
			break
		}
		state = next.State
	}

	return nil
}

// Save saves all the data cached by the Trackers to disk
func (t *Trainer) Save() error {
	var errs []error
	for _, tr := range t.trackers {
		if err := tr.Save(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// track tracks the current timestep by caching its data in each Tracker
func track(trackers []tracker.Tracker, step ts.TimeStep) {
	for _, tr := range trackers {
		tr.Track(step)
	}
}

func (t *Trainer) checkpoint(episode int) error {
	for _, c := range t.checkpointers {
		if err := c.Checkpoint(episode); err != nil {
			return err
		}
	}
	return nil
}

// checkDims ensures the table q has one row per state and one column
// per action of environment e
func checkDims(op string, e env.Environment, q *qtable.QTable) error {
	if q == nil {
		return rlerr.New(op, rlerr.ErrInvalidArgument, "nil table")
	}

	states, actions := q.Dims()
	if states != e.StateSpace() || actions != e.ActionSpace() {
		return rlerr.New(op, rlerr.ErrInvalidDimension,
			"table is %dx%d, environment has %d states and %d actions",
			states, actions, e.StateSpace(), e.ActionSpace())
	}
	return nil
}
