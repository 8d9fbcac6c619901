package experiment

import (
	env "github.com/samuelfneumann/qlearn/environment"
	"github.com/samuelfneumann/qlearn/experiment/tracker"
	"github.com/samuelfneumann/qlearn/policy"
	"github.com/samuelfneumann/qlearn/qtable"
	"github.com/samuelfneumann/qlearn/rlerr"
	ts "github.com/samuelfneumann/qlearn/timestep"
	"gonum.org/v1/gonum/stat"
)

// Evaluate runs nEpisodes episodes on environment e acting greedily
// with respect to q, and returns the mean and population standard
// deviation of the episodic returns. Episodes last at most maxSteps
// steps. The table q is never modified.
//
// If seeds is empty, episodes are not seeded. Otherwise, episode i is
// started with Reset(&seeds[i]) and seeds must hold at least nEpisodes
// seeds.
func Evaluate(e env.Environment, q *qtable.QTable, maxSteps, nEpisodes int,
	seeds []uint64, t ...tracker.Tracker) (mean, std float64, err error) {
	returns, err := EvaluateReturns(e, q, maxSteps, nEpisodes, seeds, t...)
	if err != nil {
		return 0, 0, err
	}

	mean, std = stat.PopMeanStdDev(returns, nil)
	return mean, std, nil
}

// EvaluateReturns is like Evaluate, but returns the return of each
// episode
func EvaluateReturns(e env.Environment, q *qtable.QTable, maxSteps,
	nEpisodes int, seeds []uint64, t ...tracker.Tracker) ([]float64, error) {
	const op = "evaluate"

	switch {
	case e == nil:
		return nil, rlerr.New(op, rlerr.ErrInvalidArgument, "nil environment")
	case nEpisodes <= 0:
		return nil, rlerr.New(op, rlerr.ErrInvalidArgument,
			"number of episodes must be positive, have %d", nEpisodes)
	case maxSteps <= 0:
		return nil, rlerr.New(op, rlerr.ErrInvalidArgument,
			"max steps must be positive, have %d", maxSteps)
	case len(seeds) > 0 && len(seeds) < nEpisodes:
		return nil, rlerr.New(op, rlerr.ErrInvalidArgument,
			"have %d seeds for %d episodes", len(seeds), nEpisodes)
	}
	if err := checkDims(op, e, q); err != nil {
		return nil, err
	}

	returns := make([]float64, nEpisodes)
	for i := range returns {
		var seed *uint64
		if len(seeds) > 0 {
			seed = env.Seed(seeds[i])
		}

		ret, err := evaluateEpisode(e, q, maxSteps, seed, t)
		if err != nil {
			return nil, err
		}
		returns[i] = ret
	}

	return returns, nil
}

// evaluateEpisode runs a single greedy episode and returns its return
func evaluateEpisode(e env.Environment, q *qtable.QTable, maxSteps int,
	seed *uint64, t []tracker.Tracker) (float64, error) {
	step, err := e.Reset(seed)
	if err != nil {
		return 0, rlerr.Environment("reset", err)
	}
	track(t, step)

	var ret float64
	state := step.State
	for n := 0; n < maxSteps; n++ {
		action, err := policy.Greedy(q, state)
		if err != nil {
			return 0, err
		}

		step, err = e.Step(action)
		if err != nil {
			return 0, rlerr.Environment("step", err)
		}
		if !step.Last() && n == maxSteps-1 {
			step.SetEnd(ts.Timeout)
		}
		track(t, step)

		ret += step.Reward
		if step.Last() {
			break
		}
		state = step.State
	}

	return ret, nil
}
