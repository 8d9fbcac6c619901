// Package experiment implements functionality for running an experiment:
// training a tabular agent online and evaluating its greedy policy
package experiment

import (
	"github.com/samuelfneumann/qlearn/experiment/checkpointer"
	"github.com/samuelfneumann/qlearn/experiment/tracker"
	"github.com/samuelfneumann/qlearn/qtable"
)

// Interface Experiment outlines structs that can run experiments.
// Experiments will track environment TimeSteps, caching each TimeStep
// in RAM to be later saved to disk. The Save() function will then
// take all cached data and save it to disk. This is usually performed
// after an experiment has been run. The Run() method will run all
// episodes of the experiment and return the learned action values.
//
// In order to save data, Experiments use Trackers. Trackers determine
// which data generated during the experiment is saved. Experiments will
// send each TimeStep to Trackers using the Tracker's Track() method.
// New Trackers can be registered with an Experiment through the
// constructor or through an Experiment's Register() function.
type Experiment interface {
	Run() (*qtable.QTable, error)

	// Save all tracked data to disk
	Save() error

	// Adds a new tracker.Tracker to the experiment. Useful if you want
	// to track data only after a specified event.
	Register(t tracker.Tracker)

	// Adds a new checkpointer.Checkpointer to the experiment, which is
	// called after every episode
	AddCheckpointer(c checkpointer.Checkpointer)
}

// State is the state of an Experiment
type State int

const (
	NotStarted State = iota
	Running
	Done
	Failed
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "NotStarted"
	case Running:
		return "Running"
	case Done:
		return "Done"
	case Failed:
		return "Failed"
	}
	return "Unknown"
}
