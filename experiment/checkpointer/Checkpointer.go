// Package checkpointer implements Checkpointers, which periodically
// save objects to disk during an experiment
package checkpointer

// Serializable is an object that can be saved to a file
type Serializable interface {
	Save(filename string) error
}

// Checkpointer checkpoints/saves serializable objects based on the
// number of finished episodes
type Checkpointer interface {
	// Checkpoint is called after the episode with the given index has
	// finished
	Checkpoint(episode int) error
}
