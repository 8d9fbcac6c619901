package cli

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/qlearn/config"
	"github.com/samuelfneumann/qlearn/experiment"
	"github.com/samuelfneumann/qlearn/experiment/checkpointer"
	"github.com/samuelfneumann/qlearn/experiment/plotting"
	"github.com/samuelfneumann/qlearn/experiment/tracker"
	"github.com/samuelfneumann/qlearn/qtable"
	"github.com/samuelfneumann/qlearn/utils/progressbar"
)

var (
	episodes        int
	saveFile        string
	returnsFile     string
	lengthsFile     string
	plotFile        string
	plotWindow      int
	checkpointEvery int
	checkpointDir   string
	showProgress    bool
)

// TrainCommand returns the command which trains a new table of action
// values and evaluates its greedy policy
func TrainCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train a Q-Learning agent and evaluate its greedy policy",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return Train(cmd, c)
		},
	}
	cmd.Flags().IntVarP(&episodes, "episodes", "e", 0, "Number of training episodes, overrides the configuration")
	cmd.Flags().StringVarP(&saveFile, "save", "s", "", "Save the trained action values to this file")
	cmd.Flags().StringVar(&returnsFile, "returns", "", "Save the training returns to this file")
	cmd.Flags().StringVar(&lengthsFile, "lengths", "", "Save the training episode lengths to this file")
	cmd.Flags().StringVar(&plotFile, "plot", "", "Plot the training returns to this image")
	cmd.Flags().IntVar(&plotWindow, "plot-window", 100, "Moving average window of the plotted returns")
	cmd.Flags().IntVar(&checkpointEvery, "checkpoint-every", 0, "Checkpoint the action values every N episodes")
	cmd.Flags().StringVar(&checkpointDir, "checkpoint-dir", "checkpoints", "Directory of the checkpoints")
	cmd.Flags().BoolVar(&showProgress, "progress", true, "Show a progress bar during training")
	return cmd
}

// Train trains and then evaluates the agent described by c
func Train(cmd *cobra.Command, c config.Config) error {
	envSeed, agentSeed := runSeeds(c.Seed)
	environment, err := c.Environment.Create(envSeed)
	if err != nil {
		return err
	}

	q, err := qtable.New(environment.StateSpace(), environment.ActionSpace())
	if err != nil {
		return err
	}

	returns := tracker.NewReturn(returnsFile)
	lengths := tracker.NewEpisodeLength(lengthsFile)
	trainer, err := experiment.NewTrainer(c.Agent, environment, q,
		rand.NewSource(agentSeed), returns, lengths)
	if err != nil {
		return err
	}

	if checkpointEvery > 0 {
		if err := os.MkdirAll(checkpointDir, os.ModePerm); err != nil {
			return fmt.Errorf("train: could not create checkpoint "+
				"directory: %v", err)
		}
		cp, err := checkpointer.NewNStep(checkpointEvery, q,
			checkpointer.DirEnumerator(checkpointDir, "qtable", ".gob"))
		if err != nil {
			return err
		}
		trainer.AddCheckpointer(cp)
	}

	var bar *progressbar.ProgressBar
	if showProgress && c.Agent.NTrainingEpisodes > 0 {
		bar = progressbar.NewProgressBar(cmd.ErrOrStderr(), 40,
			c.Agent.NTrainingEpisodes, time.Second, false)
		trainer.OnEpisode = func(int, float64) { bar.Increment() }
		bar.Display()
		defer bar.Close()
	}

	start := time.Now()
	q, err = trainer.Run()
	if bar != nil {
		bar.Close()
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\nTrained in %.2f seconds\n\n",
		time.Since(start).Seconds())

	if err := trainer.Save(); err != nil {
		return err
	}
	if n := len(returns.Data()); n > 0 {
		log.Printf("Mean training return over the last %d episodes: %.3f",
			min(n, plotWindow), returns.Mean(plotWindow))
	}

	if plotFile != "" {
		err := plotting.SaveLearningCurve(plotFile, string(c.Environment.Environment),
			"Return", plotWindow, plotting.Series{
				Name: "Q-Learning",
				Data: returns.Data(),
			})
		if err != nil {
			return err
		}
	}

	if saveFile != "" {
		if err := q.Save(saveFile); err != nil {
			return err
		}
		log.Printf("Saved action values to %v", saveFile)
	}

	if c.Agent.NEvalEpisodes == 0 {
		return nil
	}
	return evaluate(cmd, c, environment, q)
}
