package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samuelfneumann/qlearn/config"
	env "github.com/samuelfneumann/qlearn/environment"
	"github.com/samuelfneumann/qlearn/experiment"
	"github.com/samuelfneumann/qlearn/qtable"
)

var loadFile string

// EvaluateCommand returns the command which evaluates the greedy policy
// of saved action values
func EvaluateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Evaluate the greedy policy of saved action values",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			q, err := qtable.Load(loadFile)
			if err != nil {
				return err
			}

			envSeed, _ := runSeeds(c.Seed)
			environment, err := c.Environment.Create(envSeed)
			if err != nil {
				return err
			}
			return evaluate(cmd, c, environment, q)
		},
	}
	cmd.Flags().StringVarP(&loadFile, "load", "l", "", "File holding the saved action values")
	cmd.MarkFlagRequired("load")
	return cmd
}

// evaluate evaluates the greedy policy of q on environment and prints
// the mean and standard deviation of the returns
func evaluate(cmd *cobra.Command, c config.Config, environment env.Environment,
	q *qtable.QTable) error {
	mean, std, err := experiment.Evaluate(environment, q, c.Agent.MaxSteps,
		c.Agent.NEvalEpisodes, c.Agent.EvalSeeds)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Mean Reward: %.2f +/- %.2f\n", mean, std)
	return nil
}
