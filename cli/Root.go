// Package cli implements the command line interface for training,
// evaluating, and serving tabular Q-Learning agents
package cli

import (
	"github.com/spf13/cobra"

	"github.com/samuelfneumann/qlearn/config"
	env "github.com/samuelfneumann/qlearn/environment"
)

var (
	configFile string
	seed       uint64
	maxSteps   int
	evalEps    int
)

// GetRootCommand returns the root command of the command line interface
func GetRootCommand() *cobra.Command {
	rootCommand := &cobra.Command{
		Use:          "qlearn",
		Short:        "Train and evaluate tabular Q-Learning agents",
		SilenceUsage: true,
	}
	rootCommand.PersistentFlags().StringVarP(&configFile, "config", "c", "", "JSON or YAML run configuration, defaults to the 4x4 FrozenLake")
	rootCommand.PersistentFlags().Uint64Var(&seed, "seed", 0, "Random seed, overrides the configuration")
	rootCommand.PersistentFlags().IntVar(&maxSteps, "max-steps", 0, "Maximum steps per episode, overrides the configuration")
	rootCommand.PersistentFlags().IntVar(&evalEps, "eval-episodes", 0, "Number of evaluation episodes, overrides the configuration")

	// adding the subcommands here
	rootCommand.AddCommand(TrainCommand())
	rootCommand.AddCommand(EvaluateCommand())
	rootCommand.AddCommand(ServeCommand())
	return rootCommand
}

// loadConfig loads the run configuration and applies the flags that
// override it
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	c := config.Default()
	if configFile != "" {
		var err error
		if c, err = config.Load(configFile); err != nil {
			return config.Config{}, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		c.Seed = seed
	}
	if flags.Changed("max-steps") {
		c.Agent.MaxSteps = maxSteps
	}
	if flags.Changed("eval-episodes") {
		c.Agent.NEvalEpisodes = evalEps
	}
	if flags.Changed("episodes") {
		c.Agent.NTrainingEpisodes = episodes
	}

	return c, c.Validate()
}

// runSeeds derives the seeds of the environment and of the agent's
// exploration from the run seed
func runSeeds(seed uint64) (envSeed, agentSeed uint64) {
	seeds := env.SplitSeed(seed, 2)
	return seeds[0], seeds[1]
}
