package cli

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/samuelfneumann/qlearn/qtable"
	"github.com/samuelfneumann/qlearn/server"
)

var (
	addr        string
	logRequests bool
)

// ServeCommand returns the command which serves the greedy policy of
// saved action values over HTTP
func ServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the greedy policy of saved action values over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := qtable.Load(loadFile)
			if err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(context.Background(),
				os.Interrupt)
			defer cancel()

			states, actions := q.Dims()
			log.Printf("Serving %dx%d action values on %v", states, actions,
				addr)
			return server.New(q, logRequests).Run(ctx, addr)
		},
	}
	cmd.Flags().StringVarP(&loadFile, "load", "l", "", "File holding the saved action values")
	cmd.Flags().StringVar(&addr, "addr", "localhost:8080", "Address to listen on")
	cmd.Flags().BoolVar(&logRequests, "log", false, "Log every request")
	cmd.MarkFlagRequired("load")
	return cmd
}
