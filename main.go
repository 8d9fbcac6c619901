package main

import (
	"log"

	"github.com/samuelfneumann/qlearn/cli"
)

// main entry point to training, evaluation, and serving
func main() {
	log.SetFlags(0)

	rootCommand := cli.GetRootCommand()
	if err := rootCommand.Execute(); err != nil {
		log.Fatal(err)
	}
}
