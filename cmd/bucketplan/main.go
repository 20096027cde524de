package main

import (
	"os"

	"github.com/rpgo/bucket-planner/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
