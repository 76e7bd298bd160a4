package main

import (
	"os"

	"github.com/tristan-harris/cbr/internal/cli"
)

var version = "0.1"

func main() {
	cli.SetVersion(version)

	if err := cli.Execute(); err != nil {
		cli.PrintError(err)
		os.Exit(1)
	}
}
