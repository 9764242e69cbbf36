package main

import (
	"os"

	"github.com/5ht2/heartbeat/src/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
