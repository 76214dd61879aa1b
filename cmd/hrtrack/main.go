package main

import (
	"os"

	"hrtrack/cmd/hrtrack/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
