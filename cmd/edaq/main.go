package main

import (
	"os"

	"github.com/wonny/edaq/cmd/edaq/commands"
)

// main is the entry point for the edaq CLI
// ⭐ 통합 CLI 진입점: go run ./cmd/edaq [command]
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
