package main

import (
	"os"

	"github.com/KirkDiggler/civ-draft-bot/cmd/draftctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
