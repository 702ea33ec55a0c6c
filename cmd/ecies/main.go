package main

import (
	"os"

	"github.com/blockpain/ecies-study/cmd/ecies/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
