package main

import (
	"os"

	"vosul/cmd/reportctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
