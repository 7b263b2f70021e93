package main

import (
	"os"

	"fracpoint/cmd/fracpoint/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
