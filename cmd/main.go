package main

import (
	"os"

	"github.com/gabrielPeart/magenta/cmd/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
