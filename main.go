package main

import (
	"os"

	"github.com/sthiel/mentiq/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
