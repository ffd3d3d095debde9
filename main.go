package main

import (
	"os"

	"github.com/lahari/mcqgen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
