package main

import (
	"os"

	"github.com/solenne/datawarden/cmd/datawarden/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
