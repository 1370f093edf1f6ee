package main

import (
	"os"

	"github.com/Czerw0/JobFinder/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
