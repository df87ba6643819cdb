package main

import (
	"os"

	"github.com/sharedbrain/brain/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
