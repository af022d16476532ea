// Package main is the leaptable entry point.
package main

import (
	"os"

	"github.com/leapstack-labs/leaptable/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
