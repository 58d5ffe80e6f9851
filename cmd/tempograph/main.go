// Package main is the entry point for the tempograph CLI.
package main

import (
	"fmt"
	"os"

	"github.com/tempograph/tempograph/cmd"
	"github.com/tempograph/tempograph/internal/iocache"
)

func main() {
	err := cmd.Execute()
	iocache.CloseCaching()
	if err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		os.Exit(1)
	}
}
