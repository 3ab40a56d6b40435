// Command longestpath finds heavy simple paths in weighted undirected graphs
// read from edge-list files.
package main

import (
	"context"
	"fmt"
	"os"
)

const (
	exitSuccess = 0
	exitError   = 1
)

func main() {
	if err := Execute(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitError)
	}

	os.Exit(exitSuccess)
}
