package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// Exit codes follow the diff convention: 0 on success, 1 when compare
// finds differing fingerprints, 2 on operational failure.
func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		if errors.Is(err, errMismatch) {
			os.Exit(1)
		}
		os.Exit(2)
	}
}
