// Package main provides the commit-gen CLI.
//
// commit-gen checks request payloads against the command types the
// application accepts, running each one through the same decode and
// dispatch path a real request takes.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
