// Package main provides the entry point for lcsim, a cache simulator for a
// small eight-register word machine.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
