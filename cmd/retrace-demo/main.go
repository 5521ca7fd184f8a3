// Command retrace-demo issues a fixed sequence of HTTP GET requests against
// public test APIs, exercises one deterministic forced-retry path, and prints
// a structured run summary. With --trigger-bug it deliberately crashes after
// the retry sequence so crash-capture tooling has a reproducible signature.
package main

import (
	"fmt"
	"os"
)

func main() {
	// The injected fault is never recovered below this point. Print one
	// diagnostic line identifying the fault, then exit with failure status.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "[demo] crashed: %T: %v\n", r, r)
			os.Exit(2)
		}
	}()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "[demo] error: %v\n", err)
		os.Exit(1)
	}
}
