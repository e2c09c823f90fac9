// Command vexdse explores the resource design space of a VLIW core.
//
// Usage:
//
//	vexdse [-v] <command> [flags] [args]
//
// Commands:
//
//	area       Print the area estimate of one configuration
//	genconfig  Print the simulator machine configuration record
//	getint     Print the first integer found on standard input
//	permute    Print every configuration of the design space
//	explore    Print every configuration with its area estimate
//
// Example:
//
//	# Estimate the area of the reference configuration
//	vexdse area 4 1 1 1 4 2 1 64 8
//
//	# Dump a reduced design space described in a YAML file
//	vexdse permute --ranges small.yaml > points.txt
package main

import (
	"bufio"
	"os"

	"github.com/tebeka/atexit"
)

func main() {
	stdout := bufio.NewWriter(os.Stdout)
	atexit.Register(func() {
		_ = stdout.Flush()
	})

	cmd := newRootCommand(stdout, os.Stderr, os.Stdin)
	if err := cmd.Execute(); err != nil {
		reportError(os.Stderr, err)
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
