// Package main provides the entry point for vexdse.
// vexdse explores the resource design space of a VEX VLIW core.
//
// For the full CLI, use: go run ./cmd/vexdse
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("vexdse - VLIW Design-Space Exploration")
	fmt.Println("")
	fmt.Println("Usage: vexdse [-v] <command> [flags] [args]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  area       Print the area estimate of one configuration")
	fmt.Println("  genconfig  Print the simulator machine configuration record")
	fmt.Println("  getint     Print the first integer found on standard input")
	fmt.Println("  permute    Print every configuration of the design space")
	fmt.Println("  explore    Print every configuration with its area estimate")
	fmt.Println("")
	fmt.Println("Run 'go run ./cmd/vexdse' for the full CLI.")

	if len(os.Args) > 1 {
		fmt.Println("\nNote: You provided arguments. Use 'go run ./cmd/vexdse' instead.")
	}
}
