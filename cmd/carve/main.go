// Package main provides the carve CLI for inspecting splits.
//
// Usage:
//
//	carve split fixed:10 share:1 share:2    Split a rect and print the segments
//	carve version                           Print version information
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "carve",
	Short: "Divide terminal areas into rows and columns",
	Long: `Carve resolves sizing constraints against a rectangular area and
prints the resulting segments. It is a debugging surface for the
layout engine; programs use the library directly.

Constraint forms:
  fixed:N      exactly N cells
  pct:N        N percent of the axis
  ratio:A/B    an A/B fraction of the axis
  min:N        at least N cells
  max:N        at most N cells
  share:W      leftover space, weighted by W`,
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("carve %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(splitCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.Version = Version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
