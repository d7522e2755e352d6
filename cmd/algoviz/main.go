// Package main provides the entry point for the algoviz CLI.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/algoviz/cmd/algoviz/commands"
)

// Overridden at build time via -ldflags.
var (
	version = "dev"
	commit  = "none"
)

func main() {
	var (
		configPath string
		noColor    bool
	)

	rootCmd := &cobra.Command{
		Use:   "algoviz",
		Short: "Algoviz - step-by-step algorithm traces in the terminal",
		Long: `Algoviz generates and replays step-by-step traces of classic
algorithms: sorting, grid pathfinding, and binary trees.

Commands:
  sort       Trace a sorting algorithm over an input array
  path       Trace a pathfinding algorithm across a maze board
  tree       Trace BST construction, heap building, and traversals
  challenge  List and run pathfinding challenges
  play       Play a trace interactively in the terminal`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if noColor {
				color.NoColor = true
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default .algoviz.yaml in CWD or $HOME)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(commands.NewSortCommand())
	rootCmd.AddCommand(commands.NewPathCommand())
	rootCmd.AddCommand(commands.NewTreeCommand())
	rootCmd.AddCommand(commands.NewChallengeCommand())
	rootCmd.AddCommand(commands.NewPlayCommand())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "algoviz %s (commit: %s)\n", version, commit)
		},
	}
}
