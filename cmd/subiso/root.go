package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// newRootCmd assembles a fresh command tree; tests build their own.
func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "subiso",
		Short: "Find subgraph isomorphisms between graphs",
		Long: `subiso enumerates every embedding of a pattern graph into a target graph.

Subcommands:
  match  - search for embeddings and print them
  stats  - print size and density figures of one graph`,
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log search events to stderr")

	root.AddCommand(newMatchCmd(&verbose))
	root.AddCommand(newStatsCmd())

	return root
}

// newLogger writes text records to w: Debug when verbose, Warn otherwise.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
