package main

import (
	"fmt"
	"io"
	"os"

	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"
)

var (
	verbose bool
	jsonOut bool
)

var rootCmd = &cobra.Command{
	Use:   "chunkseq",
	Short: "Inspect and simulate arena chunk allocation sequences",
	Long: `chunkseq prints the chunk levels available to arena contexts, the chunk
allocation sequence used by each space type, and simulates how a context's
chunks grow as it allocates.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every chunk decision to stderr")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newLogger returns a logger writing to stderr, at debug level when verbose is set
func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// writeJSON renders a JSON document with the provided callback and writes it to out
func writeJSON(out io.Writer, render func(writer *jwriter.Writer)) error {
	writer := jwriter.NewWriter()
	render(&writer)
	if err := writer.Error(); err != nil {
		return err
	}

	_, err := fmt.Fprintln(out, string(writer.Bytes()))
	return err
}
