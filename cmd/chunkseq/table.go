package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/vkngwrapper/chunkseq/sequence"
)

func init() {
	rootCmd.AddCommand(newTableCmd())
}

func newTableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Print the chunk allocation sequence for every space type",
		Long: `The table command prints which chunk allocation sequence each space type
uses for class and non-class data. Each sequence is listed as its explicit
levels; the last level repeats forever.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTable(cmd.OutOrStdout(), jsonOut)
		},
	}
}

func runTable(out io.Writer, asJSON bool) error {
	if asJSON {
		return writeJSON(out, sequence.WriteJSON)
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SPACE TYPE\tDATA\tTABLE\tLEVELS")
	for _, entry := range sequence.Entries() {
		levels := entry.Sequence.Levels()
		names := make([]string, 0, len(levels)+1)
		for _, level := range levels {
			names = append(names, level.String())
		}
		names = append(names, "...")

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", entry.SpaceType, dataKind(entry.IsClass), entry.TableName, strings.Join(names, " "))
	}
	return w.Flush()
}

func dataKind(isClass bool) string {
	if isClass {
		return "class"
	}
	return "non-class"
}
