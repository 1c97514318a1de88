package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/spf13/cobra"
	"github.com/vkngwrapper/chunkseq/chunklevel"
	"github.com/vkngwrapper/chunkseq/memutils"
)

var levelsWordBytes int

func init() {
	cmd := newLevelsCmd()
	cmd.Flags().IntVar(&levelsWordBytes, "word-bytes", 8, "Word width in bytes used for word sizes")
	rootCmd.AddCommand(cmd)
}

func newLevelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "List chunk levels and their sizes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLevels(cmd.OutOrStdout(), levelsWordBytes, jsonOut)
		},
	}
}

func runLevels(out io.Writer, wordBytes int, asJSON bool) error {
	if err := memutils.CheckPow2(wordBytes, "word-bytes"); err != nil {
		return err
	}

	if asJSON {
		return writeJSON(out, func(writer *jwriter.Writer) {
			arr := writer.Array()
			defer arr.End()

			for _, level := range chunklevel.All() {
				obj := arr.Object()
				obj.Name("Level").Int(int(level))
				obj.Name("Name").String(level.String())
				obj.Name("Bytes").Int(level.ByteSize())
				obj.Name("Words").Int(level.WordSize(wordBytes))
				obj.End()
			}
		})
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "LEVEL\tNAME\tBYTES\tWORDS")
	for _, level := range chunklevel.All() {
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\n", level, level, level.ByteSize(), level.WordSize(wordBytes))
	}
	return w.Flush()
}
