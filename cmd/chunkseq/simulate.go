package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cockroachdb/errors"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/spf13/cobra"
	"github.com/vkngwrapper/chunkseq/chunklevel"
	"github.com/vkngwrapper/chunkseq/commit"
	"github.com/vkngwrapper/chunkseq/memutils"
	"github.com/vkngwrapper/chunkseq/sequence"
	"golang.org/x/exp/slog"
)

type simulateOptions struct {
	spaceType sequence.SpaceType
	isClass   bool
	count     int
	capWords     int
	granuleWords int
	wordBytes    int
}

// maxPreallocatedChunks bounds the capacity hint for the chunk list, since --count is user input
const maxPreallocatedChunks = 1024

var (
	simulateClass     bool
	simulateCount     int
	simulateCapWords     int
	simulateGranuleWords int
	simulateWordBytes    int
)

func init() {
	cmd := newSimulateCmd()
	cmd.Flags().BoolVar(&simulateClass, "class", false, "Simulate the class data sequence instead of the non-class one")
	cmd.Flags().IntVarP(&simulateCount, "count", "n", 8, "Number of chunks to allocate")
	cmd.Flags().IntVar(&simulateCapWords, "cap-words", 0, "Commit cap in words (0 for no cap)")
	cmd.Flags().IntVar(&simulateGranuleWords, "granule-words", 0, "Commit granule in words; commits round up to whole granules (0 for none)")
	cmd.Flags().IntVar(&simulateWordBytes, "word-bytes", 8, "Word width in bytes")
	rootCmd.AddCommand(cmd)
}

func newSimulateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "simulate <space-type>",
		Short: "Walk a space type's chunk allocation sequence",
		Long: `The simulate command allocates chunks for a single arena context of the
given space type and prints the level of each chunk, stopping early if the
commit cap is reached.

Example:
  chunkseq simulate standard -n 6
  chunkseq simulate boot --class --cap-words 655360`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spaceType, err := sequence.ParseSpaceType(args[0])
			if err != nil {
				return err
			}

			return runSimulate(cmd.OutOrStdout(), newLogger(), simulateOptions{
				spaceType: spaceType,
				isClass:   simulateClass,
				count:     simulateCount,
				capWords:     simulateCapWords,
				granuleWords: simulateGranuleWords,
				wordBytes:    simulateWordBytes,
			}, jsonOut)
		},
	}
}

type simulatedChunk struct {
	index int
	level chunklevel.Level
}

func runSimulate(out io.Writer, logger *slog.Logger, options simulateOptions, asJSON bool) error {
	if options.count < 0 {
		return errors.Newf("count must not be negative, got %d", options.count)
	}

	limiter, err := commit.NewLimiter(logger, commit.LimiterOptions{
		Flags:        commit.LimiterExternallySynchronized,
		CapWords:     options.capWords,
		GranuleWords: options.granuleWords,
	})
	if err != nil {
		return err
	}

	tracker, err := sequence.NewTrackerForSpaceType(logger, options.spaceType, options.isClass, sequence.TrackerOptions{
		Limiter:   limiter,
		WordBytes: options.wordBytes,
	})
	if err != nil {
		return err
	}

	chunks := make([]simulatedChunk, 0, min(options.count, maxPreallocatedChunks))
	limitReached := false
	for i := 0; i < options.count; i++ {
		level, err := tracker.Next()
		if errors.Is(err, memutils.ErrCommitLimitReached) {
			logger.Warn("commit limit reached", slog.Int("Index", i), slog.Any("error", err))
			limitReached = true
			break
		} else if err != nil {
			return err
		}

		chunks = append(chunks, simulatedChunk{index: i, level: level})
	}

	var stats memutils.DetailedStatistics
	stats.Clear()
	tracker.AddDetailedStatistics(&stats)

	if asJSON {
		return writeJSON(out, func(writer *jwriter.Writer) {
			obj := writer.Object()
			defer obj.End()

			obj.Name("SpaceType").String(options.spaceType.String())
			obj.Name("Class").Bool(options.isClass)

			chunksArr := obj.Name("Chunks").Array()
			for _, chunk := range chunks {
				chunkObj := chunksArr.Object()
				chunkObj.Name("Index").Int(chunk.index)
				chunkObj.Name("Level").String(chunk.level.String())
				chunkObj.Name("Bytes").Int(chunk.level.ByteSize())
				chunkObj.End()
			}
			chunksArr.End()

			obj.Name("ChunkBytes").Int(stats.ChunkBytes)
			obj.Name("CommittedWords").Int(stats.CommittedWords)
			obj.Name("PlateauChunks").Int(stats.PlateauChunkCount)
			obj.Name("LimitReached").Bool(limitReached)
		})
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "%s %s\n", options.spaceType, dataKind(options.isClass))
	fmt.Fprintln(w, "INDEX\tLEVEL\tBYTES")
	for _, chunk := range chunks {
		fmt.Fprintf(w, "%d\t%s\t%d\n", chunk.index, chunk.level, chunk.level.ByteSize())
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "chunks: %d, bytes: %d, committed words: %d, plateau chunks: %d\n",
		stats.ChunkCount, stats.ChunkBytes, stats.CommittedWords, stats.PlateauChunkCount)
	if limitReached {
		fmt.Fprintf(out, "commit limit of %d words reached\n", limiter.CapWords())
	}
	return nil
}
