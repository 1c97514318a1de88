package sequence

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/chunkseq/chunklevel"
	"github.com/vkngwrapper/chunkseq/commit"
	"github.com/vkngwrapper/chunkseq/memutils"
	"golang.org/x/exp/slog"
)

const (
	// defaultWordBytes is the word width used when TrackerOptions.WordBytes is not provided
	defaultWordBytes int = 8
)

// TrackerOptions contains optional settings when creating a Tracker
type TrackerOptions struct {
	// Limiter, if provided, is asked to commit each chunk's words before the chunk is handed out.
	// Chunks smaller than the Limiter's granule still commit a whole granule.
	Limiter *commit.Limiter
	// WordBytes is the word width in bytes used to convert chunk sizes for the Limiter. Defaults to 8.
	WordBytes int
}

// plateauSequence is implemented by sequences that know where their plateau begins
type plateauSequence interface {
	Len() int
}

// Tracker walks a ChunkAllocSequence on behalf of a single arena context, remembering how
// many chunks have been allocated so far. A Tracker is not safe for concurrent use.
type Tracker struct {
	logger    *slog.Logger
	sequence  ChunkAllocSequence
	limiter   *commit.Limiter
	wordBytes int

	count          int
	committedWords int
	stats          memutils.DetailedStatistics
}

// NewTracker creates a Tracker over the provided sequence. A nil logger uses slog.Default().
func NewTracker(logger *slog.Logger, sequence ChunkAllocSequence, options TrackerOptions) (*Tracker, error) {
	if sequence == nil {
		return nil, errors.New("sequence must not be nil")
	}

	wordBytes := options.WordBytes
	if wordBytes == 0 {
		wordBytes = defaultWordBytes
	}
	err := memutils.CheckPow2(wordBytes, "TrackerOptions.WordBytes")
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = slog.Default()
	}

	tracker := &Tracker{
		logger:    logger,
		sequence:  sequence,
		limiter:   options.Limiter,
		wordBytes: wordBytes,
	}
	tracker.stats.Clear()

	return tracker, nil
}

// NewTrackerForSpaceType creates a Tracker over the registry's sequence for the provided space type
func NewTrackerForSpaceType(logger *slog.Logger, spaceType SpaceType, isClass bool, options TrackerOptions) (*Tracker, error) {
	return NewTracker(logger, ForSpaceType(spaceType, isClass), options)
}

// Count returns the number of chunks allocated through this tracker
func (t *Tracker) Count() int {
	return t.count
}

// Peek returns the level the next call to Next will produce, without allocating. Like Next,
// it returns an error wrapping memutils.ErrInvalidLevel if the sequence produces an invalid level.
func (t *Tracker) Peek() (chunklevel.Level, error) {
	return t.nextLevel()
}

func (t *Tracker) nextLevel() (chunklevel.Level, error) {
	level := t.sequence.NextChunkLevel(t.count)
	err := level.Validate()
	if err != nil {
		return 0, errors.Wrapf(err, "sequence returned an invalid level for chunk %d", t.count)
	}
	return level, nil
}

// Next returns the level of the next chunk for this context and counts it as allocated.
// If a Limiter was provided and the chunk cannot be committed, the error wraps
// memutils.ErrCommitLimitReached and the chunk is not counted.
func (t *Tracker) Next() (chunklevel.Level, error) {
	level, err := t.nextLevel()
	if err != nil {
		return 0, err
	}

	if t.limiter != nil {
		committed, err := t.limiter.TryCommit(level.WordSize(t.wordBytes))
		if err != nil {
			return 0, errors.Wrapf(err, "allocating chunk %d at level %s", t.count, level)
		}
		t.committedWords += committed
	}

	plateau := false
	if withLen, ok := t.sequence.(plateauSequence); ok {
		plateau = t.count >= withLen.Len()-1
	}

	t.logger.Debug("Tracker::Next",
		slog.Int("Index", t.count),
		slog.String("Level", level.String()),
		slog.Bool("Plateau", plateau))

	t.count++
	t.stats.AddChunk(level.ByteSize(), plateau)

	return level, nil
}

// Release uncommits every word this tracker committed through its Limiter and resets the
// tracker to allocate from the start of its sequence again
func (t *Tracker) Release() error {
	if t.limiter != nil && t.committedWords > 0 {
		err := t.limiter.DecreaseCommitted(t.committedWords)
		if err != nil {
			return err
		}
	}

	t.logger.Debug("Tracker::Release",
		slog.Int("ChunkCount", t.count),
		slog.Int("CommittedWords", t.committedWords))

	t.count = 0
	t.committedWords = 0
	t.stats.Clear()
	return nil
}

// AddStatistics sums this tracker's statistics into the provided memutils.Statistics object
func (t *Tracker) AddStatistics(stats *memutils.Statistics) {
	stats.ContextCount++
	stats.ChunkCount += t.stats.ChunkCount
	stats.ChunkBytes += t.stats.ChunkBytes
	stats.CommittedWords += t.committedWords
}

// AddDetailedStatistics sums this tracker's statistics into the provided memutils.DetailedStatistics object
func (t *Tracker) AddDetailedStatistics(stats *memutils.DetailedStatistics) {
	own := t.stats
	own.ContextCount = 1
	own.CommittedWords = t.committedWords
	stats.AddDetailedStatistics(&own)
}
