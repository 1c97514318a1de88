package commit

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/chunkseq/internal/utils"
	"github.com/vkngwrapper/chunkseq/memutils"
	"golang.org/x/exp/slog"
)

// LimiterFlags indicate specific limiter behaviors to activate or deactivate
type LimiterFlags int32

const (
	// LimiterExternallySynchronized ensures that the limiter will not be synchronized internally.
	// The consumer must guarantee it is used from only one goroutine at a time.
	LimiterExternallySynchronized LimiterFlags = 1 << iota
)

func (f LimiterFlags) String() string {
	if f == 0 {
		return "None"
	}
	if f == LimiterExternallySynchronized {
		return "LimiterExternallySynchronized"
	}
	return "LimiterFlags(unknown)"
}

// LimiterOptions contains optional settings when creating a Limiter
type LimiterOptions struct {
	// Flags indicates specific limiter behaviors to activate or deactivate
	Flags LimiterFlags
	// CapWords is the maximum number of words that may be committed at once. 0 means no cap.
	CapWords int
	// GranuleWords is the commit granule in words. Commits are rounded up to a whole number of
	// granules and the available expansion is rounded down to one. Must be a power of two;
	// 0 means commits are not rounded.
	GranuleWords int
}

// Limiter answers whether it is okay to commit more words of arena memory, and tracks how
// many words are currently committed. It keeps the limiting logic out of the code that
// commits chunks.
type Limiter struct {
	logger *slog.Logger
	mutex  utils.OptionalRWMutex

	capWords       int
	granuleWords   int
	committedWords int
}

// NewLimiter creates a Limiter. A nil logger uses slog.Default().
func NewLimiter(logger *slog.Logger, options LimiterOptions) (*Limiter, error) {
	if options.CapWords < 0 {
		return nil, errors.Newf("LimiterOptions.CapWords must not be negative, got %d", options.CapWords)
	}

	granuleWords := options.GranuleWords
	if granuleWords == 0 {
		granuleWords = 1
	}
	err := memutils.CheckPow2(granuleWords, "LimiterOptions.GranuleWords")
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Limiter{
		logger: logger,
		mutex: utils.OptionalRWMutex{
			UseMutex: options.Flags&LimiterExternallySynchronized == 0,
		},
		capWords:     options.CapWords,
		granuleWords: granuleWords,
	}, nil
}

// CapWords returns the cap this limiter was created with, or 0 if it is uncapped
func (l *Limiter) CapWords() int {
	return l.capWords
}

// GranuleWords returns the commit granule in words
func (l *Limiter) GranuleWords() int {
	return l.granuleWords
}

// PossibleExpansionWords returns the number of words by which the committed area may grow
// without hitting the cap, in whole granules. It is never negative.
func (l *Limiter) PossibleExpansionWords() int {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return l.possibleExpansionWords()
}

func (l *Limiter) possibleExpansionWords() int {
	limit := l.capWords
	if limit == 0 {
		limit = math.MaxInt
	}

	if l.committedWords >= limit {
		return 0
	}

	return memutils.AlignDown(limit-l.committedWords, uint(l.granuleWords))
}

// CommittedWords returns the number of words currently committed
func (l *Limiter) CommittedWords() int {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return l.committedWords
}

// TryCommit rounds words up to whole granules and commits them if doing so stays within the
// cap. It returns the number of words actually committed, or an error wrapping
// memutils.ErrCommitLimitReached if the cap would be exceeded.
func (l *Limiter) TryCommit(words int) (int, error) {
	if words < 0 {
		return 0, errors.Newf("cannot commit a negative number of words: %d", words)
	}

	l.mutex.Lock()
	defer l.mutex.Unlock()

	possible := l.possibleExpansionWords()
	if words > possible {
		l.logger.Debug("Limiter::TryCommit denied",
			slog.Int("Words", words),
			slog.Int("CommittedWords", l.committedWords),
			slog.Int("CapWords", l.capWords))
		return 0, errors.Wrapf(memutils.ErrCommitLimitReached, "committing %d words, only %d available", words, possible)
	}

	// possible is granule-aligned, so the rounded commit still fits
	committed := memutils.AlignUp(words, uint(l.granuleWords))
	l.committedWords += committed
	return committed, nil
}

// IncreaseCommitted records that words were committed, regardless of the cap. It returns an
// error if words is negative or would overflow the committed counter.
func (l *Limiter) IncreaseCommitted(words int) error {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	if words < 0 || words > math.MaxInt-l.committedWords {
		return errors.AssertionFailedf("cannot commit %d words with %d committed", words, l.committedWords)
	}

	l.committedWords += words
	return nil
}

// DecreaseCommitted records that words were uncommitted. It returns an error if more words
// are uncommitted than are committed.
func (l *Limiter) DecreaseCommitted(words int) error {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	if words < 0 || words > l.committedWords {
		return errors.AssertionFailedf("cannot uncommit %d words with %d committed", words, l.committedWords)
	}

	l.committedWords -= words
	return nil
}
