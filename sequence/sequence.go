//go:generate mockgen -source sequence.go -destination ./mocks/sequence.go -package mock_sequence

package sequence

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/chunkseq/chunklevel"
	"github.com/vkngwrapper/chunkseq/memutils"
)

// ChunkAllocSequence decides how the chunks of a single arena context grow over time.
type ChunkAllocSequence interface {
	// NextChunkLevel accepts the number of chunks already allocated for a context and returns
	// the level of the chunk to allocate next. Calls are independent of one another: any
	// non-negative numAllocated may be passed in any order, and the same numAllocated always
	// produces the same level. Passing a negative numAllocated panics.
	NextChunkLevel(numAllocated int) chunklevel.Level
}

// ConstantSequence is a ChunkAllocSequence backed by a fixed list of levels. Once the list
// is exhausted, the last level is repeated forever.
type ConstantSequence struct {
	levels []chunklevel.Level
}

var _ ChunkAllocSequence = &ConstantSequence{}

// NewConstantSequence creates a ConstantSequence from the provided levels, which are copied.
// At least one level must be provided, and every level must be valid.
func NewConstantSequence(levels ...chunklevel.Level) (*ConstantSequence, error) {
	if len(levels) == 0 {
		return nil, memutils.ErrEmptySequence
	}

	seq := &ConstantSequence{
		levels: make([]chunklevel.Level, len(levels)),
	}
	copy(seq.levels, levels)

	err := seq.Validate()
	if err != nil {
		return nil, err
	}

	return seq, nil
}

// MustConstantSequence is like NewConstantSequence but panics if the levels are empty or invalid
func MustConstantSequence(levels ...chunklevel.Level) *ConstantSequence {
	seq, err := NewConstantSequence(levels...)
	if err != nil {
		panic(errors.NewAssertionErrorWithWrappedErrf(err, "building constant chunk allocation sequence"))
	}
	return seq
}

// NextChunkLevel returns the level at numAllocated, or the plateau level once the explicit levels run out
func (s *ConstantSequence) NextChunkLevel(numAllocated int) chunklevel.Level {
	if numAllocated < 0 {
		panic(errors.AssertionFailedf("numAllocated must not be negative, got %d", numAllocated))
	}

	if numAllocated >= len(s.levels) {
		// repeat the plateau
		return s.levels[len(s.levels)-1]
	}

	return s.levels[numAllocated]
}

// Len returns the number of explicit levels before the plateau repeats
func (s *ConstantSequence) Len() int {
	return len(s.levels)
}

// Plateau returns the level that is repeated once the explicit levels are exhausted
func (s *ConstantSequence) Plateau() chunklevel.Level {
	return s.levels[len(s.levels)-1]
}

// Levels returns a copy of the explicit levels of this sequence
func (s *ConstantSequence) Levels() []chunklevel.Level {
	levels := make([]chunklevel.Level, len(s.levels))
	copy(levels, s.levels)
	return levels
}

// Validate returns an error if the sequence is empty or holds an invalid level
func (s *ConstantSequence) Validate() error {
	if len(s.levels) == 0 {
		return memutils.ErrEmptySequence
	}

	for i, level := range s.levels {
		err := level.Validate()
		if err != nil {
			return errors.Wrapf(err, "sequence entry %d", i)
		}
	}

	return nil
}
