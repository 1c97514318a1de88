package chunklevel

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/dolthub/swiss"
	"github.com/vkngwrapper/chunkseq/memutils"
)

// Level is a chunk size class. Level 0 is the root chunk, and each subsequent level
// is half the size of the level before it, so a lower Level value means a larger chunk.
type Level uint8

const (
	// RootChunkBytes is the size in bytes of a chunk at the root level
	RootChunkBytes int = 4 * 1024 * 1024
	// MinChunkBytes is the size in bytes of a chunk at the highest level
	MinChunkBytes int = 1024
)

const (
	Level4M Level = iota
	Level2M
	Level1M
	Level512K
	Level256K
	Level128K
	Level64K
	Level32K
	Level16K
	Level8K
	Level4K
	Level2K
	Level1K

	// RootLevel is the level of the largest chunk
	RootLevel = Level4M
	// HighestLevel is the level of the smallest chunk
	HighestLevel = Level1K
	// NumLevels is the number of admissible chunk levels
	NumLevels = int(HighestLevel) + 1
)

var levelNames = [NumLevels]string{
	"4M", "2M", "1M", "512K", "256K", "128K", "64K", "32K", "16K", "8K", "4K", "2K", "1K",
}

var levelsByName *swiss.Map[string, Level]

func init() {
	levelsByName = swiss.NewMap[string, Level](uint32(NumLevels))
	for i, name := range levelNames {
		levelsByName.Put(name, Level(i))
	}
}

// IsValid returns true if the level is one of the admissible chunk levels
func (l Level) IsValid() bool {
	return l <= HighestLevel
}

// Validate returns memutils.ErrInvalidLevel if the level is not admissible
func (l Level) Validate() error {
	if !l.IsValid() {
		return errors.Wrapf(memutils.ErrInvalidLevel, "level %d is beyond highest level %d", uint8(l), uint8(HighestLevel))
	}
	return nil
}

// ByteSize returns the size in bytes of a chunk at this level
func (l Level) ByteSize() int {
	return RootChunkBytes >> l
}

// WordSize returns the size in words of a chunk at this level, for the provided word width in bytes
func (l Level) WordSize(wordBytes int) int {
	memutils.DebugCheckPow2(wordBytes, "wordBytes")
	return l.ByteSize() / wordBytes
}

// Larger returns true if chunks of this level are larger than chunks of the other level
func (l Level) Larger(other Level) bool {
	return l < other
}

func (l Level) String() string {
	if !l.IsValid() {
		return fmt.Sprintf("Level(%d)", uint8(l))
	}
	return levelNames[l]
}

// Parse accepts a level name such as "4M" or "16k" and returns the matching level
func Parse(name string) (Level, error) {
	level, ok := levelsByName.Get(strings.ToUpper(strings.TrimSpace(name)))
	if !ok {
		return 0, errors.Wrapf(memutils.ErrInvalidLevel, "unknown level name %q", name)
	}
	return level, nil
}

// ForByteSize returns the level whose chunks are exactly size bytes
func ForByteSize(size int) (Level, error) {
	err := memutils.CheckPow2(size, "size")
	if err != nil {
		return 0, err
	}

	if size > RootChunkBytes || size < MinChunkBytes {
		return 0, errors.Wrapf(memutils.ErrInvalidLevel, "size %d is outside [%d, %d]", size, MinChunkBytes, RootChunkBytes)
	}

	return Level(memutils.Log2(RootChunkBytes) - memutils.Log2(size)), nil
}

// Fitting returns the level of the smallest chunk able to hold size bytes
func Fitting(size int) (Level, error) {
	if size > RootChunkBytes {
		return 0, errors.Wrapf(memutils.ErrInvalidLevel, "size %d is larger than a root chunk", size)
	}

	if size < MinChunkBytes {
		return HighestLevel, nil
	}

	return ForByteSize(memutils.NextPow2(size))
}

// All returns every admissible level, largest chunk first
func All() []Level {
	levels := make([]Level, 0, NumLevels)
	for l := RootLevel; l <= HighestLevel; l++ {
		levels = append(levels, l)
	}
	return levels
}
