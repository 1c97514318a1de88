package memutils

import "math"

// Statistics summarizes the chunks handed out to one or more arena contexts
type Statistics struct {
	ContextCount   int
	ChunkCount     int
	ChunkBytes     int
	CommittedWords int
}

func (s *Statistics) Clear() {
	s.ContextCount = 0
	s.ChunkCount = 0
	s.ChunkBytes = 0
	s.CommittedWords = 0
}

func (s *Statistics) AddStatistics(other *Statistics) {
	s.ContextCount += other.ContextCount
	s.ChunkCount += other.ChunkCount
	s.ChunkBytes += other.ChunkBytes
	s.CommittedWords += other.CommittedWords
}

// DetailedStatistics extends Statistics with the chunk size range and the point at which
// the allocation sequence reached its plateau
type DetailedStatistics struct {
	Statistics
	ChunkSizeMin int
	ChunkSizeMax int
	// PlateauChunkCount is the number of chunks allocated at the sequence's final,
	// repeated level
	PlateauChunkCount int
}

func (s *DetailedStatistics) Clear() {
	s.Statistics.Clear()
	s.ChunkSizeMin = math.MaxInt
	s.ChunkSizeMax = 0
	s.PlateauChunkCount = 0
}

func (s *DetailedStatistics) AddChunk(size int, plateau bool) {
	s.ChunkCount++
	s.ChunkBytes += size

	if plateau {
		s.PlateauChunkCount++
	}

	if size < s.ChunkSizeMin {
		s.ChunkSizeMin = size
	}

	if size > s.ChunkSizeMax {
		s.ChunkSizeMax = size
	}
}

func (s *DetailedStatistics) AddDetailedStatistics(other *DetailedStatistics) {
	s.Statistics.AddStatistics(&other.Statistics)
	s.PlateauChunkCount += other.PlateauChunkCount

	if other.ChunkSizeMin < s.ChunkSizeMin {
		s.ChunkSizeMin = other.ChunkSizeMin
	}

	if other.ChunkSizeMax > s.ChunkSizeMax {
		s.ChunkSizeMax = other.ChunkSizeMax
	}
}
