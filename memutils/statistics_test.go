package memutils_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/chunkseq/memutils"
)

func TestDetailedStatisticsAddChunk(t *testing.T) {
	var stats memutils.DetailedStatistics
	stats.Clear()

	stats.AddChunk(4096, false)
	stats.AddChunk(16384, true)
	stats.AddChunk(16384, true)

	require.Equal(t, memutils.DetailedStatistics{
		Statistics: memutils.Statistics{
			ChunkCount: 3,
			ChunkBytes: 4096 + 2*16384,
		},
		ChunkSizeMin:      4096,
		ChunkSizeMax:      16384,
		PlateauChunkCount: 2,
	}, stats)
}

func TestDetailedStatisticsMerge(t *testing.T) {
	var first, second memutils.DetailedStatistics
	first.Clear()
	second.Clear()

	first.ContextCount = 1
	first.CommittedWords = 512
	first.AddChunk(4096, false)

	second.ContextCount = 1
	second.AddChunk(1024, true)
	second.AddChunk(2048, false)

	var total memutils.DetailedStatistics
	total.Clear()
	total.AddDetailedStatistics(&first)
	total.AddDetailedStatistics(&second)

	require.Equal(t, memutils.DetailedStatistics{
		Statistics: memutils.Statistics{
			ContextCount:   2,
			ChunkCount:     3,
			ChunkBytes:     4096 + 1024 + 2048,
			CommittedWords: 512,
		},
		ChunkSizeMin:      1024,
		ChunkSizeMax:      4096,
		PlateauChunkCount: 1,
	}, total)

	total.Clear()
	require.Equal(t, math.MaxInt, total.ChunkSizeMin)
	require.Equal(t, 0, total.ChunkCount)
}
