package commit_test

import (
	"math"
	"sync"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/chunkseq/commit"
	"github.com/vkngwrapper/chunkseq/memutils"
)

func TestLimiterCap(t *testing.T) {
	limiter, err := commit.NewLimiter(nil, commit.LimiterOptions{CapWords: 1000})
	require.NoError(t, err)
	require.Equal(t, 1000, limiter.CapWords())
	require.Equal(t, 1, limiter.GranuleWords())
	require.Equal(t, 1000, limiter.PossibleExpansionWords())

	committed, err := limiter.TryCommit(600)
	require.NoError(t, err)
	require.Equal(t, 600, committed)
	require.Equal(t, 600, limiter.CommittedWords())
	require.Equal(t, 400, limiter.PossibleExpansionWords())

	_, err = limiter.TryCommit(401)
	require.True(t, errors.Is(err, memutils.ErrCommitLimitReached))
	require.Equal(t, 600, limiter.CommittedWords())

	_, err = limiter.TryCommit(400)
	require.NoError(t, err)
	require.Equal(t, 0, limiter.PossibleExpansionWords())

	require.NoError(t, limiter.DecreaseCommitted(1000))
	require.Equal(t, 0, limiter.CommittedWords())
}

func TestLimiterUncapped(t *testing.T) {
	limiter, err := commit.NewLimiter(nil, commit.LimiterOptions{})
	require.NoError(t, err)
	require.Equal(t, math.MaxInt, limiter.PossibleExpansionWords())

	_, err = limiter.TryCommit(1 << 40)
	require.NoError(t, err)
	require.Equal(t, math.MaxInt-(1<<40), limiter.PossibleExpansionWords())
}

func TestLimiterIncreaseIgnoresCap(t *testing.T) {
	limiter, err := commit.NewLimiter(nil, commit.LimiterOptions{CapWords: 10})
	require.NoError(t, err)

	require.NoError(t, limiter.IncreaseCommitted(20))
	require.Equal(t, 20, limiter.CommittedWords())
	require.Equal(t, 0, limiter.PossibleExpansionWords())

	_, err = limiter.TryCommit(1)
	require.True(t, errors.Is(err, memutils.ErrCommitLimitReached))

	committed, err := limiter.TryCommit(0)
	require.NoError(t, err)
	require.Equal(t, 0, committed)
}

func TestLimiterIncreaseRejectsBadWords(t *testing.T) {
	limiter, err := commit.NewLimiter(nil, commit.LimiterOptions{})
	require.NoError(t, err)

	require.Error(t, limiter.IncreaseCommitted(-5))
	require.Equal(t, 0, limiter.CommittedWords())
	require.Equal(t, math.MaxInt, limiter.PossibleExpansionWords())

	_, err = limiter.TryCommit(1)
	require.NoError(t, err)

	require.Error(t, limiter.IncreaseCommitted(math.MaxInt))
	require.Equal(t, 1, limiter.CommittedWords())
}

func TestLimiterGranules(t *testing.T) {
	limiter, err := commit.NewLimiter(nil, commit.LimiterOptions{CapWords: 1000, GranuleWords: 256})
	require.NoError(t, err)
	require.Equal(t, 256, limiter.GranuleWords())

	// cap rounds down to three granules
	require.Equal(t, 768, limiter.PossibleExpansionWords())

	committed, err := limiter.TryCommit(1)
	require.NoError(t, err)
	require.Equal(t, 256, committed)

	committed, err = limiter.TryCommit(300)
	require.NoError(t, err)
	require.Equal(t, 512, committed)
	require.Equal(t, 768, limiter.CommittedWords())
	require.Equal(t, 0, limiter.PossibleExpansionWords())

	_, err = limiter.TryCommit(1)
	require.True(t, errors.Is(err, memutils.ErrCommitLimitReached))

	_, err = commit.NewLimiter(nil, commit.LimiterOptions{GranuleWords: 100})
	require.True(t, errors.Is(err, memutils.PowerOfTwoError))
}

func TestLimiterBadInput(t *testing.T) {
	_, err := commit.NewLimiter(nil, commit.LimiterOptions{CapWords: -1})
	require.Error(t, err)

	limiter, err := commit.NewLimiter(nil, commit.LimiterOptions{Flags: commit.LimiterExternallySynchronized})
	require.NoError(t, err)

	_, err = limiter.TryCommit(-1)
	require.Error(t, err)
	require.Error(t, limiter.DecreaseCommitted(1))
	require.Error(t, limiter.DecreaseCommitted(-1))
}

func TestLimiterConcurrentCommit(t *testing.T) {
	limiter, err := commit.NewLimiter(nil, commit.LimiterOptions{CapWords: 1000})
	require.NoError(t, err)

	var wg sync.WaitGroup
	var mutex sync.Mutex
	succeeded := 0
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := limiter.TryCommit(100); err == nil {
				mutex.Lock()
				succeeded++
				mutex.Unlock()
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 10, succeeded)
	require.Equal(t, 1000, limiter.CommittedWords())
}

func TestLimiterFlagsString(t *testing.T) {
	require.Equal(t, "None", commit.LimiterFlags(0).String())
	require.Equal(t, "LimiterExternallySynchronized", commit.LimiterExternallySynchronized.String())
}
