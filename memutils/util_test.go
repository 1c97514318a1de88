package memutils_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/chunkseq/memutils"
)

func TestCheckPow2(t *testing.T) {
	require.NoError(t, memutils.CheckPow2(1, "one"))
	require.NoError(t, memutils.CheckPow2(4096, "page"))
	require.NoError(t, memutils.CheckPow2(uint(1<<20), "mb"))

	err := memutils.CheckPow2(3000, "size")
	require.True(t, errors.Is(err, memutils.PowerOfTwoError))
	require.Contains(t, err.Error(), "size is 3000")

	require.Error(t, memutils.CheckPow2(0, "zero"))
	require.Error(t, memutils.CheckPow2(-8, "negative"))
}

func TestAlign(t *testing.T) {
	require.Equal(t, 4096, memutils.AlignUp(1, 4096))
	require.Equal(t, 4096, memutils.AlignUp(4096, 4096))
	require.Equal(t, 8192, memutils.AlignUp(4097, 4096))
	require.Equal(t, 0, memutils.AlignDown(4095, 4096))
	require.Equal(t, 4096, memutils.AlignDown(8191, 4096))
}

func TestNextPow2AndLog2(t *testing.T) {
	require.Equal(t, 1, memutils.NextPow2(0))
	require.Equal(t, 1, memutils.NextPow2(1))
	require.Equal(t, 2, memutils.NextPow2(2))
	require.Equal(t, 4, memutils.NextPow2(3))
	require.Equal(t, 2048, memutils.NextPow2(1025))
	require.Equal(t, 4096, memutils.NextPow2(4096))

	require.Equal(t, 0, memutils.Log2(1))
	require.Equal(t, 10, memutils.Log2(1024))
	require.Equal(t, 22, memutils.Log2(4*1024*1024))
}
