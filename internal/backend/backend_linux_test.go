//go:build linux

package backend

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtendBreakReturnsContiguousMonotonicRegions(t *testing.T) {
	var g Gateway

	first, err := g.ExtendBreak(64)
	require.NoError(t, err)

	second, err := g.ExtendBreak(64)
	require.NoError(t, err)

	assert.Equal(t, first+64, second, "consecutive break extensions must be contiguous")
}

func TestMapAndUnmapRoundTrip(t *testing.T) {
	var g Gateway

	addr, err := g.Map(4096)
	require.NoError(t, err)
	require.NotZero(t, addr)

	b := unsafe.Slice((*byte)(unsafe.Pointer(addr)), 4096)
	b[0] = 0xAB
	b[4095] = 0xCD
	assert.Equal(t, byte(0xAB), b[0])
	assert.Equal(t, byte(0xCD), b[4095])

	assert.NoError(t, g.Unmap(addr, 4096))
}

func TestExtendBreakRejectsNothingForZeroBytes(t *testing.T) {
	var g Gateway
	addr, err := g.ExtendBreak(0)
	assert.NoError(t, err)
	assert.NotZero(t, addr)
}
