package ualloc_test

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ualloc"
)

// These tests exercise the public facade end to end, against the real
// process-wide allocator (heap.Default) and the real program break /
// mmap. They're intentionally modest in number and size: the exhaustive
// invariant and scenario coverage lives in internal/heap, against a fake
// backing store where registry state can be inspected directly.

func TestAllocateFreeRoundTrip(t *testing.T) {
	p := ualloc.Allocate(128)
	require.NotNil(t, p)
	ualloc.Free(p)
}

func TestAllocateZeroIsNil(t *testing.T) {
	assert.Nil(t, ualloc.Allocate(0))
}

func TestZeroedAllocateIsZeroed(t *testing.T) {
	p := ualloc.ZeroedAllocate(64, 4)
	require.NotNil(t, p)
	defer ualloc.Free(p)

	b := unsafe.Slice((*byte)(p), 64*4)
	for _, v := range b {
		require.Zero(t, v)
	}
}

func TestReallocatePreservesContentAcrossGrow(t *testing.T) {
	p := ualloc.Allocate(32)
	require.NotNil(t, p)

	b := unsafe.Slice((*byte)(p), 32)
	for i := range b {
		b[i] = byte(i + 1)
	}

	q := ualloc.Reallocate(p, 4096)
	require.NotNil(t, q)
	defer ualloc.Free(q)

	b2 := unsafe.Slice((*byte)(q), 32)
	for i := range b2 {
		require.Equal(t, byte(i+1), b2[i])
	}
}

func TestReallocateNilAllocates(t *testing.T) {
	p := ualloc.Reallocate(nil, 16)
	require.NotNil(t, p)
	ualloc.Free(p)
}

func TestReallocateToZeroFrees(t *testing.T) {
	p := ualloc.Allocate(16)
	require.NotNil(t, p)
	assert.Nil(t, ualloc.Reallocate(p, 0))
}

func TestLargeAllocationRoundTrip(t *testing.T) {
	p := ualloc.Allocate(300000)
	require.NotNil(t, p)

	b := unsafe.Slice((*byte)(p), 300000)
	b[0] = 1
	b[299999] = 2

	q := ualloc.Reallocate(p, 400000)
	require.NotNil(t, q)
	b2 := unsafe.Slice((*byte)(q), 300000)
	assert.Equal(t, byte(1), b2[0])
	assert.Equal(t, byte(2), b2[299999])

	ualloc.Free(q)
}
