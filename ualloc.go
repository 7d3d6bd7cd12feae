package ualloc

import (
	"unsafe"

	"ualloc/internal/heap"
)

// Allocate reserves n bytes and returns a pointer to them, or nil if n is
// zero. The returned payload is not zeroed.
func Allocate(n uintptr) unsafe.Pointer {
	return heap.Default.Allocate(n)
}

// Free releases a pointer previously returned by Allocate, ZeroedAllocate,
// or Reallocate. Freeing nil is a no-op.
func Free(p unsafe.Pointer) {
	heap.Default.Free(p)
}

// ZeroedAllocate reserves count*size bytes, zeroed, and returns a pointer
// to them, or nil if either count or size is zero.
func ZeroedAllocate(count, size uintptr) unsafe.Pointer {
	return heap.Default.ZeroedAllocate(count, size)
}

// Reallocate resizes the allocation at p to n bytes, preserving the first
// min(old size, n) bytes of content, and returns a pointer to the
// (possibly relocated) memory. Reallocate(nil, n) behaves as Allocate(n);
// Reallocate(p, 0) behaves as Free(p) and returns nil. Reallocating a
// pointer that has already been freed is caller misuse and returns nil
// without touching any state.
func Reallocate(p unsafe.Pointer, n uintptr) unsafe.Pointer {
	return heap.Default.Reallocate(p, n)
}
