package heap

import "unsafe"

// bzero clears n bytes starting at p. Named after the teacher's own
// bzero helper (src/go/mazarin/heap.go), which every call to heapInit and
// kmalloc routes through rather than writing a zeroing loop inline.
func bzero(p unsafe.Pointer, n uintptr) {
	b := unsafe.Slice((*byte)(p), int(n))
	for i := range b {
		b[i] = 0
	}
}

// memmove copies n bytes from src to dst. Reallocate's move path always
// copies into a freshly obtained block that cannot overlap the block being
// vacated, so a simple forward byte copy is sufficient — there is no need
// for runtime.memmove's overlap handling.
func memmove(dst, src unsafe.Pointer, n uintptr) {
	d := unsafe.Slice((*byte)(dst), int(n))
	s := unsafe.Slice((*byte)(src), int(n))
	copy(d, s)
}

func minUintptr(a, b uintptr) uintptr {
	if a < b {
		return a
	}
	return b
}
