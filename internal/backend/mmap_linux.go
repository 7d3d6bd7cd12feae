//go:build linux

package backend

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// mapRegion asks the kernel for a fresh, private, anonymous mapping of
// exactly n bytes, readable and writable. This is the same
// PROT_READ|PROT_WRITE, MAP_ANON|MAP_PRIVATE combination the runtime's own
// Linux sysAlloc uses for large allocations.
func mapRegion(n uintptr) (uintptr, error) {
	b, err := unix.Mmap(-1, 0, int(n), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return 0, wrapf("mmap", n, err)
	}
	return uintptr(unsafe.Pointer(&b[0])), nil
}

// unmapRegion releases a mapping obtained from mapRegion. The allocator
// only ever retains an address and a length for a MAPPED block (the header
// stores the length), so the byte slice handed to Munmap is reconstructed
// from those two values rather than kept around since the mapping call.
func unmapRegion(addr, n uintptr) error {
	b := unsafe.Slice((*byte)(unsafe.Pointer(addr)), int(n))
	if err := unix.Munmap(b); err != nil {
		return wrapf("munmap", n, err)
	}
	return nil
}
