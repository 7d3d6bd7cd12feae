//go:build !linux

package backend

import "errors"

// The allocator's two kernel primitives — brk(2) and anonymous mmap(2) —
// are Linux/POSIX specific, the same way the teacher's own per-platform
// files (framebuffer_qemu.go vs framebuffer_rpi.go) split on target rather
// than pretending one implementation covers every host.
var errUnsupportedPlatform = errors.New("backend: unsupported platform")

func extendBreak(uintptr) (uintptr, error) {
	return 0, errUnsupportedPlatform
}

func mapRegion(uintptr) (uintptr, error) {
	return 0, errUnsupportedPlatform
}

func unmapRegion(uintptr, uintptr) error {
	return errUnsupportedPlatform
}
