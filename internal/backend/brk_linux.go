//go:build linux

package backend

import "golang.org/x/sys/unix"

// extendBreak grows the program break via the raw brk(2) syscall.
// golang.org/x/sys/unix does not wrap brk itself (the Go runtime manages
// its own heap through mmap, not brk), so this issues the syscall directly
// the same way the runtime's own sysAlloc issues mmap directly: through
// unix.Syscall, checking errno rather than trusting a return value alone.
func extendBreak(n uintptr) (uintptr, error) {
	current, _, errno := unix.Syscall(unix.SYS_BRK, 0, 0, 0)
	if errno != 0 {
		return 0, wrapf("brk(query)", n, errno)
	}

	next := current + n
	got, _, errno := unix.Syscall(unix.SYS_BRK, next, 0, 0)
	if errno != 0 {
		return 0, wrapf("brk(extend)", n, errno)
	}
	if got < next {
		// The kernel silently refused to move the break as far as asked.
		return 0, wrapf("brk(extend)", n, unix.ENOMEM)
	}

	return current, nil
}
