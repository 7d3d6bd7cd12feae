// Package backend abstracts the two kernel memory sources the allocator
// draws from: the process program break (a linearly-growable segment) and
// anonymous memory mappings. It moves bytes between the process and the
// kernel; it never interprets the blocks carved out of them.
package backend

import "fmt"

// Gateway is the backing-store gateway. Its zero value is ready to use —
// it carries no state of its own, only the kernel calls.
type Gateway struct{}

// ExtendBreak grows the program break by n bytes and returns the address of
// the former break (the start of the newly available region). n is the
// full block size the caller intends to carve there, header included.
//
// Kernel refusal here is not recoverable: the allocator's invariants only
// hold if every extension it asked for actually landed, so callers are
// expected to treat a non-nil error as fatal.
func (Gateway) ExtendBreak(n uintptr) (uintptr, error) {
	return extendBreak(n)
}

// Map obtains a fresh, exactly-n-byte anonymous mapping, readable and
// writable, and returns its start address. Like ExtendBreak, failure here
// is fatal to the process.
func (Gateway) Map(n uintptr) (uintptr, error) {
	return mapRegion(n)
}

// Unmap releases an n-byte mapping previously obtained from Map.
func (Gateway) Unmap(addr, n uintptr) error {
	return unmapRegion(addr, n)
}

// wrapf is a small formatting helper shared by the platform-specific
// implementations so every kernel-refusal error names the primitive that
// failed, per the fatal-diagnostic requirement on the caller side.
func wrapf(primitive string, n uintptr, err error) error {
	return fmt.Errorf("%s(%d bytes): %w", primitive, n, err)
}
