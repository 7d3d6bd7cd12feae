// Package ualloc is a drop-in replacement for the classical C
// standard-library allocation surface: Allocate, Free, ZeroedAllocate and
// Reallocate, built on two OS primitives — a contiguous program-break
// extension and anonymous memory mappings — unified under one pointer
// surface.
//
// The package is not safe for concurrent use. It models a single logical
// mutator, the same way the kernel it was adapted from has exactly one
// thread of execution touching its heap; a multi-threaded host must
// serialize calls with its own mutex.
package ualloc
