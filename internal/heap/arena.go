package heap

import (
	"os"

	"ualloc/internal/backend"
	"ualloc/internal/ulog"
)

// preallocSize is the fixed arena size the first heap-destined allocation
// pulls from the break in one shot, amortizing future small requests.
const preallocSize = 128 * 1024

// allocateMapThreshold is the aligned total block size at or above which
// Allocate switches from the break to an anonymous mapping.
const allocateMapThreshold = 128 * 1024

// gateway is the subset of backend.Gateway the placement engine needs.
// Declaring it as an interface here (rather than depending on the concrete
// backend.Gateway directly) lets tests substitute an in-process fake
// instead of making real brk/mmap syscalls.
type gateway interface {
	ExtendBreak(n uintptr) (uintptr, error)
	Map(n uintptr) (uintptr, error)
	Unmap(addr, n uintptr) error
}

// Arena holds the process-wide (or, in tests, per-test) mutable state the
// allocator needs: the registry root and the backing-store gateway. Its
// zero value is not ready to use; construct one with NewArena.
//
// Arena is not safe for concurrent use — the allocator models a single
// logical mutator, per spec. A multi-threaded host must serialize calls
// into a single Arena with its own mutex.
type Arena struct {
	root     *Block
	store    gateway
	pageSize uintptr
}

// NewArena constructs an Arena with no registry yet (root == nil): the
// first allocation destined for the break triggers preallocation.
func NewArena() *Arena {
	return &Arena{store: backend.Gateway{}, pageSize: uintptr(os.Getpagesize())}
}

// Default is the process-wide Arena backing the package-level ualloc.*
// functions, mirroring the teacher's single global heapSegmentListHead.
var Default = NewArena()

// fatalf logs and terminates the process on kernel refusal. Every call
// site that talks to the backing-store gateway routes failures through
// this single choke point so "fatal on kernel refusal" (spec §7 class 3)
// has exactly one implementation.
func fatalf(primitive string, err error) {
	ulog.Fatal(primitive, err)
}

// firstTimePrealloc extends the break by preallocSize and installs the
// result as the registry's sole FREE block. Called at most once per Arena,
// the first time a break-destined request arrives.
func (a *Arena) firstTimePrealloc() {
	addr, err := a.store.ExtendBreak(preallocSize)
	if err != nil {
		fatalf("sbrk", err)
		return
	}
	b := blockAt(addr)
	b.Size = preallocSize
	b.Status = StatusFree
	b.Next = nil
	a.root = b
}

// expandTail grows the break by exactly deficit bytes and merges the new
// space into tail, the registry's last block, rather than appending a
// separate block. Keeps the registry compact: a run of in-place growths
// never adds a node.
func (a *Arena) expandTail(tail *Block, deficit uintptr) {
	addr, err := a.store.ExtendBreak(deficit)
	if err != nil {
		fatalf("sbrk", err)
		return
	}
	// The break is contiguous and monotonic, so the freshly extended bytes
	// begin exactly where tail used to end.
	_ = addr
	tail.Size += deficit
}

// newBreakBlock obtains a brand-new block of s bytes from the break and
// appends it to the registry, returning it already linked as the new tail
// and already marked ALLOC.
func (a *Arena) newBreakBlock(tail *Block, s uintptr) *Block {
	addr, err := a.store.ExtendBreak(s)
	if err != nil {
		fatalf("sbrk", err)
		return nil
	}
	b := blockAt(addr)
	b.Size = s
	b.Status = StatusAlloc
	b.Next = nil
	if tail != nil {
		tail.Next = b
	} else {
		a.root = b
	}
	return b
}

// newMappedBlock obtains a fresh off-registry MAPPED block of s bytes.
func (a *Arena) newMappedBlock(s uintptr) *Block {
	addr, err := a.store.Map(s)
	if err != nil {
		fatalf("mmap", err)
		return nil
	}
	b := blockAt(addr)
	b.Size = s
	b.Status = StatusMapped
	b.Next = nil
	return b
}

// freeMappedBlock releases a MAPPED block's region back to the kernel.
func (a *Arena) freeMappedBlock(b *Block) {
	if err := a.store.Unmap(b.addr(), b.Size); err != nil {
		fatalf("munmap", err)
	}
}

// PageSize returns the system page size this Arena reads its
// zeroed-allocate threshold from.
func (a *Arena) PageSize() uintptr {
	return a.pageSize
}
