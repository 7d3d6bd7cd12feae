package heap

import "unsafe"

// Allocate implements malloc-style allocation (spec §4.4 "Allocate"). It
// returns nil only when n is zero; every other kernel-refusal path is
// fatal to the process (handled inside the placement engine).
func (a *Arena) Allocate(n uintptr) unsafe.Pointer {
	if n == 0 {
		return nil
	}
	s := totalBlockSize(n)
	b := a.place(s, allocateMapThreshold)
	if b == nil {
		return nil
	}
	return b.Payload()
}

// ZeroedAllocate implements calloc-style allocation: identical to Allocate
// except the break-vs-mapping threshold is the system page size rather
// than the fixed 128 KiB preallocation cap, and the payload is zeroed
// before it's handed back.
func (a *Arena) ZeroedAllocate(count, size uintptr) unsafe.Pointer {
	if count == 0 || size == 0 {
		return nil
	}
	n := count * size
	s := totalBlockSize(n)
	b := a.place(s, a.pageSize)
	if b == nil {
		return nil
	}
	bzero(b.Payload(), n)
	return b.Payload()
}

// Free releases a payload pointer previously returned by Allocate,
// ZeroedAllocate, or Reallocate. A nil pointer is a no-op. Freeing a
// registry block only flips its status to FREE — coalescing is deferred to
// the next allocation (spec §4.4 "Free"). Freeing a MAPPED block unmaps it
// immediately, since nothing else will ever visit it again.
func (a *Arena) Free(p unsafe.Pointer) {
	if p == nil {
		return
	}
	b := BlockFromPayload(p)
	switch b.Status {
	case StatusAlloc:
		b.Status = StatusFree
	case StatusMapped:
		a.freeMappedBlock(b)
	case StatusFree:
		// Double free: the spec only guards this explicitly for
		// Reallocate. Free on an already-free block is undefined
		// behavior on the caller's part and is not guarded here.
	}
}

// Reallocate implements realloc-style resizing, including the shrink /
// grow-in-place / move state machine (spec §4.4 "Reallocate").
func (a *Arena) Reallocate(p unsafe.Pointer, n uintptr) unsafe.Pointer {
	if p == nil {
		return a.Allocate(n)
	}
	if n == 0 {
		a.Free(p)
		return nil
	}

	b := BlockFromPayload(p)
	s := totalBlockSize(n)

	if b.Status == StatusFree {
		// Caller misuse: reallocating an already-freed block. Return nil
		// without touching any state.
		return nil
	}
	if b.Size == s {
		return p
	}

	if b.Status == StatusMapped {
		return a.reallocMoveFromMapped(b, n, s)
	}
	return a.reallocRegistryBlock(b, p, n, s)
}

// reallocMoveFromMapped handles Reallocate when the incoming block was
// independently mapped: mapped regions can't grow or shrink in place, so
// this always allocates a new block, copies the overlap, and frees the old
// region.
//
// The copy length is capped at min(old payload, new payload) bytes. The
// spec's design notes (§9) flag that a literal old_block.size-based copy
// over-reads the new block on a shrinking mapped reallocate; this
// implementation takes the spec's own suggested fix and caps at the new
// block's capacity, which (combined with the old block's own size) gives
// the safe min() — see DESIGN.md for the discussion.
func (a *Arena) reallocMoveFromMapped(b *Block, n, s uintptr) unsafe.Pointer {
	newB := a.place(s, allocateMapThreshold)
	if newB == nil {
		return nil
	}
	oldPayload := b.Payload()
	toCopy := minUintptr(b.payloadCap(), newB.payloadCap())
	memmove(newB.Payload(), oldPayload, toCopy)
	a.freeMappedBlock(b)
	return newB.Payload()
}

// reallocRegistryBlock handles Reallocate when the incoming block is a
// registry ALLOC block: shrink in place, grow in place by absorbing FREE
// successors, or move if neither suffices.
func (a *Arena) reallocRegistryBlock(b *Block, p unsafe.Pointer, n, s uintptr) unsafe.Pointer {
	if b.Size >= s {
		splitOnFit(b, s)
		// The split-off remainder may sit right before a FREE block.
		coalesce(a.root)
		return p
	}

	coalesce(a.root)
	for b.Size < s && b.Next != nil && b.Next.Status == StatusFree {
		b.Size += b.Next.Size
		b.Next = b.Next.Next
	}
	if b.Size >= s {
		splitOnFit(b, s)
		return p
	}

	newB := a.place(s, allocateMapThreshold)
	if newB == nil {
		return nil
	}
	// Copy min(old payload, new payload) bytes, as the mapped path does.
	// The new block is always the larger one here, so this is the old
	// block's whole payload (including any FREE successors absorbed
	// above) and the read never runs past the old block's end.
	memmove(newB.Payload(), p, minUintptr(b.payloadCap(), newB.payloadCap()))
	a.Free(p)
	return newB.Payload()
}
