package heap

// place implements the shared body of Allocate and ZeroedAllocate (spec
// §4.4): given an aligned total block size s and the threshold that picks
// between the break and an anonymous mapping for this operation, it
// returns a block marked ALLOC or MAPPED and ready to hand its payload to
// the caller. The two public operations differ only in mapThreshold and in
// what they do to the payload afterward (ZeroedAllocate zeroes it).
func (a *Arena) place(s, mapThreshold uintptr) *Block {
	if a.root == nil && s < mapThreshold {
		a.firstTimePrealloc()
	}

	var tail *Block
	if a.root != nil {
		tail = coalesce(a.root)
	}

	if b := findBestFit(a.root, s); b != nil {
		splitOnFit(b, s)
		b.Status = StatusAlloc
		return b
	}

	if tail != nil && tail.Status == StatusFree {
		a.expandTail(tail, s-tail.Size)
		splitOnFit(tail, s)
		tail.Status = StatusAlloc
		return tail
	}

	if s < mapThreshold {
		return a.newBreakBlock(tail, s)
	}
	return a.newMappedBlock(s)
}
