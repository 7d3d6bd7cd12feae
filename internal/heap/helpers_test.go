package heap

import "testing"

// assertRegistryInvariants checks the data-model invariants that must hold
// between operations (spec §3): address-ordered, physically contiguous,
// and no two adjacent FREE blocks.
func assertRegistryInvariants(t *testing.T, root *Block) {
	t.Helper()
	var prev *Block
	for cur := root; cur != nil; cur = cur.Next {
		if cur.Size%AlignQuantum != 0 {
			t.Fatalf("block at %#x has unaligned size %d", cur.addr(), cur.Size)
		}
		if cur.Size < minBlockSize {
			t.Fatalf("block at %#x is smaller than the minimum block size", cur.addr())
		}
		if prev != nil {
			if prev.addr() >= cur.addr() {
				t.Fatalf("registry not address-ordered: %#x >= %#x", prev.addr(), cur.addr())
			}
			if prev.end() != cur.addr() {
				t.Fatalf("registry not contiguous: block at %#x ends at %#x, next starts at %#x", prev.addr(), prev.end(), cur.addr())
			}
			if prev.Status == StatusFree && cur.Status == StatusFree {
				t.Fatalf("adjacent FREE blocks at %#x and %#x", prev.addr(), cur.addr())
			}
		}
		prev = cur
	}
}

func registryLen(root *Block) int {
	n := 0
	for cur := root; cur != nil; cur = cur.Next {
		n++
	}
	return n
}
