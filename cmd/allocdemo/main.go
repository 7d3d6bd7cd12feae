// Command allocdemo drives all four allocator operations against the real
// package, the way the teacher project's small standalone tools
// (mazboot/tools) exercise a piece of the kernel outside of the test
// suite.
package main

import (
	"flag"
	"fmt"
	"os"
	"unsafe"

	"ualloc"
)

func main() {
	verbose := flag.Bool("v", false, "print each step")
	flag.Parse()

	report := func(step string) {
		if *verbose {
			fmt.Fprintln(os.Stderr, step)
		}
	}

	report("allocate 100 bytes, then free")
	p := ualloc.Allocate(100)
	if p == nil {
		fmt.Fprintln(os.Stderr, "allocate(100) returned nil")
		os.Exit(1)
	}
	ualloc.Free(p)

	report("zeroed-allocate 16 elements of 8 bytes, verify zero")
	zp := ualloc.ZeroedAllocate(16, 8)
	if zp == nil {
		fmt.Fprintln(os.Stderr, "zeroed-allocate(16, 8) returned nil")
		os.Exit(1)
	}
	zb := unsafe.Slice((*byte)(zp), 16*8)
	for i, v := range zb {
		if v != 0 {
			fmt.Fprintf(os.Stderr, "zeroed-allocate: byte %d not zero\n", i)
			os.Exit(1)
		}
	}
	ualloc.Free(zp)

	report("allocate 50 bytes, write a pattern, shrink via reallocate")
	a := ualloc.Allocate(50)
	ab := unsafe.Slice((*byte)(a), 50)
	for i := range ab {
		ab[i] = byte(i)
	}
	a = ualloc.Reallocate(a, 30)

	report("grow the same allocation well past its original size")
	a = ualloc.Reallocate(a, 4096)
	ab = unsafe.Slice((*byte)(a), 30)
	for i := range ab {
		if ab[i] != byte(i) {
			fmt.Fprintf(os.Stderr, "reallocate: byte %d corrupted across grow\n", i)
			os.Exit(1)
		}
	}
	ualloc.Free(a)

	report("allocate 200000 bytes, reallocate to 300000 (moves), free")
	m := ualloc.Allocate(200000)
	m = ualloc.Reallocate(m, 300000)
	ualloc.Free(m)

	fmt.Println("ok")
}
