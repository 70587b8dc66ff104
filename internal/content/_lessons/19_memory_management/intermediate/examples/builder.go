// String assembly and buffer reuse: the low-garbage idioms.
package main

import (
	"fmt"
	"runtime"
	"strings"
)

func allocs(f func()) uint64 {
	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)
	f()
	runtime.ReadMemStats(&after)
	return after.Mallocs - before.Mallocs
}

func main() {
	parts := make([]string, 200)
	for i := range parts {
		parts[i] = "segment,"
	}

	// Naive += copies the whole string every iteration
	naive := allocs(func() {
		s := ""
		for _, p := range parts {
			s += p
		}
		_ = s
	})

	// Builder grows amortized; String() hands over without a copy
	built := allocs(func() {
		var b strings.Builder
		b.Grow(len(parts) * 8)
		for _, p := range parts {
			b.WriteString(p)
		}
		_ = b.String()
	})

	fmt.Printf("+= loop:    ~%d allocations\n", naive)
	fmt.Printf("Builder:    ~%d allocations\n", built)

	// Preallocation: one backing array instead of a growth ladder
	grown := allocs(func() {
		var s []int
		for i := 0; i < 1000; i++ {
			s = append(s, i)
		}
		_ = s
	})
	sized := allocs(func() {
		s := make([]int, 0, 1000)
		for i := 0; i < 1000; i++ {
			s = append(s, i)
		}
		_ = s
	})
	fmt.Printf("append from nil: ~%d allocations\n", grown)
	fmt.Printf("preallocated:    ~%d allocations\n", sized)

	// Buffer reuse: truncate to zero length, keep capacity
	buf := make([]byte, 0, 64)
	for _, word := range []string{"alpha", "beta", "gamma"} {
		buf = buf[:0]
		buf = append(buf, "word="...)
		buf = append(buf, word...)
		fmt.Printf("%s (cap %d reused)\n", buf, cap(buf))
	}
}
