// Watching allocation and collection through runtime.MemStats.
package main

import (
	"fmt"
	"runtime"
)

type record struct {
	id   int
	data [128]byte
}

func snapshot(label string) runtime.MemStats {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	fmt.Printf("%-12s heap=%6d KB  totalAlloc=%6d KB  numGC=%d\n",
		label, m.HeapAlloc/1024, m.TotalAlloc/1024, m.NumGC)
	return m
}

func main() {
	snapshot("start")

	// Allocate a burst of heap objects
	refs := make([]*record, 0, 10000)
	for i := 0; i < 10000; i++ {
		refs = append(refs, &record{id: i})
	}
	snapshot("allocated")

	// Drop the references and force a collection
	refs = nil
	runtime.GC()
	snapshot("collected")

	// Value-typed work reuses the same stack frame: no heap growth
	total := 0
	for i := 0; i < 10000; i++ {
		r := record{id: i} // stays on the stack
		total += r.id
	}
	snapshot("stack work")
	fmt.Printf("sum: %d\n", total)

	// make initializes internal structure; new just zeroes
	s := make([]int, 3)
	p := new(int)
	m := make(map[string]int)
	s[0], *p, m["k"] = 1, 2, 3
	fmt.Printf("make slice=%v  new int=%d  make map=%v\n", s, *p, m)

	_ = refs
}
