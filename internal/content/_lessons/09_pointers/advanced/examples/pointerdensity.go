// Pointer density: allocations and locality of []T vs []*T.
package main

import "fmt"

type sample struct {
	ts    int64
	value float64
}

// One allocation, contiguous elements, zero interior pointers
func sumValues(n int) float64 {
	data := make([]sample, n)
	for i := range data {
		data[i] = sample{ts: int64(i), value: float64(i) * 0.5}
	}
	var total float64
	for i := range data {
		total += data[i].value
	}
	return total
}

// n+1 allocations, elements scattered, n pointers for the GC to scan
func sumPointers(n int) float64 {
	data := make([]*sample, n)
	for i := range data {
		data[i] = &sample{ts: int64(i), value: float64(i) * 0.5}
	}
	var total float64
	for _, s := range data {
		total += s.value
	}
	return total
}

// Index links replace pointer links: compact and GC-free
type tree struct {
	vals   []int
	parent []int // index into vals, -1 for root
}

func main() {
	const n = 10000
	fmt.Printf("values:   %.1f\n", sumValues(n))
	fmt.Printf("pointers: %.1f\n", sumPointers(n))

	t := tree{
		vals:   []int{10, 20, 30},
		parent: []int{-1, 0, 0},
	}
	for i, p := range t.parent {
		if p == -1 {
			fmt.Printf("node %d (val %d) is the root\n", i, t.vals[i])
		} else {
			fmt.Printf("node %d (val %d) -> parent %d\n", i, t.vals[i], p)
		}
	}
}
