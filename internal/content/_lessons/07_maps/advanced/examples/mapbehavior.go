// Observable map runtime behavior: random order, growth, no shrink.
package main

import "fmt"

func iterationOrder(m map[int]string) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func main() {
	m := map[int]string{}
	for i := 0; i < 8; i++ {
		m[i] = fmt.Sprintf("v%d", i)
	}

	// Two iterations over the same map usually differ in order
	first := iterationOrder(m)
	second := iterationOrder(m)
	fmt.Printf("pass 1: %v\n", first)
	fmt.Printf("pass 2: %v\n", second)

	// A size hint preallocates buckets for n entries
	hinted := make(map[int]int, 1000)
	for i := 0; i < 1000; i++ {
		hinted[i] = i * i
	}
	fmt.Printf("hinted len: %d\n", len(hinted))

	// clear empties entries but keeps the bucket array
	clear(hinted)
	fmt.Printf("after clear: len=%d\n", len(hinted))

	// NaN keys insert but can never be found again
	nan := func() float64 {
		zero := 0.0
		return zero / zero
	}()
	weird := map[float64]int{}
	weird[nan] = 1
	weird[nan] = 2
	_, found := weird[nan]
	fmt.Printf("NaN entries: %d, lookup finds: %v\n", len(weird), found)
}
