// Range evaluates its expression once and caches the length.
package main

import "fmt"

func calls() []int {
	fmt.Println("range expression evaluated")
	return []int{10, 20, 30}
}

func main() {
	// calls() runs exactly once, not per iteration
	for i, v := range calls() {
		fmt.Printf("  [%d] = %d\n", i, v)
	}

	// Length is captured before the loop: appends do not extend it
	s := []int{1, 2, 3}
	for i := range s {
		s = append(s, 100)
		_ = i
	}
	fmt.Printf("len after range-append: %d\n", len(s))

	// Range copies elements; mutate through the index
	nums := []int{1, 2, 3}
	for _, v := range nums {
		v *= 10 // modifies the copy only
	}
	fmt.Printf("after value mutation: %v\n", nums)
	for i := range nums {
		nums[i] *= 10
	}
	fmt.Printf("after index mutation: %v\n", nums)

	// Map iteration order differs between runs
	seen := map[string]int{"a": 1, "b": 2, "c": 3}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	fmt.Printf("visited %d keys (order randomized)\n", len(keys))
}
