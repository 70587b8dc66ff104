// Sets, struct keys, and the addressability workaround.
package main

import "fmt"

type point struct{ x, y int }

type counter struct{ n int }

func main() {
	// A set is a map to empty struct: zero bytes per value
	seen := make(map[string]struct{})
	for _, name := range []string{"a", "b", "a", "c", "b"} {
		seen[name] = struct{}{}
	}
	fmt.Printf("unique: %d\n", len(seen))

	if _, ok := seen["b"]; ok {
		fmt.Println("b is a member")
	}

	// Comparable structs work as keys directly
	visited := map[point]bool{}
	visited[point{1, 2}] = true
	visited[point{3, 4}] = true
	fmt.Printf("visited {1,2}: %v\n", visited[point{1, 2}])
	fmt.Printf("visited {9,9}: %v\n", visited[point{9, 9}])

	// Map values are not addressable: copy out, modify, store back
	byName := map[string]counter{"x": {n: 1}}
	c := byName["x"]
	c.n++
	byName["x"] = c
	fmt.Printf("copy-back: %d\n", byName["x"].n)

	// Pointer values allow in-place mutation
	byPtr := map[string]*counter{"x": {n: 1}}
	byPtr["x"].n++
	fmt.Printf("pointer:   %d\n", byPtr["x"].n)

	// Deleting during range is allowed
	limits := map[string]int{"a": 1, "b": 99, "c": 2, "d": 150}
	for k, v := range limits {
		if v > 50 {
			delete(limits, k)
		}
	}
	fmt.Printf("after filter: %d entries\n", len(limits))
}
