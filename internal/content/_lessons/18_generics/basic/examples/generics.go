// Generic functions with constraints and inference.
package main

import "fmt"

// Ordered mirrors cmp.Ordered for the numeric and string types used here
type ordered interface {
	~int | ~int64 | ~float64 | ~string
}

func minOf[T ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Two type parameters: transform []T into []U
func mapSlice[T, U any](s []T, f func(T) U) []U {
	out := make([]U, len(s))
	for i, v := range s {
		out[i] = f(v)
	}
	return out
}

// comparable is the built-in constraint for == support
func contains[T comparable](s []T, target T) bool {
	for _, v := range s {
		if v == target {
			return true
		}
	}
	return false
}

func main() {
	// Inference picks T from the arguments
	fmt.Printf("minOf(3, 5)         = %d\n", minOf(3, 5))
	fmt.Printf("minOf(2.5, 1.5)     = %.1f\n", minOf(2.5, 1.5))
	fmt.Printf("minOf(\"b\", \"a\")     = %s\n", minOf("b", "a"))

	// The tilde admits defined types with matching underlying type
	type meters float64
	fmt.Printf("minOf(meters)       = %.1f\n", minOf(meters(7.2), meters(3.1)))

	// T=string and U=int both inferred
	words := []string{"go", "generics", "infer"}
	lengths := mapSlice(words, func(w string) int { return len(w) })
	fmt.Printf("lengths: %v\n", lengths)

	// Chained transforms keep full type checking
	doubled := mapSlice(lengths, func(n int) int { return n * 2 })
	fmt.Printf("doubled: %v\n", doubled)

	fmt.Printf("contains 8:  %v\n", contains([]int{2, 4, 8}, 8))
	fmt.Printf("contains go: %v\n", contains(words, "go"))
}
