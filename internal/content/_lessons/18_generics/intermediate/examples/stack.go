// A generic container: type-safe without boxing or casts.
package main

import "fmt"

type stack[T any] struct {
	items []T
}

func (s *stack[T]) push(v T) {
	s.items = append(s.items, v)
}

func (s *stack[T]) pop() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	v := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return v, true
}

func (s *stack[T]) len() int {
	return len(s.items)
}

// A generic pair with independent parameters
type pair[K comparable, V any] struct {
	key K
	val V
}

func index[K comparable, V any](pairs []pair[K, V]) map[K]V {
	out := make(map[K]V, len(pairs))
	for _, p := range pairs {
		out[p.key] = p.val
	}
	return out
}

func main() {
	// stack[int] rejects pushes of any other type at compile time
	var ints stack[int]
	ints.push(1)
	ints.push(2)
	ints.push(3)
	for ints.len() > 0 {
		v, _ := ints.pop()
		fmt.Printf("popped %d\n", v)
	}

	// Pop on empty returns the zero value with ok=false
	if _, ok := ints.pop(); !ok {
		fmt.Println("empty stack reported cleanly")
	}

	// The same code serves any element type
	var names stack[string]
	names.push("first")
	names.push("second")
	top, _ := names.pop()
	fmt.Printf("string stack top: %s\n", top)

	// Instantiated pair types compose into functions
	byPort := index([]pair[string, int]{
		{"http", 80},
		{"https", 443},
	})
	fmt.Printf("https -> %d\n", byPort["https"])
}
