// Closures capture variables by reference and outlive their frame.
package main

import "fmt"

// counter returns a closure over its own private count
func counter() func() int {
	count := 0
	return func() int {
		count++
		return count
	}
}

// mapInts demonstrates behavior passed as data
func mapInts(s []int, f func(int) int) []int {
	out := make([]int, len(s))
	for i, v := range s {
		out[i] = f(v)
	}
	return out
}

func main() {
	// Each call to counter creates independent state
	a := counter()
	b := counter()
	fmt.Printf("a: %d %d %d\n", a(), a(), a())
	fmt.Printf("b: %d\n", b())

	// Anonymous functions at the call site
	doubled := mapInts([]int{1, 2, 3}, func(v int) int { return v * 2 })
	fmt.Printf("doubled: %v\n", doubled)

	// A closure can modify the variable it captures
	total := 0
	add := func(n int) { total += n }
	add(5)
	add(7)
	fmt.Printf("total: %d\n", total)

	// Function values are assignable and comparable to nil
	var op func(int, int) int
	fmt.Printf("nil func: %v\n", op == nil)
	op = func(x, y int) int { return x * y }
	fmt.Printf("op(6,7): %d\n", op(6, 7))
}
