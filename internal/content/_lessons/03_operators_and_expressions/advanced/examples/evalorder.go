// Evaluation order example
package main

import "fmt"

func named(n string, v int) int {
	fmt.Println("eval:", n)
	return v
}

func main() {
	// Function calls evaluate left to right
	sum := named("first", 1) + named("second", 2)
	fmt.Println("sum:", sum)

	// Tuple assignment: RHS fully evaluates before any store
	i := 0
	a := []int{1, 2, 3}
	a[i], i = 9, 1
	fmt.Println("a:", a, "i:", i) // a[0]=9, index used old i

	// Comparable struct works as a map key
	type key struct {
		host string
		port int
	}
	m := map[key]string{
		{"localhost", 80}: "http",
	}
	fmt.Println("lookup:", m[key{"localhost", 80}])
}
