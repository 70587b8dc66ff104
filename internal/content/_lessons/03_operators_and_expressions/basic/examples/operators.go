// Operators example
package main

import "fmt"

func main() {
	a, b := 7, 2

	fmt.Printf("%d + %d = %d\n", a, b, a+b)
	fmt.Printf("%d / %d = %d (integer division)\n", a, b, a/b)
	fmt.Printf("%d %% %d = %d\n", a, b, a%b)
	fmt.Printf("-7 / 2 = %d (truncates toward zero)\n", -7/2)

	// Increment is a statement, not an expression
	i := 5
	i++
	fmt.Println("after i++:", i)

	// No ternary operator: use if
	max := a
	if b > a {
		max = b
	}
	fmt.Println("max:", max)

	// Tuple assignment swaps without a temporary
	a, b = b, a
	fmt.Println("swapped:", a, b)
}
