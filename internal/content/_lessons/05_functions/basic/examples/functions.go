// Multiple returns, named results, and variadic parameters.
package main

import (
	"errors"
	"fmt"
)

// Two results: the value and an error
func divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, errors.New("division by zero")
	}
	return a / b, nil
}

// Named results arrive zero-valued and allow a naked return
func divmod(a, b int) (q, r int) {
	q = a / b
	r = a % b
	return
}

// Variadic: nums is an ordinary []int inside the body
func sum(nums ...int) int {
	total := 0
	for _, n := range nums {
		total += n
	}
	return total
}

func main() {
	if v, err := divide(10, 4); err == nil {
		fmt.Printf("10 / 4  = %.2f\n", v)
	}
	if _, err := divide(1, 0); err != nil {
		fmt.Printf("1 / 0   = error: %v\n", err)
	}

	q, r := divmod(17, 5)
	fmt.Printf("17 /%% 5 = %d r %d\n", q, r)

	fmt.Printf("sum()        = %d\n", sum())
	fmt.Printf("sum(1,2,3)   = %d\n", sum(1, 2, 3))

	// Spread an existing slice into the variadic slot
	vals := []int{10, 20, 30}
	fmt.Printf("sum(vals...) = %d\n", sum(vals...))
}
