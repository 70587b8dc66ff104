// All the shapes of Go's single loop keyword.
package main

import "fmt"

func main() {
	// C-style three-clause loop
	sum := 0
	for i := 1; i <= 5; i++ {
		sum += i
	}
	fmt.Printf("sum 1..5:        %d\n", sum)

	// While loop: drop the init and post clauses
	n := 1
	for n < 100 {
		n *= 2
	}
	fmt.Printf("first pow2 >100: %d\n", n)

	// Infinite loop with break
	count := 0
	for {
		count++
		if count == 3 {
			break
		}
	}
	fmt.Printf("broke after:     %d\n", count)

	// Range over a slice: index and value
	primes := []int{2, 3, 5, 7, 11}
	for i, p := range primes {
		fmt.Printf("primes[%d] = %d\n", i, p)
	}

	// Range over a string walks runes, not bytes
	for i, r := range "go→" {
		fmt.Printf("byte %d: %c\n", i, r)
	}

	// continue skips to the next iteration
	odds := 0
	for i := 0; i < 10; i++ {
		if i%2 == 0 {
			continue
		}
		odds++
	}
	fmt.Printf("odd count:       %d\n", odds)
}
