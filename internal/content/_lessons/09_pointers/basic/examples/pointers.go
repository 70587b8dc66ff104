// Address-of, dereference, and safe returns of local addresses.
package main

import "fmt"

type config struct {
	Attempts int
	Verbose  bool
}

// Pointer parameter: writes reach the caller
func reset(c *config) {
	c.Attempts = 0
	c.Verbose = false
}

// Returning the address of a local is safe: it moves to the heap
func defaults() *config {
	c := config{Attempts: 3, Verbose: true}
	return &c
}

func main() {
	x := 42
	p := &x

	fmt.Printf("x = %d\n", x)
	fmt.Printf("p points at %d\n", *p)

	// Writing through the pointer changes x
	*p = 100
	fmt.Printf("x after *p = 100: %d\n", x)

	// Struct mutation through a pointer
	c := config{Attempts: 5, Verbose: true}
	reset(&c)
	fmt.Printf("after reset: %+v\n", c)

	// Escape analysis keeps this valid after defaults returns
	d := defaults()
	fmt.Printf("defaults: %+v\n", *d)

	// nil pointers are checkable, dereferencing one panics
	var maybe *config
	if maybe == nil {
		fmt.Println("maybe is nil, not dereferencing")
	}

	// new allocates a zeroed value and returns its address
	n := new(int)
	*n = 7
	fmt.Printf("new int: %d\n", *n)
}
