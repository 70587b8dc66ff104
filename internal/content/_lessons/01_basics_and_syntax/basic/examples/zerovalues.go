// Zero values example
package main

import "fmt"

func main() {
	// Declared but not initialized: always the zero value
	var i int
	var f float64
	var s string
	var b bool
	var p *int

	fmt.Printf("int:     %d\n", i)
	fmt.Printf("float64: %f\n", f)
	fmt.Printf("string:  '%s'\n", s)
	fmt.Printf("bool:    %t\n", b)
	fmt.Printf("pointer: %v\n", p)
}
