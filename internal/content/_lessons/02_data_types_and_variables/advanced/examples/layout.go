// Struct layout and alignment example
package main

import (
	"fmt"
	"unsafe"
)

type Bad struct {
	a bool
	b float64
	c int32
}

type Good struct {
	b float64
	c int32
	a bool
}

func main() {
	// Same fields, different order, different size
	fmt.Printf("Bad:  size=%d align=%d\n", unsafe.Sizeof(Bad{}), unsafe.Alignof(Bad{}))
	fmt.Printf("Good: size=%d align=%d\n", unsafe.Sizeof(Good{}), unsafe.Alignof(Good{}))

	var g Good
	fmt.Printf("offsets: b=%d c=%d a=%d\n",
		unsafe.Offsetof(g.b), unsafe.Offsetof(g.c), unsafe.Offsetof(g.a))

	// String and slice headers are small fixed-size values
	s := "hello"
	sl := []int{1, 2, 3}
	fmt.Printf("string header: %d bytes\n", unsafe.Sizeof(s))
	fmt.Printf("slice header:  %d bytes\n", unsafe.Sizeof(sl))
}
