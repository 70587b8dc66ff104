// Defer runs LIFO and evaluates arguments immediately.
package main

import "fmt"

func stacked() {
	fmt.Println("start")
	defer fmt.Println("deferred 1 (runs last)")
	defer fmt.Println("deferred 2")
	defer fmt.Println("deferred 3 (runs first)")
	fmt.Println("end of body")
}

func capturedValue() {
	i := 0
	// The argument is evaluated now, so this prints 0
	defer fmt.Printf("deferred saw i = %d\n", i)
	i = 42
	fmt.Printf("body set i = %d\n", i)
}

func capturedClosure() {
	i := 0
	// A closure reads i at call time, so this prints 42
	defer func() { fmt.Printf("closure saw i = %d\n", i) }()
	i = 42
}

func main() {
	stacked()
	fmt.Println("---")
	capturedValue()
	fmt.Println("---")
	capturedClosure()
}
