// Package variables initialize in dependency order, then init() runs.
package main

import "fmt"

// Declaration order is c, b, a but the compiler initializes
// in dependency order: a first, then b, then c.
var c = b + 10
var b = a * 2
var a = seed()

var trace []string

func seed() int {
	trace = append(trace, "seed()")
	return 5
}

// init runs after every package variable is ready
func init() {
	trace = append(trace, "init 1")
}

// Multiple init functions run in source order
func init() {
	trace = append(trace, "init 2")
}

func main() {
	trace = append(trace, "main")

	fmt.Printf("a=%d b=%d c=%d\n", a, b, c)
	fmt.Println("initialization sequence:")
	for i, step := range trace {
		fmt.Printf("  %d. %s\n", i+1, step)
	}
}
