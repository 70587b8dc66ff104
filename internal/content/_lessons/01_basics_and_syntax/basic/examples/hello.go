// Basic program structure example
package main

import "fmt"

func main() {
	// Every executable starts in package main, func main
	fmt.Println("Hello, World!")

	// Unused imports and variables are compile errors,
	// so everything declared here is used
	greeting := "Hello from Go"
	fmt.Println(greeting)
}
