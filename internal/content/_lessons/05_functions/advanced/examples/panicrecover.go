// Recover converts a panic to an error at a package boundary.
package main

import "fmt"

// safeDivide recovers from the division panic and returns it as an error
func safeDivide(a, b int) (result int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("recovered: %v", r)
		}
	}()
	return a / b, nil // panics when b == 0
}

// A deferred closure can adjust named results after return
func withCleanup() (status string) {
	defer func() {
		status = status + " (cleaned up)"
	}()
	return "done"
}

func main() {
	if v, err := safeDivide(10, 2); err == nil {
		fmt.Printf("10/2 = %d\n", v)
	}

	if _, err := safeDivide(1, 0); err != nil {
		fmt.Printf("1/0 failed: %v\n", err)
	}

	fmt.Println(withCleanup())

	// recover outside a deferred call is a no-op returning nil
	fmt.Printf("stray recover: %v\n", recover())
}
