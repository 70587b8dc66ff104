// Errors as values: create, check, propagate with context.
package main

import (
	"errors"
	"fmt"
	"strconv"
)

// The (value, error) pair is the universal failure signature
func parsePort(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("parse port %q: %w", s, err)
	}
	if n < 1 || n > 65535 {
		return 0, fmt.Errorf("port %d out of range", n)
	}
	return n, nil
}

func checkDivide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, errors.New("division by zero")
	}
	return a / b, nil
}

func main() {
	// The rhythm: call, check, continue at the left margin
	for _, in := range []string{"8080", "abc", "99999"} {
		port, err := parsePort(in)
		if err != nil {
			fmt.Printf("bad input:  %v\n", err)
			continue
		}
		fmt.Printf("good input: port %d\n", port)
	}

	if _, err := checkDivide(1, 0); err != nil {
		fmt.Printf("divide: %v\n", err)
	}

	// Ignoring an error is a visible, deliberate act
	v, _ := strconv.Atoi("not-a-number")
	fmt.Printf("ignored error, got zero value: %d\n", v)

	// nil error means success; the value is valid
	if q, err := checkDivide(10, 4); err == nil {
		fmt.Printf("10/4 = %.2f\n", q)
	}
}
