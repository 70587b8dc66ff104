// A nil concrete pointer inside an interface is not a nil interface.
package main

import "fmt"

type probeErr struct {
	host string
}

func (e *probeErr) Error() string {
	return "probe failed: " + e.host
}

// Wrong: returns the concrete pointer type
func probeBad(ok bool) *probeErr {
	if !ok {
		return &probeErr{host: "db1"}
	}
	return nil
}

// Right: returns the interface type with a literal nil
func probeGood(ok bool) error {
	if !ok {
		return &probeErr{host: "db1"}
	}
	return nil
}

func main() {
	// The nil *probeErr boxes into a non-nil error
	var err error = probeBad(true)
	fmt.Printf("bad:  err == nil is %v (type %T)\n", err == nil, err)

	err = probeGood(true)
	fmt.Printf("good: err == nil is %v\n", err == nil)

	// An interface is nil only when type AND value words are nil
	var e error
	fmt.Printf("zero interface nil: %v\n", e == nil)

	var p *probeErr
	e = p
	fmt.Printf("after boxing nil pointer: %v\n", e == nil)

	// The data word can still be inspected through an assertion
	if pe, ok := e.(*probeErr); ok {
		fmt.Printf("concrete pointer inside is nil: %v\n", pe == nil)
	}
}
