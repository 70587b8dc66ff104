// Wrap chains, sentinels with errors.Is, typed errors with errors.As.
package main

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("not found")

type QueryError struct {
	Query string
	Code  int
	Err   error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query %q failed (code %d): %v", e.Query, e.Code, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }

// Bottom layer: returns a typed error wrapping a sentinel
func fetchRow(q string) error {
	return &QueryError{Query: q, Code: 404, Err: ErrNotFound}
}

// Middle layer: adds context with %w, preserving the chain
func loadUser(id string) error {
	if err := fetchRow("SELECT * FROM users WHERE id=" + id); err != nil {
		return fmt.Errorf("load user %s: %w", id, err)
	}
	return nil
}

func main() {
	err := loadUser("42")
	fmt.Printf("message: %v\n", err)

	// errors.Is finds the sentinel through two layers of wrapping
	if errors.Is(err, ErrNotFound) {
		fmt.Println("Is: detected ErrNotFound through the chain")
	}

	// errors.As extracts the typed error and its data
	var qe *QueryError
	if errors.As(err, &qe) {
		fmt.Printf("As: code=%d query=%q\n", qe.Code, qe.Query)
	}

	// errors.Join aggregates a batch; Is searches every branch
	batch := errors.Join(
		fmt.Errorf("file a: %w", ErrNotFound),
		errors.New("file b: permission denied"),
	)
	fmt.Printf("joined:\n%v\n", batch)
	fmt.Printf("joined contains ErrNotFound: %v\n", errors.Is(batch, ErrNotFound))

	// Join of all-nil errors is nil
	fmt.Printf("join(nil, nil) == nil: %v\n", errors.Join(nil, nil) == nil)
}
