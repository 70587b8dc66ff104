// Panic containment at a worker boundary; close errors via named returns.
package main

import (
	"errors"
	"fmt"
	"strings"
)

// runTask survives panics in untrusted task functions
func runTask(name string, task func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("task %s panicked: %v", name, r)
		}
	}()
	task()
	return nil
}

type flushWriter struct {
	sb     strings.Builder
	broken bool
}

func (f *flushWriter) Write(p []byte) (int, error) {
	return f.sb.Write(p)
}

func (f *flushWriter) Close() error {
	if f.broken {
		return errors.New("flush failed")
	}
	return nil
}

// writeAll promotes a close error only when the writes succeeded
func writeAll(w *flushWriter, lines []string) (err error) {
	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close: %w", cerr)
		}
	}()
	for _, l := range lines {
		if _, err = w.Write([]byte(l + "\n")); err != nil {
			return fmt.Errorf("write: %w", err)
		}
	}
	return nil
}

func main() {
	// A panicking task becomes an error; the program continues
	err := runTask("bad", func() {
		var m map[string]int
		m["boom"] = 1 // write to nil map panics
	})
	fmt.Printf("contained: %v\n", err)

	err = runTask("good", func() {})
	fmt.Printf("clean task error: %v\n", err)

	// Close failure surfaces through the named return
	ok := &flushWriter{}
	fmt.Printf("healthy writer: err=%v\n", writeAll(ok, []string{"a", "b"}))

	bad := &flushWriter{broken: true}
	fmt.Printf("broken writer:  err=%v\n", writeAll(bad, []string{"a"}))
}
