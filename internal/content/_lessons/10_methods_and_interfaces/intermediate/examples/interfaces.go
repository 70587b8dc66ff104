// Composition, type switches, and probing for optional behavior.
package main

import (
	"bytes"
	"fmt"
	"strings"
)

type sink interface {
	Write(p []byte) (int, error)
}

// flusher is optional behavior probed with an assertion
type flusher interface {
	Flush() error
}

type bufferedSink struct {
	buf bytes.Buffer
}

func (b *bufferedSink) Write(p []byte) (int, error) {
	return b.buf.Write(p)
}

func (b *bufferedSink) Flush() error {
	fmt.Printf("flushed %d bytes\n", b.buf.Len())
	b.buf.Reset()
	return nil
}

type countingSink struct {
	n int
}

func (c *countingSink) Write(p []byte) (int, error) {
	c.n += len(p)
	return len(p), nil
}

func emit(s sink, msg string) {
	s.Write([]byte(msg))
	// Interface-to-interface assertion: flush only if supported
	if f, ok := s.(flusher); ok {
		f.Flush()
	}
}

func describe(v any) string {
	switch x := v.(type) {
	case string:
		return fmt.Sprintf("string of %d chars", len(x))
	case int:
		return fmt.Sprintf("int %d", x)
	case sink:
		return "some kind of sink"
	default:
		return fmt.Sprintf("unhandled %T", x)
	}
}

func main() {
	b := &bufferedSink{}
	c := &countingSink{}

	emit(b, "hello buffered")
	emit(c, "hello counting")
	fmt.Printf("counter saw %d bytes\n", c.n)

	fmt.Println(describe("abc"))
	fmt.Println(describe(42))
	fmt.Println(describe(b))
	fmt.Println(describe(3.14))

	// strings.Builder satisfies io.Writer the same implicit way
	var sb strings.Builder
	fmt.Fprintf(&sb, "built %s", "up")
	fmt.Println(sb.String())
}
