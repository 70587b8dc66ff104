// Foundational Go patterns: iota enums with Stringer, options structs,
// embedding for decoration, and a registry.
package main

import (
	"fmt"
	"strings"
	"time"
)

type state int

const (
	stateIdle state = iota
	stateRunning
	stateDone
)

func (s state) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case stateRunning:
		return "running"
	case stateDone:
		return "done"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

type fetcher struct {
	addr    string
	timeout time.Duration
	retries int
}

// options carries the optional knobs; zero values mean defaults.
type options struct {
	Timeout time.Duration
	Retries int
}

func newFetcher(addr string, opts options) *fetcher {
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.Retries == 0 {
		opts.Retries = 3
	}
	return &fetcher{addr: addr, timeout: opts.Timeout, retries: opts.Retries}
}

type greeter interface {
	Greet(name string) string
}

type plainGreeter struct{}

func (plainGreeter) Greet(name string) string { return "hello, " + name }

// loudGreeter decorates: embed the inner value, override one method.
type loudGreeter struct {
	greeter
}

func (g loudGreeter) Greet(name string) string {
	return strings.ToUpper(g.greeter.Greet(name)) + "!"
}

var formats = map[string]func(string) string{}

func registerFormat(name string, f func(string) string) { formats[name] = f }

func main() {
	for s := stateIdle; s <= stateDone; s++ {
		fmt.Printf("state %d prints as %q\n", int(s), s)
	}

	def := newFetcher("example.com:443", options{})
	custom := newFetcher("example.com:443", options{Timeout: 5 * time.Second})
	fmt.Printf("default fetcher: timeout=%v retries=%d\n", def.timeout, def.retries)
	fmt.Printf("custom fetcher:  timeout=%v retries=%d\n", custom.timeout, custom.retries)

	var g greeter = loudGreeter{plainGreeter{}}
	fmt.Println(g.Greet("gopher"))

	registerFormat("upper", strings.ToUpper)
	registerFormat("title", func(s string) string {
		return strings.ToUpper(s[:1]) + s[1:]
	})
	for _, name := range []string{"upper", "title", "missing"} {
		f, ok := formats[name]
		if !ok {
			fmt.Printf("format %q: not registered\n", name)
			continue
		}
		fmt.Printf("format %q: %s\n", name, f("go patterns"))
	}
}
