// Functional options: variadic closures configure a value with
// defaults applied first, options layered on top.
package main

import (
	"fmt"
	"time"
)

type client struct {
	addr      string
	timeout   time.Duration
	retries   int
	userAgent string
}

type option func(*client)

func withTimeout(d time.Duration) option {
	return func(c *client) { c.timeout = d }
}

func withRetries(n int) option {
	return func(c *client) { c.retries = n }
}

func withUserAgent(ua string) option {
	return func(c *client) { c.userAgent = ua }
}

func newClient(addr string, opts ...option) *client {
	c := &client{
		addr:      addr,
		timeout:   30 * time.Second,
		retries:   3,
		userAgent: "demo/1.0",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *client) String() string {
	return fmt.Sprintf("client{addr:%s timeout:%v retries:%d ua:%q}",
		c.addr, c.timeout, c.retries, c.userAgent)
}

func main() {
	fmt.Println("defaults: ", newClient("api.example.com:443"))
	fmt.Println("one opt:  ", newClient("api.example.com:443",
		withTimeout(5*time.Second)))
	fmt.Println("many opts:", newClient("api.example.com:443",
		withTimeout(2*time.Second),
		withRetries(10),
		withUserAgent("importer/2.3"),
	))

	// Options are values: build a preset slice and reuse it.
	aggressive := []option{withTimeout(time.Second), withRetries(20)}
	fmt.Println("preset:   ", newClient("bulk.example.com:443", aggressive...))
}
