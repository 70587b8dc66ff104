// Injecting a clock interface makes time-dependent logic testable.
package main

import (
	"fmt"
	"time"
)

// The production code depends on this one-method interface
type clock interface {
	Now() time.Time
}

// realClock is what production wiring passes in
type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// fakeClock is the ten-line test double
type fakeClock struct {
	t time.Time
}

func (f *fakeClock) Now() time.Time { return f.t }

func (f *fakeClock) advance(d time.Duration) { f.t = f.t.Add(d) }

// cache expires entries after ttl, measured by the injected clock
type cache struct {
	clk     clock
	ttl     time.Duration
	entries map[string]entry
}

type entry struct {
	val     string
	created time.Time
}

func newCache(clk clock, ttl time.Duration) *cache {
	return &cache{clk: clk, ttl: ttl, entries: make(map[string]entry)}
}

func (c *cache) put(k, v string) {
	c.entries[k] = entry{val: v, created: c.clk.Now()}
}

func (c *cache) get(k string) (string, bool) {
	e, ok := c.entries[k]
	if !ok || c.clk.Now().Sub(e.created) > c.ttl {
		return "", false
	}
	return e.val, true
}

func main() {
	// With the fake, expiry is tested without sleeping
	clk := &fakeClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	c := newCache(clk, time.Hour)

	c.put("session", "abc123")
	if v, ok := c.get("session"); ok {
		fmt.Printf("fresh entry: %s\n", v)
	}

	clk.advance(30 * time.Minute)
	_, ok := c.get("session")
	fmt.Printf("after 30m, present: %v\n", ok)

	clk.advance(45 * time.Minute)
	_, ok = c.get("session")
	fmt.Printf("after 75m, present: %v\n", ok)

	// The same cache runs on the real clock in production
	prod := newCache(realClock{}, time.Hour)
	prod.put("k", "v")
	_, ok = prod.get("k")
	fmt.Printf("real clock immediate read: %v\n", ok)
}
