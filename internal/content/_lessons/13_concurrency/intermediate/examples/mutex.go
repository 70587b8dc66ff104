// Mutex-guarded state, atomics, and sync.Once.
package main

import (
	"fmt"
	"sync"
	"sync/atomic"
)

type cache struct {
	mu      sync.Mutex // guards entries
	entries map[string]int
}

func (c *cache) incr(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key]++
}

func (c *cache) get(key string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries[key]
}

func main() {
	c := &cache{entries: make(map[string]int)}

	// 100 goroutines hammering the same key: the mutex
	// serializes the read-modify-write
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.incr("hits")
		}()
	}
	wg.Wait()
	fmt.Printf("mutex counter:  %d\n", c.get("hits"))

	// Atomic counter: no lock needed for a lone integer
	var hits atomic.Int64
	var wg2 sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg2.Add(1)
		go func() {
			defer wg2.Done()
			hits.Add(1)
		}()
	}
	wg2.Wait()
	fmt.Printf("atomic counter: %d\n", hits.Load())

	// sync.Once: exactly one caller runs the init function
	var once sync.Once
	var initCount atomic.Int32
	var wg3 sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg3.Add(1)
		go func() {
			defer wg3.Done()
			once.Do(func() { initCount.Add(1) })
		}()
	}
	wg3.Wait()
	fmt.Printf("once ran:       %d time(s)\n", initCount.Load())
}
