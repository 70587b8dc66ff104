// sync.Pool recycling under concurrency, with GC interaction.
package main

import (
	"bytes"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
)

var bufPool = sync.Pool{
	New: func() any { return new(bytes.Buffer) },
}

var fresh atomic.Int64 // counts pool misses via New

func render(id int) string {
	buf := bufPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset() // return objects clean
		bufPool.Put(buf)
	}()
	fmt.Fprintf(buf, "item-%04d rendered", id)
	return buf.String()
}

func main() {
	// Track how often the pool had to allocate
	bufPool.New = func() any {
		fresh.Add(1)
		return new(bytes.Buffer)
	}

	// Concurrent workers share the pool through per-P caches
	var wg sync.WaitGroup
	const jobs = 1000
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := w; i < jobs; i += 8 {
				_ = render(i)
			}
		}(w)
	}
	wg.Wait()

	fmt.Printf("%d renders used %d fresh buffers\n", jobs, fresh.Load())

	// A GC may drop pooled objects: the pool is a cache, not a freelist
	runtime.GC()
	before := fresh.Load()
	_ = render(0)
	after := fresh.Load()
	if after > before {
		fmt.Println("post-GC Get allocated a new buffer (pool was drained)")
	} else {
		fmt.Println("post-GC Get reused a surviving buffer")
	}

	// Pointer-free data needs no GC scanning: layout choice matters
	type flat struct{ a, b, c int64 }
	vals := make([]flat, 100000) // one object, zero interior pointers
	vals[0].a = 1
	fmt.Printf("flat slice ready: %d elements, single allocation\n", len(vals))
}
