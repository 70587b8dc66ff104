// A bounded worker pool: N workers drain a closed channel.
package main

import (
	"fmt"
	"sync"
	"sync/atomic"
)

type job struct {
	id int
	n  int
}

type result struct {
	id      int
	primeCt int
}

// countPrimes is deliberately CPU-bound busywork
func countPrimes(limit int) int {
	count := 0
	for n := 2; n < limit; n++ {
		isPrime := true
		for d := 2; d*d <= n; d++ {
			if n%d == 0 {
				isPrime = false
				break
			}
		}
		if isPrime {
			count++
		}
	}
	return count
}

func main() {
	const workers = 4

	jobs := make(chan job)
	results := make(chan result)
	var processed atomic.Int64

	// Workers exit when jobs is closed and drained
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				results <- result{id: j.id, primeCt: countPrimes(j.n)}
				processed.Add(1)
			}
		}()
	}

	// Close results once every worker has finished
	go func() {
		wg.Wait()
		close(results)
	}()

	// Feed jobs from a separate goroutine so main can drain results
	go func() {
		for i := 1; i <= 8; i++ {
			jobs <- job{id: i, n: i * 1000}
		}
		close(jobs)
	}()

	total := 0
	for r := range results {
		fmt.Printf("job %d: %d primes\n", r.id, r.primeCt)
		total += r.primeCt
	}

	fmt.Printf("processed %d jobs with %d workers, %d primes total\n",
		processed.Load(), workers, total)
}
