// A three-stage pipeline with fan-out and fan-in.
package main

import (
	"fmt"
	"sync"
)

// Stage 1: source owns and closes its output
func gen(nums ...int) <-chan int {
	out := make(chan int)
	go func() {
		defer close(out)
		for _, n := range nums {
			out <- n
		}
	}()
	return out
}

// Stage 2: one worker squaring values from a shared input
func square(in <-chan int) <-chan int {
	out := make(chan int)
	go func() {
		defer close(out)
		for n := range in {
			out <- n * n
		}
	}()
	return out
}

// Fan-in: merge N channels; the last forwarder triggers close
func merge(chans ...<-chan int) <-chan int {
	out := make(chan int)
	var wg sync.WaitGroup
	for _, c := range chans {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for v := range c {
				out <- v
			}
		}()
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

func main() {
	src := gen(1, 2, 3, 4, 5, 6, 7, 8)

	// Fan-out: three workers share one upstream channel
	w1 := square(src)
	w2 := square(src)
	w3 := square(src)

	sum := 0
	count := 0
	for v := range merge(w1, w2, w3) {
		sum += v
		count++
	}

	fmt.Printf("received %d values, sum %d\n", count, sum)

	// Nil channels retire drained inputs inside select
	a, b := gen(1, 2), gen(10)
	var total int
	for a != nil || b != nil {
		select {
		case v, ok := <-a:
			if !ok {
				a = nil
				continue
			}
			total += v
		case v, ok := <-b:
			if !ok {
				b = nil
				continue
			}
			total += v
		}
	}
	fmt.Printf("merged by select: %d\n", total)
}
