// Goroutines with WaitGroup: start, wait, and see interleaving.
package main

import (
	"fmt"
	"sync"
	"time"
)

func worker(id int, wg *sync.WaitGroup) {
	defer wg.Done()
	// Simulate staggered work so output interleaves
	time.Sleep(time.Duration(id) * 10 * time.Millisecond)
	fmt.Printf("worker %d done\n", id)
}

func main() {
	var wg sync.WaitGroup

	// Add before starting; Done inside via defer
	for id := 1; id <= 4; id++ {
		wg.Add(1)
		go worker(id, &wg)
	}

	fmt.Println("all workers launched")

	// Wait blocks until the counter reaches zero.
	// Without it, main returns and the program exits
	// with workers abandoned mid-flight.
	wg.Wait()
	fmt.Println("all workers finished")

	// Anonymous goroutines capture loop variables safely
	// (each iteration gets a fresh variable)
	var wg2 sync.WaitGroup
	results := make([]int, 3)
	for i := 0; i < 3; i++ {
		wg2.Add(1)
		go func() {
			defer wg2.Done()
			results[i] = i * i // distinct index per goroutine: no race
		}()
	}
	wg2.Wait()
	fmt.Printf("squares: %v\n", results)
}
