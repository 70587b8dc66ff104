// Unbuffered rendezvous, buffered decoupling, close and range.
package main

import "fmt"

func main() {
	// Unbuffered: the send blocks until main receives
	done := make(chan string)
	go func() {
		done <- "worker finished"
	}()
	fmt.Println(<-done)

	// Buffered: sends complete while there is room
	tasks := make(chan string, 3)
	tasks <- "compile"
	tasks <- "test"
	tasks <- "deploy"
	fmt.Printf("queued: %d of %d\n", len(tasks), cap(tasks))

	// Drain the buffer
	for len(tasks) > 0 {
		fmt.Printf("running %s\n", <-tasks)
	}

	// close signals end-of-stream; range consumes until then
	nums := make(chan int)
	go func() {
		defer close(nums)
		for i := 1; i <= 5; i++ {
			nums <- i * i
		}
	}()
	for v := range nums {
		fmt.Printf("square: %d\n", v)
	}

	// After close and drain: zero value with ok == false
	v, ok := <-nums
	fmt.Printf("after close: v=%d ok=%v\n", v, ok)

	// Counting receives replaces a WaitGroup for result collection
	results := make(chan int)
	for i := 1; i <= 3; i++ {
		go func() {
			results <- i * 10
		}()
	}
	sum := 0
	for range 3 {
		sum += <-results
	}
	fmt.Printf("sum of results: %d\n", sum)
}
