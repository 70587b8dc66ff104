// Select: multiplexing, timeouts, try-send, and shutdown broadcast.
package main

import (
	"fmt"
	"time"
)

func main() {
	fast := make(chan string)
	slow := make(chan string)

	go func() {
		time.Sleep(10 * time.Millisecond)
		fast <- "fast result"
	}()
	go func() {
		time.Sleep(50 * time.Millisecond)
		slow <- "slow result"
	}()

	// Select takes whichever is ready first
	for i := 0; i < 2; i++ {
		select {
		case msg := <-fast:
			fmt.Println("got:", msg)
		case msg := <-slow:
			fmt.Println("got:", msg)
		}
	}

	// Timeout: the deadline races the work
	lazy := make(chan string)
	go func() {
		time.Sleep(100 * time.Millisecond)
		lazy <- "too late"
	}()
	select {
	case msg := <-lazy:
		fmt.Println("got:", msg)
	case <-time.After(20 * time.Millisecond):
		fmt.Println("timed out waiting")
	}

	// default makes the attempt non-blocking
	full := make(chan int, 1)
	full <- 1
	select {
	case full <- 2:
		fmt.Println("sent")
	default:
		fmt.Println("buffer full, dropped (and counted)")
	}

	// Closing a done channel unblocks every waiter at once
	done := make(chan struct{})
	for i := 1; i <= 3; i++ {
		go func() {
			<-done
			fmt.Printf("worker %d shutting down\n", i)
		}()
	}
	close(done)
	time.Sleep(20 * time.Millisecond)
}
