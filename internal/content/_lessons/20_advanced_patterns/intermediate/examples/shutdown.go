// Graceful shutdown choreography: translate a stop request into context
// cancellation, stop accepting work, drain in-flight work with a deadline.
// A timer stands in for the OS signal so the demo terminates by itself.
package main

import (
	"context"
	"fmt"
	"sync"
	"time"
)

type server struct {
	jobs chan int
	wg   sync.WaitGroup
}

func (s *server) start(ctx context.Context) {
	for w := 1; w <= 3; w++ {
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			for {
				select {
				case job, ok := <-s.jobs:
					if !ok {
						return
					}
					time.Sleep(20 * time.Millisecond) // the "work"
					fmt.Printf("worker %d finished job %d\n", w, job)
				case <-ctx.Done():
					return
				}
			}
		}()
	}
}

// drain closes intake and waits for workers, but gives up after d.
func (s *server) drain(d time.Duration) error {
	close(s.jobs)
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-time.After(d):
		return fmt.Errorf("drain: %v elapsed with work still in flight", d)
	}
}

func main() {
	// In a real program: ctx, stop := signal.NotifyContext(ctx, os.Interrupt).
	// Here a timeout plays the role of the arriving signal.
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Millisecond)
	defer cancel()

	srv := &server{jobs: make(chan int)}
	srv.start(context.Background()) // workers outlive the "signal" to drain

	submitted := 0
feed:
	for i := 1; ; i++ {
		select {
		case srv.jobs <- i:
			submitted++
		case <-ctx.Done():
			fmt.Println("stop requested; no longer accepting jobs")
			break feed
		}
	}

	if err := srv.drain(time.Second); err != nil {
		fmt.Println("shutdown dirty:", err)
		return
	}
	fmt.Printf("shutdown clean: %d jobs submitted, all drained\n", submitted)
}
